package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags in args (without the program
// name).
//
// Flags:
//
//	-headless serve the local API without the terminal launcher
//	-a local API address in format [host]:[port]
//	-d data directory holding the domain databases
//	-backup-dir directory for automatic backups
//	-request-timeout local API request timeout (e.g., "30s", "1m")
//	-wallpaper-mode wallpaper endpoint variant: mirror or archive
//	-wallpaper-market Bing market code (e.g., "en-US")
//	-backup-interval automatic backup period (e.g., "24h"), 0 disables
//	-export write a snapshot into this directory and exit
//	-import import this snapshot file and exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var dataDir, backupDir string
	var requestTimeout, backupInterval time.Duration
	var wallpaperMode, wallpaperMarket string
	var exportDir, importFile string
	var jsonConfigPath string
	var headless bool

	fs := flag.NewFlagSet("visifind", flag.ContinueOnError)
	fs.BoolVar(&headless, "headless", false, "Run without the terminal launcher")
	fs.Var(&serverAddress, "a", "Local API address host:port")
	fs.StringVar(&dataDir, "d", "", "Data directory")
	fs.StringVar(&backupDir, "backup-dir", "", "Automatic backup directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&wallpaperMode, "wallpaper-mode", "", "Wallpaper endpoint variant (mirror, archive)")
	fs.StringVar(&wallpaperMarket, "wallpaper-market", "", "Wallpaper market code")
	fs.DurationVar(&backupInterval, "backup-interval", 0, "Automatic backup interval (e.g., 24h)")
	fs.StringVar(&exportDir, "export", "", "Export a snapshot into this directory and exit")
	fs.StringVar(&importFile, "import", "", "Import this snapshot file and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Headless: headless,
		},
		Storage: Storage{
			DataDir:   dataDir,
			BackupDir: backupDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			WallpaperMode:   wallpaperMode,
			WallpaperMarket: wallpaperMarket,
		},
		Workers: Workers{
			BackupInterval: backupInterval,
		},
		Backup: Backup{
			ExportDir:  exportDir,
			ImportFile: importFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
