package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the local API and the launcher.
	Version string
	// Headless disables the terminal launcher.
	Headless bool
}

// ClientStorage groups local storage locations.
type ClientStorage struct {
	// DataDir holds the per-domain SQLite files.
	DataDir string
	// BackupDir receives automatic backups.
	BackupDir string
}

// ClientServer holds the local API settings.
type ClientServer struct {
	// HTTPAddress is the listen address; empty disables the API.
	HTTPAddress string
	// RequestTimeout bounds every API request.
	RequestTimeout time.Duration
}

// ClientAdapter holds settings of the wallpaper adapter.
type ClientAdapter struct {
	// WallpaperMode is one of [WallpaperModeMirror] or [WallpaperModeArchive].
	WallpaperMode string
	// WallpaperMarket is the Bing market code.
	WallpaperMarket string
	// WallpaperURL overrides the endpoint of the selected variant.
	WallpaperURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BackupInterval defines how often automatic backups run. Zero disables
	// them.
	BackupInterval time.Duration
}

// ClientBackup contains one-shot backup actions.
type ClientBackup struct {
	// ExportDir receives a snapshot when set.
	ExportDir string
	// ImportFile is imported when set.
	ImportFile string
}

// OneShot reports whether a backup action replaces the normal run.
func (b ClientBackup) OneShot() bool {
	return b.ExportDir != "" || b.ImportFile != ""
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Server  ClientServer
	Adapter ClientAdapter
	Workers ClientWorkers
	Backup  ClientBackup
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
// An empty backup directory resolves to "<DataDir>/backups".
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	backupDir := cfg.Storage.BackupDir
	if backupDir == "" && cfg.Storage.DataDir != "" {
		backupDir = filepath.Join(cfg.Storage.DataDir, defaultBackupDirName)
	}

	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			Headless: cfg.App.Headless,
		},
		Storage: ClientStorage{
			DataDir:   cfg.Storage.DataDir,
			BackupDir: backupDir,
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Adapter: ClientAdapter{
			WallpaperMode:   cfg.Adapter.WallpaperMode,
			WallpaperMarket: cfg.Adapter.WallpaperMarket,
			WallpaperURL:    cfg.Adapter.WallpaperURL,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{BackupInterval: cfg.Workers.BackupInterval},
		Backup: ClientBackup{
			ExportDir:  cfg.Backup.ExportDir,
			ImportFile: cfg.Backup.ImportFile,
		},
	}
}
