// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Wallpaper endpoint variants understood by the wallpaper adapter.
const (
	WallpaperModeMirror  = "mirror"
	WallpaperModeArchive = "archive"
)

// Defaults applied to any field left unset by every other source.
const (
	DefaultWallpaperMode        = WallpaperModeMirror
	DefaultWallpaperMarket      = "zh-CN"
	DefaultAdapterTimeout       = 10 * time.Second
	DefaultServerRequestTimeout = 30 * time.Second
	defaultDataDirName          = "visifind"
	defaultBackupDirName        = "backups"
)

// StructuredConfig is the top-level configuration container for VisiFind.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the local domain databases and of the
	// backup files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the settings of the optional local JSON API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of the wallpaper HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Backup holds one-shot export/import requests given on the command line.
	Backup Backup `envPrefix:"BACKUP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Headless runs the local API and the backup worker without the
	// terminal launcher, until a termination signal arrives.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// Storage groups the configuration of the embedded databases.
type Storage struct {
	// DataDir is the directory holding one SQLite file per domain
	// (bookmarks, foods, intake). Created on first start.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// BackupDir is the directory automatic backups are written to.
	// Defaults to "<DataDir>/backups".
	// Env: STORAGE_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`
}

// Server holds network and timeout settings for the local JSON API.
type Server struct {
	// HTTPAddress is the TCP address the local API listens on, in
	// "host:port" format. Empty disables the API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the wallpaper adapter.
type Adapter struct {
	// WallpaperMode selects the endpoint variant: "mirror" or "archive".
	// Env: ADAPTER_WALLPAPER_MODE
	WallpaperMode string `env:"WALLPAPER_MODE"`

	// WallpaperMarket is the Bing market code, e.g. "zh-CN" or "en-US".
	// Env: ADAPTER_WALLPAPER_MARKET
	WallpaperMarket string `env:"WALLPAPER_MARKET"`

	// WallpaperURL overrides the base URL of the selected variant.
	// Env: ADAPTER_WALLPAPER_URL
	WallpaperURL string `env:"WALLPAPER_URL"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupInterval is the period of automatic backups. Zero disables them.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`
}

// Backup holds one-shot backup actions.
type Backup struct {
	// ExportDir, when set, makes the client write a snapshot into this
	// directory and exit.
	// Env: BACKUP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// ImportFile, when set, makes the client import this snapshot and exit.
	// Env: BACKUP_IMPORT_FILE
	ImportFile string `env:"IMPORT_FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// defaultConfig returns the built-in defaults. The data directory lives under
// the user's configuration directory, or in the working directory when that
// cannot be determined.
func defaultConfig() *StructuredConfig {
	dataDir := "." + defaultDataDirName
	if base, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(base, defaultDataDirName)
	}

	return &StructuredConfig{
		Storage: Storage{
			DataDir: dataDir,
		},
		Server: Server{
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			WallpaperMode:   DefaultWallpaperMode,
			WallpaperMarket: DefaultWallpaperMarket,
			RequestTimeout:  DefaultAdapterTimeout,
		},
	}
}
