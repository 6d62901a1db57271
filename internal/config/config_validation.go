// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.BackupInterval > 0 && cfg.Storage.BackupDir == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.WallpaperMode {
	case WallpaperModeMirror, WallpaperModeArchive:
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.HTTPAddress != "" && cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Headless && cfg.Server.HTTPAddress == "" && cfg.Workers.BackupInterval == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Backup.ExportDir != "" && cfg.Backup.ImportFile != "" {
		return ErrConflictingBackupActions
	}

	return nil
}
