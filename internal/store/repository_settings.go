package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Theworld7/VisiFind/internal/logger"
)

// Settings keys.
const (
	SettingSearchEngine       = "searchEngine"
	SettingBackgroundSettings = "backgroundSettings"
	SettingDailyLimits        = "dailyLimits"
)

// settingsRepository stores JSON values in the settings table of whichever
// domain database it was created for.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] over the settings
// table of db.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSetting returns the raw JSON stored under key, or [ErrSettingNotFound].
func (s *settingsRepository) GetSetting(ctx context.Context, key string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.GetSetting").
			Str("key", key).
			Msg("failed to read setting")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return json.RawMessage(value), nil
}

// PutSetting marshals value and overwrites the row under key.
func (s *settingsRepository) PutSetting(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.PutSetting").
			Str("key", key).
			Msg("failed to encode setting")
		return fmt.Errorf("%w: %w", ErrEncodingSetting, err)
	}

	if _, err = s.DB.ExecContext(ctx, putSetting, key, string(payload)); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.PutSetting").
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return nil
}
