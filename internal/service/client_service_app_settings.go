package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/search"
	"github.com/Theworld7/VisiFind/internal/store"
)

type clientAppSettingsService struct {
	settingsRepo store.SettingsRepository

	mu     sync.RWMutex
	engine search.Engine

	logger *logger.Logger
}

// NewClientAppSettingsService creates an AppSettingsService that starts with
// [search.DefaultEngine].
func NewClientAppSettingsService(settingsRepo store.SettingsRepository, logger *logger.Logger) AppSettingsService {
	return &clientAppSettingsService{settingsRepo: settingsRepo, engine: search.DefaultEngine, logger: logger}
}

// Load reads the stored engine. A missing or unknown value keeps the current
// engine.
func (s *clientAppSettingsService) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	raw, err := s.settingsRepo.GetSetting(ctx, store.SettingSearchEngine)
	if errors.Is(err, store.ErrSettingNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load search engine: %w", err)
	}

	var name string
	if err = json.Unmarshal(raw, &name); err != nil {
		return fmt.Errorf("decode search engine: %w", err)
	}

	engine, err := search.Parse(name)
	if err != nil {
		log.Warn().Str("func", "clientAppSettingsService.Load").Str("engine", name).Msg("ignoring unknown stored search engine")
		return nil
	}

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	return nil
}

func (s *clientAppSettingsService) SearchEngine() search.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *clientAppSettingsService) SetSearchEngine(ctx context.Context, engine search.Engine) error {
	if _, err := search.Parse(string(engine)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.PutSetting(ctx, store.SettingSearchEngine, string(engine)); err != nil {
		return fmt.Errorf("save search engine: %w", err)
	}

	s.engine = engine
	return nil
}

func (s *clientAppSettingsService) SearchURL(query string) (string, error) {
	return search.URL(s.SearchEngine(), query)
}
