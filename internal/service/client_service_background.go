package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/Theworld7/VisiFind/internal/adapter"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
	"github.com/Theworld7/VisiFind/models"
)

type clientBackgroundService struct {
	settingsRepo store.SettingsRepository
	wallpaper    adapter.WallpaperAdapter
	validator    validators.Validator

	mu       sync.RWMutex
	settings models.BackgroundSettings

	logger *logger.Logger
}

// NewClientBackgroundService creates a BackgroundService holding the default
// settings until Load is called. wallpaper may be nil, in which case
// RefreshBingWallpaper fails with [ErrWallpaperUnavailable].
func NewClientBackgroundService(settingsRepo store.SettingsRepository, wallpaper adapter.WallpaperAdapter, validator validators.Validator, logger *logger.Logger) BackgroundService {
	return &clientBackgroundService{
		settingsRepo: settingsRepo,
		wallpaper:    wallpaper,
		validator:    validator,
		settings:     models.DefaultBackgroundSettings(),
		logger:       logger,
	}
}

func (s *clientBackgroundService) Load(ctx context.Context) error {
	raw, err := s.settingsRepo.GetSetting(ctx, store.SettingBackgroundSettings)
	if errors.Is(err, store.ErrSettingNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load background settings: %w", err)
	}

	var patch models.BackgroundPatch
	if err = json.Unmarshal(raw, &patch); err != nil {
		return fmt.Errorf("decode background settings: %w", err)
	}

	s.mu.Lock()
	s.settings = applyBackgroundPatch(s.settings, patch)
	s.mu.Unlock()
	return nil
}

func (s *clientBackgroundService) Settings() models.BackgroundSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *clientBackgroundService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.PutSetting(ctx, store.SettingBackgroundSettings, s.settings); err != nil {
		return fmt.Errorf("save background settings: %w", err)
	}
	return nil
}

func (s *clientBackgroundService) Update(ctx context.Context, patch models.BackgroundPatch) error {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := applyBackgroundPatch(s.settings, patch)
	if err := s.settingsRepo.PutSetting(ctx, store.SettingBackgroundSettings, next); err != nil {
		return fmt.Errorf("save background settings: %w", err)
	}

	s.settings = next
	return nil
}

func (s *clientBackgroundService) Style() models.BackgroundStyle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return backgroundStyle(s.settings)
}

func (s *clientBackgroundService) EffectiveURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return effectiveURL(s.settings)
}

func (s *clientBackgroundService) RefreshBingWallpaper(ctx context.Context) (string, error) {
	if s.wallpaper == nil {
		return "", ErrWallpaperUnavailable
	}

	wallpaperURL, err := s.wallpaper.FetchBingWallpaper(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch bing wallpaper: %w", err)
	}

	mode := string(models.BackgroundModeBing)
	if err = s.Update(ctx, models.BackgroundPatch{
		BackgroundInputMode: &mode,
		BingWallpaperURL:    &wallpaperURL,
	}); err != nil {
		return "", err
	}

	return wallpaperURL, nil
}

// applyBackgroundPatch copies the provided fields of patch over settings. An
// unknown input mode resolves to color mode. Color mode always uses the
// default swatch, bing mode always renders the bing wallpaper.
func applyBackgroundPatch(settings models.BackgroundSettings, patch models.BackgroundPatch) models.BackgroundSettings {
	if patch.BackgroundInputMode != nil {
		mode := models.BackgroundInputMode(*patch.BackgroundInputMode)
		if !mode.Valid() {
			mode = models.BackgroundModeColor
		}
		settings.BackgroundInputMode = mode
	}
	if patch.BingWallpaperURL != nil {
		settings.BingWallpaperURL = *patch.BingWallpaperURL
	}
	if patch.BackgroundURL != nil {
		settings.BackgroundURL = *patch.BackgroundURL
	}
	if patch.BackgroundBlur != nil {
		settings.BackgroundBlur = *patch.BackgroundBlur
	}
	if patch.BackgroundColor != nil {
		settings.BackgroundColor = *patch.BackgroundColor
	}

	switch settings.BackgroundInputMode {
	case models.BackgroundModeColor:
		settings.BackgroundColor = models.DefaultBackgroundColor
	case models.BackgroundModeBing:
		settings.BackgroundURL = settings.BingWallpaperURL
	}

	return settings
}

func effectiveURL(settings models.BackgroundSettings) string {
	switch settings.BackgroundInputMode {
	case models.BackgroundModeBing:
		return settings.BingWallpaperURL
	case models.BackgroundModeURL, models.BackgroundModeUpload:
		return settings.BackgroundURL
	default:
		return ""
	}
}

func backgroundStyle(settings models.BackgroundSettings) models.BackgroundStyle {
	style := models.BackgroundStyle{Blur: "0px"}
	if settings.BackgroundBlur != 0 {
		style.Blur = strconv.FormatFloat(settings.BackgroundBlur, 'f', -1, 64) + "px"
	}

	if settings.BackgroundInputMode == models.BackgroundModeColor {
		style.BackgroundColor = settings.BackgroundColor
		style.BackgroundImage = "none"
		return style
	}

	if u := effectiveURL(settings); u != "" {
		style.BackgroundImage = "url(" + u + ")"
	}
	return style
}
