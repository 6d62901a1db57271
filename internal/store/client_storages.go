package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
)

// ClientStorages groups the repositories of all three domain databases into
// a single value owned by the composition root. Handles stay open for the
// lifetime of the process and are released by [ClientStorages.Close].
type ClientStorages struct {
	// BookmarkRepository persists bookmarks in the bookmark database.
	BookmarkRepository BookmarkRepository
	// BookmarkSettings is the settings table of the bookmark database. It
	// holds the search engine and the background settings.
	BookmarkSettings SettingsRepository
	// FoodRepository persists the food library.
	FoodRepository FoodRepository
	// IntakeRepository persists logged meals.
	IntakeRepository IntakeRepository
	// IntakeSettings is the settings table of the intake database. It holds
	// the daily limits.
	IntakeSettings SettingsRepository

	dbs []*DB
}

// NewClientStorages opens every domain database inside cfg.DataDir, running
// pending migrations, and wires the repositories. If any domain fails to
// open, the already opened ones are closed and the error (wrapping
// [ErrStorageUnavailable]) is returned.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("data_dir", cfg.DataDir).Msg("creating new storages...")

	s := &ClientStorages{}

	bookmarkDB, err := s.open(ctx, cfg.DataDir, BookmarkDomain, logger)
	if err != nil {
		return nil, err
	}
	foodDB, err := s.open(ctx, cfg.DataDir, FoodDomain, logger)
	if err != nil {
		return nil, err
	}
	intakeDB, err := s.open(ctx, cfg.DataDir, IntakeDomain, logger)
	if err != nil {
		return nil, err
	}

	s.BookmarkRepository = NewBookmarkRepository(bookmarkDB, logger)
	s.BookmarkSettings = NewSettingsRepository(bookmarkDB, logger)
	s.FoodRepository = NewFoodRepository(foodDB, logger)
	s.IntakeRepository = NewIntakeRepository(intakeDB, logger)
	s.IntakeSettings = NewSettingsRepository(intakeDB, logger)

	return s, nil
}

func (s *ClientStorages) open(ctx context.Context, dataDir string, spec DomainSpec, logger *logger.Logger) (*DB, error) {
	db, err := OpenDomain(ctx, dataDir, spec, logger)
	if err != nil {
		closeErr := s.Close()
		return nil, errors.Join(fmt.Errorf("open %s storage: %w", spec.Name, err), closeErr)
	}
	s.dbs = append(s.dbs, db)
	return db, nil
}

// Close releases every open domain database.
func (s *ClientStorages) Close() error {
	var errs error
	for _, db := range s.dbs {
		if err := db.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("close %s storage: %w", db.spec.Name, err))
		}
	}
	s.dbs = nil
	return errs
}
