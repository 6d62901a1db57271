package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
	"github.com/Theworld7/VisiFind/models"
)

type clientBookmarkService struct {
	repo      store.BookmarkRepository
	validator validators.Validator

	mu        sync.RWMutex
	bookmarks []models.Bookmark

	logger *logger.Logger
}

// NewClientBookmarkService creates a BookmarkService over repo. The list is
// empty until Load is called.
func NewClientBookmarkService(repo store.BookmarkRepository, validator validators.Validator, logger *logger.Logger) BookmarkService {
	return &clientBookmarkService{repo: repo, validator: validator, logger: logger}
}

func (s *clientBookmarkService) Load(ctx context.Context) error {
	bookmarks, err := s.repo.ListBookmarks(ctx)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}

	s.mu.Lock()
	s.bookmarks = bookmarks
	s.mu.Unlock()
	return nil
}

func (s *clientBookmarkService) Bookmarks() []models.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookmarks)
}

func (s *clientBookmarkService) Add(ctx context.Context, bookmark models.Bookmark) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, bookmark)
}

// add stores bookmark and appends it to the list. s.mu must be held.
func (s *clientBookmarkService) add(ctx context.Context, bookmark models.Bookmark) (int64, error) {
	bookmark.ID = 0
	if err := s.validator.Validate(ctx, bookmark); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	id, err := s.repo.CreateBookmark(ctx, bookmark)
	if err != nil {
		return 0, fmt.Errorf("create bookmark: %w", err)
	}

	bookmark.ID = id
	s.bookmarks = append(s.bookmarks, bookmark)
	return id, nil
}

func (s *clientBookmarkService) Update(ctx context.Context, id int64, bookmark models.Bookmark) error {
	bookmark.ID = id
	if err := s.validator.Validate(ctx, bookmark); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateBookmark(ctx, bookmark); err != nil {
		return fmt.Errorf("update bookmark: %w", err)
	}

	if i := slices.IndexFunc(s.bookmarks, func(b models.Bookmark) bool { return b.ID == id }); i >= 0 {
		s.bookmarks[i] = bookmark
	}
	return nil
}

func (s *clientBookmarkService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteBookmark(ctx, id); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	s.bookmarks = slices.DeleteFunc(s.bookmarks, func(b models.Bookmark) bool { return b.ID == id })
	return nil
}

func (s *clientBookmarkService) Reorder(ctx context.Context, bookmarks []models.Bookmark) error {
	for _, b := range bookmarks {
		if b.ID <= 0 {
			return fmt.Errorf("%w: bookmark %q has no id", ErrInvalidDataProvided, b.Name)
		}
		if err := s.validator.Validate(ctx, b); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ReorderBookmarks(ctx, bookmarks); err != nil {
		return fmt.Errorf("reorder bookmarks: %w", err)
	}

	s.bookmarks = slices.Clone(bookmarks)
	return nil
}

func (s *clientBookmarkService) Import(ctx context.Context, bookmarks []models.Bookmark) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.bookmarks)+len(bookmarks))
	for _, b := range s.bookmarks {
		existing[nameKey(b.Name)] = struct{}{}
	}

	var (
		created int
		errs    []error
	)
	for i, b := range bookmarks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		key := nameKey(b.Name)
		if _, ok := existing[key]; ok {
			continue
		}

		if _, err := s.add(ctx, b); err != nil {
			errs = append(errs, &RecordImportError{Domain: DomainBookmarks, Index: i, Name: b.Name, Err: err})
			continue
		}
		existing[key] = struct{}{}
		created++
	}

	log.Info().
		Str("func", "clientBookmarkService.Import").
		Int("received", len(bookmarks)).
		Int("created", created).
		Int("failed", len(errs)).
		Msg("bookmarks imported")

	return created, errors.Join(errs...)
}

// nameKey is the natural key used to detect the same bookmark or food item
// across imports. Surrounding whitespace is significant.
func nameKey(name string) string {
	return strings.ToLower(name)
}
