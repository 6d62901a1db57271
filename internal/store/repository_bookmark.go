package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/models"
)

// bookmarkRepository is the SQLite-backed implementation of
// [BookmarkRepository].
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// bookmark database.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// ListBookmarks returns every bookmark in display order.
func (b *bookmarkRepository) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	rows, err := b.DB.QueryContext(ctx, listBookmarks)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ListBookmarks").
			Msg("failed to execute query for listing bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 32)
	for rows.Next() {
		var bookmark models.Bookmark
		scanErr := rows.Scan(
			&bookmark.ID,
			&bookmark.Name,
			&bookmark.URL,
			&bookmark.CustomIcon,
			&bookmark.Group,
			&bookmark.Description,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookmarkRepository.ListBookmarks").
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookmarkRepository.ListBookmarks").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bookmarks, nil
}

// CreateBookmark inserts bookmark at the end of the display order and
// returns the assigned id. bookmark.ID is ignored.
func (b *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, createBookmark,
		bookmark.Name,
		bookmark.URL,
		bookmark.CustomIcon,
		bookmark.Group,
		bookmark.Description,
	)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.CreateBookmark").
			Str("name", bookmark.Name).
			Msg("failed to insert bookmark")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.CreateBookmark").
			Str("name", bookmark.Name).
			Msg("failed to read inserted bookmark id")
		return 0, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return id, nil
}

// UpdateBookmark overwrites every field of the bookmark with bookmark.ID.
// Its position is kept.
func (b *bookmarkRepository) UpdateBookmark(ctx context.Context, bookmark models.Bookmark) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, updateBookmark,
		bookmark.Name,
		bookmark.URL,
		bookmark.CustomIcon,
		bookmark.Group,
		bookmark.Description,
		bookmark.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.UpdateBookmark").
			Int64("id", bookmark.ID).
			Msg("failed to update bookmark")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return b.expectOneRow(ctx, result, "bookmarkRepository.UpdateBookmark", bookmark.ID)
}

// DeleteBookmark removes the bookmark with id.
func (b *bookmarkRepository) DeleteBookmark(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := b.DB.ExecContext(ctx, deleteBookmark, id)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.DeleteBookmark").
			Int64("id", id).
			Msg("failed to delete bookmark")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	return b.expectOneRow(ctx, result, "bookmarkRepository.DeleteBookmark", id)
}

// ReorderBookmarks writes every bookmark back with its index in bookmarks as
// the new position, inside one transaction. Any unknown id rolls the whole
// reorder back.
func (b *bookmarkRepository) ReorderBookmarks(ctx context.Context, bookmarks []models.Bookmark) error {
	log := logger.FromContext(ctx)

	tx, err := b.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ReorderBookmarks").
			Int("entries_count", len(bookmarks)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, bookmark := range bookmarks {
		result, execErr := tx.ExecContext(ctx, reorderBookmark,
			bookmark.Name,
			bookmark.URL,
			bookmark.CustomIcon,
			bookmark.Group,
			bookmark.Description,
			idx,
			bookmark.ID,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "bookmarkRepository.ReorderBookmarks").
				Int("iteration", idx+1).
				Int64("id", bookmark.ID).
				Msg("failed to write bookmark position")
			return fmt.Errorf("%w: %w", ErrTransactionFailed, execErr)
		}

		if err = b.expectOneRow(ctx, result, "bookmarkRepository.ReorderBookmarks", bookmark.ID); err != nil {
			return err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "bookmarkRepository.ReorderBookmarks").
			Int("entries_count", len(bookmarks)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionFailed, ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (b *bookmarkRepository) expectOneRow(ctx context.Context, result sql.Result, fn string, id int64) error {
	return expectAffected(ctx, result, fn, id, ErrBookmarkNotFound)
}

// expectAffected turns a zero RowsAffected into notFound.
func expectAffected(ctx context.Context, result sql.Result, fn string, id int64, notFound error) error {
	log := logger.FromContext(ctx)

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("id", id).
			Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", fn).
			Int64("id", id).
			Msg("no rows affected: record not found")
		return fmt.Errorf("%w (id=%d)", notFound, id)
	}

	return nil
}
