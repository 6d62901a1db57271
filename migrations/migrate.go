// Package migrations holds the embedded, per-domain schema migrations.
//
// Every domain database has its own directory of goose SQL files; the goose
// version of a database is its schema version. Migrations are additive only:
// they create missing tables and indexes and never drop anything, so opening
// an older database at a newer version keeps all existing rows.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed bookmarks/*.sql foods/*.sql intake/*.sql
var embedMigrations embed.FS

// Domain directories inside the embedded filesystem.
const (
	Bookmarks = "bookmarks"
	Foods     = "foods"
	Intake    = "intake"
)

var (
	ErrNilDB         = errors.New("db is nil")
	ErrUnknownDomain = errors.New("unknown migration domain")
	ErrNewerSchema   = errors.New("database schema is newer than requested")
)

// Migrate brings the database for domain up to version. It is a no-op when
// the database is already at version. A database whose stored version is
// greater than version is rejected with [ErrNewerSchema].
func Migrate(ctx context.Context, db *sql.DB, domain string, version int64) error {
	if db == nil {
		return ErrNilDB
	}

	fsys, err := domainFS(domain)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider for %s: %w", domain, err)
	}

	if _, err = provider.UpTo(ctx, version); err != nil {
		return fmt.Errorf("migration error for %s: %w", domain, err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migration error reading %s version: %w", domain, err)
	}
	if current > version {
		return fmt.Errorf("%w: %s is at %d, requested %d", ErrNewerSchema, domain, current, version)
	}

	return nil
}

func domainFS(domain string) (fs.FS, error) {
	switch domain {
	case Bookmarks, Foods, Intake:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}

	sub, err := fs.Sub(embedMigrations, domain)
	if err != nil {
		return nil, fmt.Errorf("migration error opening %s: %w", domain, err)
	}
	return sub, nil
}
