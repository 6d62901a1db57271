package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Theworld7/VisiFind/internal/logger"
)

// OpenDomain opens (creating if absent) the SQLite file of spec inside
// dataDir and runs the domain migrations. Opening an already-current
// database runs nothing. Every failure wraps [ErrStorageUnavailable].
func OpenDomain(ctx context.Context, dataDir string, spec DomainSpec, log *logger.Logger) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Err(err).Str("func", "OpenDomain").Str("domain", spec.Name).Msg("error creating data directory")
		return nil, fmt.Errorf("%w: creating data directory: %w", ErrStorageUnavailable, err)
	}

	path := filepath.Join(dataDir, spec.File)
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		log.Err(err).Str("func", "OpenDomain").Str("domain", spec.Name).Msg("error opening database")
		return nil, fmt.Errorf("%w: opening %s: %w", ErrStorageUnavailable, spec.Name, err)
	}
	// a single writer keeps SQLite from reporting "database is locked"
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "OpenDomain").Str("domain", spec.Name).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStorageUnavailable, spec.Name, err)
	}

	db := &DB{
		DB:     conn,
		spec:   spec,
		logger: log,
	}

	if err = db.Migrate(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "OpenDomain").Str("domain", spec.Name).Int64("version", spec.Version).Msg("error migrating database")
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	log.Debug().Str("func", "OpenDomain").Str("domain", spec.Name).Str("path", path).Msg("opened domain database")
	return db, nil
}
