package store

import (
	"context"
	"database/sql"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/migrations"
)

// DomainSpec names one embedded database: its migration domain, its file
// inside the data directory and the schema version it is opened at.
type DomainSpec struct {
	Name    string
	File    string
	Version int64
}

// Domain databases of the application.
var (
	BookmarkDomain = DomainSpec{Name: migrations.Bookmarks, File: "bookmarks.db", Version: 2}
	FoodDomain     = DomainSpec{Name: migrations.Foods, File: "foods.db", Version: 1}
	IntakeDomain   = DomainSpec{Name: migrations.Intake, File: "intake.db", Version: 2}
)

// DB is an open handle to one domain database.
type DB struct {
	*sql.DB
	spec   DomainSpec
	logger *logger.Logger
}

// Migrate brings the database up to the version of its domain spec.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.spec.Name, db.spec.Version)
}

// Spec returns the domain the handle was opened for.
func (db *DB) Spec() DomainSpec {
	return db.spec
}
