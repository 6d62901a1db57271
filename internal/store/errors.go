package store

import "errors"

// Sentinel errors returned by the storage layer to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when a domain database cannot be
	// opened, pinged or migrated. It is fatal to that domain and never
	// retried automatically.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrTransactionFailed wraps every failed insert, update, delete or
	// commit. The rejected write left no trace in the database.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrBookmarkNotFound is returned when an update, delete or reorder
	// targets a bookmark id that does not exist.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrFoodNotFound is returned when an update or delete targets a food
	// id that does not exist.
	ErrFoodNotFound = errors.New("food item was not found")

	// ErrRecordNotFound is returned when a delete targets an intake record
	// id that does not exist.
	ErrRecordNotFound = errors.New("intake record was not found")

	// ErrSettingNotFound is returned when a settings key has never been
	// written.
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingSetting is returned when a settings value cannot be
	// marshalled to JSON.
	ErrEncodingSetting = errors.New("failed to encode setting")
)
