package service

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedImportDocument = errors.New("malformed import document")
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrExportFailed            = errors.New("export failed")
	ErrWallpaperUnavailable    = errors.New("wallpaper adapter is not configured")
)

// Import domains reported in [RecordImportError.Domain].
const (
	DomainBookmarks = "bookmarks"
	DomainFoods     = "foods"
	DomainRecords   = "records"
	DomainSettings  = "settings"
)

// RecordImportError is returned, joined with its siblings, by the Import
// methods of the domain services for every record that could not be stored.
type RecordImportError struct {
	Domain string
	Index  int
	Name   string
	Err    error
}

func (e *RecordImportError) Error() string {
	return fmt.Sprintf("import %s[%d] %q: %v", e.Domain, e.Index, e.Name, e.Err)
}

func (e *RecordImportError) Unwrap() error {
	return e.Err
}

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
