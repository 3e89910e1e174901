package ports

import "errors"

var (
	ErrSaveNotFound   = errors.New("save not found")
	ErrSaveConflict   = errors.New("save conflict")
	ErrSaveCorrupt    = errors.New("save corrupt")
	ErrSchemaMismatch = errors.New("save schema mismatch")
	ErrCatalogMissing = errors.New("catalog entry missing")
)
