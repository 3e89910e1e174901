package ports

import (
	"context"
	"time"

	"megbase/internal/domain/catalog"
	"megbase/internal/domain/outpost"
)

// SaveRecord is a stored game snapshot plus repository metadata.
type SaveRecord struct {
	Name     string
	Snapshot outpost.Snapshot
	Seed     int64
	SavedAt  time.Time
}

// SaveInfo is the listing view of a save: metadata without the snapshot body.
type SaveInfo struct {
	Name    string    `json:"name"`
	Day     int       `json:"day"`
	SavedAt time.Time `json:"saved_at"`
}

// SaveRepository persists named game snapshots. Put overwrites an existing
// save of the same name.
type SaveRepository interface {
	Put(ctx context.Context, record SaveRecord) error
	Get(ctx context.Context, name string) (SaveRecord, error)
	List(ctx context.Context) ([]SaveInfo, error)
	Delete(ctx context.Context, name string) error
}

// CatalogLoader produces the validated content tables the simulation core
// runs against.
type CatalogLoader interface {
	Load() (*catalog.Set, error)
}
