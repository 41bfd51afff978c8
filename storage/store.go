package storage

import (
	"golang.org/x/exp/slog"
	"gorm.io/gorm"
)

// MaxLimit caps list page sizes; it is also the default when the client sends
// none.
const MaxLimit = 100

// Store is the data/consistency layer: entity CRUD, cascade deletes and the
// paired blob+row writes for property images. All handles are injected at
// startup.
type Store struct {
	db        *gorm.DB
	artifacts ArtifactStore
	cache     *Cache // nil when Redis is not configured
	log       *slog.Logger
}

func NewStore(db *gorm.DB, artifacts ArtifactStore, cache *Cache, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, artifacts: artifacts, cache: cache, log: log}
}

// Artifacts exposes the underlying blob store so tests can inspect what a
// cascade left behind.
func (s *Store) Artifacts() ArtifactStore {
	return s.artifacts
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
