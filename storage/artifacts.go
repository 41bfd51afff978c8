package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/MayoSR/cornell-student-housing-backend/config"
)

// ArtifactStore holds image bytes addressed by key. Keys are namespaced by
// property id ("<property_id>/<filename>") so a property's artifacts can be
// enumerated and removed as a prefix. Both backends share these semantics:
// Get and Delete return ErrNotFound (wrapped in an ArtifactError) when the
// key does not exist.
type ArtifactStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	// Clear removes every artifact in the store. Used by the bulk reset.
	Clear(ctx context.Context) error
}

// NewArtifactStore builds the backend selected by configuration.
func NewArtifactStore(cfg config.Config) (ArtifactStore, error) {
	switch cfg.ArtifactBackend {
	case config.BackendLocal:
		return NewLocalStore(cfg.BlobRoot)
	case config.BackendCloud:
		return NewS3Store(cfg)
	}
	return nil, fmt.Errorf("unknown artifact backend %q", cfg.ArtifactBackend)
}
