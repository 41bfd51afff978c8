package storage

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps artifacts as plain files under a root directory. A key
// like "<property_id>/photo.jpg" becomes "<root>/<property_id>/photo.jpg".
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, &ArtifactError{Op: "init", Key: root, Err: err}
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

func (s *LocalStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &ArtifactError{Op: "put", Key: key, Err: err}
	}
	f, err := os.Create(dst)
	if err != nil {
		return &ArtifactError{Op: "put", Key: key, Err: err}
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return &ArtifactError{Op: "put", Key: key, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ArtifactError{Op: "put", Key: key, Err: err}
	}
	return nil
}

func (s *LocalStore) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, &ArtifactError{Op: "get", Key: key, Err: ErrNotFound}
	}
	if err != nil {
		return nil, &ArtifactError{Op: "get", Key: key, Err: err}
	}
	return b, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return &ArtifactError{Op: "delete", Key: key, Err: ErrNotFound}
	}
	if err != nil {
		return &ArtifactError{Op: "delete", Key: key, Err: err}
	}
	// Drop the per-property directory once it is empty; ignore failure, the
	// directory being left behind is harmless.
	os.Remove(filepath.Dir(s.path(key)))
	return nil
}

func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, &ArtifactError{Op: "list", Key: prefix, Err: err}
	}
	return keys, nil
}

func (s *LocalStore) Clear(_ context.Context) error {
	if err := os.RemoveAll(s.root); err != nil {
		return &ArtifactError{Op: "clear", Key: s.root, Err: err}
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return &ArtifactError{Op: "clear", Key: s.root, Err: err}
	}
	return nil
}
