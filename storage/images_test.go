package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachImageStoresBlobThenRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	image, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), int64(len("jpeg-bytes")))
	require.NoError(t, err)

	assert.Equal(t, property.ID, image.PropertyID)
	assert.Equal(t, property.ID.String()+"/photo.jpg", image.Path)

	blob, err := s.Artifacts().Get(ctx, image.Path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(blob))
}

func TestAttachImageRejectsBadContentType(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	_, err := s.AttachImage(ctx, property.ID, "notes.txt", "text/plain",
		strings.NewReader("hello"), 5)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Neither a row nor a blob may exist after the rejection.
	images, err := s.ListImages(ctx, property.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, images)

	keys, err := s.Artifacts().List(ctx, property.ID.String()+"/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestAttachImageMissingProperty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AttachImage(context.Background(), uuid.New(), "photo.png", "image/png",
		strings.NewReader("png-bytes"), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttachImageSameFilenameReusesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	first, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("v1"), 2)
	require.NoError(t, err)

	second, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("v2"), 2)
	require.NoError(t, err)

	// Same key, same row; the blob holds the newer bytes.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Path, second.Path)

	images, err := s.ListImages(ctx, property.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	blob, err := s.Artifacts().Get(ctx, first.Path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(blob))
}

func TestDetachImageCrossPropertyGuard(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	propertyA := mustCreateProperty(t, s, owner, "715 E State St.")
	propertyB := mustCreateProperty(t, s, owner, "123 Lux Pl.")

	image, err := s.AttachImage(ctx, propertyA.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)

	_, err = s.DetachImage(ctx, propertyB.ID, image.ID)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Nothing was deleted.
	images, err := s.ListImages(ctx, propertyA.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestDetachImageRemovesBlobAndRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	image, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)

	res, err := s.DetachImage(ctx, property.ID, image.ID)
	require.NoError(t, err)
	assert.False(t, res.ArtifactMissing)

	_, err = s.Artifacts().Get(ctx, image.Path)
	assert.ErrorIs(t, err, ErrNotFound)

	images, err := s.ListImages(ctx, property.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestDetachImageSurfacesMissingArtifact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := mustCreateAccount(t, s, "Maheer", "Aeron", "maa368@cornell.edu")
	property := mustCreateProperty(t, s, owner, "715 E State St.")

	image, err := s.AttachImage(ctx, property.ID, "photo.jpg", "image/jpeg",
		strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)

	// Simulate the recovery gap: blob vanished out from under the row.
	require.NoError(t, s.Artifacts().Delete(ctx, image.Path))

	res, err := s.DetachImage(ctx, property.ID, image.ID)
	require.NoError(t, err)
	assert.True(t, res.ArtifactMissing)

	images, err := s.ListImages(ctx, property.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, images)
}
