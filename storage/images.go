package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

// allowedImageTypes is the upload content-type allow-list.
var allowedImageTypes = []string{"image/png", "image/jpg", "image/jpeg"}

// ImageKey builds the artifact key for a property image. It is deterministic:
// uploading the same filename to the same property lands on the same key,
// overwriting the earlier blob.
func ImageKey(propertyID uuid.UUID, filename string) string {
	return propertyID.String() + "/" + path.Base(filepath.ToSlash(filename))
}

// DetachResult reports what DetachImage found along the way.
type DetachResult struct {
	// ArtifactMissing is set when the row existed but its blob was already
	// gone. The row is still deleted; the caller decides what to tell the
	// client.
	ArtifactMissing bool
}

// AttachImage stores the uploaded bytes and then records the PropertyImage
// row. The blob write comes first: a failed write never leaves a row behind,
// so every row points at bytes that exist. An upload that lands on an
// existing key reuses that key's row instead of duplicating it.
func (s *Store) AttachImage(ctx context.Context, propertyID uuid.UUID, filename, contentType string, r io.Reader, size int64) (models.PropertyImage, error) {
	db := s.db.WithContext(ctx)

	var property models.Property
	if err := db.First(&property, "id = ?", propertyID).Error; err != nil {
		return models.PropertyImage{}, translateErr(err)
	}
	if !slices.Contains(allowedImageTypes, contentType) {
		return models.PropertyImage{}, &ValidationError{
			Message: "unsupported image file type " + contentType,
		}
	}

	key := ImageKey(propertyID, filename)
	if err := s.artifacts.Put(ctx, key, r, size, contentType); err != nil {
		return models.PropertyImage{}, err
	}

	image := models.PropertyImage{PropertyID: propertyID, Path: key}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}},
		DoNothing: true,
	}).Create(&image).Error
	if err != nil {
		return models.PropertyImage{}, translateErr(err)
	}
	// Reload by path into a fresh value so an overwrite returns the original
	// row, not the discarded insert attempt (gorm would otherwise fold the
	// new row's primary key into the lookup).
	var saved models.PropertyImage
	if err := db.First(&saved, "path = ?", key).Error; err != nil {
		return models.PropertyImage{}, translateErr(err)
	}
	return saved, nil
}

func (s *Store) ListImages(ctx context.Context, propertyID uuid.UUID, offset, limit int) ([]models.PropertyImage, error) {
	images := []models.PropertyImage{}
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at").
		Offset(offset).
		Limit(clampLimit(limit)).
		Find(&images).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return images, nil
}

// DetachImage removes one image's blob and row. The image must belong to the
// property named in the request; anything else smells like a crafted
// cross-property delete and is rejected. A missing blob does not block the
// row delete but is surfaced in the result.
func (s *Store) DetachImage(ctx context.Context, propertyID, imageID uuid.UUID) (DetachResult, error) {
	db := s.db.WithContext(ctx)

	var image models.PropertyImage
	if err := db.First(&image, "id = ?", imageID).Error; err != nil {
		return DetachResult{}, translateErr(err)
	}
	if image.PropertyID != propertyID {
		return DetachResult{}, &ValidationError{
			Message: "specified property does not have this image",
		}
	}

	var res DetachResult
	var artifactErr error
	if err := s.artifacts.Delete(ctx, image.Path); err != nil {
		if errors.Is(err, ErrNotFound) {
			res.ArtifactMissing = true
			s.log.Warn("artifact already missing on detach", "key", image.Path)
		} else {
			// Keep going: the row delete must still be attempted.
			artifactErr = err
			s.log.Warn("artifact delete failed on detach", "key", image.Path, "err", err)
		}
	}

	if err := db.Delete(&models.PropertyImage{}, "id = ?", imageID).Error; err != nil {
		return DetachResult{}, translateErr(err)
	}
	if artifactErr != nil {
		return res, &PartialFailureError{Keys: []string{image.Path}}
	}
	return res, nil
}
