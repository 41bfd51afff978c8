package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

// The cascade order is fixed: artifacts first, then rows children-before-
// parents inside one transaction. A foreign key is never left pointing at a
// deleted parent, and a committed delete means the artifacts were already
// dealt with. The gap that remains — a crash after an artifact delete but
// before commit leaves a row whose blob is gone — is accepted and recovered
// by the artifact-missing handling in DetachImage.

// DeleteProperty removes a property, its reviews, its images and their
// blobs. If every row is gone but some blobs survived, the error is a
// PartialFailureError naming them.
func (s *Store) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return translateErr(err)
	}

	leftover := s.deleteArtifactsByPrefix(ctx, id.String()+"/")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deletePropertyRows(tx, id)
	})
	if err != nil {
		return translateErr(err)
	}

	s.cache.InvalidateProperty(ctx, id)
	if len(leftover) > 0 {
		return &PartialFailureError{Keys: leftover}
	}
	return nil
}

// DeleteAccount removes an account, everything it owns, and every review it
// posted elsewhere.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	db := s.db.WithContext(ctx)

	var account models.Account
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		return translateErr(err)
	}

	var properties []models.Property
	if err := db.Where("owner_id = ?", id).Find(&properties).Error; err != nil {
		return translateErr(err)
	}

	var leftover []string
	for _, p := range properties {
		leftover = append(leftover, s.deleteArtifactsByPrefix(ctx, p.ID.String()+"/")...)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, p := range properties {
			if err := deletePropertyRows(tx, p.ID); err != nil {
				return err
			}
		}
		// Reviews this account posted on properties it does not own.
		if err := tx.Where("poster_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Account{}, "id = ?", id).Error
	})
	if err != nil {
		return translateErr(err)
	}

	for _, p := range properties {
		s.cache.InvalidateProperty(ctx, p.ID)
	}
	if len(leftover) > 0 {
		return &PartialFailureError{Keys: leftover}
	}
	return nil
}

// ResetAll empties every table and the artifact store. It is idempotent:
// running it twice succeeds twice. Intended for test harness setup only and
// gated behind the test-mode flag at the routing layer.
func (s *Store) ResetAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&models.Review{},
			&models.PropertyImage{},
			&models.Property{},
			&models.Account{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateErr(err)
	}
	if err := s.artifacts.Clear(ctx); err != nil {
		// Rows are already gone; report the stragglers the same way the
		// per-entity cascades do.
		s.log.Warn("artifact store clear failed during reset", "err", err)
		s.cache.Flush(ctx)
		return &PartialFailureError{Keys: []string{"*"}}
	}
	s.cache.Flush(ctx)
	return nil
}

// deletePropertyRows deletes one property's dependents then the property
// itself, inside the caller's transaction.
func deletePropertyRows(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("property_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Property{}, "id = ?", id).Error
}

// deleteArtifactsByPrefix removes every blob under prefix, best effort, and
// returns the keys that could not be removed. Already-missing blobs are not
// failures.
func (s *Store) deleteArtifactsByPrefix(ctx context.Context, prefix string) []string {
	keys, err := s.artifacts.List(ctx, prefix)
	if err != nil {
		s.log.Warn("listing artifacts for cascade failed", "prefix", prefix, "err", err)
		return []string{prefix + "*"}
	}
	var failed []string
	for _, key := range keys {
		if err := s.artifacts.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			s.log.Warn("artifact delete failed during cascade", "key", key, "err", err)
			failed = append(failed, key)
		}
	}
	return failed
}
