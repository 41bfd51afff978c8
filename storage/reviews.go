package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

type ReviewPatch struct {
	Rating  *int
	Content *string
}

func (p ReviewPatch) apply(r *models.Review) {
	patch(&r.Rating, p.Rating)
	patch(&r.Content, p.Content)
}

// CreateReview inserts a review. An account may review a property once; the
// pre-check gives a clear message and the composite unique index is the
// backstop under concurrent creates, so at most one of two racing inserts
// wins and the loser sees a ConstraintError.
func (s *Store) CreateReview(ctx context.Context, review *models.Review) error {
	db := s.db.WithContext(ctx)

	var property models.Property
	if err := db.First(&property, "id = ?", review.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConstraintError{Constraint: "foreign_key", Message: "property does not exist"}
		}
		return translateErr(err)
	}
	var poster models.Account
	if err := db.First(&poster, "id = ?", review.PosterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConstraintError{Constraint: "foreign_key", Message: "poster account does not exist"}
		}
		return translateErr(err)
	}

	var existing models.Review
	err := db.Where("property_id = ? AND poster_id = ?", review.PropertyID, review.PosterID).
		First(&existing).Error
	if err == nil {
		return &ConstraintError{
			Constraint: "unique",
			Message:    "account has already reviewed this property",
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateErr(err)
	}

	if err := db.Create(review).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *Store) GetReview(ctx context.Context, id uuid.UUID) (models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return models.Review{}, translateErr(err)
	}
	return review, nil
}

func (s *Store) ListReviews(ctx context.Context, propertyID *uuid.UUID, offset, limit int) ([]models.Review, error) {
	reviews := []models.Review{}
	q := s.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(clampLimit(limit))
	if propertyID != nil {
		q = q.Where("property_id = ?", *propertyID)
	}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, translateErr(err)
	}
	return reviews, nil
}

// UpdateReview patches the review identified by the (property, poster) pair,
// the natural key clients address reviews by.
func (s *Store) UpdateReview(ctx context.Context, propertyID, posterID uuid.UUID, p ReviewPatch) (models.Review, error) {
	var review models.Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("property_id = ? AND poster_id = ?", propertyID, posterID).
			First(&review).Error
		if err != nil {
			return err
		}
		p.apply(&review)
		return tx.Save(&review).Error
	})
	if err != nil {
		return models.Review{}, translateErr(err)
	}
	return review, nil
}

func (s *Store) DeleteReview(ctx context.Context, propertyID, posterID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("property_id = ? AND poster_id = ?", propertyID, posterID).
		Delete(&models.Review{})
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
