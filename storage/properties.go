package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

type PropertyPatch struct {
	Name         *string
	Description  *string
	Address      *string
	StartDate    *string
	EndDate      *string
	MonthlyRent  *int
	NumBedrooms  *int
	NumBathrooms *int
}

func (p PropertyPatch) apply(m *models.Property) {
	patch(&m.Name, p.Name)
	patch(&m.Description, p.Description)
	patch(&m.Address, p.Address)
	patch(&m.StartDate, p.StartDate)
	patch(&m.EndDate, p.EndDate)
	patch(&m.MonthlyRent, p.MonthlyRent)
	patch(&m.NumBedrooms, p.NumBedrooms)
	patch(&m.NumBathrooms, p.NumBathrooms)
}

// CreateProperty inserts a property after resolving its owner. A missing
// owner is a constraint failure, not a validation one: the input is shaped
// fine, the reference just does not resolve.
func (s *Store) CreateProperty(ctx context.Context, property *models.Property) error {
	var owner models.Account
	if err := s.db.WithContext(ctx).First(&owner, "id = ?", property.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConstraintError{Constraint: "foreign_key", Message: "owner account does not exist"}
		}
		return translateErr(err)
	}
	if err := s.db.WithContext(ctx).Create(property).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (models.Property, error) {
	if cached, ok := s.cache.GetProperty(ctx, id); ok {
		return *cached, nil
	}
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return models.Property{}, translateErr(err)
	}
	s.cache.SetProperty(ctx, &property)
	return property, nil
}

// ListProperties returns a page of properties, optionally only those owned by
// ownerID.
func (s *Store) ListProperties(ctx context.Context, ownerID *uuid.UUID, offset, limit int) ([]models.Property, error) {
	properties := []models.Property{}
	q := s.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(clampLimit(limit))
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	if err := q.Find(&properties).Error; err != nil {
		return nil, translateErr(err)
	}
	return properties, nil
}

func (s *Store) UpdateProperty(ctx context.Context, id uuid.UUID, p PropertyPatch) (models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&property, "id = ?", id).Error; err != nil {
			return err
		}
		p.apply(&property)
		return tx.Save(&property).Error
	})
	if err != nil {
		return models.Property{}, translateErr(err)
	}
	s.cache.InvalidateProperty(ctx, id)
	return property, nil
}
