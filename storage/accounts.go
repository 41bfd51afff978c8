package storage

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

// AccountPatch carries the fields a partial update may change. Nil means
// "leave alone".
type AccountPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p AccountPatch) apply(a *models.Account) {
	patch(&a.FirstName, p.FirstName)
	patch(&a.LastName, p.LastName)
	patch(&a.Email, p.Email)
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return translateErr(err)
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return models.Account{}, translateErr(err)
	}
	return account, nil
}

func (s *Store) ListAccounts(ctx context.Context, offset, limit int) ([]models.Account, error) {
	accounts := []models.Account{}
	err := s.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(clampLimit(limit)).
		Find(&accounts).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id uuid.UUID, p AccountPatch) (models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, "id = ?", id).Error; err != nil {
			return err
		}
		p.apply(&account)
		return tx.Save(&account).Error
	})
	if err != nil {
		return models.Account{}, translateErr(err)
	}
	return account, nil
}
