package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName  string     `json:"fname" gorm:"column:fname;not null"`
	LastName   string     `json:"lname" gorm:"column:lname;not null"`
	Email      string     `json:"email" gorm:"not null"`
	CreatedAt  time.Time  `json:"created"`
	Properties []Property `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

func (Account) TableName() string {
	return "accounts"
}

func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
