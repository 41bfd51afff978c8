package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyImage binds one stored blob to a property. Path is the artifact
// store key and is unique across every image in the system.
type PropertyImage struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	Path       string    `json:"path" gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time `json:"created"`

	Property Property `json:"-" gorm:"foreignKey:PropertyID;references:ID"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

func (i *PropertyImage) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
