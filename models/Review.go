package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is one account's take on one property. An account may post at most
// one review per property, enforced by the composite unique index.
type Review struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index:idx_reviews_property_poster,unique"`
	PosterID   uuid.UUID `json:"poster_id" gorm:"type:uuid;not null;index:idx_reviews_property_poster,unique"`
	Rating     int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content    string    `json:"content" gorm:"type:text"`
	CreatedAt  time.Time `json:"created"`

	Property Property `json:"-" gorm:"foreignKey:PropertyID;references:ID"`
	Poster   Account  `json:"-" gorm:"foreignKey:PosterID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
