package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name"`
	Description  string    `json:"description" gorm:"type:text"`
	Address      string    `json:"address" gorm:"not null"`
	StartDate    string    `json:"start_date" gorm:"type:varchar(10)"` // lease start, YYYY-MM-DD
	EndDate      string    `json:"end_date" gorm:"type:varchar(10)"`   // lease end, YYYY-MM-DD
	MonthlyRent  int       `json:"monthly_rent"`
	NumBedrooms  int       `json:"num_bedrooms"`
	NumBathrooms int       `json:"num_bathrooms"`
	CreatedAt    time.Time `json:"created"`

	Owner   Account         `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	Images  []PropertyImage `json:"-" gorm:"foreignKey:PropertyID;references:ID"`
	Reviews []Review        `json:"-" gorm:"foreignKey:PropertyID;references:ID"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
