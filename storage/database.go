package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

// InitializeDB opens the Postgres connection and runs migrations.
// TranslateError lets constraint violations surface as typed gorm errors
// instead of driver-specific ones.
func InitializeDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema, parents before children so foreign
// keys resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
