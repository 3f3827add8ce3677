package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllModels returns all models for migration
// Note: parents are listed before the tables that reference them
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&StorageArea{},
		&ItemGroup{},
		&StorageAreaGroup{},
		&Item{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// newID assigns a fresh UUID when the caller has not supplied one.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
