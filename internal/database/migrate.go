package database

import (
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
)

// Migrate brings the schema up to date. The model set is small enough
// that gorm auto-migration covers both dialects.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Message{},
	)
}
