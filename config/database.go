package config

import (
	"fmt"

	"restaurant-directory/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the configured database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// MigrateUsers creates the identity schema.
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Permission{},
		&models.Role{},
		&models.User{},
	)
}

// MigrateRestaurants creates the directory schema.
func MigrateRestaurants(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.City{},
		&models.Restaurant{},
		&models.MenuItem{},
	)
}
