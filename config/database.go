package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SickWater/clothing-store/models"
)

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductSize{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
