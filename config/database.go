package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Adosh74/ai-nutrition-app/models"
)

// InitDB opens the shared connection handle and migrates the schema. One
// handle serves every request for the process lifetime; CloseDB releases it
// on shutdown.
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.MealPlan{},
		&models.Meal{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
