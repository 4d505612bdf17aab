package config

import (
	"fmt"
	"log"
	"os"

	"commute4good-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema. The
// returned handle is pooled; every query runs on its own connection and
// commits independently.
func InitDB() *gorm.DB {
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Geolocation{},
		&models.Tag{},
		&models.Badge{},
		&models.UsersTag{},
		&models.UsersBadge{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}
