package repositories

import (
	"commute4good-api/models"

	"gorm.io/gorm"
)

type GeolocationRepository interface {
	Create(geolocation *models.Geolocation) error
	ListByUser(userID uint) ([]models.Geolocation, error)
}

type geolocationRepository struct {
	db *gorm.DB
}

func NewGeolocationRepository(db *gorm.DB) GeolocationRepository {
	return &geolocationRepository{db: db}
}

func (r *geolocationRepository) Create(geolocation *models.Geolocation) error {
	return r.db.Create(geolocation).Error
}

func (r *geolocationRepository) ListByUser(userID uint) ([]models.Geolocation, error) {
	var geolocations []models.Geolocation
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&geolocations).Error
	return geolocations, err
}
