package services

import (
	"errors"
	"time"

	"commute4good-api/models"
	"commute4good-api/repositories"

	"gorm.io/gorm"
)

type GeolocationService interface {
	RecordPosition(req models.GeolocationRequest) (*models.GeolocationResponse, error)
}

type geolocationService struct {
	userRepo        repositories.UserRepository
	geolocationRepo repositories.GeolocationRepository
}

func NewGeolocationService(userRepo repositories.UserRepository, geolocationRepo repositories.GeolocationRepository) GeolocationService {
	return &geolocationService{
		userRepo:        userRepo,
		geolocationRepo: geolocationRepo,
	}
}

// RecordPosition refreshes the user's cached position, then appends a row
// to the geolocation log. The two writes commit independently.
func (s *geolocationService) RecordPosition(req models.GeolocationRequest) (*models.GeolocationResponse, error) {
	user, err := s.userRepo.GetByID(*req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorForbidden{Message: "Not found"}
		}
		return nil, err
	}

	user.Lon = *req.Lon
	user.Lat = *req.Lat
	user.LastAccessedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	geolocation := &models.Geolocation{
		UserID:    user.ID,
		Lon:       *req.Lon,
		Lat:       *req.Lat,
		CreatedAt: time.Now(),
	}
	if err := s.geolocationRepo.Create(geolocation); err != nil {
		return nil, err
	}

	return &models.GeolocationResponse{
		ID:        geolocation.ID,
		UserID:    geolocation.UserID,
		Lon:       geolocation.Lon,
		Lat:       geolocation.Lat,
		CreatedAt: geolocation.CreatedAt,
	}, nil
}
