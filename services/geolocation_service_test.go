package services

import (
	"testing"
	"time"

	"commute4good-api/models"
	"commute4good-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPosition(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	geolocationRepo := repositories.NewGeolocationRepository(db)
	service := NewGeolocationService(userRepo, geolocationRepo)

	before := time.Now().Add(-time.Hour)
	user := &models.User{Pseudo: "nomad", Lon: 1.0, Lat: 1.0, LastAccessedAt: before}
	require.NoError(t, db.Create(user).Error)

	resp, err := service.RecordPosition(models.GeolocationRequest{
		UserID: uintPtr(user.ID),
		Lon:    floatPtr(2.3522),
		Lat:    floatPtr(48.8566),
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, 2.3522, resp.Lon)
	assert.Equal(t, 48.8566, resp.Lat)
	assert.NotZero(t, resp.ID)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 2.3522, stored.Lon)
	assert.Equal(t, 48.8566, stored.Lat)
	assert.True(t, stored.LastAccessedAt.After(before))

	logs, err := geolocationRepo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, user.ID, logs[0].UserID)
	assert.Equal(t, 2.3522, logs[0].Lon)
	assert.Equal(t, 48.8566, logs[0].Lat)
}

func TestRecordPositionUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewGeolocationService(repositories.NewUserRepository(db), repositories.NewGeolocationRepository(db))

	_, err := service.RecordPosition(models.GeolocationRequest{
		UserID: uintPtr(42),
		Lon:    floatPtr(2.0),
		Lat:    floatPtr(48.0),
	})

	var forbidden models.ErrorForbidden
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Not found", forbidden.Message)

	var count int64
	require.NoError(t, db.Model(&models.Geolocation{}).Count(&count).Error)
	assert.Zero(t, count)
}
