package services

import (
	"testing"
	"time"

	"commute4good-api/config"
	"commute4good-api/models"
	"commute4good-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginTouchesLastAccessedAt(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db))

	before := time.Now().Add(-time.Hour)
	user := &models.User{
		Firstname: "Ada", Pseudo: "ada",
		Md5Hash:        "0cc175b9c0f1b6a831c399e269772661",
		LastAccessedAt: before,
	}
	require.NoError(t, db.Create(user).Error)

	resp, err := service.Login(models.LoginRequest{
		Pseudo:  stringPtr("ada"),
		Md5Hash: stringPtr("0cc175b9c0f1b6a831c399e269772661"),
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "Ada", resp.Firstname)
	assert.True(t, resp.LastAccessedAt.After(before))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.LastAccessedAt.After(before))

	// The token must verify against the configured secret and carry the
	// user's identity.
	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.EqualValues(t, user.ID, claims["user_id"])
	assert.Equal(t, "ada", claims["pseudo"])
}

func TestLoginWrongHash(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db))

	before := time.Now().Add(-time.Hour)
	user := &models.User{Pseudo: "ada", Md5Hash: "0cc175b9c0f1b6a831c399e269772661", LastAccessedAt: before}
	require.NoError(t, db.Create(user).Error)

	_, err := service.Login(models.LoginRequest{
		Pseudo:  stringPtr("ada"),
		Md5Hash: stringPtr("deadbeefdeadbeefdeadbeefdeadbeef"),
	})

	var forbidden models.ErrorForbidden
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Not found", forbidden.Message)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.WithinDuration(t, before, stored.LastAccessedAt, time.Second)
}

func TestAuthGetProfile(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(repositories.NewUserRepository(db))

	user := &models.User{Pseudo: "ada", Firstname: "Ada"}
	require.NoError(t, db.Create(user).Error)

	profile, err := service.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.Firstname)

	_, err = service.GetProfile(999)
	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
}
