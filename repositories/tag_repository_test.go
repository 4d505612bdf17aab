package repositories

import (
	"testing"

	"commute4good-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Geolocation{},
		&models.Tag{},
		&models.Badge{},
		&models.UsersTag{},
		&models.UsersBadge{},
	))

	return db
}

func TestGetByNameContains(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	require.NoError(t, db.Create(&models.Tag{Name: "running"}).Error)
	require.NoError(t, db.Create(&models.Tag{Name: "coffee"}).Error)

	tag, err := repo.GetByNameContains("ffe")
	require.NoError(t, err)
	assert.Equal(t, "coffee", tag.Name)

	tag, err = repo.GetByNameContains("running")
	require.NoError(t, err)
	assert.Equal(t, "running", tag.Name)

	_, err = repo.GetByNameContains("swimming")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
