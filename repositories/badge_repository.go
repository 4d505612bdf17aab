package repositories

import (
	"commute4good-api/models"

	"gorm.io/gorm"
)

type BadgeRepository interface {
	GetByID(id uint) (*models.Badge, error)
	ListUserBadges(userID uint) ([]models.UsersBadge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetByID(id uint) (*models.Badge, error) {
	var badge models.Badge
	err := r.db.First(&badge, id).Error
	return &badge, err
}

func (r *badgeRepository) ListUserBadges(userID uint) ([]models.UsersBadge, error) {
	var userBadges []models.UsersBadge
	err := r.db.Where("user_id = ?", userID).Find(&userBadges).Error
	return userBadges, err
}
