package repositories

import (
	"commute4good-api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByID(id uint) (*models.Tag, error)
	GetByNameContains(name string) (*models.Tag, error)
	CreateUserTag(userTag *models.UsersTag) error
	ListUserTags(userID uint) ([]models.UsersTag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

// GetByNameContains returns the first tag whose name contains the given
// substring. Any partial match counts; exact equality is not required.
func (r *tagRepository) GetByNameContains(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name LIKE ?", "%"+name+"%").First(&tag).Error
	return &tag, err
}

func (r *tagRepository) CreateUserTag(userTag *models.UsersTag) error {
	return r.db.Create(userTag).Error
}

func (r *tagRepository) ListUserTags(userID uint) ([]models.UsersTag, error) {
	var userTags []models.UsersTag
	err := r.db.Where("user_id = ?", userID).Find(&userTags).Error
	return userTags, err
}
