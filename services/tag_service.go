package services

import (
	"errors"
	"time"

	"commute4good-api/models"
	"commute4good-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	AttachTag(req models.AttachTagRequest) (*models.AttachTagResponse, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// AttachTag links the user to a tag, creating the tag first when no
// existing tag name contains the requested name as a substring.
func (s *tagService) AttachTag(req models.AttachTagRequest) (*models.AttachTagResponse, error) {
	tag, err := s.tagRepo.GetByNameContains(*req.Name)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		tag = &models.Tag{Name: *req.Name}
		if err := s.tagRepo.Create(tag); err != nil {
			return nil, err
		}
	}

	// TODO: check for an existing user/tag pair before inserting.
	userTag := &models.UsersTag{
		UserID:  *req.UserID,
		TagID:   tag.ID,
		AddedAt: time.Now(),
	}
	if err := s.tagRepo.CreateUserTag(userTag); err != nil {
		return nil, err
	}

	return &models.AttachTagResponse{
		ID:          userTag.ID,
		UserID:      userTag.UserID,
		TagID:       userTag.TagID,
		Name:        tag.Name,
		Description: tag.Description,
		Popularity:  tag.Popularity,
		AddedAt:     userTag.AddedAt,
	}, nil
}
