package services

import (
	"errors"
	"time"

	"commute4good-api/config"
	"commute4good-api/models"
	"commute4good-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
	GetProfile(id uint) (*models.ProfileResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login matches pseudo and md5_hash exactly, touches last_accessed_at and
// issues a signed token alongside the profile fields.
func (s *authService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByCredentials(*req.Pseudo, *req.Md5Hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorForbidden{Message: "Not found"}
		}
		return nil, err
	}

	user.LastAccessedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		ProfileResponse: newProfileResponse(user),
		Token:           token,
	}, nil
}

// GetProfile resolves a token subject back to its profile fields.
func (s *authService) GetProfile(id uint) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Not found"}
		}
		return nil, err
	}

	profile := newProfileResponse(user)
	return &profile, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"pseudo":  user.Pseudo,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
