package models

import "time"

// Required request fields are pointers so that presence is what gets
// validated: an explicit zero or empty string still counts as supplied.

type GeolocationRequest struct {
	UserID *uint    `json:"user_id" validate:"required"`
	Lon    *float64 `json:"lon" validate:"required"`
	Lat    *float64 `json:"lat" validate:"required"`
}

type GeolocationResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Lon       float64   `json:"lon"`
	Lat       float64   `json:"lat"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID             uint      `json:"id"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Pseudo         string    `json:"pseudo"`
	Email          string    `json:"email"`
	PhotoPath      string    `json:"photo_path"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Lon            float64   `json:"lon"`
	Lat            float64   `json:"lat"`
	Connected      bool      `json:"connected"`
}

type FullProfileResponse struct {
	ProfileResponse
	Badges []BadgeSummary `json:"badges"`
	Tags   []TagSummary   `json:"tags"`
}

// BadgeSummary.CreatedAt carries the badge icon path, not a timestamp.
// Deployed clients read it that way.
type BadgeSummary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	IconPath        string    `json:"icon_path"`
	CreatedAt       string    `json:"created_at"`
	LastEarnedAt    time.Time `json:"last_earned_at"`
	Popularity      int       `json:"popularity"`
	MinInteractions int       `json:"min_interactions"`
}

type TagSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Popularity  int    `json:"popularity"`
}

type AttachTagRequest struct {
	UserID *uint   `json:"user_id" validate:"required"`
	Name   *string `json:"name" validate:"required"`
}

type AttachTagResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	TagID       uint      `json:"tag_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Popularity  int       `json:"popularity"`
	AddedAt     time.Time `json:"added_at"`
}

type UpdateUserRequest struct {
	UserID    *uint  `json:"user_id" validate:"required"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Pseudo    string `json:"pseudo"`
	Email     string `json:"email"`
	Md5Hash   string `json:"md5_hash"`
	PhotoPath string `json:"photo_path"`
}

type LoginRequest struct {
	Pseudo  *string `json:"pseudo" validate:"required"`
	Md5Hash *string `json:"md5_hash" validate:"required"`
}

type LoginResponse struct {
	ProfileResponse
	Token string `json:"token"`
}
