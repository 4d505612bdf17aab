package models

import "time"

// UsersTag links a user to a tag. Nothing deduplicates these rows,
// so the same pair can appear more than once.
type UsersTag struct {
	ID      uint      `json:"id" gorm:"primarykey"`
	UserID  uint      `json:"user_id" gorm:"not null;index"`
	TagID   uint      `json:"tag_id" gorm:"not null"`
	AddedAt time.Time `json:"added_at"`
}
