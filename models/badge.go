package models

import "time"

// Badge rows are seeded externally; this service only reads them.
type Badge struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	IconPath        string    `json:"icon_path"`
	LastEarnedAt    time.Time `json:"last_earned_at"`
	Popularity      int       `json:"popularity" gorm:"default:0"`
	MinInteractions int       `json:"min_interactions" gorm:"default:0"`
}
