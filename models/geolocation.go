package models

import "time"

// Geolocation is an append-only position log entry. Rows are never
// updated or deleted after creation.
type Geolocation struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Lon       float64   `json:"lon"`
	Lat       float64   `json:"lat"`
	CreatedAt time.Time `json:"created_at"`
}
