package models

import "time"

type User struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Firstname      string    `json:"firstname"`
	Lastname       string    `json:"lastname"`
	Pseudo         string    `json:"pseudo" gorm:"index"`
	Email          string    `json:"email"`
	Md5Hash        string    `json:"-" gorm:"column:md5_hash"`
	PhotoPath      string    `json:"photo_path"`
	Lon            float64   `json:"lon"`
	Lat            float64   `json:"lat"`
	Connected      bool      `json:"connected"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}
