package models

type Tag struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Popularity  int    `json:"popularity" gorm:"default:0"`
}
