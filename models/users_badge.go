package models

// UsersBadge links a user to an earned badge. Read-only here; rows are
// written by the badge-awarding pipeline.
type UsersBadge struct {
	UserID  uint `json:"user_id" gorm:"primaryKey"`
	BadgeID uint `json:"badge_id" gorm:"primaryKey"`
}
