package models

import "time"

// Immutable once created except for the read flag, so no UpdatedAt column.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
