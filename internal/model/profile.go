package model

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the one-to-one companion record created empty at registration.
type Profile struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Bio       string         `json:"bio,omitempty" gorm:"type:text"`
	AvatarURL string         `json:"avatar_url,omitempty" gorm:"size:512"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
