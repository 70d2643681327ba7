package model

import (
	"time"

	"gorm.io/gorm"
)

// Category groups news articles. Names are unique.
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	News []News `json:"-" gorm:"many2many:news_categories"`
}
