package model

import (
	"time"

	"gorm.io/gorm"
)

// News represents a news article. The thumbnail is stored as raw bytes and
// marshals to base64 in JSON.
type News struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Thumbnail []byte         `json:"thumbnail,omitempty" gorm:"type:longblob"`
	Published bool           `json:"published" gorm:"default:false;index"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author     *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Categories []Category `json:"categories" gorm:"many2many:news_categories"`
}
