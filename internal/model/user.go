package model

import (
	"time"

	"gorm.io/gorm"
)

// Role restricts what a user may do. There are exactly two roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered account. The password digest is never serialized.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Role      Role           `json:"role" gorm:"type:varchar(10);not null;default:'USER';index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	News    []News   `json:"-" gorm:"foreignKey:AuthorID"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
