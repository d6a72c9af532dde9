package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User carries the credential fields the auth subsystem depends on.
// ResetToken and ResetTokenExpiresAt are set and cleared together: both
// populated while a reset is pending, both NULL otherwise.
type User struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Email               string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password            string         `gorm:"size:255;not null" json:"-"`
	Role                string         `gorm:"size:20;default:'user'" json:"role"`
	ResetToken          *string        `gorm:"size:64;index" json:"-"`
	ResetTokenExpiresAt *time.Time     `json:"-"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
