package models

import (
	"time"

	"gorm.io/datatypes"
)

// ValidCategories is the closed set a prompt may be filed under.
var ValidCategories = []string{"design", "animation", "coding", "writing", "other"}

func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Prompt is owned by the user that created it. UserID is set once at
// creation and never reassigned.
type Prompt struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Title       string         `gorm:"size:200;not null;index" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Tags        datatypes.JSON `gorm:"type:json" json:"tags"`
	Category    string         `gorm:"size:20;not null" json:"category"`
	Likes       int            `gorm:"default:0" json:"likes"`
	Dislikes    int            `gorm:"default:0" json:"dislikes"`
	Votes       int            `gorm:"default:0" json:"votes"`
	IsReported  bool           `gorm:"default:false" json:"is_reported"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
