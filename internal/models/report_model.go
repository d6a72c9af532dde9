package models

import "time"

type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PromptID   uint      `gorm:"not null;index" json:"prompt_id"`
	Prompt     *Prompt   `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE" json:"prompt,omitempty"`
	ReportedBy uint      `gorm:"not null;index" json:"reported_by"`
	Reporter   *User     `gorm:"foreignKey:ReportedBy;constraint:OnDelete:CASCADE" json:"reporter,omitempty"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
