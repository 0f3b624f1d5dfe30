package models

import (
	"time"

	"gorm.io/gorm"
)

// StyleGeneration is one row of generation history. The stored seed and
// description are enough to reproduce the prompt exactly.
type StyleGeneration struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UUID        string         `gorm:"uniqueIndex;not null" json:"uuid"`
	Description string         `gorm:"type:text" json:"description"`
	Seed        uint64         `gorm:"not null" json:"seed"`
	Mode        string         `gorm:"not null;index" json:"mode"` // "max", "standard"
	Genre       string         `gorm:"index" json:"genre"`
	BPMMin      int            `json:"bpm_min"`
	BPMMax      int            `json:"bpm_max"`
	BPMTypical  int            `json:"bpm_typical"`
	Instruments string         `gorm:"type:text" json:"instruments"` // Comma-separated list
	StyleTags   string         `gorm:"type:text" json:"style_tags"`
	Recording   string         `gorm:"type:text" json:"recording"`
	Prompt      string         `gorm:"type:text;not null" json:"prompt"`
	Title       string         `json:"title,omitempty"`
	DurationMS  int64          `gorm:"not null" json:"duration_ms"`
	RequestID   string         `gorm:"index" json:"request_id"`
	UserID      string         `gorm:"index" json:"user_id"`
}
