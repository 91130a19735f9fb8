package models

import "gorm.io/gorm"

// IconMapping is a per-user override for the built-in sport icon table.
// Absent mapping means fall back to the defaults.
type IconMapping struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"-"`
	Type        string `gorm:"size:20;not null" json:"type"` // "sport"
	Key         string `gorm:"size:64;not null" json:"key"`  // exercise type string
	Icon        string `gorm:"size:64;not null" json:"icon"`
	CustomLabel string `json:"custom_label,omitempty"`
}
