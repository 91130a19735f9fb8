package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BodyMeasurement is independent of the daily activity logs; it only feeds the
// BMI and weight-trend derivations.
type BodyMeasurement struct {
	gorm.Model
	UID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uid"`
	UserID uint      `gorm:"index;not null" json:"-"`
	Date   time.Time `gorm:"index;not null" json:"date"`

	Weight  *float64 `json:"weight,omitempty"`   // kg
	BodyFat *float64 `json:"body_fat,omitempty"` // %
	Waist   *float64 `json:"waist,omitempty"`    // cm
	Chest   *float64 `json:"chest,omitempty"`    // cm
	Arms    *float64 `json:"arms,omitempty"`     // cm
	Thighs  *float64 `json:"thighs,omitempty"`   // cm
	Neck    *float64 `json:"neck,omitempty"`     // cm
	Notes   string   `json:"notes,omitempty"`
}
