package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types accepted in LogEntry.Meal.Type.
const (
	MealBreakfast      = "breakfast"
	MealMorningSnack   = "morningSnack"
	MealLunch          = "lunch"
	MealAfternoonSnack = "afternoonSnack"
	MealSnack          = "snack"
	MealDinner         = "dinner"
	MealNightSnack     = "nightSnack"
	MealDessert        = "dessert"
)

// Exercise intensities. An absent intensity is treated as mid by the analytics layer.
const (
	IntensityLow  = "low"
	IntensityMid  = "mid"
	IntensityHigh = "high"
)

type Meal struct {
	Type  string   `json:"type"`
	Time  string   `json:"time"` // HH:mm
	Items []string `json:"items"`
}

type WorkoutSet struct {
	Reps   int      `json:"reps"`
	Weight float64  `json:"weight"`
	RPE    *float64 `json:"rpe,omitempty"`
}

type Workout struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

type Exercise struct {
	Type      string    `json:"type"`
	Duration  float64   `json:"duration"` // minutes
	Distance  *float64  `json:"distance,omitempty"`
	Intensity string    `json:"intensity,omitempty"`
	Time      string    `json:"time,omitempty"` // HH:mm
	Workout   []Workout `json:"workout,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type CustomMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// LogEntry is one user action on one day. It is deliberately sparse: any subset
// of the optional groups may be populated and each group is independent of the
// others (a row with Sleep set says nothing about Exercise). Water is stored in
// glasses.
type LogEntry struct {
	gorm.Model
	UID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uid"`
	UserID uint      `gorm:"index;not null" json:"-"`
	Date   time.Time `gorm:"index;not null" json:"date"`

	Work       *float64 `json:"work,omitempty"`        // hours
	Sleep      *float64 `json:"sleep,omitempty"`       // hours
	SleepStart string   `json:"sleep_start,omitempty"` // HH:mm
	SleepEnd   string   `json:"sleep_end,omitempty"`   // HH:mm
	Water      *float64 `json:"water,omitempty"`       // glasses
	Mood       *int     `json:"mood,omitempty"`        // 1-5
	Food       string   `json:"food,omitempty"`        // free-text quick log

	Meal     *Meal          `gorm:"serializer:json" json:"meal,omitempty"`
	Exercise *Exercise      `gorm:"serializer:json" json:"exercise,omitempty"`
	Custom   []CustomMetric `gorm:"serializer:json" json:"custom,omitempty"`
}

// Day returns the entry's date truncated to local midnight, the key used for
// all daily bucketing.
func (e *LogEntry) Day() time.Time {
	t := e.Date
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
