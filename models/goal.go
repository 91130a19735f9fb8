package models

import "gorm.io/gorm"

// Goal holds each user's targets consumed by predictions and summary highlights.
type Goal struct {
	gorm.Model
	UserID          uint    `gorm:"index;not null" json:"-"`
	MonthlyWorkouts int     `json:"monthly_workouts"` // e.g. 20
	SleepHours      float64 `json:"sleep_hours"`      // e.g. 8 per night
	WaterGlasses    float64 `json:"water_glasses"`    // e.g. 8 per day
}
