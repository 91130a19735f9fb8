// services/comparison_service.go
package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ComparisonService struct {
	logs *LogService
}

func NewComparisonService(db *gorm.DB) *ComparisonService {
	return &ComparisonService{logs: NewLogService(db)}
}

// WeekVector is the aggregate compared between periods.
type WeekVector struct {
	Workouts        int     `json:"workouts"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	AvgSleep        float64 `json:"avg_sleep"`
	TotalWater      float64 `json:"total_water"` // glasses
	Meals           int     `json:"meals"`
}

type WeekComparison struct {
	ThisWeek WeekVector `json:"this_week"`
	LastWeek WeekVector `json:"last_week"`
	// Changes is thisWeek - lastWeek per field, signed. Which direction is
	// "good" depends on the metric and is the caller's call.
	Changes WeekVector `json:"changes"`
}

// CompareWeeks computes the same aggregate vector for the current Monday-start
// week (inclusive of today) and the week before it, plus the per-field delta.
func (s *ComparisonService) CompareWeeks(ctx context.Context, userID uint) (*WeekComparison, error) {
	return s.compareWeeksAt(ctx, userID, time.Now())
}

func (s *ComparisonService) compareWeeksAt(ctx context.Context, userID uint, now time.Time) (*WeekComparison, error) {
	thisStart := startOfWeek(now)
	lastStart := thisStart.AddDate(0, 0, -7)

	thisLogs, err := s.logs.GetLogs(ctx, userID, thisStart, now)
	if err != nil {
		return nil, err
	}
	lastLogs, err := s.logs.GetLogs(ctx, userID, lastStart, thisStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	out := &WeekComparison{
		ThisWeek: computeWeekVector(thisLogs),
		LastWeek: computeWeekVector(lastLogs),
	}
	out.Changes = WeekVector{
		Workouts:        out.ThisWeek.Workouts - out.LastWeek.Workouts,
		ExerciseMinutes: round2(out.ThisWeek.ExerciseMinutes - out.LastWeek.ExerciseMinutes),
		AvgSleep:        round2(out.ThisWeek.AvgSleep - out.LastWeek.AvgSleep),
		TotalWater:      round2(out.ThisWeek.TotalWater - out.LastWeek.TotalWater),
		Meals:           out.ThisWeek.Meals - out.LastWeek.Meals,
	}
	return out, nil
}

func computeWeekVector(logs []models.LogEntry) WeekVector {
	out := WeekVector{}
	var sleeps []float64
	for _, l := range logs {
		if l.Exercise != nil {
			out.Workouts++
			out.ExerciseMinutes += l.Exercise.Duration
		}
		if l.Sleep != nil {
			sleeps = append(sleeps, *l.Sleep)
		}
		if l.Water != nil {
			out.TotalWater += *l.Water
		}
		if l.Meal != nil || l.Food != "" {
			out.Meals++
		}
	}
	if len(sleeps) > 0 {
		out.AvgSleep = round2(mean(sleeps))
	}
	out.ExerciseMinutes = round2(out.ExerciseMinutes)
	out.TotalWater = round2(out.TotalWater)
	return out
}

// PercentChange guards the degenerate cases so no NaN or Inf ever reaches a
// rendering layer: a zero baseline with a zero current value is "no change",
// a zero baseline with a nonzero current value is reported as +100%.
func PercentChange(previous, current float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return round2((current - previous) / previous * 100)
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1)) // Monday
}
