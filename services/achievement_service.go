// services/achievement_service.go
package services

import (
	"context"
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type Achievement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Desc string `json:"desc"`
}

type AchievementService struct {
	db   *gorm.DB
	logs *LogService
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db, logs: NewLogService(db)}
}

// Achievements evaluates the fixed rule list against the user's full history.
// Badges are derived on every call, never stored: deleting the qualifying log
// un-unlocks the badge. Each rule is independent and idempotent.
func (s *AchievementService) Achievements(ctx context.Context, userID uint) ([]Achievement, error) {
	logs, err := s.logs.GetAllLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return computeAchievements(logs), nil
}

func computeAchievements(logs []models.LogEntry) []Achievement {
	totalWorkouts := 0
	earlyWorkout := false
	lateWorkout := false
	longSleep := false
	waterByDay := map[time.Time]float64{}
	for _, l := range logs {
		if l.Exercise != nil {
			totalWorkouts++
			if m, ok := parseClock(l.Exercise.Time); ok {
				if m < 8*60 {
					earlyWorkout = true
				}
				if m >= 21*60 {
					lateWorkout = true
				}
			}
		}
		if l.Sleep != nil && *l.Sleep >= 8 {
			longSleep = true
		}
		if l.Water != nil {
			waterByDay[l.Day()] += *l.Water
		}
	}
	hydrationDay := false
	for _, total := range waterByDay {
		if total >= 8 {
			hydrationDay = true
			break
		}
	}
	streak := longestExerciseStreak(logs)

	out := []Achievement{}
	if totalWorkouts >= 1 {
		out = append(out, Achievement{ID: "first_workout", Name: "First Steps", Icon: "medal", Desc: "Logged your first workout"})
	}
	if totalWorkouts >= 10 {
		out = append(out, Achievement{ID: "workouts_10", Name: "Regular", Icon: "dumbbell", Desc: "10 workouts logged"})
	}
	if totalWorkouts >= 50 {
		out = append(out, Achievement{ID: "workouts_50", Name: "Dedicated", Icon: "fire", Desc: "50 workouts logged"})
	}
	if totalWorkouts >= 100 {
		out = append(out, Achievement{ID: "workouts_100", Name: "Centurion", Icon: "trophy", Desc: "100 workouts logged"})
	}
	if streak >= 7 {
		out = append(out, Achievement{ID: "streak_7", Name: "Week Warrior", Icon: "calendar", Desc: "Exercised 7 days in a row"})
	}
	if earlyWorkout {
		out = append(out, Achievement{ID: "early_bird", Name: "Early Bird", Icon: "sunrise", Desc: "Worked out before 8 AM"})
	}
	if lateWorkout {
		out = append(out, Achievement{ID: "night_owl", Name: "Night Owl", Icon: "moon", Desc: "Worked out after 9 PM"})
	}
	if longSleep {
		out = append(out, Achievement{ID: "sleep_8h", Name: "Well Rested", Icon: "bed", Desc: "Slept 8+ hours in one night"})
	}
	if hydrationDay {
		out = append(out, Achievement{ID: "water_8", Name: "Hydration Hero", Icon: "droplet", Desc: "Drank 8+ glasses in one day"})
	}
	return out
}

// ---------- Predictions ----------

type WorkoutPrediction struct {
	Current   int  `json:"current"`
	Target    int  `json:"target"`
	Predicted int  `json:"predicted"`
	OnTrack   bool `json:"on_track"`
}

type SleepPrediction struct {
	CurrentAvg float64 `json:"current_avg"`
	Target     float64 `json:"target"`
	Predicted  float64 `json:"predicted"`
	OnTrack    bool    `json:"on_track"`
}

type Predictions struct {
	DaysRemaining int               `json:"days_remaining"`
	Workouts      WorkoutPrediction `json:"workouts"`
	Sleep         SleepPrediction   `json:"sleep"`
}

// Defaults applied when the user has not set goals.
const (
	defaultMonthlyWorkouts = 20
	defaultSleepHours      = 8.0
)

// PredictMonthEnd linearly extrapolates the partial month: predicted =
// current * daysInMonth / daysElapsed. On the first day of the month the
// extrapolation degenerates, so predicted falls back to current.
func (s *AchievementService) PredictMonthEnd(ctx context.Context, userID uint) (*Predictions, error) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	logs, err := s.logs.GetLogs(ctx, userID, first, now)
	if err != nil {
		return nil, err
	}
	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return computePredictions(logs, goal, now), nil
}

func (s *AchievementService) goalSnapshot(ctx context.Context, userID uint) (*models.Goal, error) {
	var g models.Goal
	if userID == 0 {
		return &g, nil
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Goal{}, nil
		}
		return nil, err
	}
	return &g, nil
}

func computePredictions(logs []models.LogEntry, goal *models.Goal, now time.Time) *Predictions {
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, -1).Day()
	daysElapsed := now.Day()

	workoutTarget := goal.MonthlyWorkouts
	if workoutTarget <= 0 {
		workoutTarget = defaultMonthlyWorkouts
	}
	sleepTarget := goal.SleepHours
	if sleepTarget <= 0 {
		sleepTarget = defaultSleepHours
	}

	workouts := 0
	var sleeps []float64
	for _, l := range logs {
		if l.Exercise != nil {
			workouts++
		}
		if l.Sleep != nil {
			sleeps = append(sleeps, *l.Sleep)
		}
	}

	predictedWorkouts := workouts
	if daysElapsed > 0 {
		predictedWorkouts = int(math.Round(float64(workouts) * float64(daysInMonth) / float64(daysElapsed)))
	}

	avgSleep := 0.0
	if len(sleeps) > 0 {
		avgSleep = round1(mean(sleeps))
	}

	return &Predictions{
		DaysRemaining: daysInMonth - daysElapsed,
		Workouts: WorkoutPrediction{
			Current:   workouts,
			Target:    workoutTarget,
			Predicted: predictedWorkouts,
			OnTrack:   predictedWorkouts >= workoutTarget,
		},
		Sleep: SleepPrediction{
			CurrentAvg: avgSleep,
			Target:     sleepTarget,
			Predicted:  avgSleep, // an average doesn't extrapolate; it carries forward
			OnTrack:    avgSleep >= sleepTarget,
		},
	}
}
