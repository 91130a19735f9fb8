package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodSleepLog(day int, hours float64, mood int) models.LogEntry {
	return models.LogEntry{Date: onDay(day), Sleep: fptr(hours), Mood: iptr(mood)}
}

func TestSleepMoodRule_Triggers(t *testing.T) {
	var logs []models.LogEntry
	// rested days with high mood, short days with low mood
	for i := 0; i < 4; i++ {
		logs = append(logs, moodSleepLog(i, 8, 5))
	}
	for i := 4; i < 8; i++ {
		logs = append(logs, moodSleepLog(i, 5.5, 3))
	}

	in := sleepMoodRule(logs, nil, onDay(8))
	require.NotNil(t, in)
	assert.Equal(t, "correlation", in.Category)
	assert.Equal(t, 9, in.Priority)
	assert.Greater(t, in.Confidence, 0.0)
	assert.LessOrEqual(t, in.Confidence, 1.0)
}

func TestSleepMoodRule_NeedsSamplesOnBothSides(t *testing.T) {
	var logs []models.LogEntry
	for i := 0; i < 10; i++ {
		logs = append(logs, moodSleepLog(i, 8, 5)) // rested only
	}
	assert.Nil(t, sleepMoodRule(logs, nil, onDay(10)))
}

func TestSleepMoodRule_NoEffectNoInsight(t *testing.T) {
	var logs []models.LogEntry
	// mood identical regardless of sleep
	for i := 0; i < 4; i++ {
		logs = append(logs, moodSleepLog(i, 8, 4))
	}
	for i := 4; i < 8; i++ {
		logs = append(logs, moodSleepLog(i, 5, 4))
	}
	assert.Nil(t, sleepMoodRule(logs, nil, onDay(8)))
}

func TestStreakRule(t *testing.T) {
	now := onDay(3)
	logs := []models.LogEntry{
		exerciseLog(1, "run", 30),
		exerciseLog(2, "run", 30),
		exerciseLog(3, "run", 30),
	}
	in := streakRule(logs, nil, now)
	require.NotNil(t, in)
	assert.Equal(t, "Keep the streak alive", in.Title)

	// two days is below the bar
	assert.Nil(t, streakRule(logs[1:], nil, now))
}

func TestCurrentExerciseStreak_SurvivesUntilAFullMissedDay(t *testing.T) {
	logs := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "run", 30),
	}
	// nothing logged yet today: streak holds via yesterday
	assert.Equal(t, 2, currentExerciseStreak(logs, onDay(2)))
	// a full missed day breaks it
	assert.Equal(t, 0, currentExerciseStreak(logs, onDay(3)))
}

func TestExerciseDropRule(t *testing.T) {
	week := &WeekComparison{
		ThisWeek: WeekVector{Workouts: 1},
		LastWeek: WeekVector{Workouts: 5},
		Changes:  WeekVector{Workouts: -4},
	}
	in := exerciseDropRule(nil, week, time.Now())
	require.NotNil(t, in)
	assert.Equal(t, "Workouts dipped this week", in.Title)

	// a dip from a near-idle week is noise, not an insight
	quiet := &WeekComparison{
		ThisWeek: WeekVector{Workouts: 0},
		LastWeek: WeekVector{Workouts: 1},
		Changes:  WeekVector{Workouts: -1},
	}
	assert.Nil(t, exerciseDropRule(nil, quiet, time.Now()))
}

func TestHydrationSlipRule(t *testing.T) {
	now := onDay(29)
	var logs []models.LogEntry
	for i := 0; i < 20; i++ {
		logs = append(logs, waterLog(i, 8)) // baseline
	}
	for i := 23; i < 30; i++ {
		logs = append(logs, waterLog(i, 3)) // recent slump
	}

	in := hydrationSlipRule(logs, nil, now)
	require.NotNil(t, in)
	assert.Equal(t, "Hydration is slipping", in.Title)
}

func TestBedtimeDriftRule(t *testing.T) {
	now := onDay(29)
	var logs []models.LogEntry
	for i := 0; i < 20; i++ {
		logs = append(logs, models.LogEntry{Date: onDay(i), Sleep: fptr(8), SleepStart: "22:30"})
	}
	for i := 23; i < 30; i++ {
		logs = append(logs, models.LogEntry{Date: onDay(i), Sleep: fptr(7), SleepStart: "23:45"})
	}

	in := bedtimeDriftRule(logs, nil, now)
	require.NotNil(t, in)
	assert.Equal(t, "Bedtime is drifting later", in.Title)
}

func TestComputeInsights_SortedAndUniqueTitles(t *testing.T) {
	now := onDay(29)
	var logs []models.LogEntry
	// steady sleep for the consistency rule, plus an active streak
	for i := 0; i < 30; i++ {
		logs = append(logs, sleepLog(i, 7.5))
	}
	for i := 26; i < 30; i++ {
		logs = append(logs, exerciseLog(i, "run", 30))
	}
	week := &WeekComparison{}

	out := computeInsights(logs, week, now)
	require.NotEmpty(t, out)

	seen := map[string]bool{}
	for i, in := range out {
		assert.False(t, seen[in.Title], "duplicate title %q", in.Title)
		seen[in.Title] = true
		if i > 0 {
			assert.GreaterOrEqual(t, out[i-1].Priority, in.Priority)
		}
	}
}

func TestComputeInsights_EmptyLogs(t *testing.T) {
	out := computeInsights(nil, &WeekComparison{}, time.Now())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
