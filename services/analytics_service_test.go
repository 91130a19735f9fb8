package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// onDay returns midnight of the Nth day after the test base date.
func onDay(n int) time.Time { return testBase.AddDate(0, 0, n) }

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func sleepLog(day int, hours float64) models.LogEntry {
	return models.LogEntry{Date: onDay(day), Sleep: fptr(hours)}
}

func exerciseLog(day int, typ string, minutes float64) models.LogEntry {
	return models.LogEntry{Date: onDay(day), Exercise: &models.Exercise{Type: typ, Duration: minutes}}
}

func waterLog(day int, glasses float64) models.LogEntry {
	return models.LogEntry{Date: onDay(day), Water: fptr(glasses)}
}

// ---------- Sleep analysis ----------

func TestComputeSleepAnalysis_TwoNights(t *testing.T) {
	logs := []models.LogEntry{sleepLog(0, 7), sleepLog(1, 9)}

	out := computeSleepAnalysis(logs)
	require.NotNil(t, out)
	assert.Equal(t, 8.0, out.AvgDuration)
	assert.Equal(t, 9.0, out.BestSleep)
	assert.Equal(t, 7.0, out.WorstSleep)
	assert.Equal(t, 2, out.TotalNights)
}

func TestComputeSleepAnalysis_EmptyReturnsNil(t *testing.T) {
	assert.Nil(t, computeSleepAnalysis(nil))
	// logs without a sleep group count for nothing here
	assert.Nil(t, computeSleepAnalysis([]models.LogEntry{waterLog(0, 3)}))
}

func TestComputeSleepAnalysis_ConsistencyBounds(t *testing.T) {
	// identical durations: zero deviation, perfect score
	identical := []models.LogEntry{sleepLog(0, 7.5), sleepLog(1, 7.5), sleepLog(2, 7.5)}
	out := computeSleepAnalysis(identical)
	require.NotNil(t, out)
	assert.Equal(t, 100.0, out.Consistency)

	// wildly uneven durations must clamp at zero, never go negative
	uneven := []models.LogEntry{sleepLog(0, 2), sleepLog(1, 12), sleepLog(2, 3), sleepLog(3, 13)}
	out = computeSleepAnalysis(uneven)
	require.NotNil(t, out)
	assert.GreaterOrEqual(t, out.Consistency, 0.0)
	assert.LessOrEqual(t, out.Consistency, 100.0)
}

func TestComputeSleepAnalysis_BedtimeWraparound(t *testing.T) {
	// 23:30 and 00:30 must average near midnight, not noon
	logs := []models.LogEntry{
		{Date: onDay(0), Sleep: fptr(8), SleepStart: "23:30"},
		{Date: onDay(1), Sleep: fptr(8), SleepStart: "00:30"},
	}
	out := computeSleepAnalysis(logs)
	require.NotNil(t, out)
	assert.Equal(t, "00:00", out.AvgBedtime)
}

func TestComputeSleepAnalysis_Idempotent(t *testing.T) {
	logs := []models.LogEntry{sleepLog(0, 6.5), sleepLog(1, 8), sleepLog(2, 7)}
	first := computeSleepAnalysis(logs)
	second := computeSleepAnalysis(logs)
	assert.Equal(t, first, second)
}

// ---------- Exercise breakdown ----------

func TestComputeExerciseBreakdown_TwoRuns(t *testing.T) {
	logs := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "run", 45),
	}

	out := computeExerciseBreakdown(logs, nil)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.TotalWorkouts)
	assert.Equal(t, 75.0, out.TotalDuration)
	assert.Equal(t, 38.0, out.AvgDuration) // 37.5 rounds up
	require.Len(t, out.Types, 1)
	assert.Equal(t, "run", out.Types[0].Name)
	assert.Equal(t, 2, out.Types[0].Count)
	assert.Equal(t, "running", out.Types[0].Icon)
}

func TestComputeExerciseBreakdown_IntensityDefaultsToMid(t *testing.T) {
	logs := []models.LogEntry{
		{Date: onDay(0), Exercise: &models.Exercise{Type: "run", Duration: 30, Intensity: models.IntensityLow}},
		{Date: onDay(1), Exercise: &models.Exercise{Type: "run", Duration: 30, Intensity: models.IntensityHigh}},
		{Date: onDay(2), Exercise: &models.Exercise{Type: "run", Duration: 30}}, // no intensity
	}

	out := computeExerciseBreakdown(logs, nil)
	require.NotNil(t, out)
	assert.Equal(t, 1, out.Intensities.Low)
	assert.Equal(t, 1, out.Intensities.Mid)
	assert.Equal(t, 1, out.Intensities.High)
}

func TestComputeExerciseBreakdown_SortedByCountDesc(t *testing.T) {
	logs := []models.LogEntry{
		exerciseLog(0, "yoga", 20),
		exerciseLog(1, "run", 30),
		exerciseLog(2, "run", 30),
		exerciseLog(3, "run", 30),
		exerciseLog(4, "yoga", 20),
		exerciseLog(5, "swim", 40),
	}

	out := computeExerciseBreakdown(logs, nil)
	require.NotNil(t, out)
	require.Len(t, out.Types, 3)
	assert.Equal(t, "run", out.Types[0].Name)
	assert.Equal(t, "yoga", out.Types[1].Name)
	assert.Equal(t, "swim", out.Types[2].Name)
}

func TestComputeExerciseBreakdown_EmptyReturnsNil(t *testing.T) {
	assert.Nil(t, computeExerciseBreakdown(nil, nil))
	assert.Nil(t, computeExerciseBreakdown([]models.LogEntry{sleepLog(0, 8)}, nil))
}

// ---------- Sum decomposition ----------

func TestWeekVector_SumDecomposition(t *testing.T) {
	logs := []models.LogEntry{
		waterLog(0, 3), waterLog(1, 5), waterLog(2, 2),
		exerciseLog(0, "run", 30), exerciseLog(2, "swim", 45),
	}
	firstHalf := []models.LogEntry{logs[0], logs[3]}             // day 0
	secondHalf := []models.LogEntry{logs[1], logs[2], logs[4]}   // days 1-2

	whole := computeWeekVector(logs)
	a := computeWeekVector(firstHalf)
	b := computeWeekVector(secondHalf)

	assert.Equal(t, whole.TotalWater, a.TotalWater+b.TotalWater)
	assert.Equal(t, whole.ExerciseMinutes, a.ExerciseMinutes+b.ExerciseMinutes)
	assert.Equal(t, whole.Workouts, a.Workouts+b.Workouts)
}

// ---------- Personal bests / streaks ----------

func TestComputePersonalBests(t *testing.T) {
	logs := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "run", 90),
		sleepLog(1, 9.5),
		sleepLog(2, 6),
		waterLog(2, 4),
		waterLog(2, 5), // same day, sums to 9
		waterLog(3, 6),
	}

	out := computePersonalBests(logs)
	assert.Equal(t, 90.0, out.LongestWorkout)
	assert.Equal(t, 9.5, out.BestSleep)
	assert.Equal(t, 9.0, out.MostWater)
	assert.Equal(t, 2, out.TotalWorkouts)
	assert.Equal(t, 2, out.LongestStreak)
}

func TestComputePersonalBests_Empty(t *testing.T) {
	out := computePersonalBests(nil)
	require.NotNil(t, out)
	assert.Equal(t, 0, out.TotalWorkouts)
	assert.Equal(t, 0, out.LongestStreak)
	assert.Equal(t, 0.0, out.MostWater)
}

func TestLongestExerciseStreak(t *testing.T) {
	consecutive := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "swim", 40),
		exerciseLog(2, "yoga", 20),
	}
	assert.Equal(t, 3, longestExerciseStreak(consecutive))

	// gap on day 2 splits the run
	withGap := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "run", 30),
		exerciseLog(3, "run", 30),
	}
	assert.Equal(t, 2, longestExerciseStreak(withGap))

	single := []models.LogEntry{exerciseLog(5, "run", 30)}
	assert.Equal(t, 1, longestExerciseStreak(single))

	assert.Equal(t, 0, longestExerciseStreak(nil))
}

func TestLongestExerciseStreak_DaysNotLogs(t *testing.T) {
	// two workouts on the same day are still one streak day
	logs := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(0, "swim", 40),
		exerciseLog(1, "run", 30),
	}
	assert.Equal(t, 2, longestExerciseStreak(logs))
}

// ---------- Monthly summary ----------

func TestComputeMonthlySummary_EmptyStillReturnsRecord(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := computeMonthlySummary(nil, monthStart)
	require.NotNil(t, out)
	assert.Equal(t, 0, out.DaysLogged)
	assert.Equal(t, 0, out.TotalWorkouts)
	assert.Equal(t, 30, out.DaysInMonth)
	assert.Empty(t, out.Highlights)
	assert.NotNil(t, out.Highlights) // [] in JSON, not null
}

func TestComputeMonthlySummary_Counts(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []models.LogEntry{
		exerciseLog(0, "run", 30),
		exerciseLog(1, "run", 45),
		sleepLog(0, 8),
		sleepLog(1, 8),
		{Date: onDay(2), Meal: &models.Meal{Type: models.MealLunch, Items: []string{"pasta"}}},
		{Date: onDay(2), Food: "apple"},
	}

	out := computeMonthlySummary(logs, monthStart)
	assert.Equal(t, 2, out.TotalWorkouts)
	assert.Equal(t, 75.0, out.TotalExerciseMinutes)
	assert.Equal(t, 8.0, out.AvgSleep)
	assert.Equal(t, 2, out.TotalMeals)
	assert.Equal(t, 3, out.DaysLogged)
	assert.Contains(t, out.Highlights, "Averaging 8+ hours of sleep")
}

func TestComputeMonthlySummary_WorkoutHighlight(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var logs []models.LogEntry
	for i := 0; i < 20; i++ {
		logs = append(logs, exerciseLog(i%28, "run", 30))
	}
	out := computeMonthlySummary(logs, monthStart)
	assert.Contains(t, out.Highlights, "20+ workouts this month")
}

// ---------- Time patterns ----------

func TestComputeTimePatterns(t *testing.T) {
	logs := []models.LogEntry{
		{Date: onDay(0), Exercise: &models.Exercise{Type: "run", Duration: 30, Time: "07:15"}},
		{Date: onDay(1), Exercise: &models.Exercise{Type: "run", Duration: 30, Time: "09:45"}},
		{Date: onDay(0), Meal: &models.Meal{Type: models.MealBreakfast, Time: "08:00"}},
		{Date: onDay(1), Meal: &models.Meal{Type: models.MealBreakfast, Time: "08:30"}},
	}

	out := computeTimePatterns(logs)
	require.NotNil(t, out.AvgExerciseHour)
	assert.Equal(t, 8.0, *out.AvgExerciseHour) // hours 7 and 9
	require.NotNil(t, out.AvgMealHours.Breakfast)
	assert.Equal(t, 8.0, *out.AvgMealHours.Breakfast)
	// zero samples yield null, never zero
	assert.Nil(t, out.AvgMealHours.Lunch)
	assert.Nil(t, out.AvgMealHours.Dinner)
}

// ---------- Nutrition / food frequency ----------

func TestComputeNutritionBreakdown(t *testing.T) {
	logs := []models.LogEntry{
		{Date: onDay(0), Food: "Grilled Chicken Breast"},
		{Date: onDay(1), Food: "chicken soup"},
		{Date: onDay(1), Meal: &models.Meal{Type: models.MealDinner, Items: []string{"rice", "Xyzzy"}}},
	}

	out := computeNutritionBreakdown(logs)
	require.NotEmpty(t, out)
	assert.Equal(t, CategoryCount{Name: "Protein", Count: 2}, out[0])
	assert.Contains(t, out, CategoryCount{Name: "Carbs", Count: 1})
	assert.Contains(t, out, CategoryCount{Name: "Other", Count: 1})
}

func TestComputeFoodFrequency_TopN(t *testing.T) {
	var logs []models.LogEntry
	for i := 0; i < 3; i++ {
		logs = append(logs, models.LogEntry{Date: onDay(i), Food: "Oatmeal"})
	}
	logs = append(logs, models.LogEntry{Date: onDay(0), Food: "banana"})
	logs = append(logs, models.LogEntry{Date: onDay(1), Food: "Banana "}) // normalizes

	out := computeFoodFrequency(logs, 10)
	require.Len(t, out, 2)
	assert.Equal(t, FoodCount{Name: "oatmeal", Count: 3}, out[0])
	assert.Equal(t, FoodCount{Name: "banana", Count: 2}, out[1])

	capped := computeFoodFrequency(logs, 1)
	assert.Len(t, capped, 1)
}

// ---------- Activity calendar ----------

func TestComputeActivityCalendar(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []models.LogEntry{
		sleepLog(0, 8),
		waterLog(0, 4),
		exerciseLog(0, "run", 30),
		sleepLog(4, 7),
	}

	out := computeActivityCalendar(logs, monthStart)
	require.Len(t, out, 30) // June
	assert.Equal(t, "2025-06-01", out[0].Date)
	assert.Equal(t, 3, out[0].Level)
	assert.Equal(t, 1, out[4].Level)
	assert.Equal(t, 0, out[1].Level)
}

func TestComputeActivityCalendar_LevelCapsAtFour(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	logs := []models.LogEntry{{
		Date:     onDay(0),
		Sleep:    fptr(8),
		Water:    fptr(4),
		Work:     fptr(8),
		Mood:     iptr(4),
		Food:     "apple",
		Exercise: &models.Exercise{Type: "run", Duration: 30},
	}}

	out := computeActivityCalendar(logs, monthStart)
	assert.Equal(t, 4, out[0].Level)
}

// ---------- clock helpers ----------

func TestParseClock(t *testing.T) {
	m, ok := parseClock("07:30")
	require.True(t, ok)
	assert.Equal(t, 450, m)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd"} {
		_, ok := parseClock(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:05", formatClock(5))
	assert.Equal(t, "23:59", formatClock(23*60+59))
}
