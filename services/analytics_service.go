// services/analytics_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// AnalyticsService turns a user's raw log history into derived statistics.
// Every method refetches and recomputes from scratch; results always reflect
// the current log set for the requested range. The compute* functions are pure
// over an in-memory log slice.
type AnalyticsService struct {
	db   *gorm.DB
	logs *LogService
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, logs: NewLogService(db)}
}

// ---------- Nutrition breakdown ----------

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NutritionBreakdown categorizes everything eaten over the trailing days:
// meal items and free-text food logs alike. Sorted by count descending.
func (s *AnalyticsService) NutritionBreakdown(ctx context.Context, userID uint, days int) ([]CategoryCount, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return computeNutritionBreakdown(logs), nil
}

func computeNutritionBreakdown(logs []models.LogEntry) []CategoryCount {
	counts := map[string]int{}
	for _, l := range logs {
		if l.Food != "" {
			counts[CategorizeFood(l.Food)]++
		}
		if l.Meal != nil {
			for _, item := range l.Meal.Items {
				counts[CategorizeFood(item)]++
			}
		}
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ---------- Sleep analysis ----------

type SleepAnalysis struct {
	AvgDuration float64 `json:"avg_duration"`
	Consistency float64 `json:"consistency"` // 0-100
	BestSleep   float64 `json:"best_sleep"`
	WorstSleep  float64 `json:"worst_sleep"`
	AvgBedtime  string  `json:"avg_bedtime,omitempty"` // HH:mm
	TotalNights int     `json:"total_nights"`
}

// SleepAnalysis summarizes logged nights over the trailing days. Returns nil
// when no sleep was logged in range; "no sleep logs yet" is an expected state.
func (s *AnalyticsService) SleepAnalysis(ctx context.Context, userID uint, days int) (*SleepAnalysis, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return computeSleepAnalysis(logs), nil
}

func computeSleepAnalysis(logs []models.LogEntry) *SleepAnalysis {
	var durations []float64
	var bedtimes []int // minutes after 18:00
	for _, l := range logs {
		if l.Sleep == nil {
			continue
		}
		durations = append(durations, *l.Sleep)
		if m, ok := parseClock(l.SleepStart); ok {
			// Shift the reference to 18:00 so post-midnight bedtimes average
			// correctly (23:30 and 00:30 must come out near midnight, not noon).
			bedtimes = append(bedtimes, (m-18*60+minutesPerDay)%minutesPerDay)
		}
	}
	if len(durations) == 0 {
		return nil
	}

	avg := mean(durations)
	std := popStdDev(durations, avg)
	out := &SleepAnalysis{
		AvgDuration: round2(avg),
		Consistency: clamp(0, 100, round2(100-std*20)),
		BestSleep:   maxOf(durations),
		WorstSleep:  minOf(durations),
		TotalNights: len(durations),
	}
	if len(bedtimes) > 0 {
		sum := 0
		for _, b := range bedtimes {
			sum += b
		}
		avgRel := sum / len(bedtimes)
		abs := (avgRel + 18*60) % minutesPerDay
		out.AvgBedtime = formatClock(abs)
	}
	return out
}

// ---------- Exercise breakdown ----------

type ExerciseTypeCount struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type IntensityTally struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

type ExerciseBreakdown struct {
	Types         []ExerciseTypeCount `json:"types"`
	Intensities   IntensityTally      `json:"intensities"`
	TotalWorkouts int                 `json:"total_workouts"`
	TotalDuration float64             `json:"total_duration"` // minutes
	AvgDuration   float64             `json:"avg_duration"`   // minutes, rounded
}

// ExerciseBreakdown groups workouts by type over the trailing days. Returns
// nil when no exercise was logged in range. Icons honor the user's custom
// sport mappings.
func (s *AnalyticsService) ExerciseBreakdown(ctx context.Context, userID uint, days int) (*ExerciseBreakdown, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	var mappings []models.IconMapping
	if userID != 0 {
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND type = ?", userID, "sport").
			Find(&mappings).Error; err != nil {
			return nil, err
		}
	}
	return computeExerciseBreakdown(logs, mappings), nil
}

func computeExerciseBreakdown(logs []models.LogEntry, mappings []models.IconMapping) *ExerciseBreakdown {
	out := &ExerciseBreakdown{}
	typeCounts := map[string]int{}
	for _, l := range logs {
		if l.Exercise == nil {
			continue
		}
		out.TotalWorkouts++
		out.TotalDuration += l.Exercise.Duration
		typeCounts[l.Exercise.Type]++

		switch l.Exercise.Intensity {
		case models.IntensityLow:
			out.Intensities.Low++
		case models.IntensityHigh:
			out.Intensities.High++
		default: // absent defaults to mid
			out.Intensities.Mid++
		}
	}
	if out.TotalWorkouts == 0 {
		return nil
	}

	for name, n := range typeCounts {
		out.Types = append(out.Types, ExerciseTypeCount{
			Name:  name,
			Icon:  ResolveExerciseIcon(name, mappings),
			Count: n,
		})
	}
	sort.SliceStable(out.Types, func(i, j int) bool {
		if out.Types[i].Count != out.Types[j].Count {
			return out.Types[i].Count > out.Types[j].Count
		}
		return out.Types[i].Name < out.Types[j].Name
	})

	out.AvgDuration = math.Round(out.TotalDuration / float64(out.TotalWorkouts))
	out.TotalDuration = round2(out.TotalDuration)
	return out
}

// ---------- Time patterns ----------

type TimePatterns struct {
	AvgExerciseHour *float64 `json:"avg_exercise_hour"`
	AvgMealHours    struct {
		Breakfast *float64 `json:"breakfast"`
		Lunch     *float64 `json:"lunch"`
		Dinner    *float64 `json:"dinner"`
	} `json:"avg_meal_hours"`
}

// TimePatterns averages the hour-of-day per category. A category with zero
// samples yields null, never zero (0 would mean midnight).
func (s *AnalyticsService) TimePatterns(ctx context.Context, userID uint, days int) (*TimePatterns, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return computeTimePatterns(logs), nil
}

func computeTimePatterns(logs []models.LogEntry) *TimePatterns {
	var exerciseHours []float64
	mealHours := map[string][]float64{}
	for _, l := range logs {
		if l.Exercise != nil {
			if m, ok := parseClock(l.Exercise.Time); ok {
				exerciseHours = append(exerciseHours, float64(m/60))
			}
		}
		if l.Meal != nil {
			if m, ok := parseClock(l.Meal.Time); ok {
				mealHours[l.Meal.Type] = append(mealHours[l.Meal.Type], float64(m/60))
			}
		}
	}

	out := &TimePatterns{}
	out.AvgExerciseHour = avgOrNil(exerciseHours)
	out.AvgMealHours.Breakfast = avgOrNil(mealHours[models.MealBreakfast])
	out.AvgMealHours.Lunch = avgOrNil(mealHours[models.MealLunch])
	out.AvgMealHours.Dinner = avgOrNil(mealHours[models.MealDinner])
	return out
}

func avgOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := round2(mean(values))
	return &v
}

// ---------- Personal bests ----------

type PersonalBests struct {
	LongestWorkout float64 `json:"longest_workout"` // minutes
	BestSleep      float64 `json:"best_sleep"`      // hours
	MostWater      float64 `json:"most_water"`      // glasses in one day
	LongestStreak  int     `json:"longest_streak"`  // consecutive exercise days
	TotalWorkouts  int     `json:"total_workouts"`
}

// PersonalBests scans the full history. Always returns a record; a user with
// no logs gets zeros.
func (s *AnalyticsService) PersonalBests(ctx context.Context, userID uint) (*PersonalBests, error) {
	logs, err := s.logs.GetAllLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return computePersonalBests(logs), nil
}

func computePersonalBests(logs []models.LogEntry) *PersonalBests {
	out := &PersonalBests{}
	waterByDay := map[time.Time]float64{}
	for _, l := range logs {
		if l.Exercise != nil {
			out.TotalWorkouts++
			if l.Exercise.Duration > out.LongestWorkout {
				out.LongestWorkout = l.Exercise.Duration
			}
		}
		if l.Sleep != nil && *l.Sleep > out.BestSleep {
			out.BestSleep = *l.Sleep
		}
		if l.Water != nil {
			waterByDay[l.Day()] += *l.Water
		}
	}
	for _, total := range waterByDay {
		if total > out.MostWater {
			out.MostWater = total
		}
	}
	out.LongestStreak = longestExerciseStreak(logs)
	return out
}

// longestExerciseStreak counts the longest run of consecutive calendar days
// with at least one exercise log, regardless of type or duration. Days, not
// logs: two workouts on one day still count as one streak day.
func longestExerciseStreak(logs []models.LogEntry) int {
	daySet := map[time.Time]bool{}
	for _, l := range logs {
		if l.Exercise != nil {
			daySet[l.Day()] = true
		}
	}
	if len(daySet) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// ---------- Monthly summary ----------

type MonthlySummary struct {
	TotalWorkouts        int      `json:"total_workouts"`
	TotalExerciseMinutes float64  `json:"total_exercise_minutes"`
	AvgSleep             float64  `json:"avg_sleep"`
	TotalMeals           int      `json:"total_meals"`
	DaysLogged           int      `json:"days_logged"`
	DaysInMonth          int      `json:"days_in_month"`
	Highlights           []string `json:"highlights"`
}

// MonthlySummary covers the current calendar month. Unlike SleepAnalysis it
// always returns a record, even with zero logs — an empty month is still a
// month the dashboard renders.
func (s *AnalyticsService) MonthlySummary(ctx context.Context, userID uint) (*MonthlySummary, error) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	logs, err := s.logs.GetLogs(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	return computeMonthlySummary(logs, first), nil
}

func computeMonthlySummary(logs []models.LogEntry, monthStart time.Time) *MonthlySummary {
	out := &MonthlySummary{
		Highlights:  []string{},
		DaysInMonth: monthStart.AddDate(0, 1, -1).Day(),
	}

	var sleeps []float64
	daysLogged := map[time.Time]bool{}
	for _, l := range logs {
		daysLogged[l.Day()] = true
		if l.Exercise != nil {
			out.TotalWorkouts++
			out.TotalExerciseMinutes += l.Exercise.Duration
		}
		if l.Sleep != nil {
			sleeps = append(sleeps, *l.Sleep)
		}
		if l.Meal != nil || l.Food != "" {
			out.TotalMeals++
		}
	}
	out.DaysLogged = len(daysLogged)
	if len(sleeps) > 0 {
		out.AvgSleep = round2(mean(sleeps))
	}

	if out.TotalWorkouts >= 20 {
		out.Highlights = append(out.Highlights, "20+ workouts this month")
	}
	if out.TotalExerciseMinutes >= 1000 {
		out.Highlights = append(out.Highlights, "1000+ exercise minutes")
	}
	if out.AvgSleep >= 8 {
		out.Highlights = append(out.Highlights, "Averaging 8+ hours of sleep")
	}
	if out.DaysLogged == out.DaysInMonth {
		out.Highlights = append(out.Highlights, "Logged every single day")
	}
	return out
}

// ---------- Food frequency ----------

type FoodCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FoodFrequency returns the ten most-logged food names over the trailing days.
func (s *AnalyticsService) FoodFrequency(ctx context.Context, userID uint, days int) ([]FoodCount, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return computeFoodFrequency(logs, 10), nil
}

func computeFoodFrequency(logs []models.LogEntry, limit int) []FoodCount {
	counts := map[string]int{}
	for _, l := range logs {
		if l.Food != "" {
			counts[normalizeFoodName(l.Food)]++
		}
		if l.Meal != nil {
			for _, item := range l.Meal.Items {
				counts[normalizeFoodName(item)]++
			}
		}
	}
	out := make([]FoodCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, FoodCount{Name: name, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ---------- Activity calendar ----------

type CalendarDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Day   int    `json:"day"`
	Level int    `json:"level"` // 0-4
}

// ActivityCalendar returns one record per calendar day of the given month.
// Level counts how many independent groups (sleep, water, meal, exercise,
// mood, work, custom) were logged that day, capped at 4 for the heatmap scale.
func (s *AnalyticsService) ActivityCalendar(ctx context.Context, userID uint, month, year int) ([]CalendarDay, error) {
	loc := time.Now().Location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	logs, err := s.logs.GetLogs(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	return computeActivityCalendar(logs, first), nil
}

func computeActivityCalendar(logs []models.LogEntry, monthStart time.Time) []CalendarDay {
	type groupSet struct {
		sleep, water, meal, exercise, mood, work, custom bool
	}
	byDay := map[time.Time]*groupSet{}
	for _, l := range logs {
		g := byDay[l.Day()]
		if g == nil {
			g = &groupSet{}
			byDay[l.Day()] = g
		}
		g.sleep = g.sleep || l.Sleep != nil
		g.water = g.water || l.Water != nil
		g.meal = g.meal || l.Meal != nil || l.Food != ""
		g.exercise = g.exercise || l.Exercise != nil
		g.mood = g.mood || l.Mood != nil
		g.work = g.work || l.Work != nil
		g.custom = g.custom || len(l.Custom) > 0
	}

	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	out := make([]CalendarDay, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		d := monthStart.AddDate(0, 0, i)
		level := 0
		if g := byDay[d]; g != nil {
			for _, set := range []bool{g.sleep, g.water, g.meal, g.exercise, g.mood, g.work, g.custom} {
				if set {
					level++
				}
			}
			if level > 4 {
				level = 4
			}
		}
		out = append(out, CalendarDay{
			Date:  d.Format("2006-01-02"),
			Day:   d.Day(),
			Level: level,
		})
	}
	return out
}

// ---------- internals ----------

const minutesPerDay = 24 * 60

// parseClock parses "HH:mm" into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popStdDev is the population standard deviation around a precomputed mean.
func popStdDev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func maxOf(values []float64) float64 {
	out := values[0]
	for _, v := range values {
		if v > out {
			out = v
		}
	}
	return out
}

func minOf(values []float64) float64 {
	out := values[0]
	for _, v := range values {
		if v < out {
			out = v
		}
	}
	return out
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
