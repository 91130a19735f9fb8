// services/insight_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// Insight is a short, ranked coaching observation. Title doubles as the
// stable key for client-side dismissal, so no two insights in one response
// share a title. Confidence (0-1) is emitted for the rules that have one;
// threshold filtering (default 0.5) is a display concern, not enforced here.
type Insight struct {
	Category   string  `json:"category"`
	Icon       string  `json:"icon"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Priority   int     `json:"priority"`
	Confidence float64 `json:"confidence,omitempty"`
}

type InsightService struct {
	logs *LogService
	cmp  *ComparisonService
}

func NewInsightService(db *gorm.DB) *InsightService {
	return &InsightService{logs: NewLogService(db), cmp: NewComparisonService(db)}
}

const insightWindowDays = 30

// GenerateInsights evaluates every rule over the trailing 30 days and returns
// the triggered ones sorted by priority descending. Rules are independent: no
// rule inspects another rule's result, and ties keep declaration order.
func (s *InsightService) GenerateInsights(ctx context.Context, userID uint) ([]Insight, error) {
	logs, err := s.logs.GetLogsSince(ctx, userID, insightWindowDays)
	if err != nil {
		return nil, err
	}
	week, err := s.cmp.CompareWeeks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return computeInsights(logs, week, time.Now()), nil
}

func computeInsights(logs []models.LogEntry, week *WeekComparison, now time.Time) []Insight {
	rules := []func([]models.LogEntry, *WeekComparison, time.Time) *Insight{
		sleepMoodRule,
		streakRule,
		exerciseDropRule,
		hydrationSlipRule,
		bedtimeDriftRule,
		sleepConsistencyRule,
	}

	out := []Insight{}
	for _, rule := range rules {
		if in := rule(logs, week, now); in != nil {
			out = append(out, *in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// sleepMoodRule correlates mood with sleep on days carrying both, split at
// 7 hours. Confidence grows with sample size.
func sleepMoodRule(logs []models.LogEntry, _ *WeekComparison, _ time.Time) *Insight {
	type daily struct {
		sleep   float64
		hasSlp  bool
		moodSum int
		moodN   int
	}
	byDay := map[time.Time]*daily{}
	for _, l := range logs {
		d := byDay[l.Day()]
		if d == nil {
			d = &daily{}
			byDay[l.Day()] = d
		}
		if l.Sleep != nil {
			d.sleep = *l.Sleep
			d.hasSlp = true
		}
		if l.Mood != nil {
			d.moodSum += *l.Mood
			d.moodN++
		}
	}

	var restedMoods, shortMoods []float64
	for _, d := range byDay {
		if !d.hasSlp || d.moodN == 0 {
			continue
		}
		mood := float64(d.moodSum) / float64(d.moodN)
		if d.sleep >= 7 {
			restedMoods = append(restedMoods, mood)
		} else {
			shortMoods = append(shortMoods, mood)
		}
	}
	if len(restedMoods) < 3 || len(shortMoods) < 3 {
		return nil
	}
	diff := mean(restedMoods) - mean(shortMoods)
	if diff < 0.5 {
		return nil
	}
	samples := len(restedMoods) + len(shortMoods)
	confidence := float64(samples) / 14.0
	if confidence > 1 {
		confidence = 1
	}
	return &Insight{
		Category:   "correlation",
		Icon:       "moon",
		Title:      "Sleep is lifting your mood",
		Message:    fmt.Sprintf("On nights with 7+ hours of sleep your mood averages %.1f points higher the next day.", diff),
		Priority:   9,
		Confidence: round2(confidence),
	}
}

// streakRule encourages an active run of consecutive exercise days.
func streakRule(logs []models.LogEntry, _ *WeekComparison, now time.Time) *Insight {
	streak := currentExerciseStreak(logs, now)
	if streak < 3 {
		return nil
	}
	return &Insight{
		Category: "exercise",
		Icon:     "fire",
		Title:    "Keep the streak alive",
		Message:  fmt.Sprintf("You've exercised %d days in a row. One more today keeps it going.", streak),
		Priority: 8,
	}
}

// exerciseDropRule flags a week-over-week workout dip, but only when last week
// had enough volume for the dip to mean something.
func exerciseDropRule(_ []models.LogEntry, week *WeekComparison, _ time.Time) *Insight {
	if week == nil || week.Changes.Workouts >= 0 || week.LastWeek.Workouts < 3 {
		return nil
	}
	return &Insight{
		Category: "exercise",
		Icon:     "dumbbell",
		Title:    "Workouts dipped this week",
		Message:  fmt.Sprintf("%d workouts so far versus %d last week. A short session still counts.", week.ThisWeek.Workouts, week.LastWeek.Workouts),
		Priority: 7,
	}
}

// hydrationSlipRule compares the last 7 days of water against the rest of the
// window.
func hydrationSlipRule(logs []models.LogEntry, _ *WeekComparison, now time.Time) *Insight {
	cutoff := dayStart(now).AddDate(0, 0, -6)
	var recent, baseline []float64
	for _, l := range logs {
		if l.Water == nil {
			continue
		}
		if !l.Day().Before(cutoff) {
			recent = append(recent, *l.Water)
		} else {
			baseline = append(baseline, *l.Water)
		}
	}
	if len(recent) < 3 || len(baseline) < 5 {
		return nil
	}
	recentAvg, baselineAvg := mean(recent), mean(baseline)
	if baselineAvg == 0 || recentAvg >= baselineAvg*0.75 {
		return nil
	}
	return &Insight{
		Category: "hydration",
		Icon:     "droplet",
		Title:    "Hydration is slipping",
		Message:  fmt.Sprintf("You're averaging %.1f glasses this week, down from your usual %.1f.", recentAvg, baselineAvg),
		Priority: 6,
	}
}

// bedtimeDriftRule warns when the recent average bedtime drifts later than the
// earlier part of the window. Bedtimes are compared on the 18:00-anchored
// scale, same as SleepAnalysis.
func bedtimeDriftRule(logs []models.LogEntry, _ *WeekComparison, now time.Time) *Insight {
	cutoff := dayStart(now).AddDate(0, 0, -6)
	var recent, baseline []float64
	for _, l := range logs {
		if l.Sleep == nil {
			continue
		}
		m, ok := parseClock(l.SleepStart)
		if !ok {
			continue
		}
		rel := float64((m - 18*60 + minutesPerDay) % minutesPerDay)
		if !l.Day().Before(cutoff) {
			recent = append(recent, rel)
		} else {
			baseline = append(baseline, rel)
		}
	}
	if len(recent) < 3 || len(baseline) < 5 {
		return nil
	}
	drift := mean(recent) - mean(baseline)
	if drift < 45 {
		return nil
	}
	return &Insight{
		Category: "sleep",
		Icon:     "clock",
		Title:    "Bedtime is drifting later",
		Message:  fmt.Sprintf("You're heading to bed about %d minutes later than usual this week.", int(drift)),
		Priority: 5,
	}
}

// sleepConsistencyRule praises a steady schedule.
func sleepConsistencyRule(logs []models.LogEntry, _ *WeekComparison, _ time.Time) *Insight {
	analysis := computeSleepAnalysis(logs)
	if analysis == nil || analysis.TotalNights < 5 || analysis.Consistency < 80 {
		return nil
	}
	return &Insight{
		Category: "sleep",
		Icon:     "star",
		Title:    "Rock-steady sleep schedule",
		Message:  fmt.Sprintf("Your sleep consistency score is %.0f/100 across %d nights. Routines like this pay off.", analysis.Consistency, analysis.TotalNights),
		Priority: 4,
	}
}

// currentExerciseStreak counts consecutive exercise days ending today or
// yesterday (a streak isn't broken until a full day is missed).
func currentExerciseStreak(logs []models.LogEntry, now time.Time) int {
	daySet := map[time.Time]bool{}
	for _, l := range logs {
		if l.Exercise != nil {
			daySet[l.Day()] = true
		}
	}
	today := dayStart(now)
	anchor := today
	if !daySet[anchor] {
		anchor = today.AddDate(0, 0, -1)
		if !daySet[anchor] {
			return 0
		}
	}
	streak := 0
	for d := anchor; daySet[d]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
