package service

import (
	"fmt"
	"time"

	"stride/internal/recovery"
	"stride/internal/store"
)

// DashboardData holds everything the dashboard screen shows
type DashboardData struct {
	Score  *store.RecoveryScore
	Advice recovery.RestAdvice

	// This week, Monday to now
	WeekWorkouts int
	WeekDistance float64 // meters
	WeekSeconds  float64
	WeekCalories int

	RecentWorkouts []store.Workout

	// Daily recovery scores, oldest first
	ScoreHistory []float64
	ScoreDates   []string

	// Weekly distance buckets in km, oldest first
	WeeklyDistance []float64
	WeeklyLabels   []string
}

// GetDashboardData computes today's recovery state and activity
// summaries. The score and rest advice are recomputed on every call so
// the dashboard never shows a stale recommendation.
func (s *QueryService) GetDashboardData() (*DashboardData, error) {
	now := time.Now()
	today := now.Format(store.DateLayout)

	advice, err := s.recovery.RestAdvice(today)
	if err != nil {
		return nil, fmt.Errorf("getting rest advice: %w", err)
	}

	score, err := s.store.GetRecoveryScore(today)
	if err != nil {
		return nil, fmt.Errorf("getting recovery score: %w", err)
	}

	data := &DashboardData{
		Score:  score,
		Advice: *advice,
	}

	if err := s.fillWeekStats(data, now); err != nil {
		return nil, err
	}

	data.RecentWorkouts, err = s.store.ListWorkouts(RecentWorkoutsLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("listing recent workouts: %w", err)
	}

	if err := s.fillScoreHistory(data, now); err != nil {
		return nil, err
	}
	if err := s.fillWeeklyDistance(data, now); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *QueryService) fillWeekStats(data *DashboardData, now time.Time) error {
	monday := getMonday(now)

	workouts, err := s.store.ListWorkoutsBetween(monday, now)
	if err != nil {
		return fmt.Errorf("listing week workouts: %w", err)
	}

	data.WeekWorkouts = len(workouts)
	for _, w := range workouts {
		data.WeekDistance += w.Distance
		data.WeekSeconds += w.EndedAt.Sub(w.StartedAt).Seconds()
		data.WeekCalories += w.Calories
	}
	return nil
}

func (s *QueryService) fillScoreHistory(data *DashboardData, now time.Time) error {
	start := now.AddDate(0, 0, -(ScoreHistoryDays - 1)).Format(store.DateLayout)
	end := now.Format(store.DateLayout)

	scores, err := s.store.GetRecoveryScoresBetween(start, end)
	if err != nil {
		return fmt.Errorf("getting score history: %w", err)
	}

	data.ScoreHistory = make([]float64, 0, len(scores))
	data.ScoreDates = make([]string, 0, len(scores))
	for _, sc := range scores {
		data.ScoreHistory = append(data.ScoreHistory, float64(sc.Score))
		data.ScoreDates = append(data.ScoreDates, sc.Date)
	}
	return nil
}

func (s *QueryService) fillWeeklyDistance(data *DashboardData, now time.Time) error {
	mondays := make([]time.Time, ChartWeeks)
	thisMonday := getMonday(now)
	for i := range mondays {
		mondays[i] = thisMonday.AddDate(0, 0, -7*(ChartWeeks-1-i))
	}

	workouts, err := s.store.ListWorkoutsBetween(mondays[0], now)
	if err != nil {
		return fmt.Errorf("listing chart workouts: %w", err)
	}

	data.WeeklyDistance = make([]float64, ChartWeeks)
	data.WeeklyLabels = make([]string, ChartWeeks)
	for i, monday := range mondays {
		data.WeeklyLabels[i] = monday.Format("Jan 2")
	}
	for _, w := range workouts {
		if idx := findWeekIndex(w.StartedAt, mondays); idx >= 0 {
			data.WeeklyDistance[idx] += w.Distance / 1000
		}
	}
	return nil
}

// getMonday returns midnight on the Monday of t's week
func getMonday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week it ends
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// findWeekIndex returns the index of the week bucket containing t, or
// -1 when t predates the first bucket. mondays must be ascending.
func findWeekIndex(t time.Time, mondays []time.Time) int {
	for i := len(mondays) - 1; i >= 0; i-- {
		if !t.Before(mondays[i]) {
			return i
		}
	}
	return -1
}
