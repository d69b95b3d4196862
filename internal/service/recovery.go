package service

import (
	"errors"
	"fmt"
	"time"

	"stride/internal/recovery"
	"stride/internal/store"
)

// RecoveryService gathers daily inputs, runs the scorer, and persists
// the results. Scores are recomputed on demand; the table only ever
// holds one row per day.
type RecoveryService struct {
	store *store.DB
}

// NewRecoveryService creates a new recovery service
func NewRecoveryService(db *store.DB) *RecoveryService {
	return &RecoveryService{store: db}
}

// ComputeDaily scores a date (YYYY-MM-DD) from that day's wellness log
// and the trailing week of workouts, persists it, and returns it.
// Missing log values fall back to the scorer's defaults.
func (r *RecoveryService) ComputeDaily(date string) (*recovery.Score, error) {
	day, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}

	var sleep, soreness, energy *float64
	entry, err := r.store.GetDailyLog(date)
	switch {
	case err == nil:
		sleep, soreness, energy = entry.SleepHours, entry.Soreness, entry.Energy
	case errors.Is(err, store.ErrNoDailyLog):
		// Nothing logged for the day; defaults apply
	default:
		return nil, fmt.Errorf("loading daily log: %w", err)
	}

	windowStart := day.AddDate(0, 0, -(RecoveryWindowDays - 1))
	windowEnd := day.AddDate(0, 0, 1).Add(-time.Second)

	workouts, err := r.store.CountWorkoutsBetween(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("counting workouts: %w", err)
	}
	avgCalories, err := r.store.AvgCaloriesBetween(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("averaging calories: %w", err)
	}
	daysSinceRest, err := r.store.DaysSinceRest(date)
	if err != nil {
		return nil, fmt.Errorf("finding last rest day: %w", err)
	}

	factors := recovery.ResolveFactors(sleep, soreness, energy, workouts, daysSinceRest, avgCalories)
	score := recovery.Evaluate(factors)

	if err := r.store.UpsertRecoveryScore(&store.RecoveryScore{
		Date:             date,
		Score:            score.Value,
		SleepHours:       factors.SleepHours,
		Soreness:         factors.Soreness,
		Energy:           factors.Energy,
		WorkoutsThisWeek: factors.WorkoutsThisWeek,
		DaysSinceRest:    factors.DaysSinceRest,
		RecentIntensity:  factors.RecentIntensity,
		Recommendation:   score.Recommendation,
	}); err != nil {
		return nil, fmt.Errorf("saving score: %w", err)
	}

	return &score, nil
}

// RestAdvice recomputes the day's score, then weighs it against the
// trailing two weeks to decide whether a rest day is due.
func (r *RecoveryService) RestAdvice(date string) (*recovery.RestAdvice, error) {
	score, err := r.ComputeDaily(date)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}
	start := day.AddDate(0, 0, -(RestAdviceWindowDays - 1)).Format(store.DateLayout)

	history, err := r.store.GetRecoveryScoresBetween(start, date)
	if err != nil {
		return nil, fmt.Errorf("loading score history: %w", err)
	}
	recent := make([]int, len(history))
	for i, h := range history {
		recent[i] = h.Score
	}

	daysSinceRest, err := r.store.DaysSinceRest(date)
	if err != nil {
		return nil, fmt.Errorf("finding last rest day: %w", err)
	}
	restDays, err := r.store.CountRestDaysBetween(start, date)
	if err != nil {
		return nil, fmt.Errorf("counting rest days: %w", err)
	}

	advice := recovery.SuggestRestDay(recent, daysSinceRest, score.Factors.Soreness, restDays, score.Value)
	return &advice, nil
}

// SaveLog upserts a wellness log entry and recomputes that day's score
func (r *RecoveryService) SaveLog(entry *store.DailyLog) (*recovery.Score, error) {
	if _, err := time.Parse(store.DateLayout, entry.Date); err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", entry.Date, err)
	}
	if err := r.store.UpsertDailyLog(entry); err != nil {
		return nil, fmt.Errorf("saving daily log: %w", err)
	}
	return r.ComputeDaily(entry.Date)
}
