package service

import (
	"fmt"
	"time"

	"stride/internal/recovery"
	"stride/internal/store"
)

// RecoveryView holds everything the recovery screen shows
type RecoveryView struct {
	Score   *store.RecoveryScore
	Advice  recovery.RestAdvice
	History []store.RecoveryScore // oldest first
	Logs    []store.DailyLog      // oldest first
}

// GetRecoveryView computes today's score and advice and loads the
// recent history alongside the wellness logs that produced it.
func (s *QueryService) GetRecoveryView() (*RecoveryView, error) {
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

	start := now.AddDate(0, 0, -(ScoreHistoryDays - 1)).Format(store.DateLayout)

	history, err := s.store.GetRecoveryScoresBetween(start, today)
	if err != nil {
		return nil, fmt.Errorf("getting score history: %w", err)
	}

	logs, err := s.store.GetDailyLogsBetween(start, today)
	if err != nil {
		return nil, fmt.Errorf("getting daily logs: %w", err)
	}

	return &RecoveryView{
		Score:   score,
		Advice:  *advice,
		History: history,
		Logs:    logs,
	}, nil
}

// LogWellness saves a wellness entry and recomputes that day's score
func (s *QueryService) LogWellness(entry *store.DailyLog) (*recovery.Score, error) {
	return s.recovery.SaveLog(entry)
}
