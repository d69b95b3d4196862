package service

import (
	"stride/internal/store"
)

// QueryService reads view data for the TUI screens
type QueryService struct {
	store    *store.DB
	recovery *RecoveryService
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB) *QueryService {
	return &QueryService{
		store:    db,
		recovery: NewRecoveryService(db),
	}
}

// GetWorkoutsList returns a page of workouts, newest first
func (s *QueryService) GetWorkoutsList(limit, offset int) ([]store.Workout, error) {
	return s.store.ListWorkouts(limit, offset)
}

// GetTotalWorkoutCount returns the total number of stored workouts
func (s *QueryService) GetTotalWorkoutCount() (int, error) {
	return s.store.CountWorkouts()
}
