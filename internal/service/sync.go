package service

import (
	"context"
	"fmt"
	"time"

	"stride/internal/config"
	"stride/internal/route"
	"stride/internal/store"
	"stride/internal/wearable"
)

// SyncService orchestrates pulling data from the paired device and
// keeping derived stats current
type SyncService struct {
	device      *wearable.Device
	store       *store.DB
	recovery    *RecoveryService
	weightKg    float64
	historyDays int
}

// NewSyncService creates a new sync service
func NewSyncService(device *wearable.Device, db *store.DB, cfg *config.Config) *SyncService {
	historyDays := cfg.Sync.HistoryDays
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}
	return &SyncService{
		device:      device,
		store:       db,
		recovery:    NewRecoveryService(db),
		weightKg:    cfg.Athlete.WeightKg,
		historyDays: historyDays,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase          string // "sessions", "analysis", "recovery"
	Total          int
	Completed      int
	CurrentWorkout string
	Error          error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	SessionsFetched    int
	WorkoutsStored     int
	SleepRecordsStored int
	WorkoutsAnalyzed   int
	ScoresComputed     int
	Errors             []error
}

// SyncAll performs a full sync: sessions -> analysis -> recovery
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	// Phase 1: Pull sessions and sleep from the device
	if err := s.syncSessions(ctx, progress, result); err != nil {
		return result, fmt.Errorf("syncing sessions: %w", err)
	}

	// Phase 2: Analyze workouts whose stats are stale
	if err := s.analyzeWorkouts(ctx, progress, result); err != nil {
		return result, fmt.Errorf("analyzing workouts: %w", err)
	}

	// Phase 3: Recompute recovery scores over the sync window
	if err := s.recomputeRecovery(ctx, progress, result); err != nil {
		return result, fmt.Errorf("recomputing recovery: %w", err)
	}

	return result, nil
}

// syncSessions fetches new sessions and sleep readings from the device
// and stores them
func (s *SyncService) syncSessions(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	after, err := s.store.GetSyncTime(store.SyncKeyLastSessionSync)
	if err != nil {
		return fmt.Errorf("reading session cursor: %w", err)
	}

	sessions := s.device.Sessions(after, s.historyDays)
	result.SessionsFetched = len(sessions)

	if progress != nil {
		progress <- SyncProgress{Phase: "sessions", Total: len(sessions)}
	}

	for i, sess := range sessions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:          "sessions",
				Total:          len(sessions),
				Completed:      i,
				CurrentWorkout: sess.Name,
			}
		}

		id, err := s.store.UpsertWorkout(convertSession(sess, s.weightKg))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing session %s: %w", sess.ID, err))
			continue
		}
		if err := s.store.SaveTrackPoints(id, samplesToPoints(id, sess.Samples)); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("saving track for %s: %w", sess.ID, err))
			continue
		}
		result.WorkoutsStored++
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "sessions", Total: len(sessions), Completed: len(sessions)}
	}

	// Sleep readings ride along with the session sync. A logged sleep
	// value always wins over the device reading.
	sleepAfter, err := s.store.GetSyncTime(store.SyncKeyLastSleepSync)
	if err != nil {
		return fmt.Errorf("reading sleep cursor: %w", err)
	}
	for _, rec := range s.device.SleepRecords(sleepAfter, s.historyDays) {
		if err := s.store.SetSleepIfUnset(rec.Date, rec.Hours); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing sleep for %s: %w", rec.Date, err))
			continue
		}
		result.SleepRecordsStored++
	}

	now := time.Now()
	if err := s.store.SetSyncTime(store.SyncKeyLastSessionSync, now); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("saving session cursor: %w", err))
	}
	if err := s.store.SetSyncTime(store.SyncKeyLastSleepSync, now); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("saving sleep cursor: %w", err))
	}

	return nil
}

// analyzeWorkouts recomputes stats for workouts flagged as stale
func (s *SyncService) analyzeWorkouts(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	workouts, err := s.store.GetWorkoutsNeedingAnalysis()
	if err != nil {
		return fmt.Errorf("getting workouts needing analysis: %w", err)
	}

	if len(workouts) == 0 {
		return nil
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "analysis", Total: len(workouts)}
	}

	for i, w := range workouts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if progress != nil {
			progress <- SyncProgress{
				Phase:          "analysis",
				Total:          len(workouts),
				Completed:      i,
				CurrentWorkout: w.Name,
			}
		}

		if err := analyzeStoredWorkout(s.store, &w); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("analyzing %s: %w", w.Name, err))
			continue
		}
		result.WorkoutsAnalyzed++
	}

	if progress != nil {
		progress <- SyncProgress{Phase: "analysis", Total: len(workouts), Completed: len(workouts)}
	}

	return nil
}

// recomputeRecovery rescores every day in the sync window, oldest
// first so trailing-window factors see the days before them
func (s *SyncService) recomputeRecovery(ctx context.Context, progress chan<- SyncProgress, result *SyncResult) error {
	today := time.Now()
	total := s.historyDays

	if progress != nil {
		progress <- SyncProgress{Phase: "recovery", Total: total}
	}

	for i := total - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		date := today.AddDate(0, 0, -i).Format(store.DateLayout)
		if _, err := s.recovery.ComputeDaily(date); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("scoring %s: %w", date, err))
			continue
		}
		result.ScoresComputed++

		if progress != nil {
			progress <- SyncProgress{Phase: "recovery", Total: total, Completed: total - i}
		}
	}

	return nil
}

// analyzeStoredWorkout recomputes a workout's derived stats from its
// stored track points and persists them
func analyzeStoredWorkout(db *store.DB, w *store.Workout) error {
	points, err := db.GetTrackPoints(w.ID)
	if err != nil {
		return fmt.Errorf("loading track points: %w", err)
	}
	samples := pointsToSamples(points)

	stats := route.Analyze(samples, w.StartedAt.UnixMilli(), w.EndedAt.UnixMilli(), w.WeightKg, w.ActivityType)
	pauses := route.DetectPauses(samples, route.DefaultMinMovingSpeed)

	var pausedSeconds float64
	for _, p := range pauses {
		pausedSeconds += p.Duration
	}

	update := &store.Workout{
		Distance:      stats.Distance,
		Duration:      stats.Duration,
		MovingSeconds: route.MovingTime(samples, route.DefaultMinMovingSpeed),
		AvgPace:       stats.AveragePace,
		MaxSpeedKmh:   stats.MaxSpeedKmh,
		ElevationGain: stats.ElevationGain,
		ElevationLoss: stats.ElevationLoss,
		Calories:      stats.Calories,
		PauseCount:    len(pauses),
		PausedSeconds: pausedSeconds,
		TrackPolyline: route.EncodeTrack(samples),
	}
	if err := db.SaveWorkoutStats(w.ID, update); err != nil {
		return fmt.Errorf("saving stats: %w", err)
	}
	if err := db.ReplaceSplits(w.ID, convertSplits(w.ID, stats.Splits)); err != nil {
		return fmt.Errorf("saving splits: %w", err)
	}
	if err := db.MarkAnalyzed(w.ID); err != nil {
		return fmt.Errorf("marking analyzed: %w", err)
	}

	return nil
}

// convertSession converts a device session to a store workout
func convertSession(sess wearable.Session, weightKg float64) *store.Workout {
	return &store.Workout{
		ExternalID:   sess.ID,
		Name:         sess.Name,
		ActivityType: sess.ActivityType,
		Source:       "wearable",
		StartedAt:    sess.StartTime,
		EndedAt:      sess.EndTime,
		WeightKg:     weightKg,
		SampleCount:  len(sess.Samples),
	}
}

// samplesToPoints converts analyzer samples to track point rows
func samplesToPoints(workoutID int64, samples []route.Sample) []store.TrackPoint {
	points := make([]store.TrackPoint, len(samples))
	for i, s := range samples {
		points[i] = store.TrackPoint{
			WorkoutID:   workoutID,
			Seq:         i,
			Lat:         s.Lat,
			Lng:         s.Lng,
			Altitude:    s.Altitude,
			Speed:       s.Speed,
			Accuracy:    s.Accuracy,
			TimestampMs: s.Timestamp,
		}
	}
	return points
}

// pointsToSamples converts stored track points back to analyzer samples
func pointsToSamples(points []store.TrackPoint) []route.Sample {
	samples := make([]route.Sample, len(points))
	for i, p := range points {
		samples[i] = route.Sample{
			Lat:       p.Lat,
			Lng:       p.Lng,
			Altitude:  p.Altitude,
			Speed:     p.Speed,
			Accuracy:  p.Accuracy,
			Timestamp: p.TimestampMs,
		}
	}
	return samples
}

// convertSplits converts analyzer splits to split rows
func convertSplits(workoutID int64, splits []route.Split) []store.Split {
	rows := make([]store.Split, len(splits))
	for i, sp := range splits {
		rows[i] = store.Split{
			WorkoutID:     workoutID,
			Km:            sp.Km,
			Distance:      sp.Distance,
			Seconds:       sp.Seconds,
			Pace:          sp.Pace,
			ElevationGain: sp.ElevationGain,
		}
	}
	return rows
}
