package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrWorkoutNotFound is returned when a workout doesn't exist
var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `id, external_id, name, activity_type, source, started_at, ended_at,
		weight_kg, distance, duration_seconds, moving_seconds, avg_pace,
		max_speed_kmh, elevation_gain, elevation_loss, calories,
		pause_count, paused_seconds, track_polyline, sample_count, analyzed`

// UpsertWorkout inserts or updates a workout keyed by its external ID
// and returns the row ID. Re-upserting an existing workout refreshes
// the summary fields and clears the analyzed flag so the next sync
// recomputes its stats.
func (db *DB) UpsertWorkout(w *Workout) (int64, error) {
	_, err := db.Exec(`
		INSERT INTO workouts (
			external_id, name, activity_type, source, started_at, ended_at,
			weight_kg, sample_count, analyzed, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, CURRENT_TIMESTAMP)
		ON CONFLICT(external_id) DO UPDATE SET
			name = excluded.name,
			activity_type = excluded.activity_type,
			source = excluded.source,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			weight_kg = excluded.weight_kg,
			sample_count = excluded.sample_count,
			analyzed = 0,
			updated_at = CURRENT_TIMESTAMP
	`,
		w.ExternalID, w.Name, w.ActivityType, w.Source,
		w.StartedAt.UTC().Format(time.RFC3339), w.EndedAt.UTC().Format(time.RFC3339),
		w.WeightKg, w.SampleCount,
	)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := db.QueryRow(`SELECT id FROM workouts WHERE external_id = ?`, w.ExternalID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// SaveWorkoutStats writes the analysis results for a workout
func (db *DB) SaveWorkoutStats(id int64, w *Workout) error {
	result, err := db.Exec(`
		UPDATE workouts
		SET distance = ?, duration_seconds = ?, moving_seconds = ?, avg_pace = ?,
			max_speed_kmh = ?, elevation_gain = ?, elevation_loss = ?, calories = ?,
			pause_count = ?, paused_seconds = ?, track_polyline = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		w.Distance, w.Duration, w.MovingSeconds, w.AvgPace,
		w.MaxSpeedKmh, w.ElevationGain, w.ElevationLoss, w.Calories,
		w.PauseCount, w.PausedSeconds, w.TrackPolyline,
		id,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// MarkAnalyzed flags a workout's stats as current
func (db *DB) MarkAnalyzed(id int64) error {
	result, err := db.Exec(`
		UPDATE workouts
		SET analyzed = 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// GetWorkout retrieves a workout by ID
func (db *DB) GetWorkout(id int64) (*Workout, error) {
	row := db.QueryRow(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE id = ?
	`, id)

	return scanWorkout(row)
}

// ListWorkouts returns workouts ordered by start time descending
func (db *DB) ListWorkouts(limit, offset int) ([]Workout, error) {
	rows, err := db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		ORDER BY started_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListWorkoutsBetween returns workouts that started within [start, end]
// ordered by start time ascending
func (db *DB) ListWorkoutsBetween(start, end time.Time) ([]Workout, error) {
	rows, err := db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE started_at >= ? AND started_at <= ?
		ORDER BY started_at ASC
	`, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkoutsNeedingAnalysis returns workouts whose stats are stale
func (db *DB) GetWorkoutsNeedingAnalysis() ([]Workout, error) {
	rows, err := db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE analyzed = 0
		ORDER BY started_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// CountWorkouts returns the total number of workouts
func (db *DB) CountWorkouts() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&count)
	return count, err
}

// CountWorkoutsBetween counts workouts that started within [start, end]
func (db *DB) CountWorkoutsBetween(start, end time.Time) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM workouts
		WHERE started_at >= ? AND started_at <= ?
	`, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)).Scan(&count)
	return count, err
}

// AvgCaloriesBetween returns the average calorie burn of analyzed
// workouts started within [start, end], or 0 when there are none.
func (db *DB) AvgCaloriesBetween(start, end time.Time) (float64, error) {
	var avg sql.NullFloat64
	err := db.QueryRow(`
		SELECT AVG(calories) FROM workouts
		WHERE analyzed = 1 AND started_at >= ? AND started_at <= ?
	`, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339)).Scan(&avg)
	if err != nil {
		return 0, err
	}
	if !avg.Valid {
		return 0, nil
	}
	return avg.Float64, nil
}

// scanWorkout scans a single workout from a row
func scanWorkout(row *sql.Row) (*Workout, error) {
	var w Workout
	var startedAt, endedAt string
	var analyzed int

	err := row.Scan(
		&w.ID, &w.ExternalID, &w.Name, &w.ActivityType, &w.Source, &startedAt, &endedAt,
		&w.WeightKg, &w.Distance, &w.Duration, &w.MovingSeconds, &w.AvgPace,
		&w.MaxSpeedKmh, &w.ElevationGain, &w.ElevationLoss, &w.Calories,
		&w.PauseCount, &w.PausedSeconds, &w.TrackPolyline, &w.SampleCount, &analyzed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := parseWorkoutTimes(&w, startedAt, endedAt); err != nil {
		return nil, err
	}
	w.Analyzed = analyzed == 1

	return &w, nil
}

// scanWorkouts scans multiple workouts from rows
func scanWorkouts(rows *sql.Rows) ([]Workout, error) {
	var workouts []Workout

	for rows.Next() {
		var w Workout
		var startedAt, endedAt string
		var analyzed int

		err := rows.Scan(
			&w.ID, &w.ExternalID, &w.Name, &w.ActivityType, &w.Source, &startedAt, &endedAt,
			&w.WeightKg, &w.Distance, &w.Duration, &w.MovingSeconds, &w.AvgPace,
			&w.MaxSpeedKmh, &w.ElevationGain, &w.ElevationLoss, &w.Calories,
			&w.PauseCount, &w.PausedSeconds, &w.TrackPolyline, &w.SampleCount, &analyzed,
		)
		if err != nil {
			return nil, err
		}

		if err := parseWorkoutTimes(&w, startedAt, endedAt); err != nil {
			return nil, err
		}
		w.Analyzed = analyzed == 1

		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func parseWorkoutTimes(w *Workout, startedAt, endedAt string) error {
	var err error
	w.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return fmt.Errorf("parsing started_at %q: %w", startedAt, err)
	}
	w.EndedAt, err = time.Parse(time.RFC3339, endedAt)
	if err != nil {
		return fmt.Errorf("parsing ended_at %q: %w", endedAt, err)
	}
	return nil
}
