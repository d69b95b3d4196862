package store

import "fmt"

// ReplaceSplits stores the splits for a workout, replacing any
// existing rows.
func (db *DB) ReplaceSplits(workoutID int64, splits []Split) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM splits WHERE workout_id = ?", workoutID); err != nil {
		return fmt.Errorf("deleting existing splits: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO splits (workout_id, km, distance, seconds, pace, elevation_gain)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, s := range splits {
		_, err := stmt.Exec(workoutID, s.Km, s.Distance, s.Seconds, s.Pace, s.ElevationGain)
		if err != nil {
			return fmt.Errorf("inserting split %d: %w", s.Km, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetSplits retrieves the splits for a workout ordered by split number
func (db *DB) GetSplits(workoutID int64) ([]Split, error) {
	rows, err := db.Query(`
		SELECT workout_id, km, distance, seconds, pace, elevation_gain
		FROM splits
		WHERE workout_id = ?
		ORDER BY km
	`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var splits []Split
	for rows.Next() {
		var s Split
		if err := rows.Scan(&s.WorkoutID, &s.Km, &s.Distance, &s.Seconds, &s.Pace, &s.ElevationGain); err != nil {
			return nil, err
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}
