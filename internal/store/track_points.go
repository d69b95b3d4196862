package store

import "fmt"

// SaveTrackPoints saves the GPS track for a workout, replacing any
// existing points.
func (db *DB) SaveTrackPoints(workoutID int64, points []TrackPoint) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Delete existing points for this workout
	if _, err := tx.Exec("DELETE FROM track_points WHERE workout_id = ?", workoutID); err != nil {
		return fmt.Errorf("deleting existing track points: %w", err)
	}

	// Prepare insert statement
	stmt, err := tx.Prepare(`
		INSERT INTO track_points (
			workout_id, seq, lat, lng, altitude, speed, accuracy, timestamp_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	// Insert all points
	for i, p := range points {
		_, err := stmt.Exec(
			workoutID, i, p.Lat, p.Lng, p.Altitude, p.Speed, p.Accuracy, p.TimestampMs,
		)
		if err != nil {
			return fmt.Errorf("inserting track point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// GetTrackPoints retrieves the GPS track for a workout in recorded order
func (db *DB) GetTrackPoints(workoutID int64) ([]TrackPoint, error) {
	rows, err := db.Query(`
		SELECT workout_id, seq, lat, lng, altitude, speed, accuracy, timestamp_ms
		FROM track_points
		WHERE workout_id = ?
		ORDER BY seq
	`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []TrackPoint
	for rows.Next() {
		var p TrackPoint
		err := rows.Scan(
			&p.WorkoutID, &p.Seq, &p.Lat, &p.Lng, &p.Altitude, &p.Speed, &p.Accuracy, &p.TimestampMs,
		)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// CountTrackPoints returns the number of stored points for a workout
func (db *DB) CountTrackPoints(workoutID int64) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM track_points WHERE workout_id = ?
	`, workoutID).Scan(&count)
	return count, err
}
