package store

import (
	"database/sql"
	"errors"
	"time"
)

// UpsertRecoveryScore inserts or replaces the score for a day
func (db *DB) UpsertRecoveryScore(rs *RecoveryScore) error {
	_, err := db.Exec(`
		INSERT INTO recovery_scores (
			date, score, sleep_hours, soreness, energy,
			workouts_this_week, days_since_rest, recent_intensity,
			recommendation, computed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			score = excluded.score,
			sleep_hours = excluded.sleep_hours,
			soreness = excluded.soreness,
			energy = excluded.energy,
			workouts_this_week = excluded.workouts_this_week,
			days_since_rest = excluded.days_since_rest,
			recent_intensity = excluded.recent_intensity,
			recommendation = excluded.recommendation,
			computed_at = CURRENT_TIMESTAMP
	`,
		rs.Date, rs.Score, rs.SleepHours, rs.Soreness, rs.Energy,
		rs.WorkoutsThisWeek, rs.DaysSinceRest, rs.RecentIntensity,
		rs.Recommendation,
	)
	return err
}

// GetRecoveryScore retrieves the score for a date.
// Returns nil if no score has been computed for that day.
func (db *DB) GetRecoveryScore(date string) (*RecoveryScore, error) {
	row := db.QueryRow(`
		SELECT date, score, sleep_hours, soreness, energy,
			workouts_this_week, days_since_rest, recent_intensity,
			recommendation, computed_at
		FROM recovery_scores
		WHERE date = ?
	`, date)

	rs, err := scanRecoveryScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rs, err
}

// GetRecoveryScoresBetween returns scores with dates within
// [start, end] ordered by date ascending
func (db *DB) GetRecoveryScoresBetween(start, end string) ([]RecoveryScore, error) {
	rows, err := db.Query(`
		SELECT date, score, sleep_hours, soreness, energy,
			workouts_this_week, days_since_rest, recent_intensity,
			recommendation, computed_at
		FROM recovery_scores
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []RecoveryScore
	for rows.Next() {
		var rs RecoveryScore
		var computedAt string
		err := rows.Scan(
			&rs.Date, &rs.Score, &rs.SleepHours, &rs.Soreness, &rs.Energy,
			&rs.WorkoutsThisWeek, &rs.DaysSinceRest, &rs.RecentIntensity,
			&rs.Recommendation, &computedAt,
		)
		if err != nil {
			return nil, err
		}
		rs.ComputedAt = parseStoredTime(computedAt)
		scores = append(scores, rs)
	}

	return scores, rows.Err()
}

func scanRecoveryScore(row *sql.Row) (*RecoveryScore, error) {
	var rs RecoveryScore
	var computedAt string
	err := row.Scan(
		&rs.Date, &rs.Score, &rs.SleepHours, &rs.Soreness, &rs.Energy,
		&rs.WorkoutsThisWeek, &rs.DaysSinceRest, &rs.RecentIntensity,
		&rs.Recommendation, &computedAt,
	)
	if err != nil {
		return nil, err
	}
	rs.ComputedAt = parseStoredTime(computedAt)
	return &rs, nil
}

// parseStoredTime handles both RFC3339 values and SQLite's
// CURRENT_TIMESTAMP format. A zero time is returned for anything else.
func parseStoredTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
