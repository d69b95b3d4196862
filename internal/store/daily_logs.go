package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoDailyLog is returned when no log exists for a date
var ErrNoDailyLog = errors.New("no daily log for date")

// DateLayout is the canonical format for daily_logs and
// recovery_scores keys.
const DateLayout = "2006-01-02"

// UpsertDailyLog inserts or updates the wellness log for a day
func (db *DB) UpsertDailyLog(l *DailyLog) error {
	_, err := db.Exec(`
		INSERT INTO daily_logs (date, sleep_hours, soreness, energy, rest_day, notes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			soreness = excluded.soreness,
			energy = excluded.energy,
			rest_day = excluded.rest_day,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`, l.Date, l.SleepHours, l.Soreness, l.Energy, boolToInt(l.RestDay), l.Notes)
	return err
}

// SetSleepIfUnset records device-reported sleep for a day without
// overwriting a value the athlete logged themselves.
func (db *DB) SetSleepIfUnset(date string, hours float64) error {
	_, err := db.Exec(`
		INSERT INTO daily_logs (date, sleep_hours, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			updated_at = CURRENT_TIMESTAMP
		WHERE daily_logs.sleep_hours IS NULL
	`, date, hours)
	return err
}

// GetDailyLog retrieves the log for a date
func (db *DB) GetDailyLog(date string) (*DailyLog, error) {
	row := db.QueryRow(`
		SELECT date, sleep_hours, soreness, energy, rest_day, notes
		FROM daily_logs
		WHERE date = ?
	`, date)

	var l DailyLog
	var restDay int
	err := row.Scan(&l.Date, &l.SleepHours, &l.Soreness, &l.Energy, &restDay, &l.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDailyLog
	}
	if err != nil {
		return nil, err
	}

	l.RestDay = restDay == 1
	return &l, nil
}

// GetDailyLogsBetween returns logs with dates within [start, end]
// ordered by date ascending
func (db *DB) GetDailyLogsBetween(start, end string) ([]DailyLog, error) {
	rows, err := db.Query(`
		SELECT date, sleep_hours, soreness, energy, rest_day, notes
		FROM daily_logs
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []DailyLog
	for rows.Next() {
		var l DailyLog
		var restDay int
		if err := rows.Scan(&l.Date, &l.SleepHours, &l.Soreness, &l.Energy, &restDay, &l.Notes); err != nil {
			return nil, err
		}
		l.RestDay = restDay == 1
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// CountRestDaysBetween counts logged rest days within [start, end]
func (db *DB) CountRestDaysBetween(start, end string) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM daily_logs
		WHERE rest_day = 1 AND date >= ? AND date <= ?
	`, start, end).Scan(&count)
	return count, err
}

// DaysSinceRest returns how many days before onDate the athlete last
// logged a rest day. Without any rest day it falls back to counting
// from the earliest log, and returns 0 when there is no history at
// all.
func (db *DB) DaysSinceRest(onDate string) (int, error) {
	target, err := time.Parse(DateLayout, onDate)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", onDate, err)
	}

	var last string
	err = db.QueryRow(`
		SELECT date FROM daily_logs
		WHERE rest_day = 1 AND date <= ?
		ORDER BY date DESC
		LIMIT 1
	`, onDate).Scan(&last)

	if errors.Is(err, sql.ErrNoRows) {
		// No rest day on record: measure from the first log instead.
		var first sql.NullString
		err = db.QueryRow(`
			SELECT MIN(date) FROM daily_logs WHERE date <= ?
		`, onDate).Scan(&first)
		if err != nil {
			return 0, err
		}
		if !first.Valid {
			return 0, nil
		}
		last = first.String
	} else if err != nil {
		return 0, err
	}

	lastDay, err := time.Parse(DateLayout, last)
	if err != nil {
		return 0, fmt.Errorf("parsing date %q: %w", last, err)
	}

	return int(target.Sub(lastDay).Hours() / 24), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
