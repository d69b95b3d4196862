package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Paired device (singleton row)
		`CREATE TABLE IF NOT EXISTS device (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			device_id TEXT NOT NULL,
			name TEXT NOT NULL,
			seed INTEGER NOT NULL,
			paired_at TEXT NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Workouts (one row per recorded session, synced or imported)
		`CREATE TABLE IF NOT EXISTS workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			external_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			activity_type TEXT NOT NULL,
			source TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			weight_kg REAL NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			duration_seconds REAL NOT NULL DEFAULT 0,
			moving_seconds REAL NOT NULL DEFAULT 0,
			avg_pace TEXT NOT NULL DEFAULT '0:00',
			max_speed_kmh REAL NOT NULL DEFAULT 0,
			elevation_gain REAL NOT NULL DEFAULT 0,
			elevation_loss REAL NOT NULL DEFAULT 0,
			calories INTEGER NOT NULL DEFAULT 0,
			pause_count INTEGER NOT NULL DEFAULT 0,
			paused_seconds REAL NOT NULL DEFAULT 0,
			track_polyline TEXT NOT NULL DEFAULT '',
			sample_count INTEGER NOT NULL DEFAULT 0,
			analyzed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_workouts_started_at ON workouts(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_analyzed ON workouts(analyzed)`,

		// Raw GPS samples per workout
		`CREATE TABLE IF NOT EXISTS track_points (
			workout_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			altitude REAL,
			speed REAL,
			accuracy REAL,
			timestamp_ms INTEGER NOT NULL,
			PRIMARY KEY (workout_id, seq),
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_track_points_workout ON track_points(workout_id)`,

		// Per-kilometer splits, recomputed whenever a workout is analyzed
		`CREATE TABLE IF NOT EXISTS splits (
			workout_id INTEGER NOT NULL,
			km INTEGER NOT NULL,
			distance REAL NOT NULL,
			seconds REAL NOT NULL,
			pace TEXT NOT NULL,
			elevation_gain REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (workout_id, km),
			FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		)`,

		// Daily wellness log (one row per calendar day)
		`CREATE TABLE IF NOT EXISTS daily_logs (
			date TEXT PRIMARY KEY,
			sleep_hours REAL,
			soreness REAL,
			energy REAL,
			rest_day INTEGER NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Computed recovery scores (one row per calendar day)
		`CREATE TABLE IF NOT EXISTS recovery_scores (
			date TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			sleep_hours REAL NOT NULL,
			soreness REAL NOT NULL,
			energy REAL NOT NULL,
			workouts_this_week INTEGER NOT NULL,
			days_since_rest INTEGER NOT NULL,
			recent_intensity REAL NOT NULL,
			recommendation TEXT NOT NULL,
			computed_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
