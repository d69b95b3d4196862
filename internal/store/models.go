package store

import "time"

// Device is the paired wearable (singleton row)
type Device struct {
	DeviceID string    `db:"device_id"`
	Name     string    `db:"name"`
	Seed     int64     `db:"seed"`
	PairedAt time.Time `db:"paired_at"`
}

// Workout is a recorded session, synced from the device or imported
// from a file. The derived columns (distance through track_polyline)
// are filled in by analysis and are zero until analyzed is set.
type Workout struct {
	ID            int64     `db:"id"`
	ExternalID    string    `db:"external_id"`
	Name          string    `db:"name"`
	ActivityType  string    `db:"activity_type"` // "running", "walking", ...
	Source        string    `db:"source"`        // "wearable", "fit", "gpx"
	StartedAt     time.Time `db:"started_at"`
	EndedAt       time.Time `db:"ended_at"`
	WeightKg      float64   `db:"weight_kg"` // athlete weight at record time
	Distance      float64   `db:"distance"`  // meters
	Duration      float64   `db:"duration_seconds"`
	MovingSeconds float64   `db:"moving_seconds"`
	AvgPace       string    `db:"avg_pace"` // "M:SS" per km
	MaxSpeedKmh   float64   `db:"max_speed_kmh"`
	ElevationGain float64   `db:"elevation_gain"` // meters
	ElevationLoss float64   `db:"elevation_loss"` // meters
	Calories      int       `db:"calories"`
	PauseCount    int       `db:"pause_count"`
	PausedSeconds float64   `db:"paused_seconds"`
	TrackPolyline string    `db:"track_polyline"`
	SampleCount   int       `db:"sample_count"`
	Analyzed      bool      `db:"analyzed"`
}

// TrackPoint is a single stored GPS sample
type TrackPoint struct {
	WorkoutID   int64    `db:"workout_id"`
	Seq         int      `db:"seq"`
	Lat         float64  `db:"lat"`
	Lng         float64  `db:"lng"`
	Altitude    *float64 `db:"altitude"` // meters, nullable
	Speed       *float64 `db:"speed"`    // m/s, nullable
	Accuracy    *float64 `db:"accuracy"` // meters, nullable
	TimestampMs int64    `db:"timestamp_ms"`
}

// Split is a stored per-kilometer split
type Split struct {
	WorkoutID     int64   `db:"workout_id"`
	Km            int     `db:"km"`
	Distance      float64 `db:"distance"` // meters
	Seconds       float64 `db:"seconds"`
	Pace          string  `db:"pace"` // "M:SS" per km
	ElevationGain float64 `db:"elevation_gain"`
}

// DailyLog is the athlete's wellness entry for one calendar day.
// Sleep, soreness, and energy stay nil until logged.
type DailyLog struct {
	Date       string   `db:"date"` // YYYY-MM-DD
	SleepHours *float64 `db:"sleep_hours"`
	Soreness   *float64 `db:"soreness"` // 0-10
	Energy     *float64 `db:"energy"`   // 0-10
	RestDay    bool     `db:"rest_day"`
	Notes      string   `db:"notes"`
}

// RecoveryScore is a computed recovery score for one calendar day,
// stored with the resolved factors that produced it.
type RecoveryScore struct {
	Date             string    `db:"date"` // YYYY-MM-DD
	Score            int       `db:"score"`
	SleepHours       float64   `db:"sleep_hours"`
	Soreness         float64   `db:"soreness"`
	Energy           float64   `db:"energy"`
	WorkoutsThisWeek int       `db:"workouts_this_week"`
	DaysSinceRest    int       `db:"days_since_rest"`
	RecentIntensity  float64   `db:"recent_intensity"`
	Recommendation   string    `db:"recommendation"`
	ComputedAt       time.Time `db:"computed_at"`
}
