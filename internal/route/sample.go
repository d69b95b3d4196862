package route

// Sample is a single GPS fix captured during a workout.
// Altitude, Speed, and Accuracy are optional; devices that don't report
// them leave the pointers nil.
type Sample struct {
	Lat       float64
	Lng       float64
	Altitude  *float64 // meters
	Speed     *float64 // m/s
	Accuracy  *float64 // meters, horizontal error estimate
	Timestamp int64    // epoch milliseconds
}

const (
	// MaxAccuracyMeters is the horizontal accuracy cutoff. Consumer GPS
	// reports fixes worse than this during signal loss; they are dropped
	// before distance summation rather than smoothed.
	MaxAccuracyMeters = 50.0

	// DefaultSplitMeters is the standard split length.
	DefaultSplitMeters = 1000.0

	// DefaultMinMovingSpeed separates moving from stopped samples (m/s).
	DefaultMinMovingSpeed = 0.5
)
