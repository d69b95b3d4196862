package route

// Stats holds the derived summary for a recorded track.
type Stats struct {
	Distance      float64 // meters
	Duration      float64 // seconds, wall clock between start and end
	AveragePace   string  // "M:SS" per km
	MaxSpeedKmh   float64
	ElevationGain float64 // meters
	ElevationLoss float64 // meters
	Calories      int     // kcal
	Splits        []Split
}

// Analyze computes the full summary for a track. startMs and endMs are
// the workout's wall-clock bounds in epoch milliseconds; weightKg and
// activityType feed the calorie estimate. Fewer than 2 samples yields
// zeroed stats.
func Analyze(samples []Sample, startMs, endMs int64, weightKg float64, activityType string) Stats {
	if len(samples) < 2 {
		return Stats{AveragePace: FormatPace(0, 0)}
	}

	distance := TotalDistance(samples)
	duration := float64(endMs-startMs) / 1000
	gain, loss := ElevationGain(samples)

	return Stats{
		Distance:      distance,
		Duration:      duration,
		AveragePace:   FormatPace(distance, duration),
		MaxSpeedKmh:   maxSpeedKmh(samples),
		ElevationGain: gain,
		ElevationLoss: loss,
		Calories:      EstimateCalories(distance, weightKg, activityType),
		Splits:        Splits(samples, DefaultSplitMeters),
	}
}

// maxSpeedKmh returns the highest sampled speed converted to km/h, or
// 0 when no sample carries a speed.
func maxSpeedKmh(samples []Sample) float64 {
	var max float64
	for _, s := range samples {
		if s.Speed != nil && *s.Speed > max {
			max = *s.Speed
		}
	}
	return max * 3.6
}
