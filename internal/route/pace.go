package route

import "fmt"

// FormatPace renders a pace as "M:SS" minutes per kilometer for the
// given distance in meters and elapsed time in seconds. Returns "0:00"
// when either input is zero or negative.
func FormatPace(distanceMeters, seconds float64) string {
	if distanceMeters <= 0 || seconds <= 0 {
		return "0:00"
	}

	paceSeconds := seconds / (distanceMeters / 1000)
	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// PaceSeconds returns the pace in seconds per kilometer, or 0 when
// either input is zero or negative.
func PaceSeconds(distanceMeters, seconds float64) float64 {
	if distanceMeters <= 0 || seconds <= 0 {
		return 0
	}
	return seconds / (distanceMeters / 1000)
}

// MovingTime sums the seconds spent moving. Each gap between
// consecutive samples counts when the later sample's speed is at or
// above minSpeed (m/s). Samples without a speed reading count as
// stopped.
func MovingTime(samples []Sample, minSpeed float64) float64 {
	var total float64
	for i := 1; i < len(samples); i++ {
		if sampleSpeed(samples[i]) >= minSpeed {
			total += float64(samples[i].Timestamp-samples[i-1].Timestamp) / 1000
		}
	}
	return total
}

// Pause is a maximal run of consecutive samples below the moving-speed
// threshold.
type Pause struct {
	StartTime int64   // epoch ms of the first stopped sample
	EndTime   int64   // epoch ms of the last stopped sample
	Duration  float64 // seconds
}

// DetectPauses finds maximal runs of samples slower than minSpeed
// (m/s). Samples without a speed reading are treated as stopped. A run
// still open at the end of the track is closed at the final sample.
func DetectPauses(samples []Sample, minSpeed float64) []Pause {
	var pauses []Pause
	runStart := -1

	for i, s := range samples {
		if sampleSpeed(s) < minSpeed {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			pauses = append(pauses, newPause(samples, runStart, i-1))
			runStart = -1
		}
	}

	if runStart >= 0 {
		pauses = append(pauses, newPause(samples, runStart, len(samples)-1))
	}

	return pauses
}

func newPause(samples []Sample, start, end int) Pause {
	startTime := samples[start].Timestamp
	endTime := samples[end].Timestamp
	return Pause{
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  float64(endTime-startTime) / 1000,
	}
}

func sampleSpeed(s Sample) float64 {
	if s.Speed == nil {
		return 0
	}
	return *s.Speed
}
