package route

import "fmt"

// Split summarizes one distance interval of a track.
type Split struct {
	Km            int     // 1-based split number
	Distance      float64 // meters actually covered in this split
	Seconds       float64 // elapsed time for the split
	Time          string  // Seconds formatted as "M:SS"
	Pace          string  // "M:SS" per km
	PaceSeconds   float64 // seconds per km
	ElevationGain float64 // meters climbed within the split
}

// Splits divides a track into consecutive intervals of splitMeters
// each (1 km when splitMeters is zero or negative). Distance is
// accumulated between raw consecutive samples; the sample that pushes
// the accumulator over the threshold closes the current split and
// starts the next one. A shorter final split is emitted for whatever
// distance remains. Returns nil for fewer than 2 samples.
func Splits(samples []Sample, splitMeters float64) []Split {
	if len(samples) < 2 {
		return nil
	}
	if splitMeters <= 0 {
		splitMeters = DefaultSplitMeters
	}

	var splits []Split
	var accum float64
	start := 0

	for i := 1; i < len(samples); i++ {
		accum += Haversine(
			samples[i-1].Lat, samples[i-1].Lng,
			samples[i].Lat, samples[i].Lng,
		)
		if accum >= splitMeters {
			splits = append(splits, newSplit(samples, start, i, len(splits)+1, accum))
			accum = 0
			start = i
		}
	}

	if accum > 0 {
		splits = append(splits, newSplit(samples, start, len(samples)-1, len(splits)+1, accum))
	}

	return splits
}

func newSplit(samples []Sample, start, end, km int, distance float64) Split {
	seconds := float64(samples[end].Timestamp-samples[start].Timestamp) / 1000
	gain, _ := ElevationGain(samples[start : end+1])

	return Split{
		Km:            km,
		Distance:      distance,
		Seconds:       seconds,
		Time:          formatClock(seconds),
		Pace:          FormatPace(distance, seconds),
		PaceSeconds:   PaceSeconds(distance, seconds),
		ElevationGain: gain,
	}
}

// FastestSplit returns the split with the lowest pace. Ties go to the
// earlier split. Returns nil for an empty slice.
func FastestSplit(splits []Split) *Split {
	if len(splits) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(splits); i++ {
		if splits[i].PaceSeconds < splits[best].PaceSeconds {
			best = i
		}
	}
	return &splits[best]
}

// formatClock renders seconds as "M:SS".
func formatClock(seconds float64) string {
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
