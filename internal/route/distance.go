package route

import "math"

const earthRadiusMeters = 6371000

// Haversine returns the great-circle distance in meters between two
// coordinates.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// TotalDistance computes the distance covered by a track in meters.
// Fixes with horizontal accuracy worse than MaxAccuracyMeters are
// dropped, the remainder is smoothed with a 3-point moving average,
// and consecutive smoothed points are summed with Haversine.
// Returns 0 for fewer than 2 usable samples.
func TotalDistance(samples []Sample) float64 {
	if len(samples) < 2 {
		return 0
	}

	kept := filterAccurate(samples)
	if len(kept) < 2 {
		return 0
	}

	smoothed := smoothCoords(kept)

	var total float64
	for i := 1; i < len(smoothed); i++ {
		total += Haversine(
			smoothed[i-1].Lat, smoothed[i-1].Lng,
			smoothed[i].Lat, smoothed[i].Lng,
		)
	}
	return total
}

// filterAccurate drops samples whose reported accuracy exceeds the
// cutoff. Samples without an accuracy estimate are kept.
func filterAccurate(samples []Sample) []Sample {
	kept := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.Accuracy != nil && *s.Accuracy > MaxAccuracyMeters {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// smoothCoords applies a centered 3-point moving average to lat/lng.
// The first and last samples keep their raw coordinates.
func smoothCoords(samples []Sample) []Sample {
	if len(samples) < 3 {
		return samples
	}

	out := make([]Sample, len(samples))
	copy(out, samples)
	for i := 1; i < len(samples)-1; i++ {
		out[i].Lat = (samples[i-1].Lat + samples[i].Lat + samples[i+1].Lat) / 3
		out[i].Lng = (samples[i-1].Lng + samples[i].Lng + samples[i+1].Lng) / 3
	}
	return out
}

// ElevationGain sums altitude changes across a track. Positive deltas
// accumulate into gain, negative deltas into loss (returned as a
// positive number). Samples without altitude are skipped entirely, so
// deltas are taken between consecutive altitude-carrying samples.
func ElevationGain(samples []Sample) (gain, loss float64) {
	var prev float64
	seen := false
	for _, s := range samples {
		if s.Altitude == nil {
			continue
		}
		if seen {
			delta := *s.Altitude - prev
			if delta > 0 {
				gain += delta
			} else {
				loss += -delta
			}
		}
		prev = *s.Altitude
		seen = true
	}
	return gain, loss
}
