package route

import (
	"math"
	"testing"
)

// straightTrack builds a northbound track with the given number of
// steps. Each step is 0.001 degrees of latitude (~111.2m) and stepSecs
// seconds apart.
func straightTrack(steps int, stepSecs int64) []Sample {
	samples := make([]Sample, steps+1)
	for i := 0; i <= steps; i++ {
		samples[i] = makeSample(float64(i)*0.001, 0, int64(i)*stepSecs*1000)
	}
	return samples
}

func TestSplits(t *testing.T) {
	t.Run("fewer than 2 samples", func(t *testing.T) {
		if s := Splits(nil, 1000); s != nil {
			t.Errorf("expected nil, got %v", s)
		}
		if s := Splits([]Sample{makeSample(0, 0, 0)}, 1000); s != nil {
			t.Errorf("expected nil, got %v", s)
		}
	})

	t.Run("straight line yields full splits", func(t *testing.T) {
		// 27 steps of ~111.2m; the accumulator crosses 1000m every 9
		// steps, so the track divides into exactly 3 splits.
		samples := straightTrack(27, 10)
		splits := Splits(samples, 1000)

		if len(splits) != 3 {
			t.Fatalf("expected 3 splits, got %d", len(splits))
		}
		for i, s := range splits {
			if s.Km != i+1 {
				t.Errorf("split %d has Km %d, expected %d", i, s.Km, i+1)
			}
			if math.Abs(s.Distance-1000.75) > 1 {
				t.Errorf("split %d distance = %v, expected ~1000.75", i, s.Distance)
			}
			if math.Abs(s.Seconds-90) > 1e-9 {
				t.Errorf("split %d seconds = %v, expected 90", i, s.Seconds)
			}
			if s.Time != "1:30" {
				t.Errorf("split %d time = %q, expected 1:30", i, s.Time)
			}
		}
	})

	t.Run("partial final split", func(t *testing.T) {
		// 30 steps: 3 full splits plus 3 leftover steps (~333.6m).
		samples := straightTrack(30, 10)
		splits := Splits(samples, 1000)

		if len(splits) != 4 {
			t.Fatalf("expected 4 splits, got %d", len(splits))
		}
		last := splits[3]
		if last.Km != 4 {
			t.Errorf("final split Km = %d, expected 4", last.Km)
		}
		if math.Abs(last.Distance-333.58) > 1 {
			t.Errorf("final split distance = %v, expected ~333.58", last.Distance)
		}
		if math.Abs(last.Seconds-30) > 1e-9 {
			t.Errorf("final split seconds = %v, expected 30", last.Seconds)
		}
	})

	t.Run("crossing sample starts the next split", func(t *testing.T) {
		samples := straightTrack(18, 10)
		splits := Splits(samples, 1000)

		if len(splits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(splits))
		}
		// Split 1 covers samples 0-9, split 2 covers samples 9-18, so
		// the time windows share the boundary sample.
		if splits[0].Seconds+splits[1].Seconds != 180 {
			t.Errorf("split durations should cover the full track: %v + %v",
				splits[0].Seconds, splits[1].Seconds)
		}
	})

	t.Run("zero threshold falls back to 1km", func(t *testing.T) {
		samples := straightTrack(9, 10)
		a := Splits(samples, 0)
		b := Splits(samples, 1000)
		if len(a) != len(b) {
			t.Errorf("default threshold produced %d splits, explicit 1000 produced %d", len(a), len(b))
		}
	})

	t.Run("split elevation gain", func(t *testing.T) {
		samples := straightTrack(9, 10)
		for i := range samples {
			samples[i].Altitude = floatPtr(100 + float64(i)*2)
		}
		splits := Splits(samples, 1000)
		if len(splits) != 1 {
			t.Fatalf("expected 1 split, got %d", len(splits))
		}
		if math.Abs(splits[0].ElevationGain-18) > 1e-9 {
			t.Errorf("split gain = %v, expected 18", splits[0].ElevationGain)
		}
	})

	t.Run("split pace", func(t *testing.T) {
		samples := straightTrack(9, 30) // ~1000.75m in 270s
		splits := Splits(samples, 1000)
		if len(splits) != 1 {
			t.Fatalf("expected 1 split, got %d", len(splits))
		}
		// 270s over 1.00075km is just under 4:30/km.
		if splits[0].Pace != "4:29" {
			t.Errorf("split pace = %q, expected 4:29", splits[0].Pace)
		}
		if math.Abs(splits[0].PaceSeconds-269.8) > 0.5 {
			t.Errorf("split pace seconds = %v, expected ~269.8", splits[0].PaceSeconds)
		}
	})
}

func TestFastestSplit(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if fs := FastestSplit(nil); fs != nil {
			t.Errorf("expected nil, got %v", fs)
		}
	})

	t.Run("lowest pace wins", func(t *testing.T) {
		splits := []Split{
			{Km: 1, PaceSeconds: 290},
			{Km: 2, PaceSeconds: 275},
			{Km: 3, PaceSeconds: 301},
		}
		fs := FastestSplit(splits)
		if fs == nil || fs.Km != 2 {
			t.Errorf("expected split 2, got %v", fs)
		}
	})

	t.Run("ties go to the earlier split", func(t *testing.T) {
		splits := []Split{
			{Km: 1, PaceSeconds: 280},
			{Km: 2, PaceSeconds: 280},
		}
		fs := FastestSplit(splits)
		if fs == nil || fs.Km != 1 {
			t.Errorf("expected split 1 on tie, got %v", fs)
		}
	})
}
