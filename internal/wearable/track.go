package wearable

import (
	"math"
	"math/rand"
	"time"

	"stride/internal/route"
)

// Meters of northing per degree of latitude.
const metersPerDegreeLat = 111195.0

// cruiseSpeed is the typical sustained speed per activity in m/s.
var cruiseSpeed = map[string]float64{
	"running": 2.9,
	"walking": 1.4,
	"cycling": 5.8,
	"jogging": 2.3,
	"hiking":  1.3,
}

type pauseWindow struct {
	startSec, endSec int
}

// generateTrack random-walks a GPS track around the device's home
// coordinate: one sample every 5 seconds at activity-appropriate speed
// with heading drift, altitude drift, scheduled pause segments, and a
// small share of low-accuracy fixes.
func (d *Device) generateTrack(rng *rand.Rand, activity string, start time.Time, durationSec int) []route.Sample {
	lat, lng := d.homeCoordinate()
	heading := rng.Float64() * 2 * math.Pi
	altitude := 40 + rng.Float64()*80

	cruise := cruiseSpeed[activity]
	if cruise == 0 {
		cruise = 2.0
	}

	pauses := schedulePauses(rng, durationSec)

	n := durationSec/sampleStepSec + 1
	samples := make([]route.Sample, 0, n)
	for i := 0; i < n; i++ {
		elapsed := i * sampleStepSec

		speed := cruise * (0.85 + rng.Float64()*0.3)
		if inPause(pauses, elapsed) {
			speed = rng.Float64() * 0.3
		}

		if i > 0 {
			heading += (rng.Float64() - 0.5) * 0.4
			dist := speed * sampleStepSec
			lat += dist * math.Cos(heading) / metersPerDegreeLat
			lng += dist * math.Sin(heading) / (metersPerDegreeLat * math.Cos(lat*math.Pi/180))
			altitude += (rng.Float64() - 0.5) * 1.2
		}

		accuracy := 4 + rng.Float64()*10
		if rng.Float64() < 0.02 {
			// GPS dropout under cover
			accuracy = 55 + rng.Float64()*40
		}

		alt, spd, acc := altitude, speed, accuracy
		samples = append(samples, route.Sample{
			Lat:       lat,
			Lng:       lng,
			Altitude:  &alt,
			Speed:     &spd,
			Accuracy:  &acc,
			Timestamp: start.UnixMilli() + int64(elapsed)*1000,
		})
	}
	return samples
}

// homeCoordinate derives the device's base location from the seed.
func (d *Device) homeCoordinate() (lat, lng float64) {
	rng := rand.New(rand.NewSource(d.Seed))
	return 34 + rng.Float64()*14, -122 + rng.Float64()*40
}

func schedulePauses(rng *rand.Rand, durationSec int) []pauseWindow {
	count := rng.Intn(3)
	windows := make([]pauseWindow, 0, count)
	for i := 0; i < count; i++ {
		if durationSec < 300 {
			break
		}
		start := 60 + rng.Intn(durationSec-240)
		length := 30 + rng.Intn(60)
		windows = append(windows, pauseWindow{startSec: start, endSec: start + length})
	}
	return windows
}

func inPause(windows []pauseWindow, elapsed int) bool {
	for _, w := range windows {
		if elapsed >= w.startSec && elapsed < w.endSec {
			return true
		}
	}
	return false
}
