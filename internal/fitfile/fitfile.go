// Package fitfile decodes FIT activity files into workout sessions.
package fitfile

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tormoder/fit"

	"stride/internal/route"
)

const semicirclesToDeg = 180.0 / 2147483648.0 // 2^31

// Raw FIT field values marking "not recorded".
const invalidUint16 = 0xFFFF

// ErrNoSession is returned when a FIT file contains no activity session.
var ErrNoSession = errors.New("fit file has no session")

// Workout is a decoded FIT activity.
type Workout struct {
	Sport     string
	StartTime time.Time
	EndTime   time.Time
	Samples   []route.Sample
}

// Decode reads a FIT activity file. Records without a valid GPS
// position are dropped; altitude and speed are carried when recorded.
func Decode(r io.Reader) (*Workout, error) {
	fd, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding fit file: %w", err)
	}

	activity, err := fd.Activity()
	if err != nil {
		return nil, fmt.Errorf("reading fit activity: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, ErrNoSession
	}
	session := activity.Sessions[0]

	w := &Workout{
		Sport:     normalizeSport(session.Sport.String()),
		StartTime: session.StartTime.UTC(),
	}

	for _, rec := range activity.Records {
		latSC := rec.PositionLat.Semicircles()
		lngSC := rec.PositionLong.Semicircles()
		if latSC == 0 || lngSC == 0 {
			continue
		}
		lat := float64(latSC) * semicirclesToDeg
		lng := float64(lngSC) * semicirclesToDeg
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			continue
		}

		sample := route.Sample{
			Lat:       lat,
			Lng:       lng,
			Timestamp: rec.Timestamp.UnixMilli(),
		}
		if alt, ok := scaleAltitude(rec.Altitude); ok {
			sample.Altitude = &alt
		}
		if spd, ok := scaleSpeed(rec.Speed); ok {
			sample.Speed = &spd
		}
		w.Samples = append(w.Samples, sample)
	}

	if n := len(w.Samples); n > 0 {
		w.EndTime = time.UnixMilli(w.Samples[n-1].Timestamp).UTC()
	} else {
		// total_elapsed_time: seconds, scale 1000
		w.EndTime = w.StartTime.Add(time.Duration(float64(session.TotalElapsedTime)/1000) * time.Second)
	}

	return w, nil
}

// scaleAltitude converts a raw FIT altitude (scale 5, offset 500) to
// meters. Zero and 0xFFFF mean not recorded.
func scaleAltitude(raw uint16) (float64, bool) {
	if raw == 0 || raw == invalidUint16 {
		return 0, false
	}
	return float64(raw)/5.0 - 500.0, true
}

// scaleSpeed converts a raw FIT speed (scale 1000) to m/s.
func scaleSpeed(raw uint16) (float64, bool) {
	if raw == 0 || raw == invalidUint16 {
		return 0, false
	}
	return float64(raw) / 1000.0, true
}

// normalizeSport maps FIT sport names onto stride activity types.
func normalizeSport(sport string) string {
	s := strings.ToLower(sport)
	switch {
	case strings.Contains(s, "run"):
		return "running"
	case strings.Contains(s, "walk"):
		return "walking"
	case strings.Contains(s, "cycl"), strings.Contains(s, "bik"):
		return "cycling"
	case strings.Contains(s, "hik"):
		return "hiking"
	default:
		return s
	}
}
