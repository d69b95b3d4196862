// Package gpxfile decodes GPX track files into workout sessions.
package gpxfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"time"

	"stride/internal/route"
)

// ErrNoTrack is returned when a GPX file has no timestamped track points.
var ErrNoTrack = errors.New("gpx file has no track points")

type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Creator string     `xml:"creator,attr"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name     string       `xml:"name"`
	Type     string       `xml:"type"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time"`
}

// Workout is a decoded GPX track.
type Workout struct {
	Name      string
	Sport     string
	StartTime time.Time
	EndTime   time.Time
	Samples   []route.Sample
}

// Decode reads a GPX file, flattening all tracks and segments into one
// sample sequence. Points without a parseable timestamp are dropped.
// GPX carries no speed, so per-sample speed is derived from the
// distance and time between consecutive points.
func Decode(r io.Reader) (*Workout, error) {
	var g gpxFile
	if err := xml.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decoding gpx file: %w", err)
	}

	w := &Workout{Sport: "running"}
	for _, trk := range g.Tracks {
		if w.Name == "" {
			w.Name = trk.Name
		}
		if trk.Type != "" {
			w.Sport = normalizeType(trk.Type)
		}
		for _, seg := range trk.Segments {
			for _, pt := range seg.Points {
				ts, err := time.Parse(time.RFC3339Nano, pt.Time)
				if err != nil {
					continue
				}
				sample := route.Sample{
					Lat:       pt.Lat,
					Lng:       pt.Lon,
					Altitude:  pt.Ele,
					Timestamp: ts.UnixMilli(),
				}
				w.Samples = append(w.Samples, sample)
			}
		}
	}

	if len(w.Samples) == 0 {
		return nil, ErrNoTrack
	}

	deriveSpeeds(w.Samples)
	w.StartTime = time.UnixMilli(w.Samples[0].Timestamp).UTC()
	w.EndTime = time.UnixMilli(w.Samples[len(w.Samples)-1].Timestamp).UTC()
	return w, nil
}

// deriveSpeeds fills each sample's speed from the haversine distance
// and elapsed time since the previous point. The first point inherits
// the second's speed.
func deriveSpeeds(samples []route.Sample) {
	for i := 1; i < len(samples); i++ {
		dt := float64(samples[i].Timestamp-samples[i-1].Timestamp) / 1000
		speed := 0.0
		if dt > 0 {
			speed = route.Haversine(samples[i-1].Lat, samples[i-1].Lng, samples[i].Lat, samples[i].Lng) / dt
		}
		s := speed
		samples[i].Speed = &s
	}
	if len(samples) > 1 {
		first := *samples[1].Speed
		samples[0].Speed = &first
	}
}

func normalizeType(t string) string {
	// Strava GPX exports use numeric type codes for common sports.
	switch t {
	case "9", "running", "Running", "trail_running":
		return "running"
	case "10", "walking", "Walking":
		return "walking"
	case "1", "cycling", "Cycling", "biking":
		return "cycling"
	case "hiking", "Hiking":
		return "hiking"
	}
	return t
}
