package route

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// EncodeTrack encodes sample coordinates as a Google polyline string
// (5 decimal places, roughly meter precision). Altitude, speed, and
// timestamps are not part of the encoding. Returns "" for an empty
// track.
func EncodeTrack(samples []Sample) string {
	if len(samples) == 0 {
		return ""
	}

	coords := make([][]float64, len(samples))
	for i, s := range samples {
		coords[i] = []float64{s.Lat, s.Lng}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodeTrack decodes a polyline string back into coordinate-only
// samples. Returns an empty slice for "".
func DecodeTrack(encoded string) ([]Sample, error) {
	if encoded == "" {
		return nil, nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decoding polyline: %w", err)
	}

	samples := make([]Sample, len(coords))
	for i, c := range coords {
		samples[i] = Sample{Lat: c[0], Lng: c[1]}
	}
	return samples, nil
}
