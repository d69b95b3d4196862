package tui

import (
	"fmt"

	"stride/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the user's preferred unit
func (u Units) FormatDistance(meters float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatDistanceValue returns just the numeric distance value (no unit label)
func (u Units) FormatDistanceValue(meters float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f", meters/metersPerKm)
}

// FormatPace formats pace from total seconds and meters to the user's
// preferred unit
func (u Units) FormatPace(seconds, meters float64) string {
	if meters <= 0 || seconds <= 0 {
		return "-"
	}

	var paceSeconds float64
	if u.cfg.PaceUnit == "min/mi" {
		paceSeconds = seconds / (meters / metersPerMile)
	} else {
		paceSeconds = seconds / (meters / metersPerKm)
	}

	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatPaceWithUnit formats pace with the unit label
func (u Units) FormatPaceWithUnit(seconds, meters float64) string {
	pace := u.FormatPace(seconds, meters)
	if pace == "-" {
		return pace
	}
	return pace + "/" + u.DistanceLabel()
}

// FormatSpeed formats a speed in km/h to the user's preferred unit
func (u Units) FormatSpeed(kmh float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f mph", kmh*metersPerKm/metersPerMile)
	}
	return fmt.Sprintf("%.1f km/h", kmh)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}

// ConvertPaceSeries converts per-km pace seconds into chartable minutes
// in the user's pace unit
func (u Units) ConvertPaceSeries(paceSecPerKm []float64) []float64 {
	converted := make([]float64, len(paceSecPerKm))
	for i, p := range paceSecPerKm {
		if p <= 0 {
			continue
		}
		if u.cfg.PaceUnit == "min/mi" {
			converted[i] = p * metersPerMile / metersPerKm / 60
		} else {
			converted[i] = p / 60
		}
	}
	return converted
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}
