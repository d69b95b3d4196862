package route

import (
	"math"
	"strings"
)

// MET values per activity (metabolic equivalents, kcal per kg per
// hour). Unknown activities fall back to defaultMET.
var activityMET = map[string]float64{
	"walking": 3.5,
	"running": 9.8,
	"jogging": 7.0,
	"cycling": 7.5,
	"hiking":  6.0,
}

// Assumed average speeds in km/h used to derive a duration from
// distance. The estimate deliberately ignores recorded time so that a
// workout with long pauses isn't credited extra calories.
var activityAvgSpeedKmh = map[string]float64{
	"walking": 5,
	"running": 10,
	"jogging": 8,
	"cycling": 20,
	"hiking":  5,
}

const (
	defaultMET         = 7.0
	defaultAvgSpeedKmh = 8.0
)

// EstimateCalories estimates energy burned in kcal from distance in
// meters, body weight in kg, and the activity type. The duration is
// modeled from the activity's assumed average speed:
//
//	kcal = MET * weight * (km / speed)
func EstimateCalories(distanceMeters, weightKg float64, activityType string) int {
	key := strings.ToLower(activityType)

	met, ok := activityMET[key]
	if !ok {
		met = defaultMET
	}
	speed, ok := activityAvgSpeedKmh[key]
	if !ok {
		speed = defaultAvgSpeedKmh
	}

	hours := (distanceMeters / 1000) / speed
	return int(math.Round(met * weightKg * hours))
}
