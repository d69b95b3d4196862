// Package recovery turns daily wellness inputs and recent training
// load into a 0-100 readiness score with a workout recommendation.
package recovery

import "math"

// Factors are the resolved inputs to a day's recovery score.
type Factors struct {
	SleepHours       float64
	Soreness         float64 // 0-10 self reported
	Energy           float64 // 0-10 self reported
	WorkoutsThisWeek int     // trailing 7 days
	DaysSinceRest    int
	RecentIntensity  float64 // avg calories per workout, trailing 7 days
}

// Score is a computed recovery score with the inputs that produced it.
type Score struct {
	Value          int // 0-100
	Factors        Factors
	Recommendation string
}

// Defaults used when the athlete never logged a value for the day.
// Sleep assumes a typical night; soreness and energy sit at the scale
// midpoint so an empty log neither boosts nor tanks the score.
const (
	DefaultSleepHours = 7.0
	DefaultSoreness   = 5.0
	DefaultEnergy     = 5.0
)

const baseScore = 50.0

// CalculateScore computes the 0-100 recovery score. Each factor
// contributes a capped bonus or penalty on top of the 50-point
// baseline; the sum is rounded and clamped.
func CalculateScore(f Factors) int {
	score := baseScore

	score += math.Min(f.SleepHours*5, 40)
	score -= math.Min(f.Soreness*5, 50)
	score += math.Min(f.Energy*3, 30)

	if f.WorkoutsThisWeek > 4 {
		score -= math.Min(float64(f.WorkoutsThisWeek-4)*3, 15)
	}
	if f.DaysSinceRest > 2 {
		score -= math.Min(float64(f.DaysSinceRest-2)*5, 25)
	}

	score -= math.Min(f.RecentIntensity*0.01, 20)

	return clampScore(int(math.Round(score)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ResolveFactors fills in defaults for wellness inputs that were never
// logged and bundles them with the training-load inputs.
func ResolveFactors(sleep, soreness, energy *float64, workoutsThisWeek, daysSinceRest int, recentIntensity float64) Factors {
	f := Factors{
		SleepHours:       DefaultSleepHours,
		Soreness:         DefaultSoreness,
		Energy:           DefaultEnergy,
		WorkoutsThisWeek: workoutsThisWeek,
		DaysSinceRest:    daysSinceRest,
		RecentIntensity:  recentIntensity,
	}
	if sleep != nil {
		f.SleepHours = *sleep
	}
	if soreness != nil {
		f.Soreness = *soreness
	}
	if energy != nil {
		f.Energy = *energy
	}
	return f
}

// Evaluate computes the score and its recommendation in one step.
func Evaluate(f Factors) Score {
	value := CalculateScore(f)
	return Score{
		Value:          value,
		Factors:        f,
		Recommendation: Recommend(value, f),
	}
}
