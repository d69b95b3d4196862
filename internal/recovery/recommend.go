package recovery

// Recommendation texts, keyed by score band and the factor driving the
// low score.
const (
	RecReadyIntense = "ready for intense workout"
	RecModerate     = "moderate workout ok"

	RecStretch       = "easy day - soreness is elevated, try stretching or mobility work"
	RecEasySession   = "easy day - several days without rest, keep it short"
	RecLowIntensity  = "easy day - short on sleep, keep intensity low"
	RecLightMovement = "easy day - light activity only"

	RecFullRest  = "rest day - a week without a break is enough"
	RecRecover   = "rest day - severe soreness needs time to heal"
	RecSleepDebt = "rest day - catch up on sleep first"
	RecRestToday = "rest day - recovery is too low to train"
)

// Recommend maps a score and its factors to a workout recommendation.
// Below 80 the dominant limiting factor picks the message; the first
// matching rule wins.
func Recommend(score int, f Factors) string {
	switch {
	case score >= 80:
		return RecReadyIntense
	case score >= 60:
		return RecModerate
	case score >= 40:
		switch {
		case f.Soreness > 6:
			return RecStretch
		case f.DaysSinceRest > 5:
			return RecEasySession
		case f.SleepHours < 6:
			return RecLowIntensity
		default:
			return RecLightMovement
		}
	default:
		switch {
		case f.DaysSinceRest >= 7:
			return RecFullRest
		case f.Soreness >= 8:
			return RecRecover
		case f.SleepHours < 5:
			return RecSleepDebt
		default:
			return RecRestToday
		}
	}
}
