package recovery

// Severity grades how urgently a rest day is needed.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RestAdvice is the outcome of the rest-day check.
type RestAdvice struct {
	ShouldRest bool
	Reason     string
	Severity   Severity
}

// Rest-day reasons.
const (
	ReasonNoRecentRest     = "7+ days since your last rest day"
	ReasonLowRecoveryRun   = "multiple low recovery days in the last two weeks"
	ReasonSevereSoreness   = "soreness is at a severe level"
	ReasonNoRestInTwoWeeks = "no rest days logged in the last two weeks"
	ReasonFatigueBuilding  = "five or more days of training and recovery is dipping"
	ReasonRecoveryOnTrack  = "recovery is on track"
)

// SuggestRestDay decides whether today should be a rest day.
// recentScores are the trailing two weeks of recovery scores,
// restDaysInTwoWeeks counts logged rest days in the same window, and
// score is today's recovery score. Rules are checked in order of
// severity; the first match wins.
func SuggestRestDay(recentScores []int, daysSinceRest int, soreness float64, restDaysInTwoWeeks, score int) RestAdvice {
	lowDays := 0
	for _, s := range recentScores {
		if s < 40 {
			lowDays++
		}
	}

	switch {
	case daysSinceRest >= 7:
		return RestAdvice{ShouldRest: true, Reason: ReasonNoRecentRest, Severity: SeverityHigh}
	case lowDays >= 2:
		return RestAdvice{ShouldRest: true, Reason: ReasonLowRecoveryRun, Severity: SeverityHigh}
	case soreness >= 8:
		return RestAdvice{ShouldRest: true, Reason: ReasonSevereSoreness, Severity: SeverityMedium}
	case restDaysInTwoWeeks == 0:
		return RestAdvice{ShouldRest: true, Reason: ReasonNoRestInTwoWeeks, Severity: SeverityMedium}
	case daysSinceRest >= 5 && score < 60:
		return RestAdvice{ShouldRest: true, Reason: ReasonFatigueBuilding, Severity: SeverityLow}
	default:
		return RestAdvice{ShouldRest: false, Reason: ReasonRecoveryOnTrack}
	}
}
