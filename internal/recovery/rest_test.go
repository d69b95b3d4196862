package recovery

import "testing"

func TestSuggestRestDay(t *testing.T) {
	tests := []struct {
		name         string
		recentScores []int
		daysSince    int
		soreness     float64
		restDays     int
		score        int
		shouldRest   bool
		reason       string
		severity     Severity
	}{
		{
			name:         "week without rest",
			recentScores: []int{70, 75},
			daysSince:    7,
			soreness:     3,
			restDays:     1,
			score:        70,
			shouldRest:   true,
			reason:       ReasonNoRecentRest,
			severity:     SeverityHigh,
		},
		{
			name:         "repeated low recovery days",
			recentScores: []int{35, 80, 38, 72},
			daysSince:    2,
			soreness:     3,
			restDays:     2,
			score:        65,
			shouldRest:   true,
			reason:       ReasonLowRecoveryRun,
			severity:     SeverityHigh,
		},
		{
			name:         "one low day is not enough",
			recentScores: []int{35, 80, 72},
			daysSince:    2,
			soreness:     3,
			restDays:     2,
			score:        65,
			shouldRest:   false,
			reason:       ReasonRecoveryOnTrack,
		},
		{
			name:         "severe soreness",
			recentScores: []int{70},
			daysSince:    2,
			soreness:     8,
			restDays:     2,
			score:        65,
			shouldRest:   true,
			reason:       ReasonSevereSoreness,
			severity:     SeverityMedium,
		},
		{
			name:         "no rest logged in two weeks",
			recentScores: []int{70, 65},
			daysSince:    4,
			soreness:     3,
			restDays:     0,
			score:        70,
			shouldRest:   true,
			reason:       ReasonNoRestInTwoWeeks,
			severity:     SeverityMedium,
		},
		{
			name:         "long stretch with dipping recovery",
			recentScores: []int{70, 65},
			daysSince:    5,
			soreness:     3,
			restDays:     1,
			score:        55,
			shouldRest:   true,
			reason:       ReasonFatigueBuilding,
			severity:     SeverityLow,
		},
		{
			name:         "long stretch but recovery holding",
			recentScores: []int{70, 65},
			daysSince:    5,
			soreness:     3,
			restDays:     1,
			score:        60,
			shouldRest:   false,
			reason:       ReasonRecoveryOnTrack,
		},
		{
			name:         "recovered athlete",
			recentScores: []int{80, 85, 78},
			daysSince:    1,
			soreness:     2,
			restDays:     3,
			score:        85,
			shouldRest:   false,
			reason:       ReasonRecoveryOnTrack,
		},
		{
			name:         "rest gap outranks every other signal",
			recentScores: []int{30, 30, 30},
			daysSince:    10,
			soreness:     9,
			restDays:     0,
			score:        5,
			shouldRest:   true,
			reason:       ReasonNoRecentRest,
			severity:     SeverityHigh,
		},
		{
			name:         "low days outrank soreness",
			recentScores: []int{30, 35},
			daysSince:    3,
			soreness:     9,
			restDays:     1,
			score:        35,
			shouldRest:   true,
			reason:       ReasonLowRecoveryRun,
			severity:     SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := SuggestRestDay(tt.recentScores, tt.daysSince, tt.soreness, tt.restDays, tt.score)
			if advice.ShouldRest != tt.shouldRest {
				t.Errorf("ShouldRest = %v, expected %v", advice.ShouldRest, tt.shouldRest)
			}
			if advice.Reason != tt.reason {
				t.Errorf("Reason = %q, expected %q", advice.Reason, tt.reason)
			}
			if advice.Severity != tt.severity {
				t.Errorf("Severity = %q, expected %q", advice.Severity, tt.severity)
			}
		})
	}
}
