package recovery

import "testing"

func TestRecommend(t *testing.T) {
	benign := Factors{SleepHours: 7, Soreness: 3, Energy: 6, DaysSinceRest: 1}

	tests := []struct {
		name     string
		score    int
		factors  Factors
		expected string
	}{
		{"high score", 95, benign, RecReadyIntense},
		{"80 is the intense boundary", 80, benign, RecReadyIntense},
		{"79 drops to moderate", 79, benign, RecModerate},
		{"60 is the moderate boundary", 60, benign, RecModerate},

		{"medium band keyed by soreness", 55, Factors{Soreness: 7, SleepHours: 7}, RecStretch},
		{"soreness 6 does not trigger stretch", 55, Factors{Soreness: 6, DaysSinceRest: 6, SleepHours: 7}, RecEasySession},
		{"medium band keyed by rest gap", 50, Factors{Soreness: 3, DaysSinceRest: 6, SleepHours: 7}, RecEasySession},
		{"medium band keyed by sleep", 45, Factors{Soreness: 3, DaysSinceRest: 2, SleepHours: 5.5}, RecLowIntensity},
		{"medium band fallback", 40, Factors{Soreness: 3, DaysSinceRest: 2, SleepHours: 7}, RecLightMovement},
		{"soreness outranks rest gap", 55, Factors{Soreness: 7, DaysSinceRest: 6, SleepHours: 5}, RecStretch},

		{"low band keyed by rest gap", 39, Factors{DaysSinceRest: 7, Soreness: 3, SleepHours: 7}, RecFullRest},
		{"low band keyed by soreness", 30, Factors{DaysSinceRest: 3, Soreness: 8, SleepHours: 7}, RecRecover},
		{"low band keyed by sleep", 20, Factors{DaysSinceRest: 3, Soreness: 3, SleepHours: 4.5}, RecSleepDebt},
		{"low band fallback", 25, Factors{DaysSinceRest: 3, Soreness: 3, SleepHours: 7}, RecRestToday},
		{"rest gap outranks soreness when exhausted", 10, Factors{DaysSinceRest: 9, Soreness: 9, SleepHours: 4}, RecFullRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Recommend(tt.score, tt.factors)
			if result != tt.expected {
				t.Errorf("Recommend(%d, %+v) = %q, expected %q", tt.score, tt.factors, result, tt.expected)
			}
		})
	}
}
