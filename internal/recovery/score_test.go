package recovery

import "testing"

func floatPtr(f float64) *float64 {
	return &f
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		factors  Factors
		expected int
	}{
		{
			name: "well rested athlete pins at 100",
			factors: Factors{
				SleepHours:       8,
				Soreness:         1,
				Energy:           9,
				WorkoutsThisWeek: 2,
				DaysSinceRest:    1,
				RecentIntensity:  0,
			},
			// 50 + 40 - 5 + 27 = 112, clamped
			expected: 100,
		},
		{
			name: "run down athlete pins at 0",
			factors: Factors{
				SleepHours:       4,
				Soreness:         9,
				Energy:           2,
				WorkoutsThisWeek: 8,
				DaysSinceRest:    8,
				RecentIntensity:  2000,
			},
			// 50 + 20 - 45 + 6 - 12 - 25 - 20 = -26, clamped
			expected: 0,
		},
		{
			name:    "all defaults",
			factors: ResolveFactors(nil, nil, nil, 0, 0, 0),
			// 50 + 35 - 25 + 15 = 75
			expected: 75,
		},
		{
			name: "sleep bonus caps at 40",
			factors: Factors{
				SleepHours: 12,
				Soreness:   10,
				Energy:     0,
			},
			// 50 + 40 - 50 + 0 = 40
			expected: 40,
		},
		{
			name: "workout penalty caps at 15",
			factors: Factors{
				SleepHours:       7,
				Soreness:         5,
				Energy:           5,
				WorkoutsThisWeek: 20,
			},
			// 50 + 35 - 25 + 15 - 15 = 60
			expected: 60,
		},
		{
			name: "rest penalty caps at 25",
			factors: Factors{
				SleepHours:    7,
				Soreness:      5,
				Energy:        5,
				DaysSinceRest: 30,
			},
			// 50 + 35 - 25 + 15 - 25 = 50
			expected: 50,
		},
		{
			name: "intensity penalty caps at 20",
			factors: Factors{
				SleepHours:      7,
				Soreness:        5,
				Energy:          5,
				RecentIntensity: 9000,
			},
			// 50 + 35 - 25 + 15 - 20 = 55
			expected: 55,
		},
		{
			name: "four workouts carry no penalty",
			factors: Factors{
				SleepHours:       7,
				Soreness:         5,
				Energy:           5,
				WorkoutsThisWeek: 4,
			},
			expected: 75,
		},
		{
			name: "two days since rest carry no penalty",
			factors: Factors{
				SleepHours:    7,
				Soreness:      5,
				Energy:        5,
				DaysSinceRest: 2,
			},
			expected: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateScore(tt.factors)
			if result != tt.expected {
				t.Errorf("CalculateScore() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestCalculateScoreAlwaysInRange(t *testing.T) {
	for sleep := 0.0; sleep <= 14; sleep += 2 {
		for soreness := 0.0; soreness <= 10; soreness += 2 {
			for energy := 0.0; energy <= 10; energy += 2 {
				for _, workouts := range []int{0, 4, 10} {
					for _, rest := range []int{0, 3, 14} {
						for _, intensity := range []float64{0, 500, 5000} {
							f := Factors{
								SleepHours:       sleep,
								Soreness:         soreness,
								Energy:           energy,
								WorkoutsThisWeek: workouts,
								DaysSinceRest:    rest,
								RecentIntensity:  intensity,
							}
							score := CalculateScore(f)
							if score < 0 || score > 100 {
								t.Fatalf("score %d out of range for %+v", score, f)
							}
						}
					}
				}
			}
		}
	}
}

func TestResolveFactors(t *testing.T) {
	t.Run("nil inputs use defaults", func(t *testing.T) {
		f := ResolveFactors(nil, nil, nil, 3, 2, 450)
		if f.SleepHours != DefaultSleepHours {
			t.Errorf("sleep = %v, expected %v", f.SleepHours, DefaultSleepHours)
		}
		if f.Soreness != DefaultSoreness {
			t.Errorf("soreness = %v, expected %v", f.Soreness, DefaultSoreness)
		}
		if f.Energy != DefaultEnergy {
			t.Errorf("energy = %v, expected %v", f.Energy, DefaultEnergy)
		}
		if f.WorkoutsThisWeek != 3 || f.DaysSinceRest != 2 || f.RecentIntensity != 450 {
			t.Errorf("load inputs not carried through: %+v", f)
		}
	})

	t.Run("logged values win", func(t *testing.T) {
		f := ResolveFactors(floatPtr(8.5), floatPtr(2), floatPtr(9), 0, 0, 0)
		if f.SleepHours != 8.5 || f.Soreness != 2 || f.Energy != 9 {
			t.Errorf("logged values not used: %+v", f)
		}
	})

	t.Run("explicit zero is not a missing value", func(t *testing.T) {
		f := ResolveFactors(floatPtr(0), floatPtr(0), floatPtr(0), 0, 0, 0)
		if f.SleepHours != 0 || f.Soreness != 0 || f.Energy != 0 {
			t.Errorf("explicit zeros replaced by defaults: %+v", f)
		}
	})
}

func TestEvaluate(t *testing.T) {
	f := Factors{SleepHours: 8, Soreness: 1, Energy: 9, WorkoutsThisWeek: 2, DaysSinceRest: 1}
	s := Evaluate(f)

	if s.Value != CalculateScore(f) {
		t.Errorf("Value = %d, expected %d", s.Value, CalculateScore(f))
	}
	if s.Recommendation != RecReadyIntense {
		t.Errorf("Recommendation = %q, expected %q", s.Recommendation, RecReadyIntense)
	}
	if s.Factors != f {
		t.Errorf("Factors = %+v, expected %+v", s.Factors, f)
	}
}
