package service

import (
	"fmt"

	"stride/internal/route"
	"stride/internal/store"
)

// WorkoutDetail holds everything the workout detail screen shows
type WorkoutDetail struct {
	Workout   store.Workout
	Splits    []store.Split
	FastestKm int // 0 when there are no splits
	Pauses    []route.Pause
	HasTrack  bool
}

// GetWorkoutDetail loads one workout with its splits and pauses
func (s *QueryService) GetWorkoutDetail(id int64) (*WorkoutDetail, error) {
	w, err := s.store.GetWorkout(id)
	if err != nil {
		return nil, err
	}

	splits, err := s.store.GetSplits(id)
	if err != nil {
		return nil, fmt.Errorf("getting splits: %w", err)
	}

	detail := &WorkoutDetail{
		Workout: *w,
		Splits:  splits,
	}
	if fastest := route.FastestSplit(toRouteSplits(splits)); fastest != nil {
		detail.FastestKm = fastest.Km
	}

	points, err := s.store.GetTrackPoints(id)
	if err != nil {
		return nil, fmt.Errorf("getting track points: %w", err)
	}
	if len(points) > 0 {
		detail.HasTrack = true
		detail.Pauses = route.DetectPauses(pointsToSamples(points), route.DefaultMinMovingSpeed)
	}

	return detail, nil
}

func toRouteSplits(splits []store.Split) []route.Split {
	out := make([]route.Split, len(splits))
	for i, sp := range splits {
		out[i] = route.Split{
			Km:            sp.Km,
			Distance:      sp.Distance,
			Seconds:       sp.Seconds,
			Pace:          sp.Pace,
			PaceSeconds:   route.PaceSeconds(sp.Distance, sp.Seconds),
			ElevationGain: sp.ElevationGain,
		}
	}
	return out
}
