package store

import (
	"errors"
	"testing"
	"time"
)

func testWorkout(externalID string, start time.Time) *Workout {
	return &Workout{
		ExternalID:   externalID,
		Name:         "Morning Run",
		ActivityType: "running",
		Source:       "device",
		StartedAt:    start,
		EndedAt:      start.Add(30 * time.Minute),
		WeightKg:     70,
		SampleCount:  360,
	}
}

func TestUpsertWorkout(t *testing.T) {
	db := OpenTest(t)
	start := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	id, err := db.UpsertWorkout(testWorkout("w-1", start))
	if err != nil {
		t.Fatalf("UpsertWorkout() error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected nonzero row id")
	}

	got, err := db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout() error: %v", err)
	}
	if got.ExternalID != "w-1" || got.Name != "Morning Run" || got.ActivityType != "running" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", got.StartedAt, start)
	}
	if got.Analyzed {
		t.Error("new workout should not be analyzed")
	}

	// Re-upserting the same external ID keeps the row and resets the
	// analyzed flag.
	if err := db.MarkAnalyzed(id); err != nil {
		t.Fatalf("MarkAnalyzed() error: %v", err)
	}

	w := testWorkout("w-1", start)
	w.Name = "Morning Run (renamed)"
	id2, err := db.UpsertWorkout(w)
	if err != nil {
		t.Fatalf("second UpsertWorkout() error: %v", err)
	}
	if id2 != id {
		t.Errorf("upsert created a new row: %d != %d", id2, id)
	}

	got, err = db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout() error: %v", err)
	}
	if got.Name != "Morning Run (renamed)" {
		t.Errorf("Name = %q, expected renamed", got.Name)
	}
	if got.Analyzed {
		t.Error("re-upsert should clear the analyzed flag")
	}

	count, err := db.CountWorkouts()
	if err != nil {
		t.Fatalf("CountWorkouts() error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, expected 1", count)
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	db := OpenTest(t)

	_, err := db.GetWorkout(999)
	if !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestSaveWorkoutStats(t *testing.T) {
	db := OpenTest(t)
	start := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	id, err := db.UpsertWorkout(testWorkout("w-1", start))
	if err != nil {
		t.Fatalf("UpsertWorkout() error: %v", err)
	}

	stats := &Workout{
		Distance:      5012.5,
		Duration:      1800,
		MovingSeconds: 1710,
		AvgPace:       "5:59",
		MaxSpeedKmh:   14.2,
		ElevationGain: 42,
		ElevationLoss: 40,
		Calories:      350,
		PauseCount:    2,
		PausedSeconds: 90,
		TrackPolyline: "_p~iF~ps|U",
	}
	if err := db.SaveWorkoutStats(id, stats); err != nil {
		t.Fatalf("SaveWorkoutStats() error: %v", err)
	}
	if err := db.MarkAnalyzed(id); err != nil {
		t.Fatalf("MarkAnalyzed() error: %v", err)
	}

	got, err := db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout() error: %v", err)
	}
	if got.Distance != 5012.5 || got.AvgPace != "5:59" || got.Calories != 350 {
		t.Errorf("stats not saved: %+v", got)
	}
	if got.PauseCount != 2 || got.PausedSeconds != 90 {
		t.Errorf("pause stats not saved: %+v", got)
	}
	if got.TrackPolyline != "_p~iF~ps|U" {
		t.Errorf("polyline = %q", got.TrackPolyline)
	}
	if !got.Analyzed {
		t.Error("expected analyzed flag set")
	}

	if err := db.SaveWorkoutStats(999, stats); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("expected ErrWorkoutNotFound for missing workout, got %v", err)
	}
}

func TestWorkoutQueries(t *testing.T) {
	db := OpenTest(t)
	base := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		w := testWorkout(string(rune('a'+i)), base.AddDate(0, 0, i))
		id, err := db.UpsertWorkout(w)
		if err != nil {
			t.Fatalf("UpsertWorkout() error: %v", err)
		}
		// Analyze the first three with rising calories.
		if i < 3 {
			if err := db.SaveWorkoutStats(id, &Workout{Calories: 100 * (i + 1), AvgPace: "6:00"}); err != nil {
				t.Fatalf("SaveWorkoutStats() error: %v", err)
			}
			if err := db.MarkAnalyzed(id); err != nil {
				t.Fatalf("MarkAnalyzed() error: %v", err)
			}
		}
	}

	t.Run("list is newest first", func(t *testing.T) {
		workouts, err := db.ListWorkouts(10, 0)
		if err != nil {
			t.Fatalf("ListWorkouts() error: %v", err)
		}
		if len(workouts) != 5 {
			t.Fatalf("expected 5 workouts, got %d", len(workouts))
		}
		for i := 1; i < len(workouts); i++ {
			if workouts[i].StartedAt.After(workouts[i-1].StartedAt) {
				t.Errorf("workouts out of order at %d", i)
			}
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := db.ListWorkouts(2, 2)
		if err != nil {
			t.Fatalf("ListWorkouts() error: %v", err)
		}
		if len(page) != 2 {
			t.Errorf("expected 2 workouts, got %d", len(page))
		}
	})

	t.Run("between window", func(t *testing.T) {
		workouts, err := db.ListWorkoutsBetween(base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
		if err != nil {
			t.Fatalf("ListWorkoutsBetween() error: %v", err)
		}
		if len(workouts) != 3 {
			t.Errorf("expected 3 workouts in window, got %d", len(workouts))
		}

		count, err := db.CountWorkoutsBetween(base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
		if err != nil {
			t.Fatalf("CountWorkoutsBetween() error: %v", err)
		}
		if count != 3 {
			t.Errorf("count = %d, expected 3", count)
		}
	})

	t.Run("needing analysis", func(t *testing.T) {
		pending, err := db.GetWorkoutsNeedingAnalysis()
		if err != nil {
			t.Fatalf("GetWorkoutsNeedingAnalysis() error: %v", err)
		}
		if len(pending) != 2 {
			t.Errorf("expected 2 pending workouts, got %d", len(pending))
		}
	})

	t.Run("average calories", func(t *testing.T) {
		avg, err := db.AvgCaloriesBetween(base, base.AddDate(0, 0, 10))
		if err != nil {
			t.Fatalf("AvgCaloriesBetween() error: %v", err)
		}
		// Analyzed workouts burned 100, 200, 300.
		if avg != 200 {
			t.Errorf("avg = %v, expected 200", avg)
		}

		empty, err := db.AvgCaloriesBetween(base.AddDate(1, 0, 0), base.AddDate(1, 0, 10))
		if err != nil {
			t.Fatalf("AvgCaloriesBetween() empty window error: %v", err)
		}
		if empty != 0 {
			t.Errorf("empty window avg = %v, expected 0", empty)
		}
	})
}

func TestTrackPointsRoundTrip(t *testing.T) {
	db := OpenTest(t)
	start := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	id, err := db.UpsertWorkout(testWorkout("w-1", start))
	if err != nil {
		t.Fatalf("UpsertWorkout() error: %v", err)
	}

	alt := 52.5
	speed := 2.8
	acc := 8.0
	points := []TrackPoint{
		{Lat: 37.7749, Lng: -122.4194, Altitude: &alt, Speed: &speed, Accuracy: &acc, TimestampMs: 1000},
		{Lat: 37.7750, Lng: -122.4195, TimestampMs: 6000},
	}

	if err := db.SaveTrackPoints(id, points); err != nil {
		t.Fatalf("SaveTrackPoints() error: %v", err)
	}

	got, err := db.GetTrackPoints(id)
	if err != nil {
		t.Fatalf("GetTrackPoints() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Seq != 0 || got[1].Seq != 1 {
		t.Errorf("sequence numbers wrong: %d, %d", got[0].Seq, got[1].Seq)
	}
	if got[0].Altitude == nil || *got[0].Altitude != 52.5 {
		t.Errorf("altitude not preserved: %v", got[0].Altitude)
	}
	if got[1].Altitude != nil || got[1].Speed != nil || got[1].Accuracy != nil {
		t.Errorf("nil fields not preserved: %+v", got[1])
	}

	// Saving again replaces rather than appends.
	if err := db.SaveTrackPoints(id, points[:1]); err != nil {
		t.Fatalf("second SaveTrackPoints() error: %v", err)
	}
	count, err := db.CountTrackPoints(id)
	if err != nil {
		t.Fatalf("CountTrackPoints() error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, expected 1 after replace", count)
	}
}

func TestSplitsRoundTrip(t *testing.T) {
	db := OpenTest(t)
	start := time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)

	id, err := db.UpsertWorkout(testWorkout("w-1", start))
	if err != nil {
		t.Fatalf("UpsertWorkout() error: %v", err)
	}

	splits := []Split{
		{Km: 1, Distance: 1001, Seconds: 301, Pace: "5:00", ElevationGain: 5},
		{Km: 2, Distance: 1003, Seconds: 280, Pace: "4:39", ElevationGain: 0},
	}
	if err := db.ReplaceSplits(id, splits); err != nil {
		t.Fatalf("ReplaceSplits() error: %v", err)
	}

	got, err := db.GetSplits(id)
	if err != nil {
		t.Fatalf("GetSplits() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(got))
	}
	if got[0].Km != 1 || got[0].Pace != "5:00" || got[1].Km != 2 {
		t.Errorf("splits mismatch: %+v", got)
	}

	if err := db.ReplaceSplits(id, splits[:1]); err != nil {
		t.Fatalf("second ReplaceSplits() error: %v", err)
	}
	got, err = db.GetSplits(id)
	if err != nil {
		t.Fatalf("GetSplits() error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 split after replace, got %d", len(got))
	}
}

func TestDeviceRoundTrip(t *testing.T) {
	db := OpenTest(t)

	if _, err := db.GetDevice(); !errors.Is(err, ErrNotPaired) {
		t.Errorf("expected ErrNotPaired, got %v", err)
	}

	paired := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	d := &Device{DeviceID: "dev-abc", Name: "Pulse S1", Seed: 42, PairedAt: paired}
	if err := db.SaveDevice(d); err != nil {
		t.Fatalf("SaveDevice() error: %v", err)
	}

	got, err := db.GetDevice()
	if err != nil {
		t.Fatalf("GetDevice() error: %v", err)
	}
	if got.DeviceID != "dev-abc" || got.Seed != 42 || !got.PairedAt.Equal(paired) {
		t.Errorf("device mismatch: %+v", got)
	}

	// Pairing again replaces the singleton.
	d2 := &Device{DeviceID: "dev-xyz", Name: "Pulse S2", Seed: 7, PairedAt: paired}
	if err := db.SaveDevice(d2); err != nil {
		t.Fatalf("second SaveDevice() error: %v", err)
	}
	got, err = db.GetDevice()
	if err != nil {
		t.Fatalf("GetDevice() error: %v", err)
	}
	if got.DeviceID != "dev-xyz" {
		t.Errorf("device not replaced: %+v", got)
	}

	if err := db.DeleteDevice(); err != nil {
		t.Fatalf("DeleteDevice() error: %v", err)
	}
	if _, err := db.GetDevice(); !errors.Is(err, ErrNotPaired) {
		t.Errorf("expected ErrNotPaired after delete, got %v", err)
	}
}
