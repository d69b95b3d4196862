package service

import (
	"context"
	"testing"
	"time"

	"stride/internal/config"
	"stride/internal/store"
	"stride/internal/wearable"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	return &cfg
}

func TestSyncAll(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewSyncService(wearable.NewDevice(42), db, testConfig())

	result, err := svc.SyncAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("sync reported errors: %v", result.Errors)
	}
	if result.SessionsFetched == 0 {
		t.Fatal("no sessions fetched from device")
	}
	if result.WorkoutsStored != result.SessionsFetched {
		t.Errorf("stored %d of %d sessions", result.WorkoutsStored, result.SessionsFetched)
	}
	if result.SleepRecordsStored == 0 {
		t.Error("no sleep records stored")
	}
	if result.WorkoutsAnalyzed != result.WorkoutsStored {
		t.Errorf("analyzed %d of %d workouts", result.WorkoutsAnalyzed, result.WorkoutsStored)
	}
	if result.ScoresComputed == 0 {
		t.Error("no recovery scores computed")
	}

	pending, err := db.GetWorkoutsNeedingAnalysis()
	if err != nil {
		t.Fatalf("GetWorkoutsNeedingAnalysis: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("%d workouts still unanalyzed after sync", len(pending))
	}

	workouts, err := db.ListWorkouts(1000, 0)
	if err != nil {
		t.Fatalf("ListWorkouts: %v", err)
	}
	for _, w := range workouts {
		if !w.Analyzed {
			t.Errorf("workout %d not marked analyzed", w.ID)
		}
		if w.Distance <= 0 {
			t.Errorf("workout %d has no distance", w.ID)
		}
		if w.AvgPace == "" {
			t.Errorf("workout %d has no pace", w.ID)
		}
		if w.TrackPolyline == "" {
			t.Errorf("workout %d has no polyline", w.ID)
		}
		splits, err := db.GetSplits(w.ID)
		if err != nil {
			t.Fatalf("GetSplits(%d): %v", w.ID, err)
		}
		if len(splits) == 0 {
			t.Errorf("workout %d has no splits", w.ID)
		}
	}

	today := time.Now().Format(store.DateLayout)
	score, err := db.GetRecoveryScore(today)
	if err != nil {
		t.Fatalf("GetRecoveryScore: %v", err)
	}
	if score == nil {
		t.Fatal("no recovery score for today after sync")
	}
	if score.Recommendation == "" {
		t.Error("score has no recommendation")
	}

	for _, key := range []string{store.SyncKeyLastSessionSync, store.SyncKeyLastSleepSync} {
		ts, err := db.GetSyncTime(key)
		if err != nil {
			t.Fatalf("GetSyncTime(%s): %v", key, err)
		}
		if ts.IsZero() {
			t.Errorf("sync cursor %s not advanced", key)
		}
	}
}

func TestSyncAllIdempotent(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewSyncService(wearable.NewDevice(7), db, testConfig())

	if _, err := svc.SyncAll(context.Background(), nil); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	before, err := db.CountWorkouts()
	if err != nil {
		t.Fatalf("CountWorkouts: %v", err)
	}

	result, err := svc.SyncAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("second sync reported errors: %v", result.Errors)
	}

	after, err := db.CountWorkouts()
	if err != nil {
		t.Fatalf("CountWorkouts: %v", err)
	}
	if after != before {
		t.Errorf("re-sync changed workout count from %d to %d", before, after)
	}

	pending, err := db.GetWorkoutsNeedingAnalysis()
	if err != nil {
		t.Fatalf("GetWorkoutsNeedingAnalysis: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("%d workouts unanalyzed after re-sync", len(pending))
	}
}

func TestSyncAllProgress(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewSyncService(wearable.NewDevice(42), db, testConfig())

	progress := make(chan SyncProgress, 256)
	phases := make(map[string]bool)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			phases[p.Phase] = true
		}
	}()

	if _, err := svc.SyncAll(context.Background(), progress); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	<-done

	for _, phase := range []string{"sessions", "analysis", "recovery"} {
		if !phases[phase] {
			t.Errorf("no progress reported for phase %q", phase)
		}
	}
}

func TestSyncAllCanceled(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewSyncService(wearable.NewDevice(42), db, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.SyncAll(ctx, nil); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
