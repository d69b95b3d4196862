package service

import (
	"fmt"
	"testing"
	"time"

	"stride/internal/recovery"
	"stride/internal/store"
)

func float64Ptr(v float64) *float64 { return &v }

func TestComputeDailyDefaults(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	score, err := svc.ComputeDaily("2025-06-15")
	if err != nil {
		t.Fatalf("ComputeDaily: %v", err)
	}
	if score.Value != 75 {
		t.Errorf("score = %d, want 75", score.Value)
	}
	if score.Recommendation != recovery.RecModerate {
		t.Errorf("recommendation = %q, want %q", score.Recommendation, recovery.RecModerate)
	}
	if score.Factors.SleepHours != recovery.DefaultSleepHours {
		t.Errorf("sleep factor = %v, want default %v", score.Factors.SleepHours, recovery.DefaultSleepHours)
	}

	stored, err := db.GetRecoveryScore("2025-06-15")
	if err != nil {
		t.Fatalf("GetRecoveryScore: %v", err)
	}
	if stored == nil {
		t.Fatal("score not persisted")
	}
	if stored.Score != 75 {
		t.Errorf("stored score = %d, want 75", stored.Score)
	}
	if stored.Recommendation != recovery.RecModerate {
		t.Errorf("stored recommendation = %q, want %q", stored.Recommendation, recovery.RecModerate)
	}
	if stored.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}
}

func TestComputeDailyUsesLoggedWellness(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	log := &store.DailyLog{
		Date:       "2025-06-15",
		SleepHours: float64Ptr(8.5),
		Soreness:   float64Ptr(2),
		Energy:     float64Ptr(8),
	}
	if err := db.UpsertDailyLog(log); err != nil {
		t.Fatalf("UpsertDailyLog: %v", err)
	}

	score, err := svc.ComputeDaily("2025-06-15")
	if err != nil {
		t.Fatalf("ComputeDaily: %v", err)
	}
	// 50 + 40 sleep (capped) - 10 soreness + 24 energy, clamped to 100
	if score.Value != 100 {
		t.Errorf("score = %d, want 100", score.Value)
	}
	if score.Recommendation != recovery.RecReadyIntense {
		t.Errorf("recommendation = %q, want %q", score.Recommendation, recovery.RecReadyIntense)
	}
	if score.Factors.SleepHours != 8.5 {
		t.Errorf("sleep factor = %v, want 8.5", score.Factors.SleepHours)
	}
}

func TestComputeDailyCountsTrainingLoad(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	day := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		started := day.AddDate(0, 0, i)
		w := &store.Workout{
			ExternalID:   fmt.Sprintf("w-%d", i),
			Name:         "Morning Run",
			ActivityType: "running",
			Source:       "device",
			StartedAt:    started,
			EndedAt:      started.Add(45 * time.Minute),
			WeightKg:     70,
		}
		id, err := db.UpsertWorkout(w)
		if err != nil {
			t.Fatalf("UpsertWorkout: %v", err)
		}
		w.Calories = 400
		if err := db.SaveWorkoutStats(id, w); err != nil {
			t.Fatalf("SaveWorkoutStats: %v", err)
		}
		if err := db.MarkAnalyzed(id); err != nil {
			t.Fatalf("MarkAnalyzed: %v", err)
		}
	}

	score, err := svc.ComputeDaily("2025-06-15")
	if err != nil {
		t.Fatalf("ComputeDaily: %v", err)
	}
	if score.Factors.WorkoutsThisWeek != 5 {
		t.Errorf("workouts this week = %d, want 5", score.Factors.WorkoutsThisWeek)
	}
	if score.Factors.RecentIntensity != 400 {
		t.Errorf("recent intensity = %v, want 400", score.Factors.RecentIntensity)
	}
	// defaults give 75; the fifth workout costs 3 and intensity 400 costs 4
	if score.Value != 68 {
		t.Errorf("score = %d, want 68", score.Value)
	}
}

func TestComputeDailyBadDate(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	if _, err := svc.ComputeDaily("June 15"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestRestAdviceFreshDatabase(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	advice, err := svc.RestAdvice("2025-06-15")
	if err != nil {
		t.Fatalf("RestAdvice: %v", err)
	}
	if !advice.ShouldRest {
		t.Error("expected rest advice when no rest days are logged")
	}
	if advice.Reason != recovery.ReasonNoRestInTwoWeeks {
		t.Errorf("reason = %q, want %q", advice.Reason, recovery.ReasonNoRestInTwoWeeks)
	}
	if advice.Severity != recovery.SeverityMedium {
		t.Errorf("severity = %q, want %q", advice.Severity, recovery.SeverityMedium)
	}

	stored, err := db.GetRecoveryScore("2025-06-15")
	if err != nil {
		t.Fatalf("GetRecoveryScore: %v", err)
	}
	if stored == nil {
		t.Fatal("advice did not compute the day's score")
	}
}

func TestRestAdviceAfterRecentRest(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	if err := db.UpsertDailyLog(&store.DailyLog{Date: "2025-06-13", RestDay: true}); err != nil {
		t.Fatalf("UpsertDailyLog: %v", err)
	}

	advice, err := svc.RestAdvice("2025-06-15")
	if err != nil {
		t.Fatalf("RestAdvice: %v", err)
	}
	if advice.ShouldRest {
		t.Errorf("unexpected rest advice: %s", advice.Reason)
	}
	if advice.Reason != recovery.ReasonRecoveryOnTrack {
		t.Errorf("reason = %q, want %q", advice.Reason, recovery.ReasonRecoveryOnTrack)
	}
}

func TestRestAdviceLongStreak(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	// training logged since June 4, never a rest day
	if err := db.UpsertDailyLog(&store.DailyLog{Date: "2025-06-04", Energy: float64Ptr(6)}); err != nil {
		t.Fatalf("UpsertDailyLog: %v", err)
	}

	advice, err := svc.RestAdvice("2025-06-15")
	if err != nil {
		t.Fatalf("RestAdvice: %v", err)
	}
	if !advice.ShouldRest {
		t.Fatal("expected rest advice after 11 days without rest")
	}
	if advice.Reason != recovery.ReasonNoRecentRest {
		t.Errorf("reason = %q, want %q", advice.Reason, recovery.ReasonNoRecentRest)
	}
	if advice.Severity != recovery.SeverityHigh {
		t.Errorf("severity = %q, want %q", advice.Severity, recovery.SeverityHigh)
	}
}

func TestSaveLog(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	entry := &store.DailyLog{
		Date:       "2025-06-15",
		SleepHours: float64Ptr(4),
		Soreness:   float64Ptr(9),
		Energy:     float64Ptr(2),
		Notes:      "rough week",
	}
	score, err := svc.SaveLog(entry)
	if err != nil {
		t.Fatalf("SaveLog: %v", err)
	}
	// 50 + 20 sleep - 45 soreness + 6 energy
	if score.Value != 31 {
		t.Errorf("score = %d, want 31", score.Value)
	}
	if score.Recommendation != recovery.RecRecover {
		t.Errorf("recommendation = %q, want %q", score.Recommendation, recovery.RecRecover)
	}

	stored, err := db.GetDailyLog("2025-06-15")
	if err != nil {
		t.Fatalf("GetDailyLog: %v", err)
	}
	if stored.Notes != "rough week" {
		t.Errorf("notes = %q, want %q", stored.Notes, "rough week")
	}
}

func TestSaveLogBadDate(t *testing.T) {
	db := store.OpenTest(t)
	svc := NewRecoveryService(db)

	if _, err := svc.SaveLog(&store.DailyLog{Date: "15/06/2025"}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
