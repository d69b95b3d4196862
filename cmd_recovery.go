package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stride/internal/service"
	"stride/internal/store"
)

var recoveryDate string

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Show the recovery score and rest-day advice",
	RunE:  runRecovery,
}

func init() {
	recoveryCmd.Flags().StringVar(&recoveryDate, "date", "", "date to score, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(recoveryCmd)
}

func runRecovery(cmd *cobra.Command, args []string) error {
	date := recoveryDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	recoverySvc := service.NewRecoveryService(db)

	score, err := recoverySvc.ComputeDaily(date)
	if err != nil {
		return fmt.Errorf("computing score: %w", err)
	}
	advice, err := recoverySvc.RestAdvice(date)
	if err != nil {
		return fmt.Errorf("rest advice: %w", err)
	}

	f := score.Factors
	fmt.Printf("Recovery score for %s: %d/100\n", date, score.Value)
	fmt.Printf("  sleep %.1f h, soreness %.0f/10, energy %.0f/10\n", f.SleepHours, f.Soreness, f.Energy)
	fmt.Printf("  %d workouts this week, %d days since last rest\n", f.WorkoutsThisWeek, f.DaysSinceRest)
	fmt.Printf("  %s\n", score.Recommendation)

	if advice.ShouldRest {
		fmt.Printf("Rest suggested (%s): %s\n", advice.Severity, advice.Reason)
	} else {
		fmt.Printf("Keep training: %s\n", advice.Reason)
	}
	return nil
}
