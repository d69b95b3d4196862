package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stride/internal/service"
	"stride/internal/store"
)

var (
	logSleep    float64
	logSoreness float64
	logEnergy   float64
	logRest     bool
	logNote     string
	logDate     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log daily wellness (sleep, soreness, energy)",
	Long: `Log records how you feel today and recomputes the day's recovery
score. Omitted values fall back to neutral defaults when scoring.
Logging the same date again overwrites the earlier entry.`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().Float64Var(&logSleep, "sleep", 0, "hours slept (0-24)")
	logCmd.Flags().Float64Var(&logSoreness, "soreness", 0, "muscle soreness (0-10)")
	logCmd.Flags().Float64Var(&logEnergy, "energy", 0, "energy level (0-10)")
	logCmd.Flags().BoolVar(&logRest, "rest", false, "mark the day as a rest day")
	logCmd.Flags().StringVar(&logNote, "note", "", "free-form note")
	logCmd.Flags().StringVar(&logDate, "date", "", "date to log, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	date := logDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry := &store.DailyLog{
		Date:    date,
		RestDay: logRest,
		Notes:   logNote,
	}

	if cmd.Flags().Changed("sleep") {
		if logSleep < 0 || logSleep > 24 {
			return fmt.Errorf("--sleep must be between 0 and 24, got %g", logSleep)
		}
		v := logSleep
		entry.SleepHours = &v
	}
	if cmd.Flags().Changed("soreness") {
		if logSoreness < 0 || logSoreness > 10 {
			return fmt.Errorf("--soreness must be between 0 and 10, got %g", logSoreness)
		}
		v := logSoreness
		entry.Soreness = &v
	}
	if cmd.Flags().Changed("energy") {
		if logEnergy < 0 || logEnergy > 10 {
			return fmt.Errorf("--energy must be between 0 and 10, got %g", logEnergy)
		}
		v := logEnergy
		entry.Energy = &v
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	score, err := service.NewRecoveryService(db).SaveLog(entry)
	if err != nil {
		return fmt.Errorf("saving log: %w", err)
	}

	fmt.Printf("Logged %s. Recovery score: %d/100\n", date, score.Value)
	fmt.Printf("  %s\n", score.Recommendation)
	return nil
}
