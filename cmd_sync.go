package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stride/internal/service"
	"stride/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull workouts and sleep from the paired watch",
	Long: `Sync pulls new workout sessions and sleep records from the paired
watch, analyzes the GPS tracks, and recomputes recovery scores. Safe to
run repeatedly; already-synced sessions are skipped.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, ok, err := loadConfig()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	device, err := pairedDevice(db)
	if errors.Is(err, store.ErrNotPaired) {
		fmt.Println("No watch paired. Run 'stride pair' first.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading paired device: %w", err)
	}

	syncSvc := service.NewSyncService(device, db, cfg)

	progress := make(chan service.SyncProgress, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		lastPhase := ""
		for p := range progress {
			if p.Phase == lastPhase {
				continue
			}
			lastPhase = p.Phase
			switch p.Phase {
			case "sessions":
				fmt.Println("Pulling workouts from watch...")
			case "analysis":
				fmt.Println("Analyzing workouts...")
			case "recovery":
				fmt.Println("Updating recovery scores...")
			}
		}
	}()

	result, err := syncSvc.SyncAll(cmd.Context(), progress)
	<-done
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	fmt.Printf("Done: %d workouts pulled, %d sleep records, %d analyzed, %d recovery scores.\n",
		result.WorkoutsStored, result.SleepRecordsStored, result.WorkoutsAnalyzed, result.ScoresComputed)

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	return nil
}
