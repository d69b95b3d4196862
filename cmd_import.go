package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stride/internal/service"
	"stride/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Import workout files (.fit or .gpx)",
	Long: `Import decodes workout files recorded by other devices or apps and
stores them alongside synced workouts. Files are identified by content,
so importing the same file twice does not duplicate the workout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
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

	importer := service.NewImporter(db, cfg.Athlete.WeightKg)
	results, err := importer.ImportFiles(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "failed: %v\n", r.Err)
			continue
		}
		fmt.Printf("imported %q from %s (%.1f km)\n", r.Name, r.Path, r.Distance/1000)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
