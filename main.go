package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"stride/internal/config"
	"stride/internal/service"
	"stride/internal/store"
	"stride/internal/tui"
	"stride/internal/wearable"
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Local-first fitness tracking in your terminal",
	Long: `Stride keeps your workout history, GPS analysis, and recovery
scores in a local SQLite database. Running it with no arguments opens
the interactive dashboard; subcommands cover pairing, syncing,
importing, and logging from scripts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func main() {
	// Optional .env for STRIDE_DATA_DIR and friends
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runTUI() error {
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
		fmt.Println("No watch paired yet. Pair one first:")
		fmt.Println()
		fmt.Println("  stride pair --seed 42 --name \"Pulse S1\"")
		fmt.Println()
		fmt.Println("You can also import .fit or .gpx files directly:")
		fmt.Println()
		fmt.Println("  stride import morning-run.gpx")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading paired device: %w", err)
	}

	syncSvc := service.NewSyncService(device, db, cfg)
	querySvc := service.NewQueryService(db)

	app := tui.NewApp(syncSvc, querySvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// loadConfig loads and validates the config file. When the file is
// missing a default one is written and guidance printed; ok reports
// whether the caller should keep going.
func loadConfig() (cfg *config.Config, ok bool, err error) {
	cfg, err = config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating a default one...")
		if err := config.CreateDefault(); err != nil {
			return nil, false, fmt.Errorf("creating default config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nWrote %s/config.json\n\n", configDir)
		fmt.Println("Set your weight there for calorie estimates, then run stride again.")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil, false, nil
	}

	return cfg, true, nil
}

// pairedDevice rebuilds the simulated watch from the stored pairing
func pairedDevice(db *store.DB) (*wearable.Device, error) {
	d, err := db.GetDevice()
	if err != nil {
		return nil, err
	}
	return wearable.NewDevice(d.Seed), nil
}
