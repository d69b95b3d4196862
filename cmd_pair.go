package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stride/internal/store"
	"stride/internal/wearable"
)

var (
	pairSeed  int64
	pairName  string
	pairForce bool
)

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair a watch with this database",
	Long: `Pair registers the watch this database syncs from.

The seed identifies the watch: pairing with the same seed always yields
the same workout history. Re-pairing a different watch requires --force
and keeps any workouts already synced.`,
	RunE: runPair,
}

func init() {
	pairCmd.Flags().Int64Var(&pairSeed, "seed", 0, "watch seed (0 picks one from the clock)")
	pairCmd.Flags().StringVar(&pairName, "name", "Pulse S1", "watch name")
	pairCmd.Flags().BoolVar(&pairForce, "force", false, "replace an existing pairing")
	rootCmd.AddCommand(pairCmd)
}

func runPair(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	existing, err := db.GetDevice()
	if err == nil && !pairForce {
		fmt.Printf("Already paired with %s (%s).\n", existing.Name, existing.DeviceID)
		fmt.Println("Use --force to replace the pairing.")
		return nil
	}
	if err != nil && !errors.Is(err, store.ErrNotPaired) {
		return fmt.Errorf("checking pairing: %w", err)
	}

	seed := pairSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	device := &store.Device{
		DeviceID: wearable.DeviceID(seed),
		Name:     pairName,
		Seed:     seed,
		PairedAt: time.Now().UTC(),
	}
	if err := db.SaveDevice(device); err != nil {
		return fmt.Errorf("saving pairing: %w", err)
	}

	fmt.Printf("Paired %s (%s).\n", device.Name, device.DeviceID)
	fmt.Println("Run 'stride sync' to pull its workouts.")
	return nil
}
