package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/buddy"
	"github.com/abhisek/buddy/internal/simulate"
	"github.com/abhisek/buddy/internal/store"
)

// seedCmd populates demo history by running simulated attempts for the first
// two children. Safe to re-run: it refuses once history holds any attempts.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo history with simulated attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		perChild, _ := cmd.Flags().GetInt("n")

		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		activities, profiles, history, err := loadWorld(dir)
		if err != nil {
			return err
		}

		total := 0
		for _, log := range history {
			total += len(log.Attempts)
		}
		if total > 0 {
			fmt.Println("seed: already populated")
			return nil
		}
		if len(profiles) == 0 {
			return fmt.Errorf("no child profiles to seed")
		}

		targets := profiles
		if len(targets) > 2 {
			targets = targets[:2]
		}

		// Backdate attempts across the last week so reports have a window.
		base := time.Now().AddDate(0, 0, -6)
		step := 0

		runner := buddy.NewRunner(simulate.Source{})
		for i := range targets {
			child := &targets[i]
			for a := 0; a < perChild; a++ {
				at := base.Add(time.Duration(step) * 9 * time.Hour)
				step++
				runner.Now = func() time.Time { return at }

				res, updated, err := runner.RunAttempt(child, activities, history)
				if err != nil {
					return fmt.Errorf("seed attempt for %s: %w", child.ID, err)
				}
				history = updated
				fmt.Printf("  %s: %s → %s\n", child.ID, res.Activity.ID, res.Outcome)
			}
			if err := store.SaveSnapshot(child, store.SnapshotPath(dir, child.ID)); err != nil {
				return err
			}
		}

		if err := store.SaveHistory(history, store.HistoryPath(dir)); err != nil {
			return err
		}
		fmt.Printf("Seeded %d attempts.\n", len(targets)*perChild)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("n", 4, "Attempts to seed per child")
}
