package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/buddy"
	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
	"github.com/abhisek/buddy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "buddy",
	Short: "Learning buddy for kids",
	Long:  "Buddy — recommends, runs, and scores short educational activities, adapting to each child over time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the data directory (overrides BUDDY_DATA env var)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data (highest priority),
// then BUDDY_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return store.DefaultDataDir()
}

// loadWorld loads catalog, profiles, and history from the data directory.
func loadWorld(dir string) ([]catalog.Activity, []learner.ChildProfile, []session.SessionLog, error) {
	activities, err := store.LoadCatalog(store.CatalogPath(dir))
	if err != nil {
		return nil, nil, nil, err
	}
	profiles, err := store.LoadProfiles(store.ProfilesPath(dir))
	if err != nil {
		return nil, nil, nil, err
	}
	history, err := store.LoadHistory(store.HistoryPath(dir))
	if err != nil {
		return nil, nil, nil, err
	}
	return activities, profiles, history, nil
}

// findChild resolves a --child flag value, defaulting to the first profile
// when the flag is empty.
func findChild(profiles []learner.ChildProfile, id string) (*learner.ChildProfile, error) {
	if id == "" {
		if len(profiles) == 0 {
			return nil, fmt.Errorf("no child profiles found")
		}
		return &profiles[0], nil
	}
	child := learner.Find(profiles, id)
	if child == nil {
		return nil, fmt.Errorf("child %q: %w", id, buddy.ErrChildNotFound)
	}
	return child, nil
}
