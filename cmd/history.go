package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/session"
	"github.com/abhisek/buddy/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, _ := cmd.Flags().GetString("child")
		n, _ := cmd.Flags().GetInt("n")

		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		history, err := store.LoadHistory(store.HistoryPath(dir))
		if err != nil {
			return err
		}

		type row struct {
			childID string
			attempt session.ActivityAttempt
		}
		var rows []row
		for _, log := range history {
			if childID != "" && log.ChildID != childID {
				continue
			}
			for _, att := range log.Attempts {
				rows = append(rows, row{childID: log.ChildID, attempt: att})
			}
		}
		if len(rows) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].attempt.Timestamp.After(rows[j].attempt.Timestamp)
		})
		if n > 0 && len(rows) > n {
			rows = rows[:n]
		}

		fmt.Printf("%-20s  %-8s  %-8s  %s\n", "When", "Child", "Activity", "Outcome")
		for _, r := range rows {
			fmt.Printf("%-20s  %-8s  %-8s  %s\n",
				r.attempt.Timestamp.Format("2006-01-02 15:04"),
				r.childID, r.attempt.ActivityID, r.attempt.Outcome)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("child", "", "Only show attempts for this child")
	historyCmd.Flags().Int("n", 20, "Max attempts to show")
}
