package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/policy"
	"github.com/abhisek/buddy/internal/ui/theme"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Break down why an activity scores the way it does for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, _ := cmd.Flags().GetString("child")
		activityID, _ := cmd.Flags().GetString("activity")
		asJSON, _ := cmd.Flags().GetBool("json")

		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		activities, profiles, history, err := loadWorld(dir)
		if err != nil {
			return err
		}
		child, err := findChild(profiles, childID)
		if err != nil {
			return err
		}

		idx := catalog.Index(activities)
		activity, ok := idx[activityID]
		if !ok {
			return fmt.Errorf("activity %q not found", activityID)
		}

		exp := policy.Explain(activity, child, history)

		if asJSON {
			out, err := json.MarshalIndent(exp, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal explanation: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("%s for %s", activity.Title, child.Name)))
		fmt.Println()
		for _, c := range exp.Components {
			sign := "+"
			if c.Name == "recency_penalty" {
				sign = "-"
			}
			fmt.Printf("  %-16s %.3f × %.2f = %s%.4f\n", c.Name, c.Score, c.Weight, sign, c.Weighted)
		}
		fmt.Println()
		fmt.Printf("  %s %.4f\n", theme.Highlight.Render("total"), exp.Total)
		return nil
	},
}

func init() {
	explainCmd.Flags().String("child", "", "Child ID (defaults to the first profile)")
	explainCmd.Flags().String("activity", "", "Activity ID to explain")
	explainCmd.Flags().Bool("json", false, "Print the breakdown as JSON")
	explainCmd.MarkFlagRequired("activity")
}
