package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/policy"
	"github.com/abhisek/buddy/internal/recommend"
	"github.com/abhisek/buddy/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend activities for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, _ := cmd.Flags().GetString("child")
		k, _ := cmd.Flags().GetInt("k")

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

		picks := recommend.Recommend(child, activities, history, k)
		if len(picks) == 0 {
			return fmt.Errorf("no activities to recommend")
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Recommendations for %s", child.Name)))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("style %s · reading %s · attention %d min",
			child.LearningStyle, child.ReadingLevel, child.AttentionSpanMin)))
		fmt.Println()

		for i, a := range picks {
			score := policy.TotalScore(a, child, history)
			fmt.Printf("%d. %s\n", i+1, theme.Highlight.Render(a.Title))
			fmt.Printf("   %s · %s · %d min · score %.3f\n", a.Type, a.Level, a.EstimatedMin, score)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("child", "", "Child ID (e.g. C001; defaults to the first profile)")
	recommendCmd.Flags().Int("k", 3, "How many activities to recommend (capped at 3)")
}
