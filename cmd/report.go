package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate parent progress reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, _ := cmd.Flags().GetString("child")
		all, _ := cmd.Flags().GetBool("all")
		period, _ := cmd.Flags().GetString("period")
		format, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")

		if childID != "" && all {
			return fmt.Errorf("use --child or --all, not both")
		}

		switch report.Format(format) {
		case report.FormatMarkdown, report.FormatJSON, report.FormatBoth:
		default:
			return fmt.Errorf("invalid format %q: use md, json, or both", format)
		}

		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		activities, profiles, history, err := loadWorld(dir)
		if err != nil {
			return err
		}

		var targets []*learner.ChildProfile
		if all {
			for i := range profiles {
				targets = append(targets, &profiles[i])
			}
		} else {
			child, err := findChild(profiles, childID)
			if err != nil {
				return err
			}
			targets = append(targets, child)
		}

		now := time.Now()
		var written []string
		for _, child := range targets {
			r, err := report.Build(child, activities, history, period, now)
			if err != nil {
				return fmt.Errorf("report for %s: %w", child.ID, err)
			}
			paths, err := report.Write(r, outDir, report.Format(format), now)
			if err != nil {
				return fmt.Errorf("report for %s: %w", child.ID, err)
			}
			written = append(written, paths...)
		}

		fmt.Println("Wrote:")
		for _, p := range written {
			fmt.Println(" -", p)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("child", "", "Child ID like C001")
	reportCmd.Flags().Bool("all", false, "Generate reports for all children")
	reportCmd.Flags().String("period", "7d", "Report window, e.g. 7d, 14d, 30d")
	reportCmd.Flags().String("format", "md", "Output format: md, json, or both")
	reportCmd.Flags().String("out", "reports", "Output directory")
}
