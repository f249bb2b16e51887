package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/store"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the activity catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities (optionally filtered by type or level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFilter, _ := cmd.Flags().GetString("type")
		levelFilter, _ := cmd.Flags().GetString("level")

		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		activities, err := store.LoadCatalog(store.CatalogPath(dir))
		if err != nil {
			return err
		}

		var shown []catalog.Activity
		for _, a := range activities {
			if typeFilter != "" && string(a.Type) != typeFilter {
				continue
			}
			if levelFilter != "" && string(a.Level) != levelFilter {
				continue
			}
			shown = append(shown, a)
		}
		if len(shown) == 0 {
			return fmt.Errorf("no matching activities")
		}

		// Header.
		fmt.Printf("%-8s  %-36s  %-12s  %-6s  %5s  %-8s  %s\n",
			"ID", "Title", "Type", "Level", "Min", "Format", "Skills")
		fmt.Println(strings.Repeat("─", 110))

		for _, a := range shown {
			title := a.Title
			if len(title) > 36 {
				title = title[:33] + "..."
			}
			fmt.Printf("%-8s  %-36s  %-12s  %-6s  %5d  %-8s  %s\n",
				a.ID, title, a.Type, a.Level, a.EstimatedMin, a.Format,
				strings.Join(a.Skills, ", "))
		}

		fmt.Printf("\n%d activities\n", len(shown))
		return nil
	},
}

var catalogSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show catalog counts by type and level",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		activities, err := store.LoadCatalog(store.CatalogPath(dir))
		if err != nil {
			return err
		}

		s := catalog.Summarize(activities)
		fmt.Printf("Total: %d\n\nBy type:\n", s.Total)
		types := make([]string, 0, len(s.ByType))
		for t := range s.ByType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-12s %d\n", t, s.ByType[catalog.ActivityType(t)])
		}
		fmt.Println("\nBy level:")
		for _, l := range []catalog.Level{catalog.LevelEasy, catalog.LevelMedium, catalog.LevelHard} {
			if n, ok := s.ByLevel[l]; ok {
				fmt.Printf("  %-12s %d\n", l, n)
			}
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("type", "", "Filter by type (e.g. math, reading)")
	catalogListCmd.Flags().String("level", "", "Filter by level (easy, medium, hard)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSummaryCmd)
}
