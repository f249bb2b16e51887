package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/buddy/internal/buddy"
	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
	"github.com/abhisek/buddy/internal/simulate"
	"github.com/abhisek/buddy/internal/store"
	"github.com/abhisek/buddy/internal/ui/theme"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a learning session for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		childID, _ := cmd.Flags().GetString("child")
		simulated, _ := cmd.Flags().GetBool("simulate")

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

		fmt.Println(theme.Title.Render(fmt.Sprintf("Hello %s! Let's have a great learning session!", child.Name)))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("reading %s · style %s", child.ReadingLevel, child.LearningStyle)))
		fmt.Println()

		var source buddy.AnswerSource = promptSource{in: bufio.NewReader(os.Stdin)}
		if simulated {
			source = simulate.Source{}
		}
		runner := buddy.NewRunner(source)

		results, updated, err := runner.RunSession(child, activities, history)
		if err != nil {
			return err
		}

		for i, res := range results {
			fmt.Printf("--- Activity %d/%d ---\n", i+1, len(results))
			if simulated {
				fmt.Println(theme.Body.Render(buddy.Intro(res.Activity)))
				fmt.Println(theme.Hint.Render("simulated answer: " + res.Answer))
			}
			fmt.Println(outcomeStyle(res.Outcome).Render(string(res.Outcome)) + "  " + res.Eval.Reason)
			encouragement, tip := buddy.Encouragement(res.Outcome)
			fmt.Println(encouragement)
			fmt.Println(theme.Hint.Render("Tip: " + tip))
			fmt.Println()
		}

		if err := store.SaveHistory(updated, store.HistoryPath(dir)); err != nil {
			return err
		}
		if err := store.SaveSnapshot(child, store.SnapshotPath(dir, child.ID)); err != nil {
			return err
		}

		fmt.Println(theme.Highlight.Render("Session complete!"), "Skills updated and saved.")
		return nil
	},
}

func init() {
	sessionCmd.Flags().String("child", "", "Child ID (defaults to the first profile)")
	sessionCmd.Flags().Bool("simulate", false, "Simulate answers instead of prompting")
}

// promptSource reads answers from stdin: one line for Q&A, lines until a
// blank one for freeform.
type promptSource struct {
	in *bufio.Reader
}

func (p promptSource) Answer(child *learner.ChildProfile, activity catalog.Activity) (string, error) {
	fmt.Println(theme.Body.Render(buddy.Intro(activity)))
	if activity.Description != "" {
		fmt.Println(theme.Subtitle.Render(activity.Description))
	}

	if activity.Format == catalog.FormatQnA {
		fmt.Print("Your answer: ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	fmt.Println("Write your response (finish with an empty line):")
	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" && len(lines) > 0 {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func outcomeStyle(outcome session.Outcome) lipgloss.Style {
	switch outcome {
	case session.OutcomeSuccess:
		return theme.Correct
	case session.OutcomePartial:
		return theme.Partial
	case session.OutcomeStruggle, session.OutcomeSkipped:
		return theme.Incorrect
	default:
		return theme.Body
	}
}
