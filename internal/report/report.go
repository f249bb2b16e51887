package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/recommend"
	"github.com/abhisek/buddy/internal/session"
	"github.com/abhisek/buddy/internal/store"
)

// Format selects the output file format(s).
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatBoth     Format = "both"
)

// homeTips offers a practice-at-home suggestion per focus skill.
var homeTips = map[string]string{
	"spelling":              "Play quick word-family games (cat, bat, mat). 5 minutes a day builds confidence.",
	"pattern_recognition":   "Look for patterns in nature or blocks at home. Ask: 'What comes next?'",
	"storytelling":          "At dinner, take turns adding a sentence to a silly family story.",
	"reading_comprehension": "After reading, ask: 'Who was the main character? What changed?'",
	"addition":              "Cook together and add ingredient counts (2 cups + 1 cup).",
	"subtraction":           "Snack math: 'We had 6 grapes, you ate 2—how many left?'",
	"logic":                 "Play 'Odd One Out' with household items and explain the reason.",
}

// Metrics is the JSON form of a report.
type Metrics struct {
	ChildID          string                `json:"child_id"`
	Period           string                `json:"period"`
	LifetimeFallback bool                  `json:"lifetime_fallback"`
	Skills           map[string]*SkillStat `json:"skills"`
	Types            map[string]*SkillStat `json:"types"`
	InterestsEngaged []string              `json:"interests_engaged"`
	TimeFitShare     float64               `json:"time_fit_share"`
	Recommended      []string              `json:"recommended"`
}

// Report holds rendered output for one child and period.
type Report struct {
	Child            *learner.ChildProfile
	PeriodLabel      string
	LifetimeFallback bool
	Markdown         string
	Metrics          Metrics
}

// Build assembles a report for the child over the given period (e.g. "7d"),
// falling back to lifetime data when the period holds no attempts.
func Build(child *learner.ChildProfile, activities []catalog.Activity, history []session.SessionLog, period string, now time.Time) (*Report, error) {
	start, end, err := PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	idx := catalog.Index(activities)
	attempts := collectAttempts(history, child.ID, start, end)
	attempts, lifetime := fallbackIfEmpty(attempts, history, child.ID)

	skills, types := skillAndTypeMetrics(attempts, idx)
	interests := interestsEngaged(child, attempts, idx)
	timeShare := timeFitShare(attempts, idx, child.AttentionSpanMin)

	picks := recommend.Recommend(child, activities, history, 3)

	periodLabel := fmt.Sprintf("%s → %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	pickIDs := make([]string, 0, len(picks))
	for _, p := range picks {
		pickIDs = append(pickIDs, p.ID)
	}

	return &Report{
		Child:            child,
		PeriodLabel:      periodLabel,
		LifetimeFallback: lifetime,
		Markdown:         renderMarkdown(child, periodLabel, lifetime, skills, types, interests, timeShare, picks),
		Metrics: Metrics{
			ChildID:          child.ID,
			Period:           periodLabel,
			LifetimeFallback: lifetime,
			Skills:           skills,
			Types:            types,
			InterestsEngaged: interests,
			TimeFitShare:     timeShare,
			Recommended:      pickIDs,
		},
	}, nil
}

// Write saves the report under outDir as <child-id>_<date>.md / .json per the
// requested format, returning the written paths. Files are written with the
// store's atomic replace discipline.
func Write(r *Report, outDir string, format Format, now time.Time) ([]string, error) {
	save := store.WriteFileAtomic
	stamp := now.Format("2006-01-02")
	var paths []string

	if format == FormatMarkdown || format == FormatBoth {
		p := filepath.Join(outDir, fmt.Sprintf("%s_%s.md", r.Child.ID, stamp))
		if err := save(p, []byte(r.Markdown)); err != nil {
			return paths, fmt.Errorf("write markdown report: %w", err)
		}
		paths = append(paths, p)
	}
	if format == FormatJSON || format == FormatBoth {
		data, err := json.MarshalIndent(r.Metrics, "", "  ")
		if err != nil {
			return paths, fmt.Errorf("marshal report metrics: %w", err)
		}
		p := filepath.Join(outDir, fmt.Sprintf("%s_%s.json", r.Child.ID, stamp))
		if err := save(p, data); err != nil {
			return paths, fmt.Errorf("write json report: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func renderMarkdown(child *learner.ChildProfile, periodLabel string, lifetime bool, skills, types map[string]*SkillStat, interests []string, timeShare float64, picks []catalog.Activity) string {
	sparks, focus := classify(skills)

	var b strings.Builder
	fmt.Fprintf(&b, "# Parent Report — %s\n\n**Period:** %s", child.Name, periodLabel)
	if lifetime {
		b.WriteString(" (lifetime snapshot)")
	}
	b.WriteString("\n\n")

	b.WriteString("## Highlights\n")
	fmt.Fprintf(&b, "- **Sparks:** %s\n", joinTitled(sparks))
	fmt.Fprintf(&b, "- **Growth areas:** %s\n", joinTitled(focus))
	fmt.Fprintf(&b, "- **Interests engaged:** %s\n", dashIfEmpty(strings.Join(interests, ", ")))
	fmt.Fprintf(&b, "- **Time fit:** %d%% of activities matched attention span\n\n", int(timeShare*100+0.5))

	b.WriteString("## Activity Snapshot\n**By Type**\n")
	if lines := statLines(types, false); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n") + "\n")
	} else {
		b.WriteString("_No activity in period_\n")
	}
	b.WriteString("\n**By Skill**\n")
	if lines := statLines(skills, true); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n") + "\n")
	} else {
		b.WriteString("_No skill data_\n")
	}
	b.WriteString("\n")

	b.WriteString("## Recommended Next Activities\n")
	if len(picks) == 0 {
		b.WriteString("_No picks_\n")
	} else {
		for _, a := range picks {
			fmt.Fprintf(&b, "- **%s** (_%s · %s · %s_)\n", a.Title, a.ID, a.Type, a.Level)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Try at Home\n")
	tips := 0
	for _, s := range focus {
		if tip, ok := homeTips[s]; ok && tips < 3 {
			fmt.Fprintf(&b, "- **%s** — %s\n", titleSkill(s), tip)
			tips++
		}
	}
	if tips == 0 {
		b.WriteString("- Keep sessions short and fun. Let your child explain their thinking out loud.\n")
	}

	return b.String()
}

// statLines renders "- **Name** — N attempts, avg P%" lines ordered by
// attempts then average, descending. Skill maps cap at 6 lines.
func statLines(stats map[string]*SkillStat, titled bool) []string {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := stats[names[i]], stats[names[j]]
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		if a.Avg != b.Avg {
			return a.Avg > b.Avg
		}
		return names[i] < names[j]
	})
	if titled && len(names) > 6 {
		names = names[:6]
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		display := name
		if titled {
			display = titleSkill(name)
		}
		st := stats[name]
		lines = append(lines, fmt.Sprintf("- **%s** — %d attempts, avg %d%%", display, st.Attempts, int(st.Avg*100+0.5)))
	}
	return lines
}

// titleSkill turns "reading_comprehension" into "Reading Comprehension".
func titleSkill(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func joinTitled(skills []string) string {
	if len(skills) == 0 {
		return "—"
	}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, titleSkill(s))
	}
	return strings.Join(out, ", ")
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
