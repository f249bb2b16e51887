package report

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func reportNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func reportChild() *learner.ChildProfile {
	return &learner.ChildProfile{
		ID:               "C001",
		Name:             "Aarav",
		Interests:        []string{"animals"},
		LearningStyle:    learner.StyleAuditory,
		AttentionSpanMin: 15,
		ReadingLevel:     learner.ReadingOnGrade,
		BaselineSkills:   map[string]float64{"spelling": 0.6, "addition": 0.4},
	}
}

func reportCatalog() []catalog.Activity {
	return []catalog.Activity{
		{
			ID: "A1", Type: catalog.TypeSpelling, Title: "Animal Word Hunt",
			Level: catalog.LevelEasy, Skills: []string{"spelling"}, Tags: []string{"animals"},
			EstimatedMin: 10, Format: catalog.FormatQnA,
			Rubric: catalog.Rubric{Answers: []catalog.Answer{catalog.StringAnswer("cat")}},
		},
		{
			ID: "A2", Type: catalog.TypeMath, Title: "Long Division",
			Level: catalog.LevelMedium, Skills: []string{"addition"},
			EstimatedMin: 30, Format: catalog.FormatQnA,
			Rubric: catalog.Rubric{Answers: []catalog.Answer{catalog.NumberAnswer(7)}},
		},
	}
}

func reportHistory(now time.Time) []session.SessionLog {
	return []session.SessionLog{
		{
			ChildID: "C001",
			Attempts: []session.ActivityAttempt{
				{ActivityID: "A1", Timestamp: now.Add(-48 * time.Hour), Outcome: session.OutcomeSuccess},
				{ActivityID: "A1", Timestamp: now.Add(-24 * time.Hour), Outcome: session.OutcomeSuccess},
				{ActivityID: "A2", Timestamp: now.Add(-36 * time.Hour), Outcome: session.OutcomeStruggle},
				{ActivityID: "A2", Timestamp: now.Add(-12 * time.Hour), Outcome: session.OutcomeStruggle},
			},
		},
	}
}

func TestPeriodRange(t *testing.T) {
	now := reportNow()

	start, end, err := PeriodRange("7d", now)
	if err != nil {
		t.Fatal(err)
	}
	if !end.Equal(now) {
		t.Errorf("end = %v, want now", end)
	}
	if !start.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("start = %v, want now-7d", start)
	}

	for _, bad := range []string{"", "d", "7w", "seven", "7"} {
		if _, _, err := PeriodRange(bad, now); err == nil {
			t.Errorf("PeriodRange(%q) should fail", bad)
		}
	}
}

func TestBuild_Metrics(t *testing.T) {
	now := reportNow()
	r, err := Build(reportChild(), reportCatalog(), reportHistory(now), "7d", now)
	if err != nil {
		t.Fatal(err)
	}

	if r.LifetimeFallback {
		t.Error("period has attempts; fallback must not fire")
	}

	spelling := r.Metrics.Skills["spelling"]
	if spelling == nil || spelling.Attempts != 2 || !almostEqual(spelling.Avg, 1.0) {
		t.Errorf("spelling stat = %+v, want 2 attempts avg 1.0", spelling)
	}
	addition := r.Metrics.Skills["addition"]
	if addition == nil || addition.Attempts != 2 || !almostEqual(addition.Avg, 0.2) {
		t.Errorf("addition stat = %+v, want 2 attempts avg 0.2", addition)
	}

	mathType := r.Metrics.Types["math"]
	if mathType == nil || !almostEqual(mathType.Avg, 0.2) {
		t.Errorf("math type stat = %+v, want avg 0.2", mathType)
	}

	// A1 (10 min) fits the 15-minute span, A2 (30 min) does not: 2 of 4.
	if !almostEqual(r.Metrics.TimeFitShare, 0.5) {
		t.Errorf("TimeFitShare = %f, want 0.5", r.Metrics.TimeFitShare)
	}

	if len(r.Metrics.InterestsEngaged) != 1 || r.Metrics.InterestsEngaged[0] != "animals" {
		t.Errorf("InterestsEngaged = %v, want [animals]", r.Metrics.InterestsEngaged)
	}

	if len(r.Metrics.Recommended) == 0 {
		t.Error("expected recommended next activities")
	}
}

func TestBuild_Markdown(t *testing.T) {
	now := reportNow()
	r, err := Build(reportChild(), reportCatalog(), reportHistory(now), "7d", now)
	if err != nil {
		t.Fatal(err)
	}

	md := r.Markdown
	for _, want := range []string{
		"# Parent Report — Aarav",
		"**Sparks:** Spelling",
		"**Growth areas:** Addition",
		"## Recommended Next Activities",
		"## Try at Home",
		// addition is a focus area with a canned home tip
		"Cook together",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBuild_LifetimeFallback(t *testing.T) {
	now := reportNow()

	// All attempts are older than the 7-day window.
	history := []session.SessionLog{
		{
			ChildID: "C001",
			Attempts: []session.ActivityAttempt{
				{ActivityID: "A1", Timestamp: now.AddDate(0, 0, -30), Outcome: session.OutcomeSuccess},
			},
		},
	}

	r, err := Build(reportChild(), reportCatalog(), history, "7d", now)
	if err != nil {
		t.Fatal(err)
	}
	if !r.LifetimeFallback {
		t.Error("empty period must fall back to lifetime attempts")
	}
	if st := r.Metrics.Skills["spelling"]; st == nil || st.Attempts != 1 {
		t.Errorf("fallback skills = %+v, want the lifetime attempt", st)
	}
	if !strings.Contains(r.Markdown, "lifetime snapshot") {
		t.Error("markdown should flag the lifetime fallback")
	}
}

func TestClassify(t *testing.T) {
	skills := map[string]*SkillStat{
		"spelling":  {Attempts: 3, Avg: 0.9},
		"addition":  {Attempts: 2, Avg: 0.8},
		"counting":  {Attempts: 4, Avg: 0.78},
		"fractions": {Attempts: 2, Avg: 0.3},
		"reasoning": {Attempts: 1, Avg: 0.1}, // too few attempts
		"phonics":   {Attempts: 2, Avg: 0.5},
	}

	sparks, focus := classify(skills)

	// Top 2 sparks by average: spelling (0.9), addition (0.8).
	if len(sparks) != 2 || sparks[0] != "spelling" || sparks[1] != "addition" {
		t.Errorf("sparks = %v, want [spelling addition]", sparks)
	}
	// Focus ordered worst first: fractions (0.3), phonics (0.5); reasoning
	// excluded on attempt count.
	if len(focus) != 2 || focus[0] != "fractions" || focus[1] != "phonics" {
		t.Errorf("focus = %v, want [fractions phonics]", focus)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	skills := map[string]*SkillStat{
		"at_spark_threshold": {Attempts: 2, Avg: 0.75},
		"at_focus_threshold": {Attempts: 2, Avg: 0.5},
		"in_between":         {Attempts: 5, Avg: 0.6},
	}

	sparks, focus := classify(skills)
	if len(sparks) != 1 || sparks[0] != "at_spark_threshold" {
		t.Errorf("sparks = %v, want threshold skill included", sparks)
	}
	if len(focus) != 1 || focus[0] != "at_focus_threshold" {
		t.Errorf("focus = %v, want threshold skill included", focus)
	}
}

func TestWrite_BothFormats(t *testing.T) {
	now := reportNow()
	r, err := Build(reportChild(), reportCatalog(), reportHistory(now), "7d", now)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	paths, err := Write(r, dir, FormatBoth, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}

	wantMD := filepath.Join(dir, "C001_2026-08-30.md")
	wantJSON := filepath.Join(dir, "C001_2026-08-30.json")
	if paths[0] != wantMD || paths[1] != wantJSON {
		t.Errorf("paths = %v, want [%s %s]", paths, wantMD, wantJSON)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output file %s: %v", p, err)
		}
	}
}
