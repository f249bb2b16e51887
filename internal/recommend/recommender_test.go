package recommend

import (
	"testing"
	"time"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

func logicalChild() *learner.ChildProfile {
	return &learner.ChildProfile{
		ID:               "C001",
		Name:             "Leo",
		Interests:        []string{"numbers"},
		LearningStyle:    learner.StyleLogical,
		AttentionSpanMin: 30,
		ReadingLevel:     learner.ReadingOnGrade,
		BaselineSkills:   map[string]float64{"addition": 0.7},
	}
}

func mathActivity(id string) catalog.Activity {
	return catalog.Activity{
		ID:           id,
		Type:         catalog.TypeMath,
		Title:        "Math " + id,
		Level:        catalog.LevelMedium,
		Skills:       []string{"addition"},
		Tags:         []string{"numbers"},
		EstimatedMin: 10,
		Format:       catalog.FormatQnA,
	}
}

func ids(activities []catalog.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func TestRecommend_EmptyInputs(t *testing.T) {
	child := logicalChild()

	if got := Recommend(child, nil, nil, 3); got != nil {
		t.Errorf("empty catalog: got %v, want nil", got)
	}
	if got := Recommend(child, []catalog.Activity{mathActivity("M1")}, nil, 0); got != nil {
		t.Errorf("k=0: got %v, want nil", got)
	}
	if got := Recommend(child, []catalog.Activity{mathActivity("M1")}, nil, -2); got != nil {
		t.Errorf("negative k: got %v, want nil", got)
	}
}

func TestRecommend_CapsAtThree(t *testing.T) {
	activities := []catalog.Activity{
		mathActivity("M1"), mathActivity("M2"), mathActivity("M3"),
		mathActivity("M4"), mathActivity("M5"),
	}

	got := Recommend(logicalChild(), activities, nil, 10)
	if len(got) != MaxResults {
		t.Errorf("got %d picks, want cap of %d", len(got), MaxResults)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	activities := []catalog.Activity{
		mathActivity("M1"), mathActivity("M2"), mathActivity("M3"), mathActivity("M4"),
	}
	history := []session.SessionLog{
		{
			ChildID: "C001",
			Attempts: []session.ActivityAttempt{
				{ActivityID: "M2", Timestamp: time.Now(), Outcome: session.OutcomeSuccess},
			},
		},
	}

	first := ids(Recommend(logicalChild(), activities, history, 3))
	for i := 0; i < 5; i++ {
		again := ids(Recommend(logicalChild(), activities, history, 3))
		if len(again) != len(first) {
			t.Fatalf("run %d: %v vs %v", i, again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: %v vs %v", i, again, first)
			}
		}
	}
}

func TestRecommend_DiversitySubstitution(t *testing.T) {
	// Four equally-scored math activities dominate one storytelling activity.
	// The top 3 would be single-typed, so the lowest pick (the first one, on
	// the score tie) is swapped for the storytelling candidate.
	story := catalog.Activity{
		ID:           "S1",
		Type:         catalog.TypeStorytelling,
		Title:        "A Story",
		Level:        catalog.LevelEasy,
		Skills:       []string{"narration"},
		EstimatedMin: 10,
		Format:       catalog.FormatFreeform,
	}
	activities := []catalog.Activity{
		mathActivity("M1"), mathActivity("M2"), mathActivity("M3"), mathActivity("M4"), story,
	}

	got := ids(Recommend(logicalChild(), activities, nil, 3))
	want := []string{"M2", "M3", "S1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestRecommend_NoDiversityCandidateKeepsSelection(t *testing.T) {
	// Every activity is math, so no substitution is possible; the selection
	// stays single-typed rather than shrinking.
	activities := []catalog.Activity{
		mathActivity("M1"), mathActivity("M2"), mathActivity("M3"), mathActivity("M4"),
	}

	got := Recommend(logicalChild(), activities, nil, 3)
	if len(got) != 3 {
		t.Errorf("got %d picks, want 3", len(got))
	}
	for _, a := range got {
		if a.Type != catalog.TypeMath {
			t.Errorf("unexpected type %q", a.Type)
		}
	}
}

func TestRecommend_RecentRepeatRanksLower(t *testing.T) {
	activities := []catalog.Activity{mathActivity("A1"), mathActivity("A2")}
	history := []session.SessionLog{
		{
			ChildID: "C001",
			Attempts: []session.ActivityAttempt{
				{ActivityID: "A1", Timestamp: time.Now(), Outcome: session.OutcomeSuccess},
			},
		},
	}

	got := ids(Recommend(logicalChild(), activities, history, 2))
	if len(got) != 2 || got[0] != "A2" || got[1] != "A1" {
		t.Errorf("got %v, want [A2 A1]", got)
	}
}

func TestRecommend_RelaxedFallbackForTinyCatalog(t *testing.T) {
	// The only activity was just attempted; the relaxed pass drops its own
	// history so it is still recommended instead of returning nothing.
	activities := []catalog.Activity{mathActivity("M1")}
	history := []session.SessionLog{
		{
			ChildID: "C001",
			Attempts: []session.ActivityAttempt{
				{ActivityID: "M1", Timestamp: time.Now(), Outcome: session.OutcomeSuccess},
			},
		},
	}

	got := ids(Recommend(logicalChild(), activities, history, 3))
	if len(got) != 1 || got[0] != "M1" {
		t.Errorf("got %v, want [M1]", got)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	activities := []catalog.Activity{
		mathActivity("M3"), mathActivity("M1"), mathActivity("M2"),
	}

	got := ids(Recommend(logicalChild(), activities, nil, 3))
	want := []string{"M3", "M1", "M2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want catalog order %v", got, want)
		}
	}
}
