package adapt

import (
	"math"
	"testing"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestApply_Deltas(t *testing.T) {
	tests := []struct {
		outcome session.Outcome
		want    float64
	}{
		{session.OutcomeSuccess, 0.53},
		{session.OutcomePartial, 0.51},
		{session.OutcomeStruggle, 0.49},
		{session.OutcomeSkipped, 0.50},
	}

	for _, tt := range tests {
		child := &learner.ChildProfile{
			ID:             "C001",
			BaselineSkills: map[string]float64{"addition": 0.5},
		}
		activity := catalog.Activity{ID: "A1", Skills: []string{"addition"}}

		Apply(child, activity, tt.outcome)
		got := child.BaselineSkills["addition"]
		if !almostEqual(got, tt.want) {
			t.Errorf("outcome %q: skill = %f, want %f", tt.outcome, got, tt.want)
		}
	}
}

func TestApply_ClampsAtOne(t *testing.T) {
	child := &learner.ChildProfile{
		BaselineSkills: map[string]float64{"counting": 0.99},
	}
	Apply(child, catalog.Activity{Skills: []string{"counting"}}, session.OutcomeSuccess)

	if got := child.BaselineSkills["counting"]; !almostEqual(got, 1.0) {
		t.Errorf("skill = %f, want clamped to 1.0", got)
	}
}

func TestApply_ClampsAtZero(t *testing.T) {
	child := &learner.ChildProfile{
		BaselineSkills: map[string]float64{"counting": 0.005},
	}
	Apply(child, catalog.Activity{Skills: []string{"counting"}}, session.OutcomeStruggle)

	if got := child.BaselineSkills["counting"]; !almostEqual(got, 0.0) {
		t.Errorf("skill = %f, want clamped to 0.0", got)
	}
}

func TestApply_NewSkillStartsFromDefault(t *testing.T) {
	child := &learner.ChildProfile{
		BaselineSkills: map[string]float64{"addition": 0.8},
	}
	Apply(child, catalog.Activity{Skills: []string{"fractions"}}, session.OutcomeSuccess)

	// Unassessed skill starts at 0.5, then +0.03.
	if got := child.BaselineSkills["fractions"]; !almostEqual(got, 0.53) {
		t.Errorf("new skill = %f, want 0.53", got)
	}
	if got := child.BaselineSkills["addition"]; !almostEqual(got, 0.8) {
		t.Errorf("untouched skill = %f, want 0.8 unchanged", got)
	}
}

func TestApply_NilSkillMap(t *testing.T) {
	child := &learner.ChildProfile{}
	Apply(child, catalog.Activity{Skills: []string{"reasoning"}}, session.OutcomePartial)

	if got := child.BaselineSkills["reasoning"]; !almostEqual(got, 0.51) {
		t.Errorf("skill = %f, want 0.51", got)
	}
}

func TestApply_AllActivitySkillsAdjusted(t *testing.T) {
	child := &learner.ChildProfile{
		BaselineSkills: map[string]float64{"counting": 0.6, "addition": 0.4},
	}
	Apply(child, catalog.Activity{Skills: []string{"counting", "addition"}}, session.OutcomeSuccess)

	if got := child.BaselineSkills["counting"]; !almostEqual(got, 0.63) {
		t.Errorf("counting = %f, want 0.63", got)
	}
	if got := child.BaselineSkills["addition"]; !almostEqual(got, 0.43) {
		t.Errorf("addition = %f, want 0.43", got)
	}
}
