// Package adapt applies the bounded skill-drift model: after each attempt a
// fixed per-outcome delta is applied identically to every skill the activity
// targets. There is no decay, no per-skill learning rate, and no cross-skill
// transfer.
package adapt

import (
	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

// OutcomeDeltas maps an attempt outcome to the skill adjustment it earns.
var OutcomeDeltas = map[session.Outcome]float64{
	session.OutcomeSuccess:  0.03,
	session.OutcomePartial:  0.01,
	session.OutcomeStruggle: -0.01,
	session.OutcomeSkipped:  0.0,
}

// Apply adjusts the child's estimate for every skill on the activity by the
// outcome's delta, clamped to [0,1]. Skills the child has never been assessed
// on start from the 0.5 default, so the skill map may grow.
func Apply(child *learner.ChildProfile, activity catalog.Activity, outcome session.Outcome) {
	delta := OutcomeDeltas[outcome]

	if child.BaselineSkills == nil {
		child.BaselineSkills = make(map[string]float64, len(activity.Skills))
	}
	for _, skill := range activity.Skills {
		child.BaselineSkills[skill] = clamp(child.Skill(skill)+delta, 0.0, 1.0)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
