package policy

import (
	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

// DefaultRecentK is how many recent attempts count toward the recency penalty.
const DefaultRecentK = 2

// Scoring weights. The positive weights sum to 0.95; the recency weight is
// subtracted, so a recently repeated activity loses 0.05.
const (
	WeightSkillFit       = 0.35
	WeightInterestFit    = 0.20
	WeightStyleFit       = 0.15
	WeightLevelFit       = 0.15
	WeightTimeFit        = 0.10
	WeightRecencyPenalty = 0.05
)

// TotalScore combines the six fit functions into one weighted score for an
// (activity, child, history) triple. Recency is computed against the
// most-recent-first activity ids derived from the full history.
func TotalScore(activity catalog.Activity, child *learner.ChildProfile, history []session.SessionLog) float64 {
	recentIDs := session.RecentActivityIDs(history, DefaultRecentK)

	return WeightSkillFit*SkillFit(activity, child) +
		WeightInterestFit*InterestFit(activity, child) +
		WeightStyleFit*StyleFit(activity, child) +
		WeightLevelFit*LevelFit(activity, child) +
		WeightTimeFit*TimeFit(activity, child) -
		WeightRecencyPenalty*RecencyPenalty(activity.ID, recentIDs, DefaultRecentK)
}

// Component is one scoring dimension inside an explanation.
type Component struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted_score"`
}

// Explanation breaks a total score down per component. It is produced for
// transparency only; recommendation decisions never read it.
type Explanation struct {
	ActivityID    string      `json:"activity_id"`
	ActivityTitle string      `json:"activity_title"`
	ActivityType  string      `json:"activity_type"`
	ActivityLevel string      `json:"activity_level"`
	ChildID       string      `json:"child_id"`
	ChildName     string      `json:"child_name"`
	Components    []Component `json:"component_scores"`
	Total         float64     `json:"total_score"`
}

// Explain recomputes every fit with its weight and weighted contribution. The
// returned total is identical to TotalScore for the same inputs.
func Explain(activity catalog.Activity, child *learner.ChildProfile, history []session.SessionLog) Explanation {
	recentIDs := session.RecentActivityIDs(history, DefaultRecentK)

	components := []Component{
		{Name: "skill_fit", Score: SkillFit(activity, child), Weight: WeightSkillFit},
		{Name: "interest_fit", Score: InterestFit(activity, child), Weight: WeightInterestFit},
		{Name: "style_fit", Score: StyleFit(activity, child), Weight: WeightStyleFit},
		{Name: "level_fit", Score: LevelFit(activity, child), Weight: WeightLevelFit},
		{Name: "time_fit", Score: TimeFit(activity, child), Weight: WeightTimeFit},
		{Name: "recency_penalty", Score: RecencyPenalty(activity.ID, recentIDs, DefaultRecentK), Weight: WeightRecencyPenalty},
	}

	total := 0.0
	for i := range components {
		components[i].Weighted = components[i].Weight * components[i].Score
		if components[i].Name == "recency_penalty" {
			total -= components[i].Weighted
		} else {
			total += components[i].Weighted
		}
	}

	return Explanation{
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		ActivityType:  string(activity.Type),
		ActivityLevel: string(activity.Level),
		ChildID:       child.ID,
		ChildName:     child.Name,
		Components:    components,
		Total:         total,
	}
}
