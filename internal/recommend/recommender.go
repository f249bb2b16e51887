// Package recommend selects a diverse, non-repetitive top-k set of activities
// for a child from policy scores. The pipeline is fully deterministic: given
// identical catalog, child state, and history, it returns identical output.
package recommend

import (
	"sort"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/policy"
	"github.com/abhisek/buddy/internal/session"
)

// MaxResults is the hard cap on recommendations, regardless of the requested k.
const MaxResults = 3

type scored struct {
	activity catalog.Activity
	score    float64
}

// Recommend returns up to min(k, 3) activities for the child, best fit first.
// Ties keep catalog order. A diversity pass swaps the lowest-scoring pick for
// a later candidate of an unrepresented type when the selection would
// otherwise be single-typed; if no later candidate offers a new type the
// selection stays non-diverse (best effort, single substitution).
func Recommend(child *learner.ChildProfile, activities []catalog.Activity, history []session.SessionLog, k int) []catalog.Activity {
	if len(activities) == 0 || k <= 0 {
		return nil
	}

	ranked := scoreAll(child, activities, history)
	selected := take(ranked, k)

	// Diversity pass: single substitution, searching forward from position k.
	if distinctTypes(selected) < 2 && len(ranked) > k {
		if i := lowestIndex(selected); i >= 0 {
			types := typeSet(selected)
			for _, cand := range ranked[k:] {
				if !types[cand.activity.Type] {
					selected = append(append(selected[:i:i], selected[i+1:]...), cand)
					break
				}
			}
		}
	}

	// Fallback: with fewer than 2 picks, re-score each activity against a
	// history stripped of its own attempts so its recency penalty drops out.
	if len(selected) < 2 {
		relaxed := make([]scored, 0, len(activities))
		for _, a := range activities {
			relaxed = append(relaxed, scored{
				activity: a,
				score:    policy.TotalScore(a, child, withoutActivity(history, a.ID)),
			})
		}
		sort.SliceStable(relaxed, func(i, j int) bool {
			return relaxed[i].score > relaxed[j].score
		})
		selected = take(relaxed, k)
	}

	limit := k
	if limit > MaxResults {
		limit = MaxResults
	}
	if limit > len(selected) {
		limit = len(selected)
	}

	out := make([]catalog.Activity, 0, limit)
	for _, s := range selected[:limit] {
		out = append(out, s.activity)
	}
	return out
}

// scoreAll scores every activity with the full history and sorts descending,
// keeping catalog order for ties.
func scoreAll(child *learner.ChildProfile, activities []catalog.Activity, history []session.SessionLog) []scored {
	ranked := make([]scored, 0, len(activities))
	for _, a := range activities {
		ranked = append(ranked, scored{activity: a, score: policy.TotalScore(a, child, history)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

func take(ranked []scored, k int) []scored {
	if k > len(ranked) {
		k = len(ranked)
	}
	return append([]scored(nil), ranked[:k]...)
}

func distinctTypes(selected []scored) int {
	return len(typeSet(selected))
}

func typeSet(selected []scored) map[catalog.ActivityType]bool {
	types := make(map[catalog.ActivityType]bool, len(selected))
	for _, s := range selected {
		types[s.activity.Type] = true
	}
	return types
}

// lowestIndex returns the index of the first selected entry carrying the
// minimum score, or -1 for an empty selection.
func lowestIndex(selected []scored) int {
	idx := -1
	for i, s := range selected {
		if idx == -1 || s.score < selected[idx].score {
			idx = i
		}
	}
	return idx
}

// withoutActivity copies the history minus any attempts of the given
// activity id. Logs left with no attempts are dropped.
func withoutActivity(history []session.SessionLog, activityID string) []session.SessionLog {
	var out []session.SessionLog
	for _, log := range history {
		var attempts []session.ActivityAttempt
		for _, att := range log.Attempts {
			if att.ActivityID != activityID {
				attempts = append(attempts, att)
			}
		}
		if len(attempts) > 0 {
			out = append(out, session.SessionLog{ChildID: log.ChildID, Attempts: attempts})
		}
	}
	return out
}
