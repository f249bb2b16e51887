// Package report generates parent progress reports from a child's attempt
// history: per-skill and per-type success metrics over a period, strengths
// and growth areas, engaged interests, and recommended next activities.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

// OutcomeScores maps attempt outcomes to the report's success scale.
var OutcomeScores = map[session.Outcome]float64{
	session.OutcomeSuccess:  1.0,
	session.OutcomePartial:  0.6,
	session.OutcomeStruggle: 0.2,
	session.OutcomeSkipped:  0.0,
}

// SkillStat accumulates attempts and average success for one skill or type.
type SkillStat struct {
	Attempts int     `json:"attempts"`
	Total    float64 `json:"-"`
	Avg      float64 `json:"avg"`
}

// PeriodRange parses a period like "7d" into a [start, end] window ending now.
func PeriodRange(period string, now time.Time) (time.Time, time.Time, error) {
	if len(period) < 2 || period[len(period)-1] != 'd' {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q: use Nd where N is an integer and d=days", period)
	}
	n, err := strconv.Atoi(period[:len(period)-1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q: %w", period, err)
	}
	end := now
	start := end.AddDate(0, 0, -n)
	return start, end, nil
}

// collectAttempts gathers a child's attempts inside [start, end].
func collectAttempts(history []session.SessionLog, childID string, start, end time.Time) []session.ActivityAttempt {
	var rows []session.ActivityAttempt
	for _, att := range session.AttemptsFor(history, childID) {
		if !att.Timestamp.Before(start) && !att.Timestamp.After(end) {
			rows = append(rows, att)
		}
	}
	return rows
}

// fallbackIfEmpty substitutes the child's lifetime attempts when the period
// window is empty, reporting whether the fallback fired.
func fallbackIfEmpty(periodAttempts []session.ActivityAttempt, history []session.SessionLog, childID string) ([]session.ActivityAttempt, bool) {
	if len(periodAttempts) > 0 {
		return periodAttempts, false
	}
	return session.AttemptsFor(history, childID), true
}

// skillAndTypeMetrics aggregates success averages per skill and per type.
// Attempts referencing unknown activity ids are skipped.
func skillAndTypeMetrics(attempts []session.ActivityAttempt, idx map[string]catalog.Activity) (map[string]*SkillStat, map[string]*SkillStat) {
	skills := make(map[string]*SkillStat)
	types := make(map[string]*SkillStat)

	for _, att := range attempts {
		act, ok := idx[att.ActivityID]
		if !ok {
			continue
		}
		score := OutcomeScores[att.Outcome]

		for _, s := range act.Skills {
			st := skills[s]
			if st == nil {
				st = &SkillStat{}
				skills[s] = st
			}
			st.Attempts++
			st.Total += score
		}

		tt := types[string(act.Type)]
		if tt == nil {
			tt = &SkillStat{}
			types[string(act.Type)] = tt
		}
		tt.Attempts++
		tt.Total += score
	}

	for _, m := range []map[string]*SkillStat{skills, types} {
		for _, st := range m {
			if st.Attempts > 0 {
				st.Avg = st.Total / float64(st.Attempts)
			}
		}
	}
	return skills, types
}

// timeFitShare is the fraction of attempted activities that fit inside the
// child's attention span.
func timeFitShare(attempts []session.ActivityAttempt, idx map[string]catalog.Activity, attentionSpanMin int) float64 {
	if len(attempts) == 0 {
		return 0.0
	}
	ok := 0
	for _, att := range attempts {
		act, found := idx[att.ActivityID]
		if !found {
			continue
		}
		if act.EstimatedMin <= attentionSpanMin {
			ok++
		}
	}
	return float64(ok) / float64(len(attempts))
}

// classify splits skills into sparks (avg >= 0.75) and focus areas
// (avg <= 0.5), each needing at least 2 attempts, capped at the top 2.
func classify(skills map[string]*SkillStat) (sparks, focus []string) {
	for name, st := range skills {
		if st.Attempts >= 2 && st.Avg >= 0.75 {
			sparks = append(sparks, name)
		}
		if st.Attempts >= 2 && st.Avg <= 0.5 {
			focus = append(focus, name)
		}
	}

	sort.Slice(sparks, func(i, j int) bool {
		a, b := skills[sparks[i]], skills[sparks[j]]
		if a.Avg != b.Avg {
			return a.Avg > b.Avg
		}
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		return sparks[i] < sparks[j]
	})
	sort.Slice(focus, func(i, j int) bool {
		a, b := skills[focus[i]], skills[focus[j]]
		if a.Avg != b.Avg {
			return a.Avg < b.Avg
		}
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		return focus[i] < focus[j]
	})

	if len(sparks) > 2 {
		sparks = sparks[:2]
	}
	if len(focus) > 2 {
		focus = focus[:2]
	}
	return sparks, focus
}

// interestsEngaged lists up to 3 of the child's interests that the attempted
// activities actually touched (by type or tag).
func interestsEngaged(child *learner.ChildProfile, attempts []session.ActivityAttempt, idx map[string]catalog.Activity) []string {
	interests := make(map[string]bool, len(child.Interests))
	for _, in := range child.Interests {
		interests[strings.ToLower(in)] = true
	}

	hits := make(map[string]bool)
	for _, att := range attempts {
		act, ok := idx[att.ActivityID]
		if !ok {
			continue
		}
		tokens := []string{strings.ToLower(string(act.Type))}
		for _, t := range act.Tags {
			tokens = append(tokens, strings.ToLower(t))
		}
		for _, tok := range tokens {
			if interests[tok] {
				hits[tok] = true
			}
		}
	}

	out := make([]string, 0, len(hits))
	for h := range hits {
		out = append(out, h)
	}
	sort.Strings(out)
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
