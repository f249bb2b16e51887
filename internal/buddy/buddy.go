// Package buddy orchestrates one attempt end-to-end: pick an activity, obtain
// an answer, evaluate it, classify the outcome, record the attempt, and adapt
// the child's skills.
package buddy

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/buddy/internal/adapt"
	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/evaluate"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/recommend"
	"github.com/abhisek/buddy/internal/session"
)

var (
	// ErrChildNotFound reports a learner id absent from the profile list.
	ErrChildNotFound = errors.New("child not found")

	// ErrNoActivities reports an empty catalog or an empty recommendation.
	ErrNoActivities = errors.New("no activities available")
)

// AnswerSource obtains an answer for an activity, from the child or from a
// simulator.
type AnswerSource interface {
	Answer(child *learner.ChildProfile, activity catalog.Activity) (string, error)
}

// AttemptResult is the full record of one completed attempt.
type AttemptResult struct {
	Activity catalog.Activity
	Answer   string
	Eval     evaluate.Result
	Outcome  session.Outcome
	Attempt  session.ActivityAttempt
}

// Runner drives attempt cycles. Now is injectable for tests and defaults to
// time.Now.
type Runner struct {
	Source AnswerSource
	Now    func() time.Time
}

// NewRunner creates a Runner over the given answer source.
func NewRunner(source AnswerSource) *Runner {
	return &Runner{Source: source, Now: time.Now}
}

// RunAttempt runs one full attempt cycle for the child: the top recommended
// activity is attempted, evaluated, and recorded, and the child's skills are
// adapted in place. It returns the attempt and the updated history; the input
// history is not mutated.
func (r *Runner) RunAttempt(child *learner.ChildProfile, activities []catalog.Activity, history []session.SessionLog) (*AttemptResult, []session.SessionLog, error) {
	picks := recommend.Recommend(child, activities, history, 1)
	if len(picks) == 0 {
		return nil, history, ErrNoActivities
	}
	return r.runOne(child, picks[0], history)
}

// RunSession recommends up to three activities and runs an attempt cycle for
// each, re-recommending nothing in between: the session works through the
// initial picks in order.
func (r *Runner) RunSession(child *learner.ChildProfile, activities []catalog.Activity, history []session.SessionLog) ([]*AttemptResult, []session.SessionLog, error) {
	picks := recommend.Recommend(child, activities, history, recommend.MaxResults)
	if len(picks) == 0 {
		return nil, history, ErrNoActivities
	}

	results := make([]*AttemptResult, 0, len(picks))
	for _, activity := range picks {
		res, updated, err := r.runOne(child, activity, history)
		if err != nil {
			return results, history, err
		}
		history = updated
		results = append(results, res)
	}
	return results, history, nil
}

// RunSkipped records an explicit skip of an activity without evaluation.
// This is the only path that produces the skipped outcome.
func (r *Runner) RunSkipped(child *learner.ChildProfile, activity catalog.Activity, history []session.SessionLog) (*AttemptResult, []session.SessionLog) {
	attempt := session.ActivityAttempt{
		ID:         uuid.NewString(),
		ActivityID: activity.ID,
		Timestamp:  r.now(),
		Outcome:    session.OutcomeSkipped,
		Details:    map[string]any{"skipped": true},
	}
	updated := session.AppendAttempt(history, child.ID, attempt)
	adapt.Apply(child, activity, session.OutcomeSkipped)

	return &AttemptResult{
		Activity: activity,
		Outcome:  session.OutcomeSkipped,
		Attempt:  attempt,
	}, updated
}

func (r *Runner) runOne(child *learner.ChildProfile, activity catalog.Activity, history []session.SessionLog) (*AttemptResult, []session.SessionLog, error) {
	answer, err := r.Source.Answer(child, activity)
	if err != nil {
		return nil, history, fmt.Errorf("obtain answer for %s: %w", activity.ID, err)
	}

	result := evaluate.Evaluate(answer, activity)
	outcome := evaluate.ChooseOutcome(result)

	attempt := session.ActivityAttempt{
		ID:         uuid.NewString(),
		ActivityID: activity.ID,
		Timestamp:  r.now(),
		Outcome:    outcome,
		Details: map[string]any{
			"eval":     result,
			"activity": activity.ID,
		},
	}

	updated := session.AppendAttempt(history, child.ID, attempt)
	adapt.Apply(child, activity, outcome)

	return &AttemptResult{
		Activity: activity,
		Answer:   answer,
		Eval:     result,
		Outcome:  outcome,
		Attempt:  attempt,
	}, updated, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
