package evaluate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/session"
)

// Result is the graded outcome of one answer. Kind discriminates which fields
// are meaningful: Correct for qna, MeetsMinLength/KeywordHits for freeform.
type Result struct {
	Kind           string  `json:"kind"`
	Correct        bool    `json:"correct"`
	MeetsMinLength bool    `json:"meets_min_length"`
	KeywordHits    int     `json:"keyword_hits"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

// Evaluate grades an answer using the grader for the activity's format.
func Evaluate(answer string, activity catalog.Activity) Result {
	if activity.Format == catalog.FormatQnA {
		return EvalQnA(answer, activity)
	}
	return EvalFreeform(answer, activity)
}

// EvalQnA grades a Q&A answer against the rubric's acceptable answers.
// Numeric acceptable answers match within the rubric tolerance; string ones
// match case-insensitively after trimming. The first matching acceptable
// answer wins. A rubric with no answers is an automatic fail.
func EvalQnA(answer string, activity catalog.Activity) Result {
	rubric := activity.Rubric

	if len(rubric.Answers) == 0 {
		return Result{
			Kind:   "qna",
			Score:  0.0,
			Reason: "No acceptable answers defined in rubric",
		}
	}

	tolerance := rubric.Tolerance()
	numericAnswer, isNumeric := parseNumber(answer)

	for _, acceptable := range rubric.Answers {
		if acceptable.Numeric {
			if isNumeric && math.Abs(numericAnswer-acceptable.Number) <= tolerance {
				return Result{
					Kind:    "qna",
					Correct: true,
					Score:   1.0,
					Reason:  fmt.Sprintf("Answer %s matches acceptable answer %s within tolerance %g", strings.TrimSpace(answer), acceptable, tolerance),
				}
			}
			continue
		}
		if normalize(answer) == normalize(acceptable.Text) {
			return Result{
				Kind:    "qna",
				Correct: true,
				Score:   1.0,
				Reason:  fmt.Sprintf("Answer %q matches acceptable answer %q", answer, acceptable.Text),
			}
		}
	}

	return Result{
		Kind:   "qna",
		Score:  0.0,
		Reason: fmt.Sprintf("Answer %q does not match any acceptable answers", answer),
	}
}

// EvalFreeform grades a freeform text answer on length and keyword coverage.
// Sentences are period-separated non-empty segments; each rubric keyword
// counts at most once regardless of repeats in the text. Score is 0.6 (length
// met) or 0.3, plus min(hits*0.1, 0.4), clamped to [0,1].
func EvalFreeform(text string, activity catalog.Activity) Result {
	rubric := activity.Rubric
	minSentences := rubric.MinSentenceCount()

	sentenceCount := 0
	for _, seg := range strings.Split(text, ".") {
		if strings.TrimSpace(seg) != "" {
			sentenceCount++
		}
	}
	meetsMinLength := sentenceCount >= minSentences

	normalized := normalize(text)
	keywordHits := 0
	for _, kw := range rubric.Keywords {
		if strings.Contains(normalized, normalize(kw)) {
			keywordHits++
		}
	}

	base := 0.3
	if meetsMinLength {
		base = 0.6
	}
	bonus := math.Min(float64(keywordHits)*0.1, 0.4)
	score := math.Min(base+bonus, 1.0)

	var parts []string
	if meetsMinLength {
		parts = append(parts, fmt.Sprintf("Meets minimum length requirement (%d sentences >= %d)", sentenceCount, minSentences))
	} else {
		parts = append(parts, fmt.Sprintf("Below minimum length requirement (%d sentences < %d)", sentenceCount, minSentences))
	}
	if len(rubric.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Contains %d/%d keywords", keywordHits, len(rubric.Keywords)))
	}

	return Result{
		Kind:           "freeform",
		MeetsMinLength: meetsMinLength,
		KeywordHits:    keywordHits,
		Score:          score,
		Reason:         strings.Join(parts, ". "),
	}
}

// ChooseOutcome maps an evaluation to a coarse outcome. Q&A is binary:
// success at a full score, struggle otherwise. Freeform (and any other kind)
// uses the 0.8/0.5 thresholds. Skipped is never produced here; only the
// orchestrator assigns it, on an explicit skip.
func ChooseOutcome(result Result) session.Outcome {
	if result.Kind == "qna" {
		if result.Score >= 1.0 {
			return session.OutcomeSuccess
		}
		return session.OutcomeStruggle
	}

	switch {
	case result.Score >= 0.8:
		return session.OutcomeSuccess
	case result.Score >= 0.5:
		return session.OutcomePartial
	default:
		return session.OutcomeStruggle
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}
