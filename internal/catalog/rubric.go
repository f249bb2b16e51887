package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultMinSentences applies when a freeform rubric omits min_sentences.
const DefaultMinSentences = 3

// Rubric holds the grading criteria for an activity. All fields are optional;
// the evaluator applies defaults for absent ones, so a sparse rubric degrades
// gracefully instead of failing.
type Rubric struct {
	Answers          []Answer `json:"answers,omitempty"`
	NumericTolerance *float64 `json:"numeric_tolerance,omitempty"`
	MinSentences     *int     `json:"min_sentences,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
}

// Tolerance returns the numeric comparison tolerance, defaulting to 0.
func (r Rubric) Tolerance() float64 {
	if r.NumericTolerance == nil {
		return 0.0
	}
	return *r.NumericTolerance
}

// MinSentenceCount returns the required sentence count, defaulting to 3.
func (r Rubric) MinSentenceCount() int {
	if r.MinSentences == nil {
		return DefaultMinSentences
	}
	return *r.MinSentences
}

// Answer is one acceptable answer in a rubric. The catalog file may list
// answers as JSON strings or numbers; the distinction matters because numeric
// answers are compared within tolerance while strings are matched exactly.
type Answer struct {
	Text    string
	Number  float64
	Numeric bool
}

// StringAnswer builds a string-valued acceptable answer.
func StringAnswer(s string) Answer {
	return Answer{Text: s}
}

// NumberAnswer builds a numeric acceptable answer.
func NumberAnswer(n float64) Answer {
	return Answer{Number: n, Numeric: true}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = NumberAnswer(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rubric answer must be a string or number: %w", err)
	}
	*a = StringAnswer(s)
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Numeric {
		return json.Marshal(a.Number)
	}
	return json.Marshal(a.Text)
}

// String renders the answer for display and reason messages.
func (a Answer) String() string {
	if a.Numeric {
		return strconv.FormatFloat(a.Number, 'f', -1, 64)
	}
	return a.Text
}
