package learner

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultSkill is assumed for any skill a child has no baseline estimate for.
const DefaultSkill = 0.5

// Style is a child's preferred learning style.
type Style string

const (
	StyleVisual      Style = "visual"
	StyleAuditory    Style = "auditory"
	StyleLogical     Style = "logical"
	StyleKinesthetic Style = "kinesthetic"
)

// ReadingLevel tracks where a child is on the reading progression.
type ReadingLevel string

const (
	ReadingPreReader   ReadingLevel = "pre_reader"
	ReadingEmergent    ReadingLevel = "emergent"
	ReadingApproaching ReadingLevel = "approaching"
	ReadingOnGrade     ReadingLevel = "on_grade"
	ReadingAboveGrade  ReadingLevel = "above_grade"
)

// Grade is a school grade or age that is either an integer or the literal "K"
// for kindergarten. The core never branches on it, so it stays a thin wrapper
// that round-trips the JSON representation.
type Grade string

func (g *Grade) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*g = Grade(strconv.Itoa(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("grade must be a number or string: %w", err)
	}
	*g = Grade(s)
	return nil
}

func (g Grade) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(g)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(g))
}

// ChildProfile is one child's learning profile. The skill map is mutated by
// adaptation after each attempt; it may grow new skill keys but never shrinks,
// and every stored value stays in [0,1].
type ChildProfile struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Age              Grade              `json:"age"`
	Grade            Grade              `json:"grade"`
	Interests        []string           `json:"interests,omitempty"`
	LearningStyle    Style              `json:"learning_style"`
	AttentionSpanMin int                `json:"attention_span_min"`
	ReadingLevel     ReadingLevel       `json:"reading_level"`
	BaselineSkills   map[string]float64 `json:"baseline_skills"`
	Goals            []string           `json:"goals,omitempty"`
}

// Skill returns the child's estimate for a skill, defaulting to 0.5 when the
// skill has not been assessed yet.
func (c *ChildProfile) Skill(name string) float64 {
	if v, ok := c.BaselineSkills[name]; ok {
		return v
	}
	return DefaultSkill
}

// MeanSkill averages the child's estimates over the given skills. An empty
// skill list yields the default 0.5.
func (c *ChildProfile) MeanSkill(skills []string) float64 {
	if len(skills) == 0 {
		return DefaultSkill
	}
	sum := 0.0
	for _, s := range skills {
		sum += c.Skill(s)
	}
	return sum / float64(len(skills))
}

// Clone deep-copies the profile so adaptation can mutate the copy without the
// caller observing a partial update.
func (c *ChildProfile) Clone() *ChildProfile {
	out := *c
	out.Interests = append([]string(nil), c.Interests...)
	out.Goals = append([]string(nil), c.Goals...)
	out.BaselineSkills = make(map[string]float64, len(c.BaselineSkills))
	for k, v := range c.BaselineSkills {
		out.BaselineSkills[k] = v
	}
	return &out
}

// Find returns the first profile with the given id, or nil.
func Find(profiles []ChildProfile, id string) *ChildProfile {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}
