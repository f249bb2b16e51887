package catalog

// ActivityType classifies an activity by subject area.
type ActivityType string

const (
	TypeMath         ActivityType = "math"
	TypeSpelling     ActivityType = "spelling"
	TypeStorytelling ActivityType = "storytelling"
	TypeReading      ActivityType = "reading"
	TypeVocab        ActivityType = "vocab"
	TypeLogic        ActivityType = "logic"
	TypeCreativity   ActivityType = "creativity"
)

// Level is the difficulty band of an activity.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Format describes how the learner answers an activity.
type Format string

const (
	FormatQnA      Format = "qna"
	FormatFreeform Format = "freeform"
)

// Activity is one immutable catalog entry. Records are loaded once from the
// catalog file (already schema-validated) and never mutated.
type Activity struct {
	ID           string       `json:"id"`
	Type         ActivityType `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Level        Level        `json:"level"`
	Skills       []string     `json:"skills"`
	Tags         []string     `json:"tags,omitempty"`
	EstimatedMin int          `json:"estimated_min"`
	Format       Format       `json:"format"`
	Rubric       Rubric       `json:"rubric"`
}

// Index builds an id → activity lookup for a catalog.
func Index(activities []Activity) map[string]Activity {
	idx := make(map[string]Activity, len(activities))
	for _, a := range activities {
		idx[a.ID] = a
	}
	return idx
}

// Summary counts activities by type and by level.
type Summary struct {
	Total   int
	ByType  map[ActivityType]int
	ByLevel map[Level]int
}

// Summarize computes catalog counts for display.
func Summarize(activities []Activity) Summary {
	s := Summary{
		Total:   len(activities),
		ByType:  make(map[ActivityType]int),
		ByLevel: make(map[Level]int),
	}
	for _, a := range activities {
		s.ByType[a.Type]++
		s.ByLevel[a.Level]++
	}
	return s
}
