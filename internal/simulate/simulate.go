// Package simulate produces deterministic pseudo-random answers for demos and
// tests. Determinism is a contract: the generator is seeded from an explicit
// FNV-64a hash of "<childID>/<activityID>", so the same child, activity, and
// skill state always yield the same answer.
package simulate

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
)

// fallbackAnswers are used when a rubric offers no string answers to echo.
var fallbackAnswers = map[catalog.ActivityType]string{
	catalog.TypeMath:         "42",
	catalog.TypeSpelling:     "correct",
	catalog.TypeVocab:        "definition",
	catalog.TypeLogic:        "true",
	catalog.TypeReading:      "comprehension",
	catalog.TypeStorytelling: "narrative",
	catalog.TypeCreativity:   "creative",
}

// Source generates simulated answers. The zero value is ready to use.
type Source struct{}

// Seed derives the generator seed for a (child, activity) pair.
func Seed(childID, activityID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(childID + "/" + activityID))
	return int64(h.Sum64())
}

// Answer returns a simulated answer whose quality tracks the child's mean
// skill over the activity's skills: stronger children answer correctly (and
// write longer responses) more often.
func (Source) Answer(child *learner.ChildProfile, activity catalog.Activity) (string, error) {
	rng := rand.New(rand.NewSource(Seed(child.ID, activity.ID)))

	if activity.Format == catalog.FormatQnA {
		return qnaAnswer(rng, child, activity), nil
	}
	return freeformAnswer(rng, child, activity), nil
}

func qnaAnswer(rng *rand.Rand, child *learner.ChildProfile, activity catalog.Activity) string {
	meanSkill := child.MeanSkill(activity.Skills)

	successChance := 0.4
	if meanSkill > 0.7 {
		successChance = 0.8
	}

	if rng.Float64() >= successChance {
		return "wrong answer"
	}

	var candidates []string
	for _, a := range activity.Rubric.Answers {
		if !a.Numeric {
			candidates = append(candidates, a.Text)
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))]
	}
	if fb, ok := fallbackAnswers[activity.Type]; ok {
		return fb
	}
	return "answer"
}

func freeformAnswer(rng *rand.Rand, child *learner.ChildProfile, activity catalog.Activity) string {
	// One sentence per 10 minutes of attention span, at least 2, plus up to 3
	// for skill.
	base := child.AttentionSpanMin / 10
	if base < 2 {
		base = 2
	}
	meanSkill := child.MeanSkill(activity.Skills)
	total := base + int(meanSkill*3)

	if activity.Rubric.MinSentences != nil && total < *activity.Rubric.MinSentences {
		total = *activity.Rubric.MinSentences
	}

	sentences := make([]string, 0, total+2)
	for i := 1; i <= total; i++ {
		switch activity.Type {
		case catalog.TypeStorytelling:
			sentences = append(sentences, fmt.Sprintf("This is sentence %d of my story.", i))
		case catalog.TypeReading:
			sentences = append(sentences, fmt.Sprintf("I read and understood sentence %d.", i))
		default:
			sentences = append(sentences, fmt.Sprintf("This is my response sentence %d.", i))
		}
	}

	if len(activity.Skills) > 0 && rng.Float64() < 0.7 {
		skill := activity.Skills[rng.Intn(len(activity.Skills))]
		sentences = append(sentences, fmt.Sprintf("I think about %s.", skill))
	}
	if len(activity.Rubric.Keywords) > 0 && rng.Float64() < 0.5 {
		kw := activity.Rubric.Keywords[rng.Intn(len(activity.Rubric.Keywords))]
		sentences = append(sentences, fmt.Sprintf("I mention %s in my response.", kw))
	}

	return strings.Join(sentences, " ")
}
