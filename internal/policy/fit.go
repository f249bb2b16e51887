package policy

import (
	"strings"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
)

// normalize lowercases and trims a string for case-insensitive matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SkillFit is the mean of the child's estimates over the activity's skills.
// Missing skills default to 0.5; an empty skill list also yields 0.5.
func SkillFit(activity catalog.Activity, child *learner.ChildProfile) float64 {
	return child.MeanSkill(activity.Skills)
}

// InterestFit returns 1.0 when the activity type equals any interest, or any
// tag is a substring match (either direction) of any interest. Otherwise 0.4.
// All comparisons are case-folded and whitespace-trimmed.
func InterestFit(activity catalog.Activity, child *learner.ChildProfile) float64 {
	activityType := normalize(string(activity.Type))

	interests := make([]string, 0, len(child.Interests))
	for _, in := range child.Interests {
		interests = append(interests, normalize(in))
	}

	for _, in := range interests {
		if activityType == in {
			return 1.0
		}
	}

	for _, tag := range activity.Tags {
		t := normalize(tag)
		for _, in := range interests {
			if strings.Contains(t, in) || strings.Contains(in, t) {
				return 1.0
			}
		}
	}

	return 0.4
}

// Per-style preference signals. A learning style matches an activity when any
// of its signals fire.
var (
	visualTags      = map[string]bool{"visual": true, "picture": true, "drawing": true}
	auditoryTypes   = map[catalog.ActivityType]bool{catalog.TypeStorytelling: true, catalog.TypeReading: true}
	logicalTypes    = map[catalog.ActivityType]bool{catalog.TypeMath: true, catalog.TypeLogic: true}
	logicalTags     = map[string]bool{"puzzles": true, "reasoning": true}
	kinestheticTags = map[string]bool{"quick": true, "applied": true, "fluency": true}
)

// StyleFit returns 1.0 when the activity carries a signal preferred by the
// child's learning style, else 0.5.
func StyleFit(activity catalog.Activity, child *learner.ChildProfile) float64 {
	switch child.LearningStyle {
	case learner.StyleVisual:
		if anyTag(activity.Tags, visualTags) || activity.Format == catalog.FormatFreeform {
			return 1.0
		}
	case learner.StyleAuditory:
		if auditoryTypes[activity.Type] || activity.Format == catalog.FormatFreeform {
			return 1.0
		}
	case learner.StyleLogical:
		if logicalTypes[activity.Type] || anyTag(activity.Tags, logicalTags) {
			return 1.0
		}
	case learner.StyleKinesthetic:
		if anyTag(activity.Tags, kinestheticTags) || activity.EstimatedMin <= child.AttentionSpanMin {
			return 1.0
		}
	}
	return 0.5
}

func anyTag(tags []string, preferred map[string]bool) bool {
	for _, tag := range tags {
		if preferred[normalize(tag)] {
			return true
		}
	}
	return false
}

// LevelFit scores how well the activity's difficulty band matches the child's
// mean skill over the activity's skills. Aligned bands score 1.0, adjacent
// bands 0.7, everything else 0.4.
func LevelFit(activity catalog.Activity, child *learner.ChildProfile) float64 {
	mean := child.MeanSkill(activity.Skills)

	var aligned, adjacent bool
	switch activity.Level {
	case catalog.LevelEasy:
		aligned = mean < 0.6
		adjacent = mean >= 0.6 && mean <= 0.8
	case catalog.LevelMedium:
		aligned = mean >= 0.6 && mean <= 0.8
		adjacent = mean < 0.6 || mean > 0.8
	default: // hard
		aligned = mean > 0.8
		adjacent = mean >= 0.6 && mean <= 0.8
	}

	switch {
	case aligned:
		return 1.0
	case adjacent:
		return 0.7
	default:
		return 0.4
	}
}

// TimeFit returns 1.0 when the activity fits inside the child's attention
// span, decaying toward 0.5 as the activity grows relative to it; never below
// 0.5.
func TimeFit(activity catalog.Activity, child *learner.ChildProfile) float64 {
	if activity.EstimatedMin <= child.AttentionSpanMin {
		return 1.0
	}

	ratio := float64(child.AttentionSpanMin) / float64(activity.EstimatedMin)
	score := 0.5 + 0.5*ratio

	if score < 0.5 {
		return 0.5
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}

// RecencyPenalty returns 1.0 when the activity appears among the first
// recentK entries of recentIDs (most recent first), else 0.0.
func RecencyPenalty(activityID string, recentIDs []string, recentK int) float64 {
	if recentK <= 0 {
		return 0.0
	}
	if recentK > len(recentIDs) {
		recentK = len(recentIDs)
	}
	for _, id := range recentIDs[:recentK] {
		if id == activityID {
			return 1.0
		}
	}
	return 0.0
}
