package buddy

import (
	"fmt"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/session"
)

// Intro returns a friendly lead-in line for an activity.
func Intro(activity catalog.Activity) string {
	switch activity.Type {
	case catalog.TypeMath:
		return fmt.Sprintf("Let's solve some math! %s", activity.Title)
	case catalog.TypeSpelling:
		return fmt.Sprintf("Time to practice spelling! %s", activity.Title)
	case catalog.TypeStorytelling:
		return fmt.Sprintf("Ready to tell a story? %s", activity.Title)
	case catalog.TypeReading:
		return fmt.Sprintf("Let's read together! %s", activity.Title)
	case catalog.TypeVocab:
		return fmt.Sprintf("Vocabulary time! %s", activity.Title)
	case catalog.TypeLogic:
		return fmt.Sprintf("Let's think logically! %s", activity.Title)
	case catalog.TypeCreativity:
		return fmt.Sprintf("Time to be creative! %s", activity.Title)
	default:
		return fmt.Sprintf("Let's do this activity: %s", activity.Title)
	}
}

// Encouragement returns an encouragement line and a tip for an outcome.
func Encouragement(outcome session.Outcome) (string, string) {
	switch outcome {
	case session.OutcomeSuccess:
		return "Great job! You did amazing!", "Keep up this excellent work!"
	case session.OutcomePartial:
		return "Good effort! You're on the right track.", "Try to add a bit more detail next time."
	case session.OutcomeStruggle:
		return "Don't worry, learning takes time!", "Let's practice this skill more together."
	case session.OutcomeSkipped:
		return "That's okay, we can try again later.", "Sometimes it's good to take a break."
	default:
		return "Well done!", "Keep practicing!"
	}
}
