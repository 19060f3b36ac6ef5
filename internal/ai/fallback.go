package ai

import (
	"fmt"
	"strings"

	"neura-os-backend/internal/state"
)

// Fallback tier thresholds. Deliberately different from the label bands
// in the energy package (35/65/85); these drive coaching sentences, not
// the dashboard label, and were tuned on their own.
const (
	fallbackLowMax      = 40
	fallbackModerateMax = 70
)

// urgentThreshold marks a task as urgent when its urgency is at least
// this and it is still open.
const urgentThreshold = 7

// longFocusMinutes is the minimum session length that counts as evidence
// of real concentration.
const longFocusMinutes = 25

// BuildFallback produces the deterministic coaching reply used whenever
// no LLM is configured or the call fails. It cannot fail and is never
// empty: the acknowledgment and closing sentences are unconditional.
func BuildFallback(text string, energy *int, tasks []state.Task, sessions []state.FocusSession) string {
	var b strings.Builder

	b.WriteString("Thanks for sharing. I'll weigh this together with your energy, task and focus-session data. ")

	if energy != nil {
		switch {
		case *energy < fallbackLowMax:
			b.WriteString("Your energy is low today, so ease up on self-criticism and stick to short, simple tasks. ")
		case *energy < fallbackModerateMax:
			b.WriteString("Your energy is moderate; it's a good moment to balance routine work with a block of study. ")
		default:
			b.WriteString("Your energy is high; great moment to push forward on something you've been putting off. ")
		}
	}

	urgent := 0
	for _, t := range tasks {
		if t.Urgency >= urgentThreshold && !t.Done {
			urgent++
		}
	}
	if urgent > 0 {
		fmt.Fprintf(&b, "There are %d high-urgency task(s) piling up. Work through them one at a time instead of all at once. ", urgent)
	}

	for _, s := range sessions {
		if s.Minutes >= longFocusMinutes {
			b.WriteString("I can see consistent focus sessions on record. Take that as proof you can get back into deep concentration. ")
			break
		}
	}

	b.WriteString("If you can, consciously choose one next action for today instead of running on autopilot.")

	return b.String()
}
