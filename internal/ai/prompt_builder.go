package ai

import (
	"fmt"
	"strings"

	"neura-os-backend/internal/state"
)

// maxSummaryItems caps how many tasks and focus sessions are described to
// the model; the collections are most-recent-first, so the cap keeps the
// freshest records.
const maxSummaryItems = 10

// BuildUserPrompt assembles the user payload for the coach call.
func BuildUserPrompt(text string, energy *int, tasks []state.Task, sessions []state.FocusSession) string {
	var b strings.Builder

	message := text
	if message == "" {
		message = "(no specific message)"
	}

	b.WriteString("User message:\n")
	b.WriteString("\"\"\"\n")
	b.WriteString(message)
	b.WriteString("\n\"\"\"\n\n")

	b.WriteString("Current energy: ")
	if energy != nil {
		fmt.Fprintf(&b, "%d", *energy)
	} else {
		b.WriteString("no data")
	}
	b.WriteString("\n\n")

	b.WriteString("Task summary (max 10):\n")
	b.WriteString(summarizeTasks(tasks))
	b.WriteString("\n\n")

	b.WriteString("Focus session summary (max 10):\n")
	b.WriteString(summarizeSessions(sessions))
	b.WriteString("\n\n")

	b.WriteString("Answer as if you were talking directly to the user.\n")

	return b.String()
}

func summarizeTasks(tasks []state.Task) string {
	if len(tasks) == 0 {
		return "no tasks recorded."
	}
	if len(tasks) > maxSummaryItems {
		tasks = tasks[:maxSummaryItems]
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		status := "OPEN"
		if t.Done {
			status = "DONE"
		}
		lines = append(lines, fmt.Sprintf("- [%s] (%g/10 urgency, weight %d) %s", status, t.Urgency, t.Weight, t.Title))
	}
	return strings.Join(lines, "\n")
}

func summarizeSessions(sessions []state.FocusSession) string {
	if len(sessions) == 0 {
		return "no sessions recorded."
	}
	if len(sessions) > maxSummaryItems {
		sessions = sessions[:maxSummaryItems]
	}

	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		start := "n/a"
		if s.EnergyStart != nil {
			start = fmt.Sprintf("%g", *s.EnergyStart)
		}
		lines = append(lines, fmt.Sprintf("- %s (%g min, starting energy: %s)", s.Title, s.Minutes, start))
	}
	return strings.Join(lines, "\n")
}
