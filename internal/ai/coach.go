package ai

import (
	"context"
	"log"

	"neura-os-backend/internal/state"
)

// Reply provenance tags.
const (
	SourceLLM           = "llm"
	SourceFallback      = "fallback"
	SourceFallbackError = "fallback-error"
)

// emptyReplyPlaceholder stands in when the model answers successfully but
// with no usable text.
const emptyReplyPlaceholder = "I couldn't come up with a reply just now. Let's try again in a moment."

// Result is a coaching reply plus where it came from.
type Result struct {
	Source string
	Reply  string
}

// Coach builds coaching replies: through the configured LLM when one is
// available, through the deterministic fallback otherwise. An LLM failure
// never escapes Respond; it degrades to the fallback text.
type Coach struct {
	client Completer
}

// NewCoach creates a Coach. A nil client puts the coach in fallback-only
// mode.
func NewCoach(client Completer) *Coach {
	return &Coach{client: client}
}

// HasClient reports whether an LLM client is configured.
func (c *Coach) HasClient() bool {
	return c.client != nil
}

// Respond produces a reply for the user's message given the current
// energy value (nil when no score exists) and store snapshots.
func (c *Coach) Respond(ctx context.Context, text string, energy *int, tasks []state.Task, sessions []state.FocusSession) Result {
	if c.client == nil {
		return Result{
			Source: SourceFallback,
			Reply:  BuildFallback(text, energy, tasks, sessions),
		}
	}

	reply, err := c.client.Complete(ctx, coachSystemPrompt, BuildUserPrompt(text, energy, tasks, sessions))
	if err != nil {
		log.Printf("coach: completion failed: %v", err)
		return Result{
			Source: SourceFallbackError,
			Reply:  BuildFallback(text, energy, tasks, sessions),
		}
	}

	if reply == "" {
		reply = emptyReplyPlaceholder
	}
	return Result{Source: SourceLLM, Reply: reply}
}
