package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neura-os-backend/internal/state"
)

type fakeCompleter struct {
	reply string
	err   error

	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

func TestRespond_NoClient(t *testing.T) {
	coach := NewCoach(nil)

	result := coach.Respond(context.Background(), "I feel stuck", intPtr(30), nil, nil)

	assert.Equal(t, SourceFallback, result.Source)
	assert.NotEmpty(t, result.Reply)
	assert.Contains(t, result.Reply, "choose one next action")
	assert.False(t, coach.HasClient())
}

func TestRespond_Success(t *testing.T) {
	fake := &fakeCompleter{reply: "One small step at a time."}
	coach := NewCoach(fake)

	result := coach.Respond(context.Background(), "hello", intPtr(80), nil, nil)

	assert.Equal(t, SourceLLM, result.Source)
	assert.Equal(t, "One small step at a time.", result.Reply)
	assert.Equal(t, coachSystemPrompt, fake.lastSystem)
	assert.Contains(t, fake.lastUser, "Current energy: 80")
}

func TestRespond_EmptyCompletionUsesPlaceholder(t *testing.T) {
	coach := NewCoach(&fakeCompleter{reply: ""})

	result := coach.Respond(context.Background(), "hello", nil, nil, nil)

	assert.Equal(t, SourceLLM, result.Source)
	assert.Equal(t, emptyReplyPlaceholder, result.Reply)
}

func TestRespond_FailureMatchesNoClientText(t *testing.T) {
	tasks := []state.Task{{Title: "a", Urgency: 9}}
	sessions := []state.FocusSession{{Minutes: 30}}
	energy := intPtr(45)

	failing := NewCoach(&fakeCompleter{err: errors.New("connection refused")})
	degraded := failing.Respond(context.Background(), "rough day", energy, tasks, sessions)

	plain := NewCoach(nil).Respond(context.Background(), "rough day", energy, tasks, sessions)

	assert.Equal(t, SourceFallbackError, degraded.Source)
	assert.Equal(t, plain.Reply, degraded.Reply)
}

func TestBuildUserPrompt_EmptyMessagePlaceholder(t *testing.T) {
	prompt := BuildUserPrompt("", nil, nil, nil)

	assert.Contains(t, prompt, "(no specific message)")
	assert.Contains(t, prompt, "Current energy: no data")
	assert.Contains(t, prompt, "no tasks recorded.")
	assert.Contains(t, prompt, "no sessions recorded.")
}

func TestBuildUserPrompt_TaskAndSessionLines(t *testing.T) {
	tasks := []state.Task{
		{Title: "Pay rent", Urgency: 8, Weight: 6, Done: false},
		{Title: "Old chore", Urgency: 2, Weight: 1, Done: true},
	}
	start := 64.0
	sessions := []state.FocusSession{
		{Title: "Deep work", Minutes: 50, EnergyStart: &start},
		{Title: "Reading", Minutes: 25},
	}

	prompt := BuildUserPrompt("help me plan", intPtr(72), tasks, sessions)

	assert.Contains(t, prompt, "help me plan")
	assert.Contains(t, prompt, "Current energy: 72")
	assert.Contains(t, prompt, "- [OPEN] (8/10 urgency, weight 6) Pay rent")
	assert.Contains(t, prompt, "- [DONE] (2/10 urgency, weight 1) Old chore")
	assert.Contains(t, prompt, "- Deep work (50 min, starting energy: 64)")
	assert.Contains(t, prompt, "- Reading (25 min, starting energy: n/a)")
}

func TestBuildUserPrompt_TruncatesToTenItems(t *testing.T) {
	var tasks []state.Task
	var sessions []state.FocusSession
	for i := 1; i <= 12; i++ {
		tasks = append(tasks, state.Task{Title: fmt.Sprintf("task-%d", i), Urgency: 5})
		sessions = append(sessions, state.FocusSession{Title: fmt.Sprintf("session-%d", i), Minutes: 25})
	}

	prompt := BuildUserPrompt("x", nil, tasks, sessions)

	require.Contains(t, prompt, "task-10")
	assert.NotContains(t, prompt, "task-11")
	require.Contains(t, prompt, "session-10")
	assert.NotContains(t, prompt, "session-11")
}
