package state

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTaskNotFound indicates a toggle against an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// Store holds the tasks and focus sessions for the process lifetime.
// Both collections are kept most-recent-first. All access goes through
// the mutex; reads hand out copies so callers never observe a record
// mid-mutation.
type Store struct {
	mu       sync.Mutex
	tasks    []Task
	sessions []FocusSession
}

func New() *Store {
	return &Store{}
}

// AddTask creates a task from in and inserts it at the head of the list.
// Weight is the rounded mean of urgency, effort and impact, computed once
// here and never again.
func (s *Store) AddTask(in TaskInput) Task {
	category := in.Category
	if category == "" {
		category = "personal"
	}

	task := Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Urgency:   in.Urgency,
		Effort:    in.Effort,
		Impact:    in.Impact,
		Weight:    int(math.Round((in.Urgency + in.Effort + in.Impact) / 3)),
		Date:      in.Date,
		Time:      in.Time,
		Category:  category,
		Done:      false,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]Task{task}, s.tasks...)
	return task
}

// Tasks returns a snapshot of all tasks, most recent first.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ToggleTask flips the done flag of the task with the given id and stamps
// UpdatedAt. Returns ErrTaskNotFound for an unknown id.
func (s *Store) ToggleTask(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			now := time.Now().UTC()
			s.tasks[i].Done = !s.tasks[i].Done
			s.tasks[i].UpdatedAt = &now
			return s.tasks[i], nil
		}
	}
	return Task{}, ErrTaskNotFound
}

// AddFocusSession creates a focus session from in and inserts it at the
// head of the list.
func (s *Store) AddFocusSession(in FocusInput) FocusSession {
	title := in.Title
	if title == "" {
		title = "Focus session"
	}

	session := FocusSession{
		ID:          uuid.NewString(),
		Title:       title,
		Minutes:     in.Minutes,
		EnergyStart: in.EnergyStart,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]FocusSession{session}, s.sessions...)
	return session
}

// FocusSessions returns a snapshot of all sessions, most recent first.
func (s *Store) FocusSessions() []FocusSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FocusSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}
