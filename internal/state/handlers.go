package state

import (
	"encoding/json"
	"net/http"
	"strings"

	"neura-os-backend/internal/web"
)

type createTaskRequest struct {
	Title    string     `json:"title"`
	Urgency  web.Number `json:"urgency"`
	Effort   web.Number `json:"effort"`
	Impact   web.Number `json:"impact"`
	Date     *string    `json:"date"`
	Time     *string    `json:"time"`
	Category string     `json:"category"`
}

type createFocusRequest struct {
	Title       string      `json:"title"`
	Minutes     *web.Number `json:"minutes"`
	EnergyStart *web.Number `json:"energyStart"`
}

// GetTasks handles GET /api/tasks.
func GetTasks(store *Store, w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, store.Tasks())
}

// PostTask handles POST /api/tasks. Title is the only required field;
// a missing or non-string title is rejected without touching the store.
func PostTask(store *Store, w http.ResponseWriter, r *http.Request) {
	var body createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if body.Title == "" {
		web.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	task := store.AddTask(TaskInput{
		Title:    body.Title,
		Urgency:  float64(body.Urgency),
		Effort:   float64(body.Effort),
		Impact:   float64(body.Impact),
		Date:     body.Date,
		Time:     body.Time,
		Category: body.Category,
	})

	web.JSON(w, http.StatusCreated, task)
}

// PatchTaskToggle handles PATCH /api/tasks/{id}/toggle.
func PatchTaskToggle(store *Store, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		web.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := parseTogglePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	task, err := store.ToggleTask(id)
	if err != nil {
		web.Error(w, http.StatusNotFound, "task not found")
		return
	}

	web.JSON(w, http.StatusOK, task)
}

func parseTogglePath(path string) (id string, ok bool) {
	tail := strings.Trim(strings.TrimPrefix(path, "/api/tasks/"), "/")
	parts := strings.Split(tail, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "toggle" {
		return "", false
	}
	return parts[0], true
}

// GetFocusSessions handles GET /api/focus-sessions.
func GetFocusSessions(store *Store, w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, store.FocusSessions())
}

// PostFocusSession handles POST /api/focus-sessions. All fields are
// optional: title defaults to "Focus session", minutes to 25.
func PostFocusSession(store *Store, w http.ResponseWriter, r *http.Request) {
	var body createFocusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	minutes := 25.0
	if body.Minutes != nil {
		minutes = float64(*body.Minutes)
	}

	var energyStart *float64
	if body.EnergyStart != nil {
		v := float64(*body.EnergyStart)
		energyStart = &v
	}

	session := store.AddFocusSession(FocusInput{
		Title:       body.Title,
		Minutes:     minutes,
		EnergyStart: energyStart,
	})

	web.JSON(w, http.StatusCreated, session)
}
