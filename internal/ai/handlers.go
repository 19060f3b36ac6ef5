package ai

import (
	"encoding/json"
	"math"
	"net/http"

	"neura-os-backend/internal/state"
	"neura-os-backend/internal/web"
)

type messageRequest struct {
	Text   string      `json:"text"`
	Energy *web.Number `json:"energy"`
}

type messageMeta struct {
	Energy      *int `json:"energy"`
	TasksOpen   int  `json:"tasksOpen"`
	TasksUrgent int  `json:"tasksUrgent"`
	FocusCount  int  `json:"focusCount"`
}

type messageResponse struct {
	UserMessage string      `json:"userMessage"`
	Reply       string      `json:"reply"`
	Source      string      `json:"source"`
	Meta        messageMeta `json:"meta"`
}

// PostMessage handles POST /api/psychologist/message. LLM trouble never
// surfaces here as an HTTP error; the reply just carries a fallback tag.
func PostMessage(coach *Coach, store *state.Store, w http.ResponseWriter, r *http.Request) {
	var body messageRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	var energy *int
	if body.Energy != nil {
		v := int(math.Round(float64(*body.Energy)))
		energy = &v
	}

	tasks := store.Tasks()
	sessions := store.FocusSessions()

	result := coach.Respond(r.Context(), body.Text, energy, tasks, sessions)

	open, urgent := 0, 0
	for _, t := range tasks {
		if !t.Done {
			open++
			if t.Urgency >= urgentThreshold {
				urgent++
			}
		}
	}

	web.JSON(w, http.StatusOK, messageResponse{
		UserMessage: body.Text,
		Reply:       result.Reply,
		Source:      result.Source,
		Meta: messageMeta{
			Energy:      energy,
			TasksOpen:   open,
			TasksUrgent: urgent,
			FocusCount:  len(sessions),
		},
	})
}
