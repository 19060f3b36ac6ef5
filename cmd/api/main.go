package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"neura-os-backend/internal/ai"
	"neura-os-backend/internal/config"
	"neura-os-backend/internal/energy"
	"neura-os-backend/internal/state"
	"neura-os-backend/internal/web"
)

var apiEndpoints = []string{
	"/api/energy/calculate",
	"/api/psychologist/message",
	"/api/google-fit/mock",
	"/api/tasks",
	"/api/tasks/:id/toggle",
	"/api/focus-sessions",
}

// ----------------------
//        MAIN
// ----------------------

func main() {
	cfg := config.Load()

	store := state.New()

	var completer ai.Completer
	if cfg.OpenAIKey != "" {
		completer = ai.NewClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	}
	coach := ai.NewCoach(completer)

	start := time.Now()
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		getRoot(w, r)
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		getHealth(start, coach.HasClient(), w, r)
	})

	// ----- ENERGY API -----
	mux.HandleFunc("/api/energy/calculate", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			energy.PostCalculate(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			web.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	mux.HandleFunc("/api/google-fit/mock", getGoogleFitMock)

	// ----- TASKS API -----
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			state.GetTasks(store, w, r)
		case http.MethodPost:
			state.PostTask(store, w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			web.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	mux.HandleFunc("/api/tasks/", func(w http.ResponseWriter, r *http.Request) {
		state.PatchTaskToggle(store, w, r)
	})

	// ----- FOCUS SESSIONS API -----
	mux.HandleFunc("/api/focus-sessions", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			state.GetFocusSessions(store, w, r)
		case http.MethodPost:
			state.PostFocusSession(store, w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			web.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	// ----- PSYCHOLOGIST API -----
	mux.HandleFunc("/api/psychologist/message", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			ai.PostMessage(coach, store, w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			web.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(web.Recover(mux))

	log.Printf("🚀 NEURA OS API running on :%d", cfg.Port)
	if cfg.OpenAIKey == "" {
		log.Println("⚠️ OPENAI_API_KEY not set. The psychologist will only use the fallback, without the LLM.")
	}
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), handler))
}

// ----------------------
//    SERVICE HANDLERS
// ----------------------

func getRoot(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, map[string]string{
		"name":   "NEURA OS API",
		"status": "online",
		"docs":   "/api/health",
	})
}

func getHealth(start time.Time, hasOpenAI bool, w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"message":   "NEURA OS API running.",
		"uptime":    time.Since(start).Seconds(),
		"hasOpenAI": hasOpenAI,
		"endpoints": apiEndpoints,
	})
}

func getGoogleFitMock(w http.ResponseWriter, r *http.Request) {
	web.JSON(w, http.StatusOK, map[string]interface{}{
		"source":      "mock",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"heartRate":   74,
		"steps":       8234,
		"sleepHours":  7.1,
		"stressLevel": 0.35,
	})
}
