package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port       int
	CORSOrigin string

	OpenAIKey     string
	OpenAIModel   string
	OpenAITimeout time.Duration
}

func Load() *Config {

	port := 4000
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini" // default model
	}

	timeout := 15 * time.Second
	if v := os.Getenv("OPENAI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Millisecond
		}
	}

	return &Config{
		Port:       port,
		CORSOrigin: origin,

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		OpenAITimeout: timeout,
	}
}

// AllowedOrigins expands CORS_ORIGIN into the origin list handed to the
// CORS middleware. "*" stays a single wildcard entry.
func (c *Config) AllowedOrigins() []string {
	if c.CORSOrigin == "*" {
		return []string{"*"}
	}
	parts := strings.Split(c.CORSOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
