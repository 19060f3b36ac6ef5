package ai

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// coachTemperature keeps replies varied but not erratic.
const coachTemperature = 0.7

// Completer issues a single chat completion. Implemented by *Client;
// the coach treats a nil Completer as "no LLM configured".
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client wraps the OpenAI chat-completions API. One synchronous call per
// request, no retries.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Client for the given key and model. Extra request
// options are passed through to the underlying client (tests use this to
// point at a local server).
func NewClient(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *Client {
	merged := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		api:     openai.NewClient(merged...),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends one system+user message pair and returns the trimmed
// completion text. An API response with no usable text returns "" with a
// nil error; the caller decides what an empty reply means.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(coachTemperature),
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
