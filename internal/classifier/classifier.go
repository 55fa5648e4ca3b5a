// Package classifier adapts the OpenAI chat-completion API into a
// transcript-in, verdict-out call with a strict output contract.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel matches the model the rubric prompt was tuned against.
const DefaultModel = "gpt-3.5-turbo-0125"

// Classifier sends one completion request per chat: the fixed system rubric
// plus the rendered transcript as the user message.
type Classifier struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func New(apiKey, model string, logger *slog.Logger) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// NewWithBaseURL builds a classifier against a non-default endpoint, used by
// tests to point at a local fake server.
func NewWithBaseURL(apiKey, model, baseURL string, logger *slog.Logger) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Classifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// Classify runs one completion for the transcript. Transport and API errors
// are returned as-is and inherit the HTTP layer's retry policy; a response
// that parses but violates the JSON contract comes back as a *ParseError so
// the caller can skip the chat without aborting the run.
func (c *Classifier) Classify(ctx context.Context, transcript string) (*Result, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ParseError{Reason: "completion has no choices"}
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		c.logger.Error("classification response is not valid JSON", "error", err, "raw", raw)
		return nil, &ParseError{Raw: raw, Reason: err.Error()}
	}
	if res.Resolved == "" || res.Sentiment == "" {
		c.logger.Error("classification response misses required keys", "raw", raw)
		return nil, &ParseError{Raw: raw, Reason: "missing resolved or sentiment key"}
	}

	return &res, nil
}
