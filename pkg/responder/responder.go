package responder

import (
	"context"
	"errors"
	"time"

	"mindcare/backend/pkg/rules"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable reports that the generative responder could not produce a
// reply. Callers fall back to the rule-based reply; the user never sees this.
var ErrUnavailable = errors.New("generative responder unavailable")

// Generator produces a free-form reply for a user message. Implementations
// may fail; callers must have a local fallback.
type Generator interface {
	Generate(ctx context.Context, userText string) (string, error)
}

// OpenAIGenerator asks a chat-completion model for an empathetic reply,
// steered by the configured system prompt.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	rules       *rules.Ruleset
}

// OpenAIConfig holds the generative responder settings
type OpenAIConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	// Timeout bounds one completion request; 0 disables the deadline
	Timeout time.Duration
}

// NewOpenAIGenerator creates a generator backed by the OpenAI API
func NewOpenAIGenerator(cfg OpenAIConfig, rs *rules.Ruleset) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		rules:       rs,
	}
}

// Generate requests a reply for userText. Any transport or API failure is
// reported as ErrUnavailable. A hung upstream counts as a failure: the
// request is bounded by the configured timeout so the caller's rule-based
// fallback still answers promptly.
func (g *OpenAIGenerator) Generate(ctx context.Context, userText string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: g.rules.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrUnavailable
	}
	return resp.Choices[0].Message.Content, nil
}
