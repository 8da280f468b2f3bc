package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/bodhs/bodhs-bot/internal/config"
)

// ErrMissingAPIKey means the Groq credential is absent. The caller is
// expected to start the service in degraded mode rather than crash.
var ErrMissingAPIKey = errors.New("llm: GROQ_API_KEY is not set")

// GroqProvider talks to Groq's OpenAI-compatible chat-completion endpoint.
type GroqProvider struct {
	llm   *openai.LLM
	model string
}

func NewGroqProvider(cfg config.GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: init groq client: %w", err)
	}

	return &GroqProvider{
		llm:   client,
		model: cfg.Model,
	}, nil
}

// Model returns the configured model identifier.
func (p *GroqProvider) Model() string {
	return p.model
}

func (p *GroqProvider) Complete(ctx context.Context, request *Request) (*Response, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, request.System),
		llms.TextParts(llms.ChatMessageTypeHuman, request.Prompt),
	}

	resp, err := p.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(request.MaxTokens),
		llms.WithTemperature(request.Temperature),
		llms.WithTopP(request.TopP),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: groq completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm: groq returned no choices")
	}

	return &Response{Content: resp.Choices[0].Content}, nil
}
