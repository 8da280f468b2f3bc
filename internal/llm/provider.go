package llm

import "context"

// Provider defines the interface for chat-completion providers.
type Provider interface {
	Complete(ctx context.Context, request *Request) (*Response, error)
}

// Request represents one structured chat-completion request.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Response represents the raw completion text.
type Response struct {
	Content string
}
