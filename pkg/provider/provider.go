// Package provider wraps the external LLM service behind a minimal client
// interface so any OpenAI-compatible backend can be swapped in.
package provider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal surface needed to request a chat completion.
// It mirrors the go-openai method signature so the real client satisfies
// it directly and tests can substitute a scripted stub.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI adapts *openai.Client to the Client interface.
// It is constructed once at startup and is read-only afterwards; the
// underlying client is safe for concurrent use.
type OpenAI struct {
	inner *openai.Client
}

// NewOpenAI creates an OpenAI provider authenticated with the given API key.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{inner: openai.NewClient(apiKey)}
}

// NewOpenAIWithBaseURL creates an OpenAI provider pointed at a compatible
// upstream (e.g. a local gateway) instead of the default API host.
func NewOpenAIWithBaseURL(apiKey, baseURL string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &OpenAI{inner: openai.NewClientWithConfig(config)}
}

func (p *OpenAI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.inner.CreateChatCompletion(ctx, req)
}
