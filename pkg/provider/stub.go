package provider

import (
	"context"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Stub is a scripted Client for tests and local development.
// It returns Reply as the single choice, or Err when set, and records
// every call it receives.
type Stub struct {
	Reply string
	Err   error

	mu          sync.Mutex
	calls       int
	lastRequest openai.ChatCompletionRequest
}

func (s *Stub) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.mu.Lock()
	s.calls++
	s.lastRequest = req
	s.mu.Unlock()

	if s.Err != nil {
		return openai.ChatCompletionResponse{}, s.Err
	}

	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: s.Reply,
				},
			},
		},
	}, nil
}

// Calls returns how many completion requests the stub has received.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastRequest returns the most recent request the stub received.
func (s *Stub) LastRequest() openai.ChatCompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequest
}
