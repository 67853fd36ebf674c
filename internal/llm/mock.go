package llm

import (
	"context"
	"errors"
	"fmt"
)

// MockProvider is a testing implementation of Provider.
type MockProvider struct {
	Response  string
	Err       error
	ChatFunc  func(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	CallCount int
	Requests  []ChatRequest
}

// Chat records the request and returns the canned response or error.
func (m *MockProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	m.CallCount++
	m.Requests = append(m.Requests, req)
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &ChatResponse{
		Content:  m.Response,
		Model:    req.Model,
		Provider: m.Name(),
		Usage:    Usage{InputTokens: 10, OutputTokens: 10, TotalTokens: 20},
	}, nil
}

// Name implements Provider.
func (m *MockProvider) Name() string { return "mock" }

// ScriptedMockProvider returns a fixed sequence of responses, one per call.
// Useful for multi-step workflow tests.
type ScriptedMockProvider struct {
	Responses []string
	FailAt    int // 1-based call index that fails; 0 disables
	CallCount int
	Requests  []ChatRequest
}

// Chat pops the next scripted response.
func (s *ScriptedMockProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	s.CallCount++
	s.Requests = append(s.Requests, req)
	if s.FailAt > 0 && s.CallCount == s.FailAt {
		return nil, fmt.Errorf("scripted mock: call %d failed", s.CallCount)
	}
	if len(s.Responses) == 0 {
		return nil, errors.New("scripted mock: no more responses available")
	}
	content := s.Responses[0]
	s.Responses = s.Responses[1:]
	return &ChatResponse{
		Content:  content,
		Model:    req.Model,
		Provider: s.Name(),
		Usage:    Usage{InputTokens: 10, OutputTokens: 10, TotalTokens: 20},
	}, nil
}

// Name implements Provider.
func (s *ScriptedMockProvider) Name() string { return "mock" }
