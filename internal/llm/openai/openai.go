// Package openai adapts OpenAI GPT models to the llm.Provider contract.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/claidev/clai/internal/llm"
)

// Provider implements llm.Provider for the OpenAI Chat Completions API.
type Provider struct {
	client openai.Client
}

// New constructs an OpenAI provider with an explicit API key.
func New(apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key is required (set OPENAI_API_KEY)")
	}
	return &Provider{client: openai.NewClient(option.WithAPIKey(apiKey))}, nil
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return "openai" }

// Chat implements llm.Provider.
func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case llm.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion: response contained no choices")
	}

	choice := completion.Choices[0]
	return &llm.ChatResponse{
		Content:      choice.Message.Content,
		Model:        completion.Model,
		Provider:     p.Name(),
		FinishReason: string(choice.FinishReason),
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

var _ llm.Provider = (*Provider)(nil)
