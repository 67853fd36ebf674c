// Package gemini adapts Google Gemini models to the llm.Provider contract.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/claidev/clai/internal/llm"
)

// Provider implements llm.Provider for the Google Gemini API.
type Provider struct {
	client *genai.Client
}

// New constructs a Gemini provider with an explicit API key.
func New(ctx context.Context, apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required (set GEMINI_API_KEY or GOOGLE_API_KEY)")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return "google" }

// Chat implements llm.Provider.
func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == llm.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	out := &llm.ChatResponse{
		Content:  resp.Text(),
		Model:    req.Model,
		Provider: p.Name(),
	}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if resp.UsageMetadata != nil {
		out.Usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

var _ llm.Provider = (*Provider)(nil)
