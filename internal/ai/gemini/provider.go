package gemini

import (
	"context"

	"github.com/thomas-vilte/gitguard/internal/ports"
	"google.golang.org/genai"
)

var _ ports.CostAwareAIProvider = (*GeminiProvider)(nil)

// GeminiProvider is the shared base for Gemini-backed services. It exposes
// token counting so the budget guard can price a prompt before any paid call.
type GeminiProvider struct {
	Client *genai.Client
	model  string
}

func NewGeminiProvider(client *genai.Client, model string) *GeminiProvider {
	return &GeminiProvider{
		Client: client,
		model:  model,
	}
}

// NewClient creates the genai client against the public Gemini API.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// CountTokens implements ports.CostAwareAIProvider
func (g *GeminiProvider) CountTokens(ctx context.Context, prompt string) (int, error) {
	resp, err := g.Client.Models.CountTokens(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}

// GetModelName implements ports.CostAwareAIProvider
func (g *GeminiProvider) GetModelName() string {
	return g.model
}

// GetProviderName implements ports.CostAwareAIProvider
func (g *GeminiProvider) GetProviderName() string {
	return "gemini"
}
