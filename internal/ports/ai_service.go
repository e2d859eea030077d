package ports

import (
	"context"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// CommitSuggester generates commit message suggestions for an analyzed
// change set.
type CommitSuggester interface {
	GenerateSuggestions(ctx context.Context, info models.CommitInfo, count int) ([]models.CommitSuggestion, error)
}

// TokenCounter is implemented by providers that can count prompt tokens
// without making the actual model call, so cost can be estimated first.
type TokenCounter interface {
	CountTokens(ctx context.Context, content string) (int, error)
}

// CostAwareAIProvider combines token counting with provider identity, which
// the pricing tables key on.
type CostAwareAIProvider interface {
	TokenCounter

	// GetModelName returns the name of the current model (e.g.: "gemini-2.5-flash")
	GetModelName() string

	// GetProviderName returns the name of the provider (e.g.: "gemini")
	GetProviderName() string
}
