package ports

import (
	"context"

	"github.com/thomas-vilte/gitguard/internal/models"
)

// SplitPrompter surfaces a split suggestion to the user and collects the
// decision. Implementations may be interactive (terminal) or fixed
// (auto mode, tests).
type SplitPrompter interface {
	ChooseSplit(ctx context.Context, suggestion models.SplitSuggestion) (models.SplitChoice, error)
}
