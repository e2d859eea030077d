package analysis

import (
	"github.com/thomas-vilte/gitguard/internal/models"
)

// StrategyInput is everything the selector needs to rank the two candidate
// diff representations.
type StrategyInput struct {
	FullDiff        string
	Packed          models.PackedDiff
	MaxPromptTokens int
	// Clipboard marks a manual export: no token ceiling pressure and no
	// billed call, which changes how the full diff is valued.
	Clipboard bool
}

// SelectStrategy scores the full and the prioritized diff and returns the
// winner. Full scores 2 on a clipboard export or when it sits comfortably
// under a quarter of the token budget, 0 when it blows the budget outright,
// 1 when it is borderline. Prioritized scores 2 whenever it is non-empty and
// the call is API-bound. Ties go to the shorter content.
func SelectStrategy(in StrategyInput) models.DiffStrategy {
	fullTokens := estimateTokens(in.FullDiff)

	full := models.DiffStrategy{Name: models.StrategyFull, Content: in.FullDiff}
	switch {
	case in.Clipboard || fullTokens <= in.MaxPromptTokens/4:
		full.Score = 2
	case fullTokens > in.MaxPromptTokens:
		full.Score = 0
	default:
		full.Score = 1
	}

	prioritized := models.DiffStrategy{Name: models.StrategyPrioritized, Content: in.Packed.Diff}
	if !in.Clipboard && in.Packed.Diff != "" {
		prioritized.Score = 2
	}

	if prioritized.Score > full.Score {
		return prioritized
	}
	if full.Score > prioritized.Score {
		return full
	}
	if len(prioritized.Content) < len(full.Content) {
		return prioritized
	}
	return full
}
