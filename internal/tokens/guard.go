package tokens

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/ports"
)

// estimatedOutputTokens is the flat allowance assumed for the model's reply
// when projecting cost before the call is made.
const estimatedOutputTokens = 1000

// Guard estimates the token count and cost of a prompt and enforces the
// configured ceilings. The API ceiling bounds paid calls; the clipboard
// ceiling is always at least as large, since clipboard content is never
// billed. A failed check is reported, never fatal.
type Guard struct {
	maxPromptTokens    int
	maxPromptCost      float64
	maxClipboardTokens int
	calculator         *Calculator
	counter            ports.TokenCounter
	provider           string
	model              string
}

type GuardConfig struct {
	MaxPromptTokens    int
	MaxPromptCost      float64
	MaxClipboardTokens int
	// Counter is optional; when nil the character heuristic is used.
	Counter  ports.TokenCounter
	Provider string
	Model    string
}

func NewGuard(cfg GuardConfig) *Guard {
	return &Guard{
		maxPromptTokens:    cfg.MaxPromptTokens,
		maxPromptCost:      cfg.MaxPromptCost,
		maxClipboardTokens: cfg.MaxClipboardTokens,
		calculator:         NewCalculator(),
		counter:            cfg.Counter,
		provider:           cfg.Provider,
		model:              cfg.Model,
	}
}

// EstimateTokens returns the provider's count when one is wired, falling back
// to one token per four characters (rounded up) otherwise or on error.
func (g *Guard) EstimateTokens(ctx context.Context, content string) int {
	if g.counter != nil {
		if count, err := g.counter.CountTokens(ctx, content); err == nil {
			return count
		} else {
			slog.Debug("provider token count failed, using character estimate", "error", err)
		}
	}
	return (len(content) + 3) / 4
}

// Check produces the budget verdict for a prompt.
func (g *Guard) Check(ctx context.Context, prompt string) models.BudgetReport {
	estimated := g.EstimateTokens(ctx, prompt)
	cost := g.calculator.EstimateCost(g.provider, g.model, estimated, estimatedOutputTokens)

	return models.BudgetReport{
		EstimatedTokens:       estimated,
		EstimatedCost:         cost,
		CostDisplay:           fmt.Sprintf("$%.4f", cost),
		WithinAPILimits:       estimated <= g.maxPromptTokens && cost <= g.maxPromptCost,
		WithinClipboardLimits: estimated <= g.maxClipboardTokens,
		MaxPromptTokens:       g.maxPromptTokens,
		MaxClipboardTokens:    g.maxClipboardTokens,
		MaxPromptCost:         g.maxPromptCost,
	}
}

// Explain renders the user-facing explanation of a failed API check: current
// usage against both ceilings, so the caller can reduce scope or raise the
// configuration.
func Explain(report models.BudgetReport, t *i18n.Translations) string {
	return t.GetMessage("budget_explanation", 0, map[string]interface{}{
		"Tokens":       report.EstimatedTokens,
		"Cost":         report.CostDisplay,
		"MaxTokens":    report.MaxPromptTokens,
		"MaxCost":      fmt.Sprintf("$%.2f", report.MaxPromptCost),
		"ClipboardMax": report.MaxClipboardTokens,
	})
}
