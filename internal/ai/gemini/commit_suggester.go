package gemini

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/thomas-vilte/gitguard/internal/errors"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/ports"
	"github.com/thomas-vilte/gitguard/internal/prompt"
	"github.com/thomas-vilte/gitguard/internal/tokens"
	"google.golang.org/genai"
)

var _ ports.CommitSuggester = (*CommitSuggester)(nil)

// CommitSuggester asks Gemini for conventional commit messages over the
// prompt built from an analyzed change set.
type CommitSuggester struct {
	provider   *GeminiProvider
	calculator *tokens.Calculator
}

func NewCommitSuggester(provider *GeminiProvider) *CommitSuggester {
	return &CommitSuggester{
		provider:   provider,
		calculator: tokens.NewCalculator(),
	}
}

type suggestionResponse struct {
	Suggestions []struct {
		Message     string `json:"message"`
		Explanation string `json:"explanation"`
		Type        string `json:"type"`
		Scope       string `json:"scope"`
	} `json:"suggestions"`
}

func (s *CommitSuggester) GenerateSuggestions(ctx context.Context, info models.CommitInfo, count int) ([]models.CommitSuggestion, error) {
	if count <= 0 {
		count = 1
	}

	promptText := prompt.BuildCommitPrompt(info, count)
	start := time.Now()

	resp, err := s.provider.Client.Models.GenerateContent(
		ctx,
		s.provider.GetModelName(),
		genai.Text(promptText),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, errors.ErrAIGeneration.WithError(err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, errors.ErrInvalidAIOutput
	}

	var parsed suggestionResponse
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &parsed); err != nil {
		return nil, errors.ErrInvalidAIOutput.WithError(err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, errors.ErrInvalidAIOutput
	}

	usage := extractUsage(resp)
	if usage != nil {
		usage.Model = s.provider.GetModelName()
		usage.CostUSD = s.calculator.EstimateCost(
			s.provider.GetProviderName(), usage.Model, usage.InputTokens, usage.OutputTokens)
		usage.DurationMs = time.Since(start).Milliseconds()
	}

	suggestions := make([]models.CommitSuggestion, 0, len(parsed.Suggestions))
	for i, raw := range parsed.Suggestions {
		suggestion := models.CommitSuggestion{
			Message:     raw.Message,
			Explanation: raw.Explanation,
			Type:        raw.Type,
			Scope:       raw.Scope,
		}
		if i == 0 {
			suggestion.Usage = usage
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// cleanJSONResponse strips markdown fences some models wrap around JSON.
func cleanJSONResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}

func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}
