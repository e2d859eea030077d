package tokens

import (
	"math"
	"testing"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name         string
		provider     string
		model        string
		inputTokens  int
		outputTokens int
		want         float64
	}{
		{
			name:         "gemini 2.5 flash",
			provider:     "gemini",
			model:        "gemini-2.5-flash",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0.50,
		},
		{
			name:         "gemini 1.5 pro",
			provider:     "gemini",
			model:        "gemini-1.5-pro",
			inputTokens:  500_000,
			outputTokens: 100_000,
			want:         1.125,
		},
		{
			name:         "model matched by substring",
			provider:     "gemini",
			model:        "gemini-1.5-flash-001",
			inputTokens:  1_000_000,
			outputTokens: 0,
			want:         0.075,
		},
		{
			name:         "unknown provider costs nothing",
			provider:     "acme",
			model:        "acme-1",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0,
		},
		{
			name:         "unknown model costs nothing",
			provider:     "gemini",
			model:        "gemini-99",
			inputTokens:  1_000_000,
			outputTokens: 1_000_000,
			want:         0,
		},
	}

	calculator := NewCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := calculator.EstimateCost(tt.provider, tt.model, tt.inputTokens, tt.outputTokens)

			// Assert
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetPricing(t *testing.T) {
	calculator := NewCalculator()

	t.Run("known model", func(t *testing.T) {
		pricing, err := calculator.GetPricing("gemini", "gemini-2.5-flash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pricing.InputPricePerMillion != 0.10 {
			t.Errorf("InputPricePerMillion = %v, want 0.10", pricing.InputPricePerMillion)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := calculator.GetPricing("acme", "acme-1"); err == nil {
			t.Error("expected an error for an unknown provider")
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		if _, err := calculator.GetPricing("gemini", "gemini-99"); err == nil {
			t.Error("expected an error for an unknown model")
		}
	})
}
