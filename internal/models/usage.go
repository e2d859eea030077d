package models

// TokenUsage is what a provider reports after a generation call.
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	CostUSD      float64 `json:"cost_usd,omitempty"`
	Model        string  `json:"model,omitempty"`
	DurationMs   int64   `json:"duration_ms,omitempty"`
}

// BudgetReport is the token guard's verdict on a prompt before any paid call
// is made. Clipboard limits are always at least as large as API limits, so a
// prompt can fail the API check while still being exportable.
type BudgetReport struct {
	EstimatedTokens       int     `json:"estimated_tokens"`
	EstimatedCost         float64 `json:"estimated_cost"`
	CostDisplay           string  `json:"cost_display"`
	WithinAPILimits       bool    `json:"within_api_limits"`
	WithinClipboardLimits bool    `json:"within_clipboard_limits"`
	MaxPromptTokens       int     `json:"max_prompt_tokens"`
	MaxClipboardTokens    int     `json:"max_clipboard_tokens"`
	MaxPromptCost         float64 `json:"max_prompt_cost"`
}
