package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/tokens"
)

func PrintTokenUsage(usage *models.TokenUsage, t *i18n.Translations) {
	if usage == nil {
		return
	}
	yellow := color.New(color.FgYellow)

	fmt.Printf("📊 %s: ", t.GetMessage("ui.token_usage", 0, nil))
	fmt.Printf("%s %d | ", t.GetMessage("ui.input", 0, nil), usage.InputTokens)
	fmt.Printf("%s %d | ", t.GetMessage("ui.output", 0, nil), usage.OutputTokens)
	fmt.Printf("%s %d\n", t.GetMessage("ui.total", 0, nil), usage.TotalTokens)
	if usage.CostUSD > 0 {
		fmt.Printf("💰 %s %s\n", t.GetMessage("ui.estimated_cost", 0, nil), yellow.Sprintf("$%.4f", usage.CostUSD))
	}
}

// PrintBudgetReport shows the token estimate before any paid call, and the
// two-ceiling explanation when the API path was rejected.
func PrintBudgetReport(report models.BudgetReport, aborted bool, t *i18n.Translations) {
	if !aborted {
		PrintInfo(t.GetMessage("budget_within_limits", 0, map[string]interface{}{
			"Tokens": report.EstimatedTokens,
			"Cost":   report.CostDisplay,
		}))
		return
	}

	fmt.Println(Error.Sprint(t.GetMessage("budget_exceeded_header", 0, nil)))
	fmt.Println(tokens.Explain(report, t))
}

func PrintPackedSummary(packed models.PackedDiff, t *i18n.Translations) {
	fmt.Printf("   %s %s: %d\n", color.CyanString("•"), t.GetMessage("ui.included_files", 0, nil), packed.IncludedFiles)
	fmt.Printf("   %s %s: %d/%d\n", color.CyanString("•"), t.GetMessage("ui.groups_covered", 0, nil), packed.GroupsIncluded, packed.TotalGroups)
	if packed.TruncationNote != "" {
		fmt.Printf("   %s %s\n", WarningEmoji, t.GetMessage("diff_truncated", 0, map[string]interface{}{
			"Omitted": packed.TotalGroups - packed.GroupsIncluded,
		}))
	}
}

// PrintSplitSuggestion renders a non-cohesive verdict: the reason, one line
// per proposed sub-commit, and the ready-to-run commands.
func PrintSplitSuggestion(suggestion models.SplitSuggestion, t *i18n.Translations) {
	fmt.Printf("\n%s\n", Warning.Sprint(t.GetMessage("split_detected_header", 0, nil)))
	fmt.Println(t.GetMessage("split_reason", 0, map[string]interface{}{"Reason": suggestion.Reason}))

	fileColor := color.New(color.FgHiBlack)
	for _, sub := range suggestion.Suggestions {
		scope := sub.Scope
		if scope == "" {
			scope = "root"
		}
		fmt.Println(t.GetMessage("split_subcommit", 0, map[string]interface{}{
			"Order": sub.Order,
			"Type":  sub.Type,
			"Scope": scope,
			"Count": len(sub.Files),
		}))
		for _, file := range sub.Files {
			fmt.Printf("   %s %s\n", color.CyanString("-"), fileColor.Sprint(file))
		}
	}

	if len(suggestion.Commands) > 0 {
		fmt.Println()
		for _, cmd := range suggestion.Commands {
			fmt.Printf("   %s %s\n", Dim.Sprint("$"), Dim.Sprint(cmd))
		}
	}
}

func PrintSuggestions(suggestions []models.CommitSuggestion, t *i18n.Translations) {
	titleColor := color.New(color.FgCyan, color.Bold)
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")

	fmt.Printf("\n%s\n", t.GetMessage("suggestions_header", 0, nil))

	for i, suggestion := range suggestions {
		fmt.Printf("\n%s\n", separator)
		fmt.Printf("%s %s\n", color.New(color.FgMagenta, color.Bold).Sprintf("%d.", i+1), titleColor.Sprint(suggestion.Message))
		if suggestion.Explanation != "" {
			fmt.Printf("   %s\n", suggestion.Explanation)
		}
		if i == 0 && suggestion.Usage != nil {
			fmt.Println()
			PrintTokenUsage(suggestion.Usage, t)
		}
	}
	fmt.Printf("%s\n", separator)
}
