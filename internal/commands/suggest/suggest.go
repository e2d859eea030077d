package suggest

import (
	"context"
	"os"

	"github.com/thomas-vilte/gitguard/internal/config"
	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/logger"
	"github.com/thomas-vilte/gitguard/internal/models"
	"github.com/thomas-vilte/gitguard/internal/services"
	"github.com/thomas-vilte/gitguard/internal/ui"
	"github.com/urfave/cli/v3"
)

// analysisService is a minimal interface for testing purposes
type analysisService interface {
	Analyze(ctx context.Context, opts services.AnalyzeOptions) (*models.AnalysisResult, error)
}

type gitService interface {
	CreateCommit(ctx context.Context, message string) error
}

type SuggestCommandFactory struct {
	service analysisService
	git     gitService
}

func NewSuggestCommandFactory(service analysisService, git gitService) *SuggestCommandFactory {
	return &SuggestCommandFactory{service: service, git: git}
}

func (f *SuggestCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "suggest",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("suggest_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   3,
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Value:   cfg.Language,
			},
			&cli.BoolFlag{
				Name:    "copy",
				Aliases: []string{"c"},
				Usage:   "copy the prompt to the clipboard instead of calling the AI",
			},
		},
		Action: f.createAction(cfg, t),
	}
}

func (f *SuggestCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		log := logger.FromContext(ctx)

		if lang := command.String("lang"); lang != "" && lang != cfg.Language {
			if err := t.SetLanguage(lang); err != nil {
				_ = t.SetLanguage("en")
			}
		}

		copyMode := command.Bool("copy")
		count := int(command.Int("count"))

		spinner := ui.NewSmartSpinner(t.GetMessage("analyzing_changes", 0, nil))
		spinner.Start()

		result, err := f.service.Analyze(ctx, services.AnalyzeOptions{
			Clipboard:       copyMode,
			SuggestionCount: count,
		})
		spinner.Stop()

		if err != nil {
			ui.HandleAppError(err, t)
			return err
		}

		if len(result.Files) == 0 {
			ui.PrintWarning(t.GetMessage("no_staged_changes", 0, nil))
			return nil
		}
		if result.Prompt == "" {
			ui.PrintWarning(t.GetMessage("no_diff_detected", 0, nil))
			return nil
		}

		log.Info("analysis finished",
			"strategy", string(result.Strategy.Name),
			"files", result.Packed.IncludedFiles,
			"tokens", result.Budget.EstimatedTokens)

		ui.PrintInfo(t.GetMessage("strategy_selected", 0, map[string]interface{}{
			"Name":   string(result.Strategy.Name),
			"Tokens": result.Budget.EstimatedTokens,
		}))
		ui.PrintPackedSummary(result.Packed, t)

		if copyMode {
			return f.handleClipboard(result, t)
		}

		ui.PrintBudgetReport(result.Budget, result.Aborted, t)
		if result.Aborted {
			return nil
		}

		if len(result.Suggestions) == 0 {
			ui.PrintWarning(t.GetMessage("error_no_suggestions", 0, nil))
			return nil
		}

		ui.PrintSuggestions(result.Suggestions, t)
		if choice := ui.SelectSuggestion(os.Stdin, t, len(result.Suggestions)); choice >= 0 {
			if err := f.git.CreateCommit(ctx, result.Suggestions[choice].Message); err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			ui.PrintSuccess(result.Suggestions[choice].Message)
		}
		return nil
	}
}

func (f *SuggestCommandFactory) handleClipboard(result *models.AnalysisResult, t *i18n.Translations) error {
	if result.Aborted {
		ui.PrintWarning(t.GetMessage("clipboard_over_limit", 0, map[string]interface{}{
			"Max": result.Budget.MaxClipboardTokens,
		}))
		return nil
	}

	if err := ui.CopyToClipboard(result.Prompt); err != nil {
		return err
	}
	ui.PrintSuccess(t.GetMessage("clipboard_copied", 0, map[string]interface{}{
		"Tokens": result.Budget.EstimatedTokens,
	}))
	return nil
}
