package prepare

import (
	"context"
	"fmt"
	"os"
	"strings"

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

type PrepareCommandFactory struct {
	service analysisService
}

func NewPrepareCommandFactory(service analysisService) *PrepareCommandFactory {
	return &PrepareCommandFactory{service: service}
}

func (f *PrepareCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "prepare",
		Usage:     t.GetMessage("prepare_command_usage", 0, nil),
		ArgsUsage: "<commit-msg-file>",
		Action:    f.createAction(cfg, t),
	}
}

func (f *PrepareCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		log := logger.FromContext(ctx)

		msgFile := command.Args().First()
		if msgFile == "" {
			return fmt.Errorf("missing commit message file argument")
		}

		data, err := os.ReadFile(msgFile)
		if err != nil {
			return fmt.Errorf("error reading commit message file: %w", err)
		}
		originalMessage := strings.TrimSpace(string(data))

		// Never rewrite merge commits.
		if strings.HasPrefix(originalMessage, "Merge") {
			log.Debug("merge commit, skipping")
			ui.PrintInfo(t.GetMessage("merge_commit_skipped", 0, nil))
			return nil
		}

		ui.PrintInfo(t.GetMessage("analyzing_changes", 0, nil))

		result, err := f.service.Analyze(ctx, services.AnalyzeOptions{
			OriginalMessage: originalMessage,
			SuggestionCount: 3,
		})
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

		if result.Aborted {
			ui.PrintBudgetReport(result.Budget, true, t)
		}

		if len(result.Suggestions) > 0 {
			ui.PrintSuggestions(result.Suggestions, t)
			if choice := ui.SelectSuggestion(os.Stdin, t, len(result.Suggestions)); choice >= 0 {
				return writeMessage(msgFile, result.Suggestions[choice].Message, t)
			}
		}

		// Deterministic fallback, same as when AI is disabled.
		message := services.FormatFallbackMessage(result, originalMessage)
		fmt.Printf("\n✨ %s\n", message)

		if cfg.AutoMode || ui.Confirm(os.Stdin, t.GetMessage("use_message_prompt", 0, nil)) {
			return writeMessage(msgFile, message, t)
		}
		return nil
	}
}

func writeMessage(msgFile, message string, t *i18n.Translations) error {
	if err := os.WriteFile(msgFile, []byte(message+"\n"), 0644); err != nil {
		return fmt.Errorf("error writing commit message file: %w", err)
	}
	ui.PrintSuccess(t.GetMessage("message_updated", 0, nil))
	return nil
}
