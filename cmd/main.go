package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/gitguard/internal/ai/gemini"
	"github.com/thomas-vilte/gitguard/internal/analysis"
	"github.com/thomas-vilte/gitguard/internal/commands/configcmd"
	"github.com/thomas-vilte/gitguard/internal/commands/hookcmd"
	"github.com/thomas-vilte/gitguard/internal/commands/prepare"
	"github.com/thomas-vilte/gitguard/internal/commands/suggest"
	cfgPkg "github.com/thomas-vilte/gitguard/internal/config"
	gitPkg "github.com/thomas-vilte/gitguard/internal/git"
	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/logger"
	"github.com/thomas-vilte/gitguard/internal/ports"
	"github.com/thomas-vilte/gitguard/internal/services"
	"github.com/thomas-vilte/gitguard/internal/tokens"
	"github.com/thomas-vilte/gitguard/internal/ui"
	"github.com/thomas-vilte/gitguard/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	ctx := context.Background()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	gitService := gitPkg.NewGitService()

	// Best effort: outside a repository only the global config applies.
	repoRoot, _ := gitService.GetRepoRoot(ctx)

	cfg, err := cfgPkg.LoadConfig(homeDir, repoRoot)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfg.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	var suggester ports.CommitSuggester
	var counter ports.TokenCounter

	if cfg.UseAI && cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Warning: could not create the Gemini client: %v", err)
		} else {
			provider := gemini.NewGeminiProvider(client, cfg.Model)
			suggester = gemini.NewCommitSuggester(provider)
			counter = provider
		}
	} else if cfg.UseAI {
		ui.PrintWarning(translations.GetMessage("error_missing_api_key", 0, nil))
	}

	maxCost, _ := cfg.MaxPromptCostValue()
	guard := tokens.NewGuard(tokens.GuardConfig{
		MaxPromptTokens:    cfg.MaxPromptTokens,
		MaxPromptCost:      maxCost,
		MaxClipboardTokens: cfg.MaxClipboardTokens,
		Counter:            counter,
		Provider:           "gemini",
		Model:              cfg.Model,
	})

	analysisService := services.NewAnalysisService(services.AnalysisServiceConfig{
		Git:             gitService,
		Suggester:       suggester,
		Guard:           guard,
		Prompter:        ui.NewTerminalPrompter(translations, cfg.AutoMode),
		Weights:         analysis.DefaultWeights(),
		MaxPromptTokens: cfg.MaxPromptTokens,
		IncludeTests:    cfg.IncludeTests,
		PrioritizeCore:  cfg.PrioritizeCore,
		IgnorePatterns:  cfg.IgnorePatterns,
	})

	commands := []*cli.Command{
		prepare.NewPrepareCommandFactory(analysisService).CreateCommand(translations, cfg),
		suggest.NewSuggestCommandFactory(analysisService, gitService).CreateCommand(translations, cfg),
		configcmd.NewConfigCommandFactory().CreateCommand(translations, cfg),
		hookcmd.NewHookCommandFactory(gitService).CreateCommand(translations, cfg),
	}

	return &cli.Command{
		Name:        "gitguard",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Description: translations.GetMessage("app_description", 0, nil),
		Version:     version.FullVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable info logging"},
		},
		Before: func(ctx context.Context, command *cli.Command) (context.Context, error) {
			logger.Initialize(command.Bool("debug"), command.Bool("verbose"))
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
