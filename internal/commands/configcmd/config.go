package configcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/thomas-vilte/gitguard/internal/config"
	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.createInitCommand(cfg, t),
			f.createSetCommand(cfg, t),
			f.createShowCommand(cfg, t),
		},
	}
}

func (f *ConfigCommandFactory) createInitCommand(cfg *config.Config, t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
			ui.PrintSuccess(t.GetMessage("config_saved", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) createSetCommand(cfg *config.Config, t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: "<key> <value>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().Get(0)
			value := command.Args().Get(1)

			if err := applySetting(cfg, t, key, value); err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}
			ui.PrintSuccess(t.GetMessage("config_saved", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) createShowCommand(cfg *config.Config, t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			shown := *cfg
			if shown.GeminiAPIKey != "" {
				shown.GeminiAPIKey = "********"
			}

			data, err := json.MarshalIndent(shown, "", "  ")
			if err != nil {
				return err
			}

			ui.PrintSectionBanner(t.GetMessage("config_current", 0, nil))
			fmt.Println(string(data))
			return nil
		},
	}
}

func applySetting(cfg *config.Config, t *i18n.Translations, key, value string) error {
	switch key {
	case "language":
		cfg.Language = value
	case "model":
		cfg.Model = value
	case "gemini_api_key":
		cfg.GeminiAPIKey = value
	case "use_ai":
		cfg.UseAI = value == "true"
	case "auto_mode":
		cfg.AutoMode = value == "true"
	case "include_tests":
		cfg.IncludeTests = value == "true"
	case "prioritize_core":
		cfg.PrioritizeCore = value == "true"
	case "max_prompt_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_prompt_tokens must be an integer: %w", err)
		}
		cfg.MaxPromptTokens = n
	case "max_clipboard_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_clipboard_tokens must be an integer: %w", err)
		}
		cfg.MaxClipboardTokens = n
	case "max_prompt_cost":
		cfg.MaxPromptCost = value
	default:
		return fmt.Errorf("%s", t.GetMessage("config_unknown_key", 0, map[string]interface{}{"Key": key}))
	}
	return nil
}
