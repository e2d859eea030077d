package hookcmd

import (
	"context"

	"github.com/thomas-vilte/gitguard/internal/config"
	"github.com/thomas-vilte/gitguard/internal/hook"
	"github.com/thomas-vilte/gitguard/internal/i18n"
	"github.com/thomas-vilte/gitguard/internal/ui"
	"github.com/urfave/cli/v3"
)

// gitService is a minimal interface for testing purposes
type gitService interface {
	GetRepoRoot(ctx context.Context) (string, error)
}

type HookCommandFactory struct {
	git gitService
}

func NewHookCommandFactory(git gitService) *HookCommandFactory {
	return &HookCommandFactory{git: git}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook_command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "install",
				Usage: t.GetMessage("hook_install_usage", 0, nil),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing foreign hook",
					},
				},
				Action: func(ctx context.Context, command *cli.Command) error {
					root, err := f.git.GetRepoRoot(ctx)
					if err != nil {
						ui.HandleAppError(err, t)
						return err
					}

					path, err := hook.Install(root, command.Bool("force"))
					if err != nil {
						ui.HandleAppError(err, t)
						return err
					}

					ui.PrintSuccess(t.GetMessage("hook_installed", 0, map[string]interface{}{
						"Path": path,
					}))
					return nil
				},
			},
			{
				Name:  "uninstall",
				Usage: t.GetMessage("hook_uninstall_usage", 0, nil),
				Action: func(ctx context.Context, command *cli.Command) error {
					root, err := f.git.GetRepoRoot(ctx)
					if err != nil {
						ui.HandleAppError(err, t)
						return err
					}

					removed, err := hook.Uninstall(root)
					if err != nil {
						ui.HandleAppError(err, t)
						return err
					}
					if removed {
						ui.PrintSuccess(t.GetMessage("hook_uninstalled", 0, nil))
					}
					return nil
				},
			},
		},
	}
}
