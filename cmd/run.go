package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/tui"
	"github.com/grovetools/navbar/tui/host"
	"github.com/spf13/cobra"
)

const reloadDebounce = 200 * time.Millisecond

func NewRunCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the navigation bar interactively in the terminal",
		Long: `Start an interactive terminal session hosting the navigation bar.

Navigation is simulated: every action starts a fake page load that drives the
loading indicator. With --watch the configuration file is reloaded whenever
it changes.

Examples:
navbar run
navbar run --config ./navbar.yml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tui.InitializeTUI()
			model, err := host.New(cfg)
			if err != nil {
				return err
			}
			program := tea.NewProgram(model, tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if watch && path != "" {
				watcher, err := config.NewWatcher(path, reloadDebounce, logger, func(c *config.Config) {
					program.Send(host.ConfigReloadedMsg{Config: c})
				})
				if err != nil {
					logger.WithError(err).Warn("Config watching disabled")
				} else {
					defer watcher.Close()
					go watcher.Start(ctx)
				}
			}

			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the configuration when the file changes")
	return cmd
}
