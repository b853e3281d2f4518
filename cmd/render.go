package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/tui/host"
	"github.com/grovetools/navbar/tui/theme"
	"github.com/spf13/cobra"
)

const defaultTextWidth = 80

// RenderOutput is the --json form of the render command.
type RenderOutput struct {
	HTML   string `json:"html"`
	Config string `json:"config,omitempty"`
}

func NewRenderCmd() *cobra.Command {
	var (
		text  bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the navigation bar",
		Long: `Render the navigation bar and print its HTML.

With --text the bar is drawn for the terminal instead, using the configured
theme. The width defaults to the terminal width.

Examples:
navbar render
navbar render --text --width 100
navbar render --config ./navbar.toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			bar, err := buildBar(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if text {
				if width <= 0 {
					width = cli.TerminalWidth(defaultTextWidth)
				}
				fmt.Fprintln(out, host.RenderBar(bar, theme.New(cfg.TUI.Theme), width, ""))
				return nil
			}

			var b strings.Builder
			if err := dom.Render(&b, bar.RootNode()); err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(RenderOutput{HTML: b.String(), Config: path}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal output to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, b.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&text, "text", false, "Draw the bar for the terminal instead of printing HTML")
	cmd.Flags().IntVar(&width, "width", 0, "Width of the text rendering")
	return cmd
}
