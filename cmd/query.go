package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/errors"
	"github.com/spf13/cobra"
)

func NewQueryCmd() *cobra.Command {
	var count bool

	cmd := &cobra.Command{
		Use:   "query <xpath>",
		Short: "Run an XPath query against the rendered bar",
		Long: `Render the navigation bar and print the outer HTML of every element
matching the XPath expression, one per line.

Examples:
navbar query '//button[@data-action="refresh"]'
navbar query --count '//*[contains(@class, "icon-button")]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			bar, err := buildBar(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			matches, err := dom.QueryAll(bar.RootNode(), args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return errors.ElementNotFound(args[0])
			}
			out := cmd.OutOrStdout()

			if count {
				fmt.Fprintln(out, len(matches))
				return nil
			}

			if cli.GetOptions(cmd).JSONOutput {
				html := make([]string, 0, len(matches))
				for _, m := range matches {
					html = append(html, dom.OuterHTML(m))
				}
				data, err := json.MarshalIndent(html, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal matches to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for _, m := range matches {
				fmt.Fprintln(out, dom.OuterHTML(m))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "Print the number of matches only")
	return cmd
}
