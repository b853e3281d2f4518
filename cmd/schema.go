package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/logging"
	"github.com/spf13/cobra"
)

func NewSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of navbar configuration files",
		Long: `Print the JSON schema of navbar configuration files, or write it to a
file with --output for editor integration.

Examples:
navbar schema
navbar schema --output .vscode/navbar.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("failed to create schema directory: %w", err)
			}
			if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			pretty.Success("Schema written")
			pretty.Path("Output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to this file instead of stdout")
	return cmd
}
