package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navbar/cli"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/pkg/paths"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PathsOutput lists where configuration is looked up.
type PathsOutput struct {
	ConfigFile string `json:"config_file"`
	ConfigDir  string `json:"config_dir"`
	StateDir   string `json:"state_dir"`
	LogFile    string `json:"log_file"`
}

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Shows the configuration after merging the global file from the XDG
config directory with the nearest navbar.yml or navbar.toml and applying
defaults. This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if path != "" {
				fmt.Fprintf(out, "# Source: %s\n", path)
			} else {
				fmt.Fprintln(out, "# Source: defaults")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	cmd.AddCommand(newConfigPathsCmd())
	return cmd
}

func newConfigPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the config file in use and the config, state and log locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.InitConfig(cli.GetOptions(cmd).ConfigFile)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(PathsOutput{
				ConfigFile: path,
				ConfigDir:  config.ConfigDir(),
				StateDir:   paths.StateDir(),
				LogFile:    paths.DefaultLogFile(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
