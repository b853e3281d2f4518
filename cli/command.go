package cli

import (
	"os"

	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the options shared by every navbar command
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to navbar.yml or navbar.toml")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the CLI logger adjusted for the command flags
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	opts := GetOptions(cmd)

	var entry *logrus.Entry
	if opts.Verbose {
		entry = logging.EnableDebug("navbar-cli")
	} else {
		entry = logging.NewLogger("navbar-cli")
	}
	if opts.JSONOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig resolves the configuration file path. An empty path with a nil
// error means no file was found, which is fine for every command.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	found, err := config.FindConfigFile(cwd)
	if err != nil {
		return "", nil
	}
	return found, nil
}

// LoadConfig loads the configuration selected by the command flags. An
// explicit --config file is loaded on its own; otherwise the global file is
// merged under the nearest project file. Defaults apply when neither exists.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	if explicit := GetOptions(cmd).ConfigFile; explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return nil, explicit, err
		}
		return cfg, explicit, nil
	}

	path, err := InitConfig("")
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return config.Default(), "", nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, path, err
	}
	cfg, err := config.LoadFrom(cwd)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
