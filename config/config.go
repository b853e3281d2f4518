package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/navbar/errors"
	"github.com/grovetools/navbar/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Format is the on-disk encoding of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames are searched in order in every directory.
var configNames = []string{
	"navbar.yml",
	"navbar.yaml",
	"navbar.toml",
	".navbar.yml",
	".navbar.yaml",
	".navbar.toml",
}

// FormatFromPath picks the format from a file extension; anything that is not
// .toml is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads, validates and defaults a single configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatFromPath(path))
	if err != nil {
		if navErr, ok := err.(*errors.NavbarError); ok {
			navErr.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration starting at the working
// directory:
// 1. Global config ($XDG_CONFIG_HOME/navbar/navbar.yml) - base layer
// 2. Project config (navbar.yml found walking up) - overrides global
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", projectPath).Debug("Loading project configuration")

	var finalConfig *Config

	// 1. Global config is optional and loaded raw, without validation or defaults
	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		logger.WithField("path", globalPath).Debug("Loading global configuration")
		globalData, err := os.ReadFile(globalPath)
		if err == nil {
			globalConfig, _, err := decode(globalData, FormatFromPath(globalPath))
			if err == nil {
				finalConfig = globalConfig
			} else {
				logger.WithError(err).Warn("Failed to parse global configuration, continuing without it")
			}
		} else {
			logger.WithError(err).Warn("Failed to read global configuration, continuing without it")
		}
	}

	// 2. Project config is required and schema-checked
	projectData, err := os.ReadFile(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read project config").
			WithDetail("path", projectPath)
	}

	projectConfig, raw, err := decode(projectData, FormatFromPath(projectPath))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
			WithDetail("path", projectPath)
	}
	if err := validateSchema(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed").
			WithDetail("path", projectPath)
	}

	if finalConfig == nil {
		finalConfig = projectConfig
	} else {
		logger.Debug("Merging project configuration over global configuration")
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	finalConfig.SetDefaults()
	if err := finalConfig.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded and validated successfully")

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(finalConfig)
		if err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return finalConfig, nil
}

// LoadFromBytes parses, schema-validates, defaults and validates a configuration.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	config, raw, err := decode(data, format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid,
			"failed to parse "+strings.ToUpper(string(format))+" configuration")
	}

	if err := validateSchema(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// decode expands environment variables and decodes data into both the typed
// Config and a generic document used for schema validation.
func decode(data []byte, format Format) (*Config, interface{}, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var config Config
	var raw map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(expanded, &config); err != nil {
			return nil, nil, err
		}
		if err := toml.Unmarshal(expanded, &raw); err != nil {
			return nil, nil, err
		}
		// go-toml has no inline map support; collect unknown top-level tables by hand.
		for key, val := range raw {
			if isKnownKey(key) {
				continue
			}
			if config.Extensions == nil {
				config.Extensions = make(map[string]interface{})
			}
			config.Extensions[key] = val
		}
	default:
		if err := yaml.Unmarshal(expanded, &config); err != nil {
			return nil, nil, err
		}
		if err := yaml.Unmarshal(expanded, &raw); err != nil {
			return nil, nil, err
		}
	}

	doc, err := toJSONDocument(raw)
	if err != nil {
		return nil, nil, err
	}
	return &config, doc, nil
}

func isKnownKey(key string) bool {
	switch key {
	case "version", "home_url", "bar", "address_bar", "tui":
		return true
	}
	return false
}

// toJSONDocument round-trips v through encoding/json so the schema validator
// only sees JSON value types.
func toJSONDocument(v map[string]interface{}) (interface{}, error) {
	if v == nil {
		v = map[string]interface{}{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FindConfigFile searches for navbar configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory (~/.config/navbar/navbar.yml)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		return xdgConfigPath, nil
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// ConfigDir returns the directory holding the global configuration file.
func ConfigDir() string {
	return paths.ConfigDir()
}

// getXDGConfigPath returns the first existing global config file, or "".
func getXDGConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range configNames[:3] {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
