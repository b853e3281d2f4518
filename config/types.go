package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the top-level navbar.yml / navbar.toml structure.
type Config struct {
	Version    string           `yaml:"version,omitempty" toml:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	HomeURL    string           `yaml:"home_url,omitempty" toml:"home_url,omitempty" jsonschema:"description=Address navigated to when the home button is pressed"`
	Bar        BarConfig        `yaml:"bar,omitempty" toml:"bar,omitempty" jsonschema:"description=Navigation bar appearance and behavior"`
	AddressBar AddressBarConfig `yaml:"address_bar,omitempty" toml:"address_bar,omitempty" jsonschema:"description=Address field settings"`
	TUI        TUIConfig        `yaml:"tui,omitempty" toml:"tui,omitempty" jsonschema:"description=Terminal host settings"`

	// Extensions captures all other top-level keys (e.g. logging).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// BarConfig configures the navigation bar controller.
type BarConfig struct {
	Classes BarClasses `yaml:"classes,omitempty" toml:"classes,omitempty" jsonschema:"description=CSS classes applied to the bar containers"`
	Glyphs  Glyphs     `yaml:"glyphs,omitempty" toml:"glyphs,omitempty" jsonschema:"description=Text glyphs shown on the action buttons"`
	Labels  Labels     `yaml:"labels,omitempty" toml:"labels,omitempty" jsonschema:"description=Tooltips shown on the action buttons"`

	// BypassCacheModifier is the modifier key that turns a refresh click into
	// a refresh that bypasses the cache.
	BypassCacheModifier string `yaml:"bypass_cache_modifier,omitempty" toml:"bypass_cache_modifier,omitempty" jsonschema:"enum=shift,enum=ctrl,enum=alt,enum=meta,description=Modifier held on refresh to bypass the cache (default: shift)"`
}

// BarClasses holds the classes of the outer container and the inner wrapper.
type BarClasses struct {
	Bar     string `yaml:"bar,omitempty" toml:"bar,omitempty" jsonschema:"description=Class of the outer container (default: browser-bar)"`
	Wrapper string `yaml:"wrapper,omitempty" toml:"wrapper,omitempty" jsonschema:"description=Class of the inner wrapper (default: browser-bar-wrapper)"`
}

// Glyphs holds the text icon of each action button.
type Glyphs struct {
	Back    string `yaml:"back,omitempty" toml:"back,omitempty"`
	Forward string `yaml:"forward,omitempty" toml:"forward,omitempty"`
	Refresh string `yaml:"refresh,omitempty" toml:"refresh,omitempty"`
	Home    string `yaml:"home,omitempty" toml:"home,omitempty"`
}

// Labels holds the tooltip of each action button.
type Labels struct {
	Back    string `yaml:"back,omitempty" toml:"back,omitempty"`
	Forward string `yaml:"forward,omitempty" toml:"forward,omitempty"`
	Refresh string `yaml:"refresh,omitempty" toml:"refresh,omitempty"`
	Home    string `yaml:"home,omitempty" toml:"home,omitempty"`
}

// AddressBarConfig configures the address field.
type AddressBarConfig struct {
	Placeholder string `yaml:"placeholder,omitempty" toml:"placeholder,omitempty" jsonschema:"description=Placeholder text of the empty address field"`
	Value       string `yaml:"value,omitempty" toml:"value,omitempty" jsonschema:"description=Initial address shown in the field"`
}

// TUIConfig configures the terminal host.
type TUIConfig struct {
	Theme        string  `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal,description=Color theme (default: kanagawa)"`
	ProgressStep float64 `yaml:"progress_step,omitempty" toml:"progress_step,omitempty" jsonschema:"minimum=1,maximum=100,description=Percent added per simulated load tick (default: 20)"`
	TickMillis   int     `yaml:"tick_ms,omitempty" toml:"tick_ms,omitempty" jsonschema:"minimum=1,description=Milliseconds between simulated load ticks (default: 120)"`
}

// Default values.
const (
	DefaultVersion        = "1.0"
	DefaultHomeURL        = "about:home"
	DefaultBarClass       = "browser-bar"
	DefaultWrapperClass   = "browser-bar-wrapper"
	DefaultBypassModifier = "shift"
	DefaultPlaceholder    = "Enter an address"
	DefaultTheme          = "kanagawa"
	DefaultProgressStep   = 20
	DefaultTickMillis     = 120
)

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.HomeURL == "" {
		c.HomeURL = DefaultHomeURL
	}
	c.Bar.SetDefaults()
	if c.AddressBar.Placeholder == "" {
		c.AddressBar.Placeholder = DefaultPlaceholder
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = DefaultTheme
	}
	if c.TUI.ProgressStep == 0 {
		c.TUI.ProgressStep = DefaultProgressStep
	}
	if c.TUI.TickMillis == 0 {
		c.TUI.TickMillis = DefaultTickMillis
	}
}

// SetDefaults fills in the bar classes, glyphs, labels and modifier.
func (b *BarConfig) SetDefaults() {
	setDefault(&b.Classes.Bar, DefaultBarClass)
	setDefault(&b.Classes.Wrapper, DefaultWrapperClass)

	setDefault(&b.Glyphs.Back, "←")
	setDefault(&b.Glyphs.Forward, "→")
	setDefault(&b.Glyphs.Refresh, "⟳")
	setDefault(&b.Glyphs.Home, "⌂")

	setDefault(&b.Labels.Back, "Go back")
	setDefault(&b.Labels.Forward, "Go forward")
	setDefault(&b.Labels.Refresh, "Reload")
	setDefault(&b.Labels.Home, "Go home")

	setDefault(&b.BypassCacheModifier, DefaultBypassModifier)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded file into the provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
