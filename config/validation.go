package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/errors"
)

// Validate checks if the configuration is valid. It expects defaults to have
// been applied.
func (c *Config) Validate() error {
	if _, err := dom.ParseModifier(c.Bar.BypassCacheModifier); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid bar.bypass_cache_modifier").
			WithDetail("modifier", c.Bar.BypassCacheModifier)
	}

	glyphs := map[string]string{
		"back":    c.Bar.Glyphs.Back,
		"forward": c.Bar.Glyphs.Forward,
		"refresh": c.Bar.Glyphs.Refresh,
		"home":    c.Bar.Glyphs.Home,
	}
	for name, glyph := range glyphs {
		if strings.TrimSpace(glyph) == "" {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("bar.glyphs.%s cannot be blank", name)).
				WithDetail("glyph", name)
		}
	}

	for _, class := range []string{c.Bar.Classes.Bar, c.Bar.Classes.Wrapper} {
		if strings.ContainsAny(class, " \t\n") {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("class name '%s' must be a single token", class)).
				WithDetail("class", class)
		}
	}

	if c.TUI.ProgressStep < 1 || c.TUI.ProgressStep > 100 {
		return errors.New(errors.ErrCodeConfigValidation, "tui.progress_step must be between 1 and 100").
			WithDetail("progress_step", c.TUI.ProgressStep)
	}
	if c.TUI.TickMillis < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "tui.tick_ms must be positive").
			WithDetail("tick_ms", c.TUI.TickMillis)
	}

	return nil
}
