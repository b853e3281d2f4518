package config

import (
	"testing"

	"github.com/grovetools/navbar/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "meta modifier", mutate: func(c *Config) { c.Bar.BypassCacheModifier = "meta" }},
		{name: "unknown modifier", mutate: func(c *Config) { c.Bar.BypassCacheModifier = "hyper" }, wantErr: true},
		{name: "blank glyph", mutate: func(c *Config) { c.Bar.Glyphs.Refresh = "  " }, wantErr: true},
		{name: "class with space", mutate: func(c *Config) { c.Bar.Classes.Bar = "a b" }, wantErr: true},
		{name: "progress step below one", mutate: func(c *Config) { c.TUI.ProgressStep = 0.5 }, wantErr: true},
		{name: "progress step of one", mutate: func(c *Config) { c.TUI.ProgressStep = 1 }},
		{name: "progress step too large", mutate: func(c *Config) { c.TUI.ProgressStep = 101 }, wantErr: true},
		{name: "negative tick", mutate: func(c *Config) { c.TUI.TickMillis = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
