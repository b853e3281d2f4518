package config

// mergeConfigs merges override configuration into base. Non-empty values in
// override win; extension sections are replaced key by key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	mergeString(&result.Version, override.Version)
	mergeString(&result.HomeURL, override.HomeURL)

	mergeString(&result.Bar.Classes.Bar, override.Bar.Classes.Bar)
	mergeString(&result.Bar.Classes.Wrapper, override.Bar.Classes.Wrapper)
	mergeString(&result.Bar.Glyphs.Back, override.Bar.Glyphs.Back)
	mergeString(&result.Bar.Glyphs.Forward, override.Bar.Glyphs.Forward)
	mergeString(&result.Bar.Glyphs.Refresh, override.Bar.Glyphs.Refresh)
	mergeString(&result.Bar.Glyphs.Home, override.Bar.Glyphs.Home)
	mergeString(&result.Bar.Labels.Back, override.Bar.Labels.Back)
	mergeString(&result.Bar.Labels.Forward, override.Bar.Labels.Forward)
	mergeString(&result.Bar.Labels.Refresh, override.Bar.Labels.Refresh)
	mergeString(&result.Bar.Labels.Home, override.Bar.Labels.Home)
	mergeString(&result.Bar.BypassCacheModifier, override.Bar.BypassCacheModifier)

	mergeString(&result.AddressBar.Placeholder, override.AddressBar.Placeholder)
	mergeString(&result.AddressBar.Value, override.AddressBar.Value)

	mergeString(&result.TUI.Theme, override.TUI.Theme)
	if override.TUI.ProgressStep != 0 {
		result.TUI.ProgressStep = override.TUI.ProgressStep
	}
	if override.TUI.TickMillis != 0 {
		result.TUI.TickMillis = override.TUI.TickMillis
	}

	if len(override.Extensions) > 0 {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			merged[k] = v
		}
		for k, v := range override.Extensions {
			merged[k] = v
		}
		result.Extensions = merged
	}

	return &result
}

func mergeString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
