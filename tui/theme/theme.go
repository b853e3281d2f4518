package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa palette (light / dark) ---
const (
	kanagawaLightGreen  = "#4E7C5A"
	kanagawaDarkGreen   = "#98BB6C"
	kanagawaLightYellow = "#A68A64"
	kanagawaDarkYellow  = "#FF9E3B"
	kanagawaLightRed    = "#C34043"
	kanagawaDarkRed     = "#FF5D62"
	kanagawaLightOrange = "#CC6B4E"
	kanagawaDarkOrange  = "#FFA066"
	kanagawaLightCyan   = "#5B8BBE"
	kanagawaDarkCyan    = "#7E9CD8"
	kanagawaLightViolet = "#674D7A"
	kanagawaDarkViolet  = "#957FB8"
	kanagawaLightText   = "#2B2F42"
	kanagawaDarkText    = "#DCD7BA"
	kanagawaLightMuted  = "#6C7086"
	kanagawaDarkMuted   = "#727169"
	kanagawaLightBorder = "#B5BDC5"
	kanagawaDarkBorder  = "#363646"
	kanagawaLightSubtle = "#F7F7FB"
	kanagawaDarkSubtle  = "#1F1F28"
)

// --- Gruvbox palette (light / dark) ---
const (
	gruvboxLightGreen  = "#98971A"
	gruvboxDarkGreen   = "#B8BB26"
	gruvboxLightYellow = "#D79921"
	gruvboxDarkYellow  = "#FABD2F"
	gruvboxLightRed    = "#CC241D"
	gruvboxDarkRed     = "#FB4934"
	gruvboxLightOrange = "#D65D0E"
	gruvboxDarkOrange  = "#FE8019"
	gruvboxLightCyan   = "#458588"
	gruvboxDarkCyan    = "#83A598"
	gruvboxLightViolet = "#8F3F71"
	gruvboxDarkViolet  = "#B16286"
	gruvboxLightText   = "#3C3836"
	gruvboxDarkText    = "#EBDBB2"
	gruvboxLightMuted  = "#928374"
	gruvboxDarkMuted   = "#BDAE93"
	gruvboxLightBorder = "#D5C4A1"
	gruvboxDarkBorder  = "#504945"
	gruvboxLightSubtle = "#FBF1C7"
	gruvboxDarkSubtle  = "#282828"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Subtle    lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used by the terminal host and the
// log formatter.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Navigation bar
	Bar           lipgloss.Style
	Button        lipgloss.Style
	Address       lipgloss.Style
	Placeholder   lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressTrack lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is selected by NAVBAR_THEME, falling back to kanagawa.
var DefaultTheme = New(os.Getenv("NAVBAR_THEME"))

// New constructs a theme from a palette name. Unknown names get the default
// palette.
func New(name string) *Theme {
	key := normalizeThemeName(name)
	builder, ok := themeRegistry[key]
	if !ok {
		key = defaultThemeName
		builder = themeRegistry[key]
	}
	return newThemeFromColors(key, builder())
}

// Names lists the registered palettes.
func Names() []string {
	return []string{"kanagawa", "gruvbox", "terminal"}
}

func newThemeFromColors(name string, colors Colors) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().Bold(true),

		Success: lipgloss.NewStyle().Foreground(colors.Green),
		Error:   lipgloss.NewStyle().Foreground(colors.Red),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan),

		Muted:     lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Foreground(colors.Orange).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(colors.Violet).Bold(true),

		Bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(colors.Text).
			Background(colors.Subtle).
			Padding(0, 1).
			Bold(true),

		Address: lipgloss.NewStyle().
			Foreground(colors.Text).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true).
			Padding(0, 1),

		ProgressFill:  lipgloss.NewStyle().Foreground(colors.Green),
		ProgressTrack: lipgloss.NewStyle().Foreground(colors.Border),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	switch normalized {
	case "kanagawa-dark", "kanagawa-dragon", "kanagawa-wave":
		return "kanagawa"
	case "gruvbox-dark", "gruvbox-light":
		return "gruvbox"
	}
	return normalized
}

func newKanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:    lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:       lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:    lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:      lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Violet:    lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		Text:      lipgloss.AdaptiveColor{Light: kanagawaLightText, Dark: kanagawaDarkText},
		MutedText: lipgloss.AdaptiveColor{Light: kanagawaLightMuted, Dark: kanagawaDarkMuted},
		Border:    lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		Subtle:    lipgloss.AdaptiveColor{Light: kanagawaLightSubtle, Dark: kanagawaDarkSubtle},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:     lipgloss.AdaptiveColor{Light: gruvboxLightGreen, Dark: gruvboxDarkGreen},
		Yellow:    lipgloss.AdaptiveColor{Light: gruvboxLightYellow, Dark: gruvboxDarkYellow},
		Red:       lipgloss.AdaptiveColor{Light: gruvboxLightRed, Dark: gruvboxDarkRed},
		Orange:    lipgloss.AdaptiveColor{Light: gruvboxLightOrange, Dark: gruvboxDarkOrange},
		Cyan:      lipgloss.AdaptiveColor{Light: gruvboxLightCyan, Dark: gruvboxDarkCyan},
		Violet:    lipgloss.AdaptiveColor{Light: gruvboxLightViolet, Dark: gruvboxDarkViolet},
		Text:      lipgloss.AdaptiveColor{Light: gruvboxLightText, Dark: gruvboxDarkText},
		MutedText: lipgloss.AdaptiveColor{Light: gruvboxLightMuted, Dark: gruvboxDarkMuted},
		Border:    lipgloss.AdaptiveColor{Light: gruvboxLightBorder, Dark: gruvboxDarkBorder},
		Subtle:    lipgloss.AdaptiveColor{Light: gruvboxLightSubtle, Dark: gruvboxDarkSubtle},
	}
}

// newTerminalColors uses the terminal's own ANSI palette.
func newTerminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color("2"),
		Yellow:    lipgloss.Color("3"),
		Red:       lipgloss.Color("1"),
		Orange:    lipgloss.Color("11"),
		Cyan:      lipgloss.Color("6"),
		Violet:    lipgloss.Color("5"),
		Text:      lipgloss.Color("7"),
		MutedText: lipgloss.Color("8"),
		Border:    lipgloss.Color("8"),
		Subtle:    lipgloss.Color("0"),
	}
}
