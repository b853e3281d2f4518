// Package tui holds terminal setup shared by the interactive host and the
// text renderer.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI forces a true-color profile when CLICOLOR_FORCE=1 or
// COLORTERM=truecolor is set, so output stays styled under CI and in pipes.
// NO_COLOR wins over both. Call it before starting a program.
func InitializeTUI() {
	lipgloss.SetColorProfile(colorProfile())
}

func colorProfile() termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		return termenv.TrueColor
	}
	return termenv.EnvColorProfile()
}
