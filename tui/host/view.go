package host

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navbar/browserbar"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/tui/theme"
	"github.com/grovetools/navbar/widget/addressbar"
)

const minAddressWidth = 10

// RenderBar draws a rendered bar as terminal text. It reads only the DOM, so
// what it shows is what a browser would be given. Busy is drawn in front of
// the address while the field is loading; width <= 0 means unconstrained.
func RenderBar(bar *browserbar.Bar, th *theme.Theme, width int, busy string) string {
	if th == nil {
		th = theme.DefaultTheme
	}
	wrapper := bar.RootNode().FirstChild()
	if wrapper == nil {
		return ""
	}

	var buttons []string
	var address *dom.Element
	addressAt := -1
	for _, child := range wrapper.Children() {
		if child.HasClass(addressbar.Class) {
			address = child
			addressAt = len(buttons)
			continue
		}
		if _, ok := child.Attribute(browserbar.ActionAttr); ok {
			buttons = append(buttons, th.Button.Render(child.Text()))
		}
	}

	used := 0
	for _, b := range buttons {
		used += lipgloss.Width(b) + 1
	}
	// Border and padding of th.Bar.
	inner := width - 4
	addrWidth := inner - used
	if width <= 0 || addrWidth < minAddressWidth {
		addrWidth = 0
	}

	cells := append([]string(nil), buttons...)
	progressRow := ""
	if address != nil {
		cell, loading, pct := renderAddress(address, th, addrWidth, busy)
		cells = append(cells[:addressAt], append([]string{cell}, cells[addressAt:]...)...)
		if loading {
			progressRow = renderProgress(th, pct, max(inner, 20))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, interleave(cells, " ")...)
	content := row
	if progressRow != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, row, progressRow)
	}

	style := th.Bar
	if width > 0 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}

func renderAddress(el *dom.Element, th *theme.Theme, width int, busy string) (string, bool, float64) {
	loading := el.HasClass(addressbar.LoadingClass)
	pct := 0.0
	if v, ok := el.Attribute("data-progress"); ok {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			pct = p
		}
	}

	var text string
	style := th.Address
	if input := el.FirstChild(); input != nil {
		if v, ok := input.Attribute("value"); ok && v != "" {
			text = v
		} else {
			text, _ = input.Attribute("placeholder")
			style = th.Placeholder
		}
	}
	if loading && busy != "" {
		text = busy + " " + text
	}
	if width > 0 {
		style = style.Width(width).MaxWidth(width)
	}
	return style.Render(text), loading, pct
}

func renderProgress(th *theme.Theme, pct float64, width int) string {
	filled := int(math.Round(pct / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return th.ProgressFill.Render(strings.Repeat("━", filled)) +
		th.ProgressTrack.Render(strings.Repeat("─", width-filled))
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
