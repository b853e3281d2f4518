package host

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navbar/browserbar"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/tui/theme"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedBar(t *testing.T, opts ...addressbar.Option) (*browserbar.Bar, *addressbar.AddressBar) {
	t.Helper()
	doc := dom.NewDocument()
	field := addressbar.New(doc, opts...)
	bar := browserbar.New(doc, config.BarConfig{}, browserbar.WithAddressField(field))
	require.NoError(t, bar.Render(context.Background()))
	return bar, field
}

func TestRenderBarUnrendered(t *testing.T) {
	bar := browserbar.New(dom.NewDocument(), config.BarConfig{})
	assert.Empty(t, RenderBar(bar, nil, 80, ""))
}

func TestRenderBarShowsButtonsInOrder(t *testing.T) {
	bar, _ := renderedBar(t, addressbar.WithValue("example.org"))

	out := RenderBar(bar, theme.New("terminal"), 0, "")

	back := strings.Index(out, "←")
	forward := strings.Index(out, "→")
	refresh := strings.Index(out, "⟳")
	addr := strings.Index(out, "example.org")
	home := strings.Index(out, "⌂")
	for _, i := range []int{back, forward, refresh, addr, home} {
		require.GreaterOrEqual(t, i, 0)
	}
	assert.Less(t, back, forward)
	assert.Less(t, forward, refresh)
	assert.Less(t, refresh, addr)
	assert.Less(t, addr, home)
}

func TestRenderBarPlaceholder(t *testing.T) {
	bar, _ := renderedBar(t, addressbar.WithPlaceholder("Type here"))
	assert.Contains(t, RenderBar(bar, nil, 0, ""), "Type here")
}

func TestRenderBarProgressRow(t *testing.T) {
	bar, field := renderedBar(t, addressbar.WithValue("x"))

	assert.NotContains(t, RenderBar(bar, nil, 60, "*"), "━")

	require.NoError(t, field.ShowLoadingProgress(context.Background(), 50))
	out := RenderBar(bar, nil, 60, "*")
	assert.Contains(t, out, "━")
	assert.Contains(t, out, "* x")
}

func TestRenderBarWidth(t *testing.T) {
	bar, _ := renderedBar(t)
	out := RenderBar(bar, nil, 70, "")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 70)
	}
}

func TestRenderProgress(t *testing.T) {
	th := theme.New("terminal")
	assert.Equal(t, 10, lipgloss.Width(renderProgress(th, 50, 10)))
	assert.Equal(t, 10, lipgloss.Width(renderProgress(th, 250, 10)))
}
