package host

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/testutil"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	cfg.HomeURL = "about:home"
	cfg.TUI.ProgressStep = 50
	m, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	return m
}

// finishLoad drives the simulated load to completion.
func finishLoad(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 10 && m.loading; i++ {
		m.Update(loadTickMsg{id: m.loadID})
	}
	require.False(t, m.loading)
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func visit(t *testing.T, m *Model, addr string) {
	t.Helper()
	press(m, runes("/"))
	require.True(t, m.editing)
	m.input.SetValue(addr)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	finishLoad(t, m)
}

func TestInitLoadsHome(t *testing.T) {
	m := newModel(t)

	assert.True(t, m.loading)
	assert.True(t, m.address.Loading())
	cur, _ := m.history.Current()
	assert.Equal(t, "about:home", cur)

	finishLoad(t, m)
	assert.False(t, m.address.Loading())
	assert.Equal(t, "Done", m.Status())
}

func TestLoadProgressReachesAddressField(t *testing.T) {
	m := newModel(t)

	m.Update(loadTickMsg{id: m.loadID})
	assert.Equal(t, float64(50), m.address.Progress())
	v, ok := m.address.RootNode().Attribute("data-progress")
	require.True(t, ok)
	assert.Equal(t, "50", v)
}

func TestStaleTickIgnored(t *testing.T) {
	m := newModel(t)
	stale := m.loadID
	press(m, runes("r"))

	m.Update(loadTickMsg{id: stale})
	assert.Equal(t, float64(0), m.progress)
}

func TestKeysProduceSignals(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want string
	}{
		{name: "h", key: runes("h"), want: "back"},
		{name: "left", key: tea.KeyMsg{Type: tea.KeyLeft}, want: "back"},
		{name: "l", key: runes("l"), want: "forward"},
		{name: "right", key: tea.KeyMsg{Type: tea.KeyRight}, want: "forward"},
		{name: "home", key: runes("~"), want: "home"},
		{name: "refresh", key: runes("r"), want: "refresh"},
		{name: "no-cache refresh", key: runes("R"), want: "no-cache-refresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			r := testutil.NewRecorder()
			r.Watch("back", m.bar.BackPressed())
			r.Watch("forward", m.bar.ForwardPressed())
			r.Watch("home", m.bar.HomePressed())
			r.Watch("refresh", m.bar.RefreshPressed())
			r.Watch("no-cache-refresh", m.bar.NoCacheRefreshPressed())

			press(m, tt.key)

			assert.Equal(t, []string{tt.want}, r.Order())
		})
	}
}

func TestBackAndForwardNavigateHistory(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)
	visit(t, m, "example.org")
	visit(t, m, "example.org/docs")

	press(m, runes("h"))
	assert.Equal(t, "example.org", m.address.Value())
	assert.Equal(t, "Back to example.org", m.Status())
	finishLoad(t, m)

	press(m, runes("l"))
	assert.Equal(t, "example.org/docs", m.address.Value())
	finishLoad(t, m)

	press(m, runes("l"))
	assert.Equal(t, "No next page", m.Status())
	assert.False(t, m.loading)
}

func TestBackWithoutHistory(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)

	cmd := press(m, runes("h"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No previous page", m.Status())
}

func TestNoCacheRefreshStatus(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)

	press(m, runes("R"))
	assert.Contains(t, m.Status(), "bypassing cache")
	assert.True(t, m.loading)
}

func TestHomeVisits(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)
	visit(t, m, "example.org")

	press(m, runes("~"))
	assert.Equal(t, "about:home", m.address.Value())
	assert.Equal(t, 3, m.history.Len())
}

func TestEditCancel(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)

	press(m, runes("/"))
	m.input.SetValue("ignored")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editing)
	assert.Equal(t, "about:home", m.address.Value())
}

func TestEditingSwallowsBarKeys(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)
	r := testutil.NewRecorder()
	r.Watch("back", m.bar.BackPressed())

	press(m, runes("/"))
	press(m, runes("h"))

	assert.Equal(t, 0, r.Total())
	assert.Equal(t, "about:homeh", m.input.Value())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestConfigReload(t *testing.T) {
	m := newModel(t)
	finishLoad(t, m)

	cfg := config.Default()
	cfg.Bar.Glyphs.Back = "<"
	cfg.TUI.Theme = "gruvbox"
	cfg.HomeURL = "about:blank"
	m.Update(ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, "gruvbox", m.theme.Name)
	assert.Equal(t, "<", m.bar.Button(0).RootNode().Text())
	assert.Equal(t, "Configuration reloaded", m.Status())

	press(m, runes("~"))
	assert.Equal(t, "about:blank", m.address.Value())
}

func TestViewShowsBar(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	finishLoad(t, m)

	view := m.View()
	assert.Contains(t, view, "about:home")
	assert.Contains(t, view, "⌂")
	assert.True(t, m.bar.RootNode().FirstChild().Children()[3].HasClass(addressbar.Class))
}
