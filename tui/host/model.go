// Package host runs a navigation bar inside a terminal with bubbletea.
//
// Key presses are delivered to the bar as DOM clicks, so the host reacts to
// the same signals a browser embedding would. Navigation is simulated: every
// intent starts a fake page load that drives the bar's loading indicator.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navbar/browserbar"
	"github.com/grovetools/navbar/config"
	"github.com/grovetools/navbar/dom"
	"github.com/grovetools/navbar/event"
	"github.com/grovetools/navbar/logging"
	"github.com/grovetools/navbar/tui/theme"
	"github.com/grovetools/navbar/widget/addressbar"
	"github.com/sirupsen/logrus"
)

// ConfigReloadedMsg carries a configuration loaded after the file changed.
type ConfigReloadedMsg struct {
	Config *config.Config
}

type loadTickMsg struct {
	id int
}

type intent int

const (
	intentNone intent = iota
	intentBack
	intentForward
	intentHome
	intentRefresh
	intentNoCacheRefresh
	intentVisit
)

// Model is the bubbletea model hosting a rendered bar.
//
// Model must be used through its pointer: signal handlers registered on the
// bar record intents on it during Update.
type Model struct {
	cfg     *config.Config
	theme   *theme.Theme
	keys    KeyMap
	logger  *logrus.Entry
	doc     *dom.Document
	bar     *browserbar.Bar
	address *addressbar.AddressBar
	history *History

	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	editing  bool
	loading  bool
	progress float64
	loadID   int
	pending  intent
	target   string
	status   string
	width    int
	quitting bool
}

// New builds and renders the bar described by cfg.
func New(cfg *config.Config) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.SetDefaults()

	logger := logging.NewLogger("tui")
	doc := dom.NewDocument()
	address := addressbar.New(doc,
		addressbar.WithPlaceholder(cfg.AddressBar.Placeholder),
		addressbar.WithValue(cfg.AddressBar.Value),
	)
	bar := browserbar.New(doc, cfg.Bar,
		browserbar.WithAddressField(address),
		browserbar.WithLogger(logger),
	)
	if err := bar.Render(context.Background()); err != nil {
		return nil, err
	}
	doc.Attach(bar.RootNode())

	input := textinput.New()
	input.Placeholder = cfg.AddressBar.Placeholder
	input.Prompt = "› "

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	m := &Model{
		cfg:     cfg,
		theme:   theme.New(cfg.TUI.Theme),
		keys:    DefaultKeyMap(),
		logger:  logger,
		doc:     doc,
		bar:     bar,
		address: address,
		history: NewHistory(),
		help:    help.New(),
		input:   input,
		spinner: spin,
	}
	m.spinner.Style = m.theme.Info
	m.subscribe()
	return m, nil
}

func (m *Model) subscribe() {
	on := func(sig event.Subscribable, in intent) {
		sig.Subscribe(func() { m.pending = in })
	}
	on(m.bar.BackPressed(), intentBack)
	on(m.bar.ForwardPressed(), intentForward)
	on(m.bar.HomePressed(), intentHome)
	on(m.bar.RefreshPressed(), intentRefresh)
	on(m.bar.NoCacheRefreshPressed(), intentNoCacheRefresh)
	m.address.Submitted.Subscribe(func(addr string) {
		m.pending = intentVisit
		m.target = addr
	})
}

// Bar returns the hosted bar.
func (m *Model) Bar() *browserbar.Bar {
	return m.bar
}

// History returns the session history.
func (m *Model) History() *History {
	return m.history
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

// Init visits the initial address.
func (m *Model) Init() tea.Cmd {
	start := m.address.Value()
	if start == "" {
		start = m.cfg.HomeURL
	}
	m.history.Visit(start)
	m.address.SetValue(start)
	return m.startLoad("Loading " + start)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m, m.handleKey(msg)

	case loadTickMsg:
		return m, m.advanceLoad(msg.id)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue(m.address.Value())
		m.input.CursorEnd()
		return m.input.Focus()
	case key.Matches(msg, m.keys.Back):
		return m.click(browserbar.Back, 0)
	case key.Matches(msg, m.keys.Forward):
		return m.click(browserbar.Forward, 0)
	case key.Matches(msg, m.keys.Home):
		return m.click(browserbar.Home, 0)
	case key.Matches(msg, m.keys.Refresh):
		return m.click(browserbar.Refresh, 0)
	case key.Matches(msg, m.keys.NoCacheRefresh):
		return m.click(browserbar.Refresh, m.bar.BypassModifier())
	}
	return nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.editing = false
		m.input.Blur()
		m.address.Submit(m.input.Value())
		return m, m.handleIntent()
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// click delivers a DOM click to the button tagged with id and handles the
// intent it produced.
func (m *Model) click(id browserbar.ButtonID, mods dom.Modifiers) tea.Cmd {
	el, err := dom.Query(m.bar.RootNode(), fmt.Sprintf(`//*[@%s=%q]`, browserbar.ActionAttr, id.String()))
	if err != nil {
		m.logger.WithError(err).Error("Button not found")
		m.status = err.Error()
		return nil
	}
	el.Click(mods)
	return m.handleIntent()
}

func (m *Model) handleIntent() tea.Cmd {
	in := m.pending
	m.pending = intentNone

	switch in {
	case intentBack:
		addr, ok := m.history.Back()
		if !ok {
			m.status = "No previous page"
			return nil
		}
		return m.navigate(addr, "Back to "+addr)
	case intentForward:
		addr, ok := m.history.Forward()
		if !ok {
			m.status = "No next page"
			return nil
		}
		return m.navigate(addr, "Forward to "+addr)
	case intentHome:
		m.history.Visit(m.cfg.HomeURL)
		return m.navigate(m.cfg.HomeURL, "Home")
	case intentRefresh:
		addr, _ := m.history.Current()
		return m.navigate(addr, "Reloading "+addr)
	case intentNoCacheRefresh:
		addr, _ := m.history.Current()
		return m.navigate(addr, "Reloading "+addr+" (bypassing cache)")
	case intentVisit:
		if m.target == "" {
			return nil
		}
		m.history.Visit(m.target)
		return m.navigate(m.target, "Loading "+m.target)
	}
	return nil
}

func (m *Model) navigate(addr, status string) tea.Cmd {
	m.address.SetValue(addr)
	return m.startLoad(status)
}

// startLoad begins a simulated page load. A load already in flight is
// superseded.
func (m *Model) startLoad(status string) tea.Cmd {
	m.loadID++
	m.loading = true
	m.progress = 0
	m.status = status
	m.bar.ShowLoadingIndicator()
	m.logger.WithField("status", status).Debug("Load started")
	return tea.Batch(m.spinner.Tick, m.tick(m.loadID))
}

func (m *Model) tick(id int) tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.TUI.TickMillis)*time.Millisecond, func(time.Time) tea.Msg {
		return loadTickMsg{id: id}
	})
}

func (m *Model) advanceLoad(id int) tea.Cmd {
	if id != m.loadID || !m.loading {
		return nil
	}
	ctx := context.Background()
	m.progress += m.cfg.TUI.ProgressStep
	if m.progress < 100 {
		if err := m.bar.ShowLoadingProgress(ctx, m.progress); err != nil {
			m.logger.WithError(err).Warn("Failed to show loading progress")
		}
		return m.tick(id)
	}

	m.progress = 100
	m.loading = false
	if err := m.bar.HideLoadingIndicator(ctx); err != nil {
		m.logger.WithError(err).Warn("Failed to hide loading indicator")
	}
	m.status = "Done"
	return nil
}

// applyConfig updates the theme, glyphs and load timing from a reloaded
// configuration. Classes and the bypass modifier are fixed at render time.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	cfg.SetDefaults()
	m.cfg.HomeURL = cfg.HomeURL
	m.cfg.TUI = cfg.TUI
	m.theme = theme.New(cfg.TUI.Theme)
	m.spinner.Style = m.theme.Info

	glyphs := map[browserbar.ButtonID]string{
		browserbar.Back:    cfg.Bar.Glyphs.Back,
		browserbar.Forward: cfg.Bar.Glyphs.Forward,
		browserbar.Refresh: cfg.Bar.Glyphs.Refresh,
		browserbar.Home:    cfg.Bar.Glyphs.Home,
	}
	for id, glyph := range glyphs {
		m.bar.Button(id).SetGlyph(glyph)
	}
	m.cfg.Bar.Glyphs = cfg.Bar.Glyphs
	m.status = "Configuration reloaded"
	m.logger.Info("Configuration reloaded")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	busy := ""
	if m.loading {
		busy = m.spinner.View()
	}
	sections := []string{RenderBar(m.bar, m.theme, m.width, busy)}
	if m.editing {
		sections = append(sections, m.input.View())
	}
	sections = append(sections,
		m.theme.Muted.Render(m.status),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
