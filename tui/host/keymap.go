package host

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the terminal host.
type KeyMap struct {
	Back           key.Binding
	Forward        key.Binding
	Home           key.Binding
	Refresh        key.Binding
	NoCacheRefresh key.Binding
	Edit           key.Binding
	Submit         key.Binding
	Cancel         key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "forward"),
		),
		Home: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "home"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		NoCacheRefresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload, bypass cache"),
		),
		Edit: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit address"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Refresh, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.Home},
		{k.Refresh, k.NoCacheRefresh},
		{k.Edit, k.Submit, k.Cancel},
		{k.Help, k.Quit},
	}
}
