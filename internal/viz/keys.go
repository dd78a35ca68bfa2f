package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextApp      key.Binding
	Settings     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ForceRepaint key.Binding
	More         key.Binding
	Fewer        key.Binding
	Draw         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextApp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next app"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		ForceRepaint: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "force repaint"),
		),
		More: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "more harmonics"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "fewer harmonics"),
		),
		Draw: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "draw"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextApp, k.Draw, k.Settings, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextApp, k.Draw, k.More, k.Fewer},
		{k.Settings, k.ZoomIn, k.ZoomOut, k.ForceRepaint},
		{k.Help, k.Quit},
	}
}
