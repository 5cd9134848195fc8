package input

import "charm.land/bubbles/v2/key"

// ── Navigation Bindings ────────────────────────────────────────────

// KeyMap lists the bindings the classifier understands. Classify matches
// special keys by code so modifiers can be inspected; the bindings double as
// help text for hosts.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Space     key.Binding
	Home      key.Binding
	End       key.Binding
	Clear     key.Binding
	Activate  key.Binding
	SelectAll key.Binding
	JumpStart key.Binding
	JumpEnd   key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "Left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "Right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "Page down"),
	),
	Space: key.NewBinding(
		key.WithKeys("space", "shift+space"),
		key.WithHelp("space", "Page forward"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "Scroll to start"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "Scroll to end"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Clear selection"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Activate"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("^a", "Select all"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "First item"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "Last item"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "Zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "Zoom out"),
	),
	ZoomReset: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "Actual size"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Space, k.Activate, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Space, k.Home, k.End},
		{k.Activate, k.Clear, k.SelectAll, k.JumpStart, k.JumpEnd},
		{k.ZoomIn, k.ZoomOut, k.ZoomReset},
	}
}
