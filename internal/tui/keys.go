package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard shortcuts of the highlights panel
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Export     key.Binding
	Search     key.Binding
	SearchBack key.Binding
	Refresh    key.Binding
	Quit       key.Binding
	Enter      key.Binding
	Escape     key.Binding
	Yes        key.Binding
	No         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/↵", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SearchBack: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "search back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
		),
	}
}

// EditorKeyMap defines the keyboard shortcuts inside the notes-and-colors
// editor. Finish doubles as the apply action; most terminals cannot
// report ctrl+enter, so ctrl+s carries it alongside.
type EditorKeyMap struct {
	Finish  key.Binding
	Abort   key.Binding
	Palette key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Add     key.Binding
	Remove  key.Binding
}

// DefaultEditorKeyMap returns the default editor key bindings
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Finish: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "apply"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Palette: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "palette"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("↵", "select"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add style"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove style"),
		),
	}
}
