package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/highlight-editor/internal/theme"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Layout
	ListPanel    lipgloss.Style
	PreviewPanel lipgloss.Style

	// Header/Footer
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	// List items
	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style
	RemovedItem  lipgloss.Style

	// Preview
	PreviewTitle lipgloss.Style
	NotesBlock   lipgloss.Style

	// Popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Palette
	SwatchCell    lipgloss.Style
	SwatchCurrent lipgloss.Style
	SwatchCursor  lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ButtonEmphasis lipgloss.Style
	Hint           lipgloss.Style
}

// NewStyles builds the style set for a theme variant.
func NewStyles(th theme.Theme) Styles {
	return Styles{
		ListPanel: lipgloss.NewStyle().
			Padding(0, 1),

		PreviewPanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(th.Color(theme.TokenBorder)).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Color(theme.TokenAccent)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenBorder)).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenWarning)).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Background(th.Color(theme.TokenWindowBackground2)).
			Foreground(th.Color(theme.TokenText)),

		NormalItem: lipgloss.NewStyle(),

		RemovedItem: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenMuted)).
			Strikethrough(true),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Color(theme.TokenAccent)),

		NotesBlock: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenText)).
			MarginTop(1),

		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(th.Color(theme.TokenAccent)).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Color(theme.TokenAccent)),

		InputPrompt: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenAccent)),

		SwatchCell: lipgloss.NewStyle().
			Padding(0, 1),

		SwatchCurrent: lipgloss.NewStyle().
			Background(th.Color(theme.TokenWindowBackground2)).
			Padding(0, 1),

		SwatchCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Color(theme.TokenAccent)),

		Button: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenText)).
			Background(th.Color(theme.TokenWindowBackground2)).
			Padding(0, 1),

		ButtonEmphasis: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Color(theme.TokenWindowBackground)).
			Background(th.Color(theme.TokenAccent)).
			Padding(0, 1),

		Hint: lipgloss.NewStyle().
			Foreground(th.Color(theme.TokenMuted)),
	}
}
