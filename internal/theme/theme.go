package theme

import "github.com/charmbracelet/lipgloss"

// Token names a themeable color slot.
type Token string

const (
	TokenWindowBackground  Token = "window-background"
	TokenWindowBackground2 Token = "window-background2"
	TokenAccent            Token = "accent"
	TokenText              Token = "text"
	TokenMuted             Token = "muted"
	TokenBorder            Token = "border"
	TokenSuccess           Token = "success"
	TokenError             Token = "error"
	TokenWarning           Token = "warning"
)

// Theme resolves tokens to concrete colors for one of the two variants.
type Theme struct {
	Dark   bool
	colors map[Token]string
}

var lightColors = map[Token]string{
	TokenWindowBackground:  "#ffffff",
	TokenWindowBackground2: "#efefef",
	TokenAccent:            "#af5fd7",
	TokenText:              "#303030",
	TokenMuted:             "#767676",
	TokenBorder:            "#a8a8a8",
	TokenSuccess:           "#008700",
	TokenError:             "#d70000",
	TokenWarning:           "#d78700",
}

var darkColors = map[Token]string{
	TokenWindowBackground:  "#1c1c1c",
	TokenWindowBackground2: "#303030",
	TokenAccent:            "#ff87d7",
	TokenText:              "#d0d0d0",
	TokenMuted:             "#767676",
	TokenBorder:            "#585858",
	TokenSuccess:           "#5fd75f",
	TokenError:             "#ff5f5f",
	TokenWarning:           "#ffaf5f",
}

// New returns the theme for the requested variant.
func New(dark bool) Theme {
	colors := lightColors
	if dark {
		colors = darkColors
	}
	return Theme{Dark: dark, colors: colors}
}

// Color resolves a token to a lipgloss color. Unknown tokens resolve to
// the empty color, which lipgloss treats as unset.
func (t Theme) Color(token Token) lipgloss.Color {
	return lipgloss.Color(t.colors[token])
}
