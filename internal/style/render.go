package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// swatchWidth is the fixed cell width every palette swatch renders at.
const swatchWidth = 4

// fill resolves the background color of a color-kind style for the theme.
func (s HighlightStyle) fill(dark bool) string {
	if s.Type == TypeBuiltin {
		return BuiltinColor(s.Which, dark)
	}
	if dark {
		if s.Dark != "" {
			return s.Dark
		}
		return s.Light
	}
	if s.Light != "" {
		return s.Light
	}
	return s.Dark
}

// decorationProps resolves the decoration triple for either a builtin or a
// custom decoration style.
func (s HighlightStyle) decorationProps() decoration {
	if s.Type == TypeBuiltin {
		return builtinDecorations[s.Which]
	}
	return decoration{
		Line:  s.TextDecorationLine,
		Style: s.TextDecorationStyle,
		Color: s.TextDecorationColor,
	}
}

// Shade returns a single representative color for the style, for use in
// list markers and similar. Decorations contribute their line color,
// colors their resolved fill; anything unresolved falls back to the
// default builtin yellow.
func (s HighlightStyle) Shade(dark bool) string {
	if s.Kind == KindDecoration {
		if c := s.decorationProps().Color; c != "" && c != CurrentColor {
			return c
		}
		return BuiltinColor("yellow", dark)
	}
	if c := s.fill(dark); c != "" {
		return c
	}
	return BuiltinColor("yellow", dark)
}

// Swatch renders the style as a fixed-width palette cell. Color styles
// show a solid fill, decoration styles show two sample glyphs with the
// decoration applied.
func (s HighlightStyle) Swatch(dark bool) string {
	if s.Kind == KindDecoration {
		d := s.decorationProps()
		st := lipgloss.NewStyle().Width(swatchWidth).Align(lipgloss.Center)
		switch d.Line {
		case "line-through":
			st = st.Strikethrough(true)
		default:
			st = st.Underline(true)
		}
		if d.Color != "" && d.Color != CurrentColor {
			st = st.Foreground(lipgloss.Color(d.Color))
		}
		return st.Render("ab")
	}
	return lipgloss.NewStyle().
		Width(swatchWidth).
		Background(lipgloss.Color(s.fill(dark))).
		Render("")
}

// TextStyle returns a lipgloss style that draws text the way this
// highlight style would. foreground forces the text color; when empty, a
// color-kind style picks black or white against its fill by luminance and
// a decoration defers to the surrounding text color.
func (s HighlightStyle) TextStyle(dark bool, foreground string) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Kind == KindDecoration {
		d := s.decorationProps()
		switch d.Line {
		case "line-through":
			st = st.Strikethrough(true)
		default:
			st = st.Underline(true)
		}
		if d.Color != "" && d.Color != CurrentColor {
			st = st.Foreground(lipgloss.Color(d.Color))
		} else if foreground != "" {
			st = st.Foreground(lipgloss.Color(foreground))
		}
		return st
	}

	bg := s.fill(dark)
	fg := foreground
	if fg == "" {
		fg = contrastForeground(bg)
	}
	st = st.Background(lipgloss.Color(bg))
	if fg != "" {
		st = st.Foreground(lipgloss.Color(fg))
	}
	return st
}

// contrastForeground picks black or white against a hex fill.
func contrastForeground(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	if _, _, l := c.Hsl(); l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
