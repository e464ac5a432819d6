package style

// Builtin color palette. The tables are fixed, process-wide constants;
// builtinColorOrder pins the catalog enumeration order.
var builtinColorOrder = []string{"yellow", "green", "blue", "red", "purple"}

var builtinColorsLight = map[string]string{
	"yellow": "#ffeb6b",
	"green":  "#c0ed72",
	"blue":   "#add8ff",
	"red":    "#ffb0ca",
	"purple": "#d9b2ff",
}

var builtinColorsDark = map[string]string{
	"yellow": "#c18d18",
	"green":  "#306f50",
	"blue":   "#265589",
	"red":    "#a23e50",
	"purple": "#6b4d9b",
}

// decoration is the CSS triple backing a builtin decoration entry.
type decoration struct {
	Line  string
	Style string
	Color string
}

var builtinDecorationOrder = []string{"wavy", "strikeout"}

// One shared table for both themes. The original kept two identically
// defined tables and always read the dark one; collapsing them keeps that
// behavior without the duplicate definition.
var builtinDecorations = map[string]decoration{
	"wavy":      {Line: "underline", Style: "wavy", Color: "red"},
	"strikeout": {Line: "line-through", Style: "solid", Color: "red"},
}

// BuiltinColor resolves a catalog color name to its hex value for the
// given theme. Unknown names fall back to the light-theme yellow entry.
func BuiltinColor(which string, dark bool) string {
	table := builtinColorsLight
	if dark {
		table = builtinColorsDark
	}
	if c, ok := table[which]; ok {
		return c
	}
	return builtinColorsLight["yellow"]
}

// AllBuiltinStyles returns the full fixed catalog: the five colors in
// palette order, then the two decorations.
func AllBuiltinStyles() []HighlightStyle {
	styles := make([]HighlightStyle, 0, len(builtinColorOrder)+len(builtinDecorationOrder))
	for _, which := range builtinColorOrder {
		styles = append(styles, NewBuiltinColor(which))
	}
	for _, which := range builtinDecorationOrder {
		styles = append(styles, NewBuiltinDecoration(which))
	}
	return styles
}
