package style

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StyleType distinguishes catalog entries from user-created styles
type StyleType string

const (
	TypeBuiltin StyleType = "builtin"
	TypeCustom  StyleType = "custom"
)

// StyleKind distinguishes background fills from line decorations
type StyleKind string

const (
	KindColor      StyleKind = "color"
	KindDecoration StyleKind = "decoration"
)

// CurrentColor is the sentinel for "use the surrounding text color"
// in a decoration's color slot.
const CurrentColor = "currentColor"

// HighlightStyle describes how a highlight is drawn. Builtin styles carry
// only Which (a catalog name); custom styles carry explicit color or
// decoration fields. Values are immutable once constructed.
type HighlightStyle struct {
	Type                StyleType `json:"type" yaml:"type"`
	Kind                StyleKind `json:"kind" yaml:"kind"`
	Which               string    `json:"which,omitempty" yaml:"which,omitempty"`
	Light               string    `json:"light,omitempty" yaml:"light,omitempty"`
	Dark                string    `json:"dark,omitempty" yaml:"dark,omitempty"`
	TextDecorationLine  string    `json:"text-decoration-line,omitempty" yaml:"text-decoration-line,omitempty"`
	TextDecorationStyle string    `json:"text-decoration-style,omitempty" yaml:"text-decoration-style,omitempty"`
	TextDecorationColor string    `json:"text-decoration-color,omitempty" yaml:"text-decoration-color,omitempty"`
	BackgroundColor     string    `json:"background-color,omitempty" yaml:"background-color,omitempty"`
	Color               string    `json:"color,omitempty" yaml:"color,omitempty"`
}

// Default returns the builtin yellow color style, used wherever no style
// was given.
func Default() HighlightStyle {
	return NewBuiltinColor("yellow")
}

// NewBuiltinColor creates a builtin color style for a catalog name.
func NewBuiltinColor(which string) HighlightStyle {
	return HighlightStyle{Type: TypeBuiltin, Kind: KindColor, Which: which}
}

// NewBuiltinDecoration creates a builtin decoration style for a catalog name.
func NewBuiltinDecoration(which string) HighlightStyle {
	return HighlightStyle{Type: TypeBuiltin, Kind: KindDecoration, Which: which}
}

// NewCustomColor creates a custom color style with explicit light and dark
// theme fills.
func NewCustomColor(light, dark string) HighlightStyle {
	return HighlightStyle{Type: TypeCustom, Kind: KindColor, Light: light, Dark: dark}
}

// NewCustomDecoration creates a custom decoration style. color may be the
// CurrentColor sentinel.
func NewCustomDecoration(line, lineStyle, color string) HighlightStyle {
	return HighlightStyle{
		Type:                TypeCustom,
		Kind:                KindDecoration,
		TextDecorationLine:  line,
		TextDecorationStyle: lineStyle,
		TextDecorationColor: color,
	}
}

// Parse constructs a style from its serialized JSON text.
func Parse(text string) (HighlightStyle, error) {
	var s HighlightStyle
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return HighlightStyle{}, fmt.Errorf("parsing highlight style: %w", err)
	}
	return s, nil
}

// Serialized returns the JSON text form of the style.
func (s HighlightStyle) Serialized() string {
	data, _ := json.Marshal(s)
	return string(data)
}

// keyFields is the fixed field list Key is derived from, in order.
var keyFields = []string{
	"type",
	"kind",
	"which",
	"background-color",
	"text-decoration-line",
	"text-decoration-color",
	"text-decoration-style",
}

// fieldMap returns the style's set fields keyed by their serialized names.
func (s HighlightStyle) fieldMap() map[string]string {
	m := make(map[string]string, 9)
	put := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	put("type", string(s.Type))
	put("kind", string(s.Kind))
	put("which", s.Which)
	put("light", s.Light)
	put("dark", s.Dark)
	put("text-decoration-line", s.TextDecorationLine)
	put("text-decoration-style", s.TextDecorationStyle)
	put("text-decoration-color", s.TextDecorationColor)
	put("background-color", s.BackgroundColor)
	put("color", s.Color)
	return m
}

// Key returns the order-stable derived identity of the style. Two styles
// are semantically equal iff their keys match. Missing fields render as
// "field:undefined" so the concatenation never shifts.
func (s HighlightStyle) Key() string {
	fields := s.fieldMap()
	parts := make([]string, 0, len(keyFields))
	for _, f := range keyFields {
		v, ok := fields[f]
		if !ok {
			v = "undefined"
		}
		parts = append(parts, f+":"+v)
	}
	return strings.Join(parts, ";")
}

// Equal reports semantic equality through key derivation.
func (s HighlightStyle) Equal(o HighlightStyle) bool {
	return s.Key() == o.Key()
}

// CustomStylesEqual reports structural equality of two style records:
// every field set on either side must be present and identical on the
// other. Used to locate which stored custom style to delete.
func CustomStylesEqual(a, b HighlightStyle) bool {
	am, bm := a.fieldMap(), b.fieldMap()
	for k, v := range am {
		if bv, ok := bm[k]; !ok || bv != v {
			return false
		}
	}
	for k, v := range bm {
		if av, ok := am[k]; !ok || av != v {
			return false
		}
	}
	return true
}

// IsCustom reports whether the style is user-created.
func (s HighlightStyle) IsCustom() bool {
	return s.Type == TypeCustom
}
