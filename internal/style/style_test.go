package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRoundTripsThroughSerialization(t *testing.T) {
	styles := []HighlightStyle{
		Default(),
		NewBuiltinColor("green"),
		NewBuiltinDecoration("wavy"),
		NewCustomColor("#112233", "#445566"),
		NewCustomDecoration("underline", "dashed", "#ff0000"),
		NewCustomDecoration("line-through", "solid", CurrentColor),
	}

	for _, s := range styles {
		parsed, err := Parse(s.Serialized())
		require.NoError(t, err)
		assert.Equal(t, s.Key(), parsed.Key())
	}
}

func TestParseRejectsMalformedText(t *testing.T) {
	_, err := Parse("{not json")
	require.Error(t, err)
}

func TestKeyRendersMissingFieldsAsUndefined(t *testing.T) {
	key := NewBuiltinColor("yellow").Key()
	assert.Equal(t,
		"type:builtin;kind:color;which:yellow;background-color:undefined;"+
			"text-decoration-line:undefined;text-decoration-color:undefined;"+
			"text-decoration-style:undefined",
		key)
}

func TestCustomStylesEqual(t *testing.T) {
	a := NewCustomColor("#aabbcc", "#001122")
	b := NewCustomColor("#aabbcc", "#001122")
	assert.True(t, CustomStylesEqual(a, b))

	// Any differing field value breaks equality.
	c := NewCustomColor("#aabbcc", "#001123")
	assert.False(t, CustomStylesEqual(a, c))

	// A field present on only one side breaks equality in both directions.
	d := a
	d.Which = "yellow"
	assert.False(t, CustomStylesEqual(a, d))
	assert.False(t, CustomStylesEqual(d, a))
}

func TestAllBuiltinStylesCatalog(t *testing.T) {
	first := AllBuiltinStyles()
	second := AllBuiltinStyles()
	require.Len(t, first, 7)

	var colors, decorations int
	for _, s := range first {
		assert.Equal(t, TypeBuiltin, s.Type)
		switch s.Kind {
		case KindColor:
			colors++
		case KindDecoration:
			decorations++
		}
	}
	assert.Equal(t, 5, colors)
	assert.Equal(t, 2, decorations)

	// Colors come first and the order is stable across calls.
	for i := 0; i < 5; i++ {
		assert.Equal(t, KindColor, first[i].Kind)
	}
	assert.Equal(t, first, second)
}

func TestBuiltinColorFallsBackToLightYellow(t *testing.T) {
	assert.Equal(t, builtinColorsLight["yellow"], BuiltinColor("no-such-color", false))
	assert.Equal(t, builtinColorsLight["yellow"], BuiltinColor("no-such-color", true))
	assert.Equal(t, builtinColorsDark["green"], BuiltinColor("green", true))
}

func TestShade(t *testing.T) {
	// Decoration shade is its line color.
	assert.Equal(t, "red", NewBuiltinDecoration("wavy").Shade(false))

	// currentColor cannot represent the style; fall back to yellow.
	s := NewCustomDecoration("underline", "solid", CurrentColor)
	assert.Equal(t, BuiltinColor("yellow", false), s.Shade(false))

	// Color shade is the theme-resolved fill.
	assert.Equal(t, "#112233", NewCustomColor("#112233", "#445566").Shade(false))
	assert.Equal(t, "#445566", NewCustomColor("#112233", "#445566").Shade(true))

	// Empty style resolves to the default yellow.
	empty := HighlightStyle{Type: TypeCustom, Kind: KindColor}
	assert.Equal(t, BuiltinColor("yellow", true), empty.Shade(true))
}

func TestCustomColorFillFallsBackAcrossThemes(t *testing.T) {
	onlyLight := NewCustomColor("#112233", "")
	assert.Equal(t, "#112233", onlyLight.fill(true))

	onlyDark := NewCustomColor("", "#445566")
	assert.Equal(t, "#445566", onlyDark.fill(false))
}

func TestContrastForeground(t *testing.T) {
	assert.Equal(t, "#000000", contrastForeground("#ffeb6b"))
	assert.Equal(t, "#ffffff", contrastForeground("#265589"))
	assert.Equal(t, "", contrastForeground("not-a-color"))
}
