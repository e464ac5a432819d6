package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/highlight-editor/internal/session"
	"github.com/lunit-heesungyang/highlight-editor/internal/style"
	"github.com/lunit-heesungyang/highlight-editor/internal/theme"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.New(filepath.Join(t.TempDir(), "session.yaml"))
}

func newTestEditor(store *session.Store, notes string, initial style.HighlightStyle) Editor {
	return NewEditor(EditorConfig{
		Store:        store,
		Theme:        theme.New(false),
		InitialNotes: notes,
		InitialStyle: initial,
	})
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEditorDefaultsToBuiltinYellow(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "", style.HighlightStyle{})

	require.Len(t, ed.swatches, 7)
	assert.Equal(t, 0, ed.current)
	assert.True(t, ed.Style().Equal(style.Default()))
	assert.False(t, ed.RemoveVisible())
}

func TestUnknownInitialStyleForcedToFrontAndCurrent(t *testing.T) {
	initial := style.NewCustomColor("#112233", "#445566")
	ed := newTestEditor(newTestStore(t), "", initial)

	require.Len(t, ed.swatches, 8)
	assert.Equal(t, 0, ed.current)
	assert.True(t, ed.swatches[0].style.Equal(initial))
	assert.True(t, ed.RemoveVisible())
}

func TestKnownInitialStyleSelectedInPlace(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "", style.NewBuiltinColor("green"))

	require.Len(t, ed.swatches, 7)
	assert.Equal(t, 1, ed.current)
}

func TestStoredCustomStylesComeFirstWithDedup(t *testing.T) {
	store := newTestStore(t)
	custom := style.NewCustomColor("#aabbcc", "#001122")
	require.NoError(t, store.PrependCustomStyle(custom))
	require.NoError(t, store.PrependCustomStyle(custom))

	ed := newTestEditor(store, "", style.HighlightStyle{})

	// The duplicate stored descriptor renders a single swatch.
	require.Len(t, ed.swatches, 8)
	assert.True(t, ed.swatches[0].style.Equal(custom))

	seen := make(map[string]bool)
	for _, sw := range ed.swatches {
		assert.False(t, seen[sw.key])
		seen[sw.key] = true
	}
}

func TestEscapeClosesWithoutAcceptingExactlyOnce(t *testing.T) {
	store := newTestStore(t)
	ed := newTestEditor(store, "draft notes", style.HighlightStyle{})

	ed, cmd := ed.Update(keyPress("esc"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(EditorClosedMsg)
	require.True(t, ok)
	assert.False(t, msg.Accepted)

	// Already closed: further input is ignored.
	ed, cmd = ed.Update(keyPress("esc"))
	assert.Nil(t, cmd)

	// No session-data mutation happened.
	styles, err := store.CustomStyles()
	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestFinishClosesAccepted(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "some notes\n\n", style.HighlightStyle{})

	_, cmd := ed.Update(keyPress("ctrl+s"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(EditorClosedMsg)
	require.True(t, ok)
	assert.True(t, msg.Accepted)

	assert.Equal(t, "some notes", ed.Notes())
}

func TestSelectSwatchRefocusesNotes(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "", style.HighlightStyle{})

	ed, _ = ed.Update(keyPress("tab"))
	assert.True(t, ed.paletteFocused)

	ed, _ = ed.Update(keyPress("right"))
	ed, _ = ed.Update(keyPress("enter"))

	assert.Equal(t, 1, ed.current)
	assert.False(t, ed.paletteFocused)
	assert.True(t, ed.Style().Equal(style.NewBuiltinColor("green")))
}

func TestCursorPastLastSwatchIsAddControl(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "", style.HighlightStyle{})

	ed, _ = ed.Update(keyPress("tab"))
	for i := 0; i < len(ed.swatches)+2; i++ {
		ed, _ = ed.Update(keyPress("right"))
	}
	// Cursor clamps at the trailing add-new-style control.
	assert.Equal(t, len(ed.swatches), ed.cursor)

	ed, _ = ed.Update(keyPress("enter"))
	assert.Equal(t, editorAddingStyle, ed.state)
}

func TestAddNewStylePrependsAndPersists(t *testing.T) {
	store := newTestStore(t)
	ed := newTestEditor(store, "", style.HighlightStyle{})
	before := len(ed.swatches)

	desc := style.NewCustomColor("#aabbcc", "#001122")
	ed, _ = ed.Update(keyPress("tab"))
	ed, _ = ed.Update(keyPress("a"))
	require.Equal(t, editorAddingStyle, ed.state)

	ed, _ = ed.Update(addStyleDoneMsg{style: &desc})

	assert.Equal(t, editorEditing, ed.state)
	require.Len(t, ed.swatches, before+1)
	assert.Equal(t, 0, ed.current)
	assert.True(t, ed.Style().Equal(desc))

	styles, err := store.CustomStyles()
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.True(t, style.CustomStylesEqual(desc, styles[0]))
}

func TestAddDuplicateStyleDoesNotRenderSecondSwatch(t *testing.T) {
	store := newTestStore(t)
	desc := style.NewCustomColor("#aabbcc", "#001122")
	require.NoError(t, store.PrependCustomStyle(desc))

	ed := newTestEditor(store, "", style.HighlightStyle{})
	before := len(ed.swatches)

	ed, _ = ed.Update(keyPress("tab"))
	ed, _ = ed.Update(keyPress("a"))
	ed, _ = ed.Update(addStyleDoneMsg{style: &desc})

	// The existing swatch is selected; no duplicate is rendered. The raw
	// descriptor is still prepended to the stored list.
	assert.Len(t, ed.swatches, before)
	assert.True(t, ed.Style().Equal(desc))

	styles, err := store.CustomStyles()
	require.NoError(t, err)
	assert.Len(t, styles, 2)
}

func TestAddStyleDiscardReturnsToEditing(t *testing.T) {
	store := newTestStore(t)
	ed := newTestEditor(store, "", style.HighlightStyle{})
	before := len(ed.swatches)

	ed, _ = ed.Update(keyPress("tab"))
	ed, _ = ed.Update(keyPress("a"))
	ed, _ = ed.Update(addStyleDoneMsg{})

	assert.Equal(t, editorEditing, ed.state)
	assert.Len(t, ed.swatches, before)

	styles, err := store.CustomStyles()
	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestRemoveCurrentCustomStyle(t *testing.T) {
	store := newTestStore(t)
	custom := style.NewCustomColor("#112233", "#445566")
	require.NoError(t, store.PrependCustomStyle(custom))
	require.NoError(t, store.PrependCustomStyle(custom))

	ed := newTestEditor(store, "", custom)
	require.Equal(t, 0, ed.current)
	require.True(t, ed.RemoveVisible())

	ed, _ = ed.Update(keyPress("tab"))
	ed, _ = ed.Update(keyPress("d"))

	// The swatch is gone, some swatch is still current and every stored
	// occurrence was dropped.
	assert.Len(t, ed.swatches, 7)
	assert.Equal(t, 0, ed.current)
	assert.False(t, ed.RemoveVisible())

	styles, err := store.CustomStyles()
	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestRemoveIgnoredForBuiltinCurrent(t *testing.T) {
	ed := newTestEditor(newTestStore(t), "", style.HighlightStyle{})

	ed, _ = ed.Update(keyPress("tab"))
	ed, _ = ed.Update(keyPress("d"))

	assert.Len(t, ed.swatches, 7)
	assert.Equal(t, 0, ed.current)
}
