package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/highlight-editor/internal/model"
	"github.com/lunit-heesungyang/highlight-editor/internal/style"
)

func newTestApp(t *testing.T) Model {
	t.Helper()
	m := New(t.TempDir(), "0001", false)

	list := model.NewHighlightList()
	list.Add(&model.Highlight{
		UUID:       "u1",
		Text:       "first passage",
		Style:      style.Default(),
		SpineIndex: 1,
		StartCFI:   "/6/2:0",
	})
	list.Add(&model.Highlight{
		UUID:       "u2",
		Text:       "second passage",
		Notes:      "existing note",
		Style:      style.NewBuiltinColor("green"),
		SpineIndex: 2,
		StartCFI:   "/6/4:0",
	})
	require.NoError(t, m.storage.SaveHighlights("0001", list))

	updated, _ := m.Update(m.refreshHighlights()())
	return updated.(Model)
}

func TestLoadVisibleHighlights(t *testing.T) {
	m := newTestApp(t)
	require.Len(t, m.visible, 2)
	assert.Equal(t, "u1", m.visible[0].UUID)
}

func TestEditAcceptPersistsNotesAndStyle(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(keyPress("e"))
	m = updated.(Model)
	require.Equal(t, StateEditing, m.state)
	assert.Equal(t, "u1", m.editingUUID)

	// Type into the notes field and pick the green swatch.
	m.editor.notes.SetValue("a fresh note")
	m.editor, _ = m.editor.Update(keyPress("tab"))
	m.editor, _ = m.editor.Update(keyPress("right"))
	m.editor, _ = m.editor.Update(keyPress("enter"))

	updated, _ = m.Update(EditorClosedMsg{Accepted: true})
	m = updated.(Model)
	assert.Equal(t, StateList, m.state)

	loaded, err := m.storage.LoadHighlights("0001")
	require.NoError(t, err)
	h := loaded.Get("u1")
	require.NotNil(t, h)
	assert.Equal(t, "a fresh note", h.Notes)
	assert.True(t, h.Style.Equal(style.NewBuiltinColor("green")))
}

func TestEditAbortDiscardsLocalEdits(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(keyPress("e"))
	m = updated.(Model)
	m.editor.notes.SetValue("should be dropped")

	updated, _ = m.Update(EditorClosedMsg{Accepted: false})
	m = updated.(Model)
	assert.Equal(t, StateList, m.state)

	loaded, err := m.storage.LoadHighlights("0001")
	require.NoError(t, err)
	assert.Equal(t, "", loaded.Get("u1").Notes)
}

func TestDeleteConfirmMarksRemoved(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(keyPress("d"))
	m = updated.(Model)
	require.Equal(t, StateConfirm, m.state)

	updated, cmd := m.Update(keyPress("y"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, StateList, m.state)

	loaded, err := m.storage.LoadHighlights("0001")
	require.NoError(t, err)
	assert.True(t, loaded.Get("u1").Removed)
	assert.Len(t, loaded.Visible(), 1)
}

func TestSearchSelectsMatch(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(keyPress("/"))
	m = updated.(Model)
	require.Equal(t, StateSearch, m.state)

	m.searchInput.SetValue("existing note")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.Equal(t, StateList, m.state)
	assert.Equal(t, 1, m.selected)
}

func TestExportWritesAllFormats(t *testing.T) {
	m := newTestApp(t)

	updated, _ := m.Update(keyPress("x"))
	m = updated.(Model)

	for _, name := range []string{"export.json", "export.txt", "export.md"} {
		_, err := os.Stat(filepath.Join(m.storage.BookDir("0001"), name))
		assert.NoError(t, err, name)
	}
}
