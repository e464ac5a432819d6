package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/highlight-editor/internal/locale"
	"github.com/lunit-heesungyang/highlight-editor/internal/session"
	"github.com/lunit-heesungyang/highlight-editor/internal/style"
	"github.com/lunit-heesungyang/highlight-editor/internal/theme"
)

// editorState represents the editor's current sub-view
type editorState int

const (
	editorEditing editorState = iota
	editorAddingStyle
)

// EditorClosedMsg is emitted exactly once when the editor terminates.
// The embedding model reads Notes and Style back through the accessors.
type EditorClosedMsg struct {
	Accepted bool
}

// swatch is one rendered palette entry
type swatch struct {
	style style.HighlightStyle
	key   string
}

// EditorConfig carries the editor's injected collaborators and initial
// form values.
type EditorConfig struct {
	Store        *session.Store
	Theme        theme.Theme
	Translate    locale.Translator
	InitialNotes string
	InitialStyle style.HighlightStyle
}

// Editor is the notes-and-colors form. All state lives here, not in the
// rendered widgets: the terminal actions read this struct, never the
// view.
type Editor struct {
	store  *session.Store
	theme  theme.Theme
	tr     locale.Translator
	keys   EditorKeyMap
	styles Styles

	state          editorState
	notes          textarea.Model
	swatches       []swatch
	current        int // index of the current swatch, -1 when palette is empty
	cursor         int // palette cursor; len(swatches) is the add-new-style control
	paletteFocused bool
	addStyle       addStyleModel
	closed         bool
}

// NewEditor builds the editor form: notes pre-filled, palette populated
// custom-first then builtin with first-seen-wins key dedup, and the
// initial style forced to the front when nothing matches it.
func NewEditor(cfg EditorConfig) Editor {
	tr := cfg.Translate
	if tr == nil {
		tr = locale.Passthrough
	}

	ta := textarea.New()
	ta.Placeholder = tr("Add notes for this highlight")
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.SetValue(cfg.InitialNotes)

	ed := Editor{
		store:   cfg.Store,
		theme:   cfg.Theme,
		tr:      tr,
		keys:    DefaultEditorKeyMap(),
		styles:  NewStyles(cfg.Theme),
		notes:   ta,
		current: -1,
	}

	seen := make(map[string]bool)
	add := func(s style.HighlightStyle) {
		k := s.Key()
		if seen[k] {
			return
		}
		seen[k] = true
		ed.swatches = append(ed.swatches, swatch{style: s, key: k})
	}

	custom, _ := cfg.Store.CustomStyles()
	for _, s := range custom {
		add(s)
	}
	for _, s := range style.AllBuiltinStyles() {
		add(s)
	}

	initial := cfg.InitialStyle
	if (initial == style.HighlightStyle{}) {
		initial = style.Default()
	}
	initialKey := initial.Key()
	for i, sw := range ed.swatches {
		if sw.key == initialKey {
			ed.current = i
			break
		}
	}
	if ed.current < 0 {
		ed.swatches = append([]swatch{{style: initial, key: initialKey}}, ed.swatches...)
		ed.current = 0
	}
	ed.cursor = ed.current

	ed.addStyle = newAddStyleModel(cfg.Theme, tr)
	return ed
}

// Init focuses the notes field once construction has finished.
func (e Editor) Init() tea.Cmd {
	return tea.Batch(e.notes.Focus(), textarea.Blink)
}

// Notes returns the notes text, trailing whitespace stripped.
func (e Editor) Notes() string {
	return strings.TrimRight(e.notes.Value(), " \t\n")
}

// Style returns the style backing the current swatch.
func (e Editor) Style() style.HighlightStyle {
	if e.current >= 0 && e.current < len(e.swatches) {
		return e.swatches[e.current].style
	}
	return style.Default()
}

// RemoveVisible reports whether the remove-style control applies: only
// custom styles can be removed, and only the current one.
func (e Editor) RemoveVisible() bool {
	return e.current >= 0 && e.current < len(e.swatches) && e.swatches[e.current].style.IsCustom()
}

func closeEditor(accepted bool) tea.Cmd {
	return func() tea.Msg {
		return EditorClosedMsg{Accepted: accepted}
	}
}

// Update implements the editor's event handling.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if e.closed {
		return e, nil
	}

	if e.state == editorAddingStyle {
		return e.updateAddingStyle(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.notes, cmd = e.notes.Update(msg)
		return e, cmd
	}

	switch {
	case key.Matches(keyMsg, e.keys.Abort):
		e.closed = true
		return e, closeEditor(false)

	case key.Matches(keyMsg, e.keys.Finish):
		e.closed = true
		return e, closeEditor(true)

	case key.Matches(keyMsg, e.keys.Palette):
		e.paletteFocused = !e.paletteFocused
		if e.paletteFocused {
			e.notes.Blur()
			return e, nil
		}
		return e, e.notes.Focus()
	}

	if e.paletteFocused {
		return e.updatePalette(keyMsg)
	}

	var cmd tea.Cmd
	e.notes, cmd = e.notes.Update(keyMsg)
	return e, cmd
}

func (e Editor) updatePalette(msg tea.KeyMsg) (Editor, tea.Cmd) {
	switch {
	case key.Matches(msg, e.keys.Left):
		if e.cursor > 0 {
			e.cursor--
		}
		return e, nil

	case key.Matches(msg, e.keys.Right):
		if e.cursor < len(e.swatches) {
			e.cursor++
		}
		return e, nil

	case key.Matches(msg, e.keys.Select):
		if e.cursor == len(e.swatches) {
			return e.openAddStyle()
		}
		return e.selectSwatch(e.cursor)

	case key.Matches(msg, e.keys.Add):
		return e.openAddStyle()

	case key.Matches(msg, e.keys.Remove):
		return e.removeCurrentStyle()
	}

	return e, nil
}

func (e Editor) updateAddingStyle(msg tea.Msg) (Editor, tea.Cmd) {
	if done, ok := msg.(addStyleDoneMsg); ok {
		e.state = editorEditing
		e.paletteFocused = false
		if done.style == nil {
			return e, e.notes.Focus()
		}
		return e.addNewStyle(*done.style)
	}

	var cmd tea.Cmd
	e.addStyle, cmd = e.addStyle.Update(msg)
	return e, cmd
}

func (e Editor) openAddStyle() (Editor, tea.Cmd) {
	e.state = editorAddingStyle
	e.addStyle = newAddStyleModel(e.theme, e.tr)
	e.notes.Blur()
	return e, e.addStyle.Init()
}

// selectSwatch marks a swatch current and hands focus back to the notes
// field.
func (e Editor) selectSwatch(i int) (Editor, tea.Cmd) {
	e.current = i
	e.paletteFocused = false
	return e, e.notes.Focus()
}

// addNewStyle prepends the new descriptor as the current swatch and
// persists it to the session store immediately. An abort afterwards does
// not reverse this. A descriptor whose key already has a swatch selects
// that swatch instead of rendering a duplicate.
func (e Editor) addNewStyle(s style.HighlightStyle) (Editor, tea.Cmd) {
	k := s.Key()
	existing := -1
	for i, sw := range e.swatches {
		if sw.key == k {
			existing = i
			break
		}
	}
	if existing >= 0 {
		e.current = existing
		e.cursor = existing
	} else {
		e.swatches = append([]swatch{{style: s, key: k}}, e.swatches...)
		e.current = 0
		e.cursor = 0
	}
	_ = e.store.PrependCustomStyle(s)
	return e, e.notes.Focus()
}

// removeCurrentStyle drops the current custom swatch, promotes the first
// remaining swatch to current and removes every structurally equal
// descriptor from the session store.
func (e Editor) removeCurrentStyle() (Editor, tea.Cmd) {
	if !e.RemoveVisible() {
		return e, nil
	}

	target := e.swatches[e.current].style
	e.swatches = append(e.swatches[:e.current:e.current], e.swatches[e.current+1:]...)
	if len(e.swatches) > 0 {
		e.current = 0
	} else {
		e.current = -1
	}
	if e.cursor > len(e.swatches) {
		e.cursor = len(e.swatches)
	}
	_ = e.store.RemoveCustomStyle(target)
	return e, nil
}

// View renders the editor form.
func (e Editor) View() string {
	if e.state == editorAddingStyle {
		return e.addStyle.View()
	}

	title := e.styles.PopupTitle.Render(e.tr("Edit notes and colors"))

	var cells []string
	for i, sw := range e.swatches {
		cell := sw.style.Swatch(e.theme.Dark)
		st := e.styles.SwatchCell
		if i == e.current {
			st = e.styles.SwatchCurrent
		}
		cell = st.Render(cell)
		if e.paletteFocused && i == e.cursor {
			cell = e.styles.SwatchCursor.Render(">") + cell
		} else {
			cell = " " + cell
		}
		cells = append(cells, cell)
	}
	addCell := e.styles.SwatchCell.Render(theme.IconAddSwatch)
	if e.paletteFocused && e.cursor == len(e.swatches) {
		addCell = e.styles.SwatchCursor.Render(">") + addCell
	} else {
		addCell = " " + addCell
	}
	cells = append(cells, addCell)
	palette := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	buttons := []string{
		e.styles.Button.Render(e.tr("Cancel") + " [esc]"),
		e.styles.ButtonEmphasis.Render(e.tr("Apply") + " [ctrl+s]"),
	}
	if e.RemoveVisible() {
		buttons = append([]string{e.styles.Button.Render(e.tr("Remove style") + " [d]")}, buttons...)
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	hint := e.styles.Hint.Render(e.tr("tab: palette   ←/→: move   ↵: choose   a: new style"))

	return e.styles.PopupBorder.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		e.notes.View(),
		"",
		palette,
		"",
		actions,
		hint,
	))
}
