package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/highlight-editor/internal/locale"
	"github.com/lunit-heesungyang/highlight-editor/internal/model"
	"github.com/lunit-heesungyang/highlight-editor/internal/session"
	"github.com/lunit-heesungyang/highlight-editor/internal/storage"
	"github.com/lunit-heesungyang/highlight-editor/internal/theme"
)

// AppState represents the current UI state
type AppState int

const (
	StateList AppState = iota
	StateEditing
	StateConfirm
	StateSearch
)

// Model is the main Bubble Tea model: the highlights panel with the
// notes-and-colors editor embedded as an overlay.
type Model struct {
	// Core dependencies
	storage *storage.Storage
	store   *session.Store
	theme   theme.Theme
	tr      locale.Translator
	keys    KeyMap
	styles  Styles

	// Book being annotated
	bookID string

	// Window dimensions
	width  int
	height int

	// Highlight list state
	list     *model.HighlightList
	visible  []*model.Highlight
	selected int

	// UI state
	state     AppState
	statusMsg string

	// Sub-components
	searchInput textinput.Model
	editor      Editor

	// Search state
	searchBackwards bool

	// Editing state
	editingUUID string

	// Confirm state
	confirmMsg    string
	confirmAction func()
}

// New creates the panel model for one book.
func New(root, bookID string, dark bool) Model {
	st := storage.New(root)
	th := theme.New(dark)

	si := textinput.New()
	si.CharLimit = 200
	si.Width = 40

	return Model{
		storage:     st,
		store:       session.New(st.SessionPath()),
		theme:       th,
		tr:          locale.Passthrough,
		keys:        DefaultKeyMap(),
		styles:      NewStyles(th),
		bookID:      bookID,
		list:        model.NewHighlightList(),
		searchInput: si,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.refreshHighlights()
}

type highlightsLoadedMsg *model.HighlightList

func (m Model) refreshHighlights() tea.Cmd {
	return func() tea.Msg {
		list, err := m.storage.LoadHighlights(m.bookID)
		if err != nil {
			return nil
		}
		return highlightsLoadedMsg(list)
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case highlightsLoadedMsg:
		m.list = msg
		m.visible = m.list.Visible()
		if m.selected >= len(m.visible) {
			m.selected = max(0, len(m.visible)-1)
		}
		return m, nil

	case EditorClosedMsg:
		return m.finishEditing(msg.Accepted)
	}

	if m.state == StateEditing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateEditing:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	case StateConfirm:
		return m.handleConfirmKey(msg)
	case StateSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.openEditor()

	case key.Matches(msg, m.keys.Delete):
		return m.confirmDelete()

	case key.Matches(msg, m.keys.Export):
		return m.exportHighlights()

	case key.Matches(msg, m.keys.Search):
		return m.startSearch(false)

	case key.Matches(msg, m.keys.SearchBack):
		return m.startSearch(true)

	case key.Matches(msg, m.keys.Refresh):
		m.statusMsg = m.tr("Refreshed")
		return m, m.refreshHighlights()
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.state = StateList
		if m.confirmAction != nil {
			m.confirmAction()
		}
		return m, m.refreshHighlights()

	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Escape):
		m.state = StateList
		m.statusMsg = m.tr("Cancelled")
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := m.searchInput.Value()
		m.searchInput.Reset()
		m.state = StateList
		return m.runSearch(query)

	case tea.KeyEsc:
		m.searchInput.Reset()
		m.state = StateList
		m.statusMsg = m.tr("Cancelled")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// Actions

func (m Model) openEditor() (Model, tea.Cmd) {
	h := m.selectedHighlight()
	if h == nil {
		m.statusMsg = m.tr("No highlight selected")
		return m, nil
	}

	m.editor = NewEditor(EditorConfig{
		Store:        m.store,
		Theme:        m.theme,
		Translate:    m.tr,
		InitialNotes: h.Notes,
		InitialStyle: h.Style,
	})
	m.editingUUID = h.UUID
	m.state = StateEditing
	return m, m.editor.Init()
}

// finishEditing folds the editor result back into the highlight. Custom
// style list edits made inside the editor persist regardless of
// acceptance; only notes and the chosen style are discarded on abort.
func (m Model) finishEditing(accepted bool) (Model, tea.Cmd) {
	m.state = StateList
	if !accepted {
		m.statusMsg = m.tr("Cancelled")
		return m, nil
	}

	h := m.list.Get(m.editingUUID)
	if h == nil {
		m.statusMsg = m.tr("Highlight no longer exists")
		return m, nil
	}

	h.Notes = m.editor.Notes()
	h.Style = m.editor.Style()
	if err := m.storage.SaveHighlights(m.bookID, m.list); err != nil {
		m.statusMsg = fmt.Sprintf("%s: %v", m.tr("Save failed"), err)
		return m, nil
	}
	m.statusMsg = m.tr("Saved")
	return m, m.refreshHighlights()
}

func (m Model) confirmDelete() (Model, tea.Cmd) {
	h := m.selectedHighlight()
	if h == nil {
		m.statusMsg = m.tr("No highlight selected")
		return m, nil
	}

	m.state = StateConfirm
	m.confirmMsg = m.tr("Delete this highlight permanently?")
	m.confirmAction = func() {
		m.list.Remove(h.UUID)
		_ = m.storage.SaveHighlights(m.bookID, m.list)
	}
	return m, nil
}

func (m Model) exportHighlights() (Model, tea.Cmd) {
	if len(m.visible) == 0 {
		m.statusMsg = m.tr("This book has no highlights to export")
		return m, nil
	}

	dir := m.storage.BookDir(m.bookID)
	exports := []struct {
		name   string
		format storage.ExportFormat
	}{
		{"export.json", storage.FormatJSON},
		{"export.txt", storage.FormatText},
		{"export.md", storage.FormatMarkdown},
	}
	for _, e := range exports {
		path := filepath.Join(dir, e.name)
		if err := m.storage.WriteExport(path, e.format, m.bookID, m.visible); err != nil {
			m.statusMsg = fmt.Sprintf("%s: %v", m.tr("Export failed"), err)
			return m, nil
		}
	}
	m.statusMsg = fmt.Sprintf("%s %s", m.tr("Exported to"), dir)
	return m, nil
}

func (m Model) startSearch(backwards bool) (Model, tea.Cmd) {
	m.state = StateSearch
	m.searchBackwards = backwards
	m.searchInput.Focus()
	return m, textinput.Blink
}

func (m Model) runSearch(query string) (Model, tea.Cmd) {
	if query == "" {
		return m, nil
	}

	needle := strings.ToLower(query)
	idx := model.FindFrom(m.visible, m.selected, m.searchBackwards, func(h *model.Highlight) bool {
		return strings.Contains(strings.ToLower(h.Text), needle) ||
			strings.Contains(strings.ToLower(h.Notes), needle)
	})
	if idx < 0 {
		m.statusMsg = fmt.Sprintf("%s: %s", m.tr("No highlights match the search"), query)
		return m, nil
	}
	m.selected = idx
	return m, nil
}

func (m Model) selectedHighlight() *model.Highlight {
	if m.selected >= 0 && m.selected < len(m.visible) {
		return m.visible[m.selected]
	}
	return nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Reserve 3 lines for header + footer + status.
	listWidth := m.width / 2
	previewWidth := m.width - listWidth
	contentHeight := max(m.height-3, 1)

	header := m.styles.Header.Render(
		fmt.Sprintf("%s [%s]", m.tr("Highlights"), m.bookID),
	)

	listPanel := m.styles.ListPanel.
		Width(listWidth).
		Render(m.renderList(listWidth-2, contentHeight))

	previewPanel := m.styles.PreviewPanel.
		Width(previewWidth).
		Render(m.renderPreview(previewWidth-4, contentHeight))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	keys := "[e]dit [d]elete [x]port [/]search [r]efresh [q]uit"
	footer := m.styles.Footer.Render(keys)
	status := m.styles.StatusBar.Render(m.statusMsg)

	var overlay string
	switch m.state {
	case StateEditing:
		overlay = m.editor.View()
	case StateConfirm:
		overlay = m.renderConfirmOverlay()
	case StateSearch:
		overlay = m.renderSearchOverlay()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		status,
	)

	if overlay != "" {
		overlayStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center)
		return overlayStyle.Render(overlay)
	}

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderList(width, height int) string {
	var lines []string

	if len(m.visible) == 0 {
		lines = append(lines, m.tr("No highlights"))
	} else {
		for i, h := range m.visible {
			if i >= height {
				break
			}

			marker := lipgloss.NewStyle().
				Foreground(lipgloss.Color(h.Style.Shade(m.theme.Dark))).
				Render(theme.IconHighlight)

			noteIcon := " "
			if h.HasNotes() {
				noteIcon = theme.IconNote
			}

			line := fmt.Sprintf("%s %s %s", marker, noteIcon, h.DisplayText())

			// Truncate using display width (handles wide chars)
			if runewidth.StringWidth(line) > width {
				line = runewidth.Truncate(line, width-3, "...")
			}

			if i == m.selected {
				line = m.styles.SelectedItem.Render(line)
			}

			lines = append(lines, line)
		}
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(width, height int) string {
	var lines []string

	h := m.selectedHighlight()
	if h == nil {
		lines = append(lines, m.tr("No highlight selected"))
	} else {
		lines = append(lines, m.styles.PreviewTitle.Render(m.tr("Highlight")))
		lines = append(lines, strings.Repeat("─", min(width, 40)))

		body := h.Style.TextStyle(m.theme.Dark, "").Render(wrapText(h.Text, width))
		lines = append(lines, strings.Split(body, "\n")...)

		if h.HasNotes() {
			lines = append(lines, "")
			lines = append(lines, m.styles.PreviewTitle.Render(m.tr("Notes")))
			notes := m.styles.NotesBlock.Render(wrapText(h.Notes, width))
			lines = append(lines, strings.Split(notes, "\n")...)
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderConfirmOverlay() string {
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n\n[y]es / [n]o",
			m.styles.PopupTitle.Render(theme.IconConfirm+m.confirmMsg),
		),
	)
}

func (m Model) renderSearchOverlay() string {
	prompt := m.tr("Search: ")
	if m.searchBackwards {
		prompt = m.tr("Search backwards: ")
	}
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n%s",
			m.styles.InputPrompt.Render(prompt),
			m.searchInput.View(),
		),
	)
}

// Helper functions

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		// Wrap using display width (handles wide chars)
		for runewidth.StringWidth(line) > width {
			wrapped := runewidth.Truncate(line, width, "")
			result.WriteString(wrapped)
			result.WriteString("\n")
			line = line[len(wrapped):]
		}
		result.WriteString(line)
	}

	return result.String()
}
