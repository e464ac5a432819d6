package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunit-heesungyang/highlight-editor/internal/locale"
	"github.com/lunit-heesungyang/highlight-editor/internal/style"
	"github.com/lunit-heesungyang/highlight-editor/internal/theme"
)

// addStyleDoneMsg carries the sub-dialog result: the built descriptor on
// Save, nil on Discard.
type addStyleDoneMsg struct {
	style *style.HighlightStyle
}

// Selector options for the decoration section
var (
	decorationLines  = []string{"underline", "overline", "line-through"}
	decorationStyles = []string{"solid", "dashed", "dotted", "double", "wavy"}
)

// Form rows, top to bottom. The color and decoration sections share row
// numbers; only the section matching the chosen kind is shown.
const (
	rowKind = iota
	rowColorLight
	rowColorDark
)

const (
	rowDecoLine = iota + 1
	rowDecoStyle
	rowDecoColor
)

// addStyleModel collects input for one new custom style. All state lives
// in the struct; Save reads it at the moment of the action.
type addStyleModel struct {
	theme  theme.Theme
	tr     locale.Translator
	styles Styles

	kind  style.StyleKind
	focus int

	lightInput textinput.Model
	darkInput  textinput.Model

	lineIdx         int
	lineStyleIdx    int
	useCurrentColor bool
	colorInput      textinput.Model
}

func newHexInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 7
	ti.Width = 9
	return ti
}

func newAddStyleModel(th theme.Theme, tr locale.Translator) addStyleModel {
	m := addStyleModel{
		theme:           th,
		tr:              tr,
		styles:          NewStyles(th),
		kind:            style.KindColor,
		lightInput:      newHexInput(style.BuiltinColor("yellow", false)),
		darkInput:       newHexInput(style.BuiltinColor("yellow", true)),
		useCurrentColor: true,
		colorInput:      newHexInput("#ff0000"),
	}
	return m
}

func (m addStyleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addStyleModel) lastRow() int {
	if m.kind == style.KindColor {
		return rowColorDark
	}
	return rowDecoColor
}

// focusedInput returns the text input the focused row edits, or nil.
func (m *addStyleModel) focusedInput() *textinput.Model {
	if m.kind == style.KindColor {
		switch m.focus {
		case rowColorLight:
			return &m.lightInput
		case rowColorDark:
			return &m.darkInput
		}
		return nil
	}
	if m.focus == rowDecoColor && !m.useCurrentColor {
		return &m.colorInput
	}
	return nil
}

func (m addStyleModel) syncFocus() addStyleModel {
	m.lightInput.Blur()
	m.darkInput.Blur()
	m.colorInput.Blur()
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
	return m
}

func addStyleDone(s *style.HighlightStyle) tea.Cmd {
	return func() tea.Msg {
		return addStyleDoneMsg{style: s}
	}
}

// buildStyle constructs the descriptor from the current form state.
func (m addStyleModel) buildStyle() style.HighlightStyle {
	if m.kind == style.KindColor {
		light := m.lightInput.Value()
		if light == "" {
			light = style.BuiltinColor("yellow", false)
		}
		dark := m.darkInput.Value()
		if dark == "" {
			dark = style.BuiltinColor("yellow", true)
		}
		return style.NewCustomColor(light, dark)
	}

	color := style.CurrentColor
	if !m.useCurrentColor {
		color = m.colorInput.Value()
		if color == "" {
			color = "#ff0000"
		}
	}
	return style.NewCustomDecoration(decorationLines[m.lineIdx], decorationStyles[m.lineStyleIdx], color)
}

func (m addStyleModel) Update(msg tea.Msg) (addStyleModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "esc":
		// Discard: completion with no value.
		return m, addStyleDone(nil)

	case "enter":
		// Save: completion with the descriptor built from form state.
		s := m.buildStyle()
		return m, addStyleDone(&s)

	case "tab", "down":
		m.focus++
		if m.focus > m.lastRow() {
			m.focus = rowKind
		}
		return m.syncFocus(), nil

	case "shift+tab", "up":
		m.focus--
		if m.focus < rowKind {
			m.focus = m.lastRow()
		}
		return m.syncFocus(), nil

	case "left", "right":
		// Selector rows consume left/right; text inputs keep them for
		// cursor movement.
		if m.focusedInput() == nil {
			return m.handleSelector(keyMsg.String() == "right"), nil
		}
		return m.updateInputs(msg)
	}

	return m.updateInputs(msg)
}

// handleSelector adjusts the radio/selector value on the focused row.
func (m addStyleModel) handleSelector(forward bool) addStyleModel {
	switch {
	case m.focus == rowKind:
		if m.kind == style.KindColor {
			m.kind = style.KindDecoration
		} else {
			m.kind = style.KindColor
		}
		// Switching the visible section can leave the focus past its end.
		if m.focus > m.lastRow() {
			m.focus = m.lastRow()
		}
		return m.syncFocus()

	case m.kind == style.KindDecoration && m.focus == rowDecoLine:
		m.lineIdx = cycle(m.lineIdx, len(decorationLines), forward)

	case m.kind == style.KindDecoration && m.focus == rowDecoStyle:
		m.lineStyleIdx = cycle(m.lineStyleIdx, len(decorationStyles), forward)

	case m.kind == style.KindDecoration && m.focus == rowDecoColor:
		m.useCurrentColor = !m.useCurrentColor
		return m.syncFocus()
	}
	return m
}

func cycle(i, n int, forward bool) int {
	if forward {
		return (i + 1) % n
	}
	return (i + n - 1) % n
}

func (m addStyleModel) updateInputs(msg tea.Msg) (addStyleModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.kind == style.KindColor && m.focus == rowColorLight:
		m.lightInput, cmd = m.lightInput.Update(msg)
	case m.kind == style.KindColor && m.focus == rowColorDark:
		m.darkInput, cmd = m.darkInput.Update(msg)
	case m.kind == style.KindDecoration && m.focus == rowDecoColor && !m.useCurrentColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	}
	return m, cmd
}

func (m addStyleModel) View() string {
	title := m.styles.PopupTitle.Render(m.tr("Add a new highlight style"))

	radio := func(selected bool, label string) string {
		mark := "( )"
		if selected {
			mark = "(•)"
		}
		return mark + " " + label
	}
	kindRow := m.rowLabel(rowKind, m.tr("Kind")) +
		radio(m.kind == style.KindColor, m.tr("Color")) + "  " +
		radio(m.kind == style.KindDecoration, m.tr("Decoration"))

	var rows []string
	rows = append(rows, kindRow)

	if m.kind == style.KindColor {
		rows = append(rows,
			m.rowLabel(rowColorLight, m.tr("Light"))+m.lightInput.View(),
			m.rowLabel(rowColorDark, m.tr("Dark"))+m.darkInput.View(),
		)
	} else {
		colorValue := m.tr("current text color")
		if !m.useCurrentColor {
			colorValue = m.colorInput.View()
		}
		rows = append(rows,
			m.rowLabel(rowDecoLine, m.tr("Line"))+selector(decorationLines[m.lineIdx]),
			m.rowLabel(rowDecoStyle, m.tr("Style"))+selector(decorationStyles[m.lineStyleIdx]),
			m.rowLabel(rowDecoColor, m.tr("Color"))+selector(colorValue),
		)
	}

	preview := m.buildStyle().Swatch(m.theme.Dark)

	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Button.Render(m.tr("Discard")+" [esc]"),
		m.styles.ButtonEmphasis.Render(m.tr("Save")+" [↵]"),
	)
	hint := m.styles.Hint.Render(m.tr("tab: next field   ←/→: change value"))

	return m.styles.PopupBorder.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		m.tr("Preview:")+" "+preview,
		"",
		actions,
		hint,
	))
}

func (m addStyleModel) rowLabel(row int, label string) string {
	cursor := "  "
	if m.focus == row {
		cursor = m.styles.SwatchCursor.Render("> ")
	}
	return cursor + fmt.Sprintf("%-7s", label+":") + " "
}

func selector(value string) string {
	return "◂ " + value + " ▸"
}
