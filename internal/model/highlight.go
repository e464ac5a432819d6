package model

import (
	"strings"
	"time"

	"github.com/lunit-heesungyang/highlight-editor/internal/style"
)

// displayTextLimit caps highlight text shown in list entries.
const displayTextLimit = 100

// Highlight represents a single annotated text range in a book.
type Highlight struct {
	UUID       string               `yaml:"uuid" json:"uuid"`
	Text       string               `yaml:"highlighted_text" json:"highlighted_text"`
	Notes      string               `yaml:"notes,omitempty" json:"notes,omitempty"`
	Style      style.HighlightStyle `yaml:"style" json:"style"`
	SpineIndex int                  `yaml:"spine_index" json:"spine_index"`
	StartCFI   string               `yaml:"start_cfi,omitempty" json:"start_cfi,omitempty"`
	Timestamp  time.Time            `yaml:"timestamp" json:"timestamp"`
	Removed    bool                 `yaml:"removed,omitempty" json:"removed,omitempty"`
}

// DisplayText returns the highlight text flattened to one line and
// truncated for list display.
func (h *Highlight) DisplayText() string {
	txt := strings.ReplaceAll(h.Text, "\n", " ")
	runes := []rune(txt)
	if len(runes) > displayTextLimit {
		return string(runes[:displayTextLimit]) + "…"
	}
	return txt
}

// HasNotes reports whether the highlight carries non-blank notes.
func (h *Highlight) HasNotes() bool {
	return strings.TrimSpace(h.Notes) != ""
}
