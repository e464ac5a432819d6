package model

import (
	"sort"
	"strconv"
	"strings"
)

// HighlightList represents the collection of one book's highlights.
type HighlightList struct {
	Highlights []*Highlight `yaml:"highlights"`
}

// NewHighlightList creates a new empty highlight list.
func NewHighlightList() *HighlightList {
	return &HighlightList{Highlights: make([]*Highlight, 0)}
}

// Visible returns highlights that are not removed and have text, in
// reading order.
func (l *HighlightList) Visible() []*Highlight {
	var visible []*Highlight
	for _, h := range l.Highlights {
		if h.Removed || h.Text == "" {
			continue
		}
		visible = append(visible, h)
	}
	sortByPosition(visible)
	return visible
}

// Get finds a highlight by UUID.
func (l *HighlightList) Get(uuid string) *Highlight {
	for _, h := range l.Highlights {
		if h.UUID == uuid {
			return h
		}
	}
	return nil
}

// Add appends a highlight to the list.
func (l *HighlightList) Add(h *Highlight) {
	l.Highlights = append(l.Highlights, h)
}

// Update replaces an existing highlight with the same UUID.
func (l *HighlightList) Update(updated *Highlight) {
	for i, h := range l.Highlights {
		if h.UUID == updated.UUID {
			l.Highlights[i] = updated
			return
		}
	}
}

// Remove marks a highlight as removed. The record is kept so syncing
// collaborators can observe the tombstone.
func (l *HighlightList) Remove(uuid string) {
	if h := l.Get(uuid); h != nil {
		h.Removed = true
	}
}

// FindFrom searches the given highlights starting after (or before, when
// backwards) the current row, wrapping around, and returns the index of
// the first match or -1.
func FindFrom(highlights []*Highlight, current int, backwards bool, match func(*Highlight) bool) int {
	n := len(highlights)
	if n == 0 {
		return -1
	}

	var indices []int
	if backwards {
		if current < 0 {
			current = n
		}
		for i := current - 1; i >= 0; i-- {
			indices = append(indices, i)
		}
		for i := n - 1; i > current; i-- {
			indices = append(indices, i)
		}
	} else {
		if current < 0 {
			current = -1
		}
		for i := current + 1; i < n; i++ {
			indices = append(indices, i)
		}
		for i := 0; i <= current && i < n; i++ {
			indices = append(indices, i)
		}
	}

	for _, i := range indices {
		if match(highlights[i]) {
			return i
		}
	}
	return -1
}

// sortByPosition orders highlights by spine index, then by document
// position within the spine item. Highlights without a position sort last.
func sortByPosition(highlights []*Highlight) {
	sort.SliceStable(highlights, func(i, j int) bool {
		a, b := highlights[i], highlights[j]
		ai, bi := positionSpine(a), positionSpine(b)
		if ai != bi {
			return ai < bi
		}
		return lessCFI(a.StartCFI, b.StartCFI)
	})
}

const missingSpine = 999999999

func positionSpine(h *Highlight) int {
	if h.StartCFI == "" {
		return missingSpine
	}
	return h.SpineIndex
}

// cfiSteps extracts the numeric steps of an EPUB CFI-ish position string,
// e.g. "/6/4/2:10" -> [6 4 2 10].
func cfiSteps(cfi string) []int {
	var steps []int
	for _, part := range strings.FieldsFunc(cfi, func(r rune) bool {
		return r == '/' || r == ':'
	}) {
		if n, err := strconv.Atoi(part); err == nil {
			steps = append(steps, n)
		}
	}
	return steps
}

func lessCFI(a, b string) bool {
	as, bs := cfiSteps(a), cfiSteps(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}
