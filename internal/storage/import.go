package storage

import (
	"encoding/json"
	"fmt"

	"github.com/lunit-heesungyang/highlight-editor/internal/model"
)

// ParseExported parses and validates a previously exported highlights
// file.
func ParseExported(data []byte) ([]*model.Highlight, error) {
	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid export structure: %w", err)
	}

	if env.Type != exportedType {
		return nil, fmt.Errorf("not a highlights export: type %q", env.Type)
	}
	if env.Version != exportedVersion {
		return nil, fmt.Errorf("unsupported export version: %d", env.Version)
	}

	for i, h := range env.Highlights {
		if h.UUID == "" {
			return nil, fmt.Errorf("highlight %d: missing required field: uuid", i+1)
		}
		if h.Text == "" {
			return nil, fmt.Errorf("highlight %d: missing required field: highlighted_text", i+1)
		}
	}
	return env.Highlights, nil
}

// ImportHighlights merges exported highlights into a book's list,
// skipping UUIDs that already exist. Returns the number of highlights
// added.
func (s *Storage) ImportHighlights(bookID string, data []byte) (int, error) {
	imported, err := ParseExported(data)
	if err != nil {
		return 0, err
	}

	list, err := s.LoadHighlights(bookID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, h := range imported {
		if list.Get(h.UUID) != nil {
			continue
		}
		list.Add(h)
		added++
	}

	if added > 0 {
		if err := s.SaveHighlights(bookID, list); err != nil {
			return 0, err
		}
	}
	return added, nil
}
