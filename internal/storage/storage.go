package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/highlight-editor/internal/model"
)

// Storage handles reading and writing annotation files under a single
// annotations directory: one session.yaml for viewer session data and a
// highlights file per book.
type Storage struct {
	Root string
}

// New creates a new Storage instance rooted at the given directory.
func New(root string) *Storage {
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home, _ = os.Getwd()
		}
		root = filepath.Join(home, ".highlight-editor")
	}
	return &Storage{Root: root}
}

// Path helpers
func (s *Storage) SessionPath() string {
	return filepath.Join(s.Root, "session.yaml")
}

func (s *Storage) BookDir(bookID string) string {
	return filepath.Join(s.Root, "books", bookID)
}

func (s *Storage) HighlightsPath(bookID string) string {
	return filepath.Join(s.BookDir(bookID), "highlights.yaml")
}

// LoadHighlights loads a book's highlight list. A missing file loads as
// an empty list.
func (s *Storage) LoadHighlights(bookID string) (*model.HighlightList, error) {
	data, err := os.ReadFile(s.HighlightsPath(bookID))
	if os.IsNotExist(err) {
		return model.NewHighlightList(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading highlights: %w", err)
	}

	list := model.NewHighlightList()
	if err := yaml.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("parsing highlights: %w", err)
	}
	return list, nil
}

// SaveHighlights writes a book's highlight list.
func (s *Storage) SaveHighlights(bookID string, list *model.HighlightList) error {
	if err := os.MkdirAll(s.BookDir(bookID), 0755); err != nil {
		return fmt.Errorf("creating book dir: %w", err)
	}

	data, err := yaml.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling highlights: %w", err)
	}
	return os.WriteFile(s.HighlightsPath(bookID), data, 0644)
}
