package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/highlight-editor/internal/style"
)

// KeyCustomStyles is the store key holding the ordered list of raw custom
// style descriptors, most recently added first.
const KeyCustomStyles = "custom_highlight_styles"

// Store is a small key/value store for viewer session data, persisted
// synchronously to a single yaml file. A missing file reads as an empty
// store.
type Store struct {
	Path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) load() (map[string]interface{}, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session data: %w", err)
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing session data: %w", err)
	}
	return values, nil
}

func (s *Store) save(values map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshaling session data: %w", err)
	}
	return os.WriteFile(s.Path, data, 0644)
}

// Get returns the stored value for a key, or nil when absent.
func (s *Store) Get(key string) (interface{}, error) {
	values, err := s.load()
	if err != nil {
		return nil, err
	}
	return values[key], nil
}

// Set writes a value for a key and persists immediately.
func (s *Store) Set(key string, value interface{}) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// CustomStyles returns the stored custom style list in stored order.
func (s *Store) CustomStyles() ([]style.HighlightStyle, error) {
	raw, err := s.Get(KeyCustomStyles)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	// Round-trip through yaml to get from the generic store value to the
	// typed descriptors.
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshaling custom styles: %w", err)
	}
	var styles []style.HighlightStyle
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("parsing custom styles: %w", err)
	}
	return styles, nil
}

// SetCustomStyles replaces the stored custom style list.
func (s *Store) SetCustomStyles(styles []style.HighlightStyle) error {
	return s.Set(KeyCustomStyles, styles)
}

// PrependCustomStyle adds a descriptor at the front of the stored list.
func (s *Store) PrependCustomStyle(st style.HighlightStyle) error {
	styles, err := s.CustomStyles()
	if err != nil {
		return err
	}
	return s.SetCustomStyles(append([]style.HighlightStyle{st}, styles...))
}

// RemoveCustomStyle drops every stored descriptor structurally equal to
// the target, not just the first.
func (s *Store) RemoveCustomStyle(target style.HighlightStyle) error {
	styles, err := s.CustomStyles()
	if err != nil {
		return err
	}

	kept := styles[:0]
	for _, st := range styles {
		if !style.CustomStylesEqual(st, target) {
			kept = append(kept, st)
		}
	}
	return s.SetCustomStyles(kept)
}
