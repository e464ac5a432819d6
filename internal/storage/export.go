package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lunit-heesungyang/highlight-editor/internal/model"
)

// ExportFormat selects the serialization of an export.
type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatText     ExportFormat = "text"
	FormatMarkdown ExportFormat = "markdown"
)

// Exported file envelope, shared by export and import.
const (
	exportedType    = "calibre_highlights"
	exportedVersion = 1
)

type exportEnvelope struct {
	Version    int                `json:"version"`
	Type       string             `json:"type"`
	Highlights []*model.Highlight `json:"highlights"`
}

// ExportHighlights renders highlights in the requested format.
func ExportHighlights(format ExportFormat, bookID string, highlights []*model.Highlight) (string, error) {
	switch format {
	case FormatJSON:
		return exportJSON(highlights)
	case FormatText:
		return exportText(highlights), nil
	case FormatMarkdown:
		return exportMarkdown(bookID, highlights)
	}
	return "", fmt.Errorf("unknown export format: %s", format)
}

// WriteExport renders highlights and writes them to a file.
func (s *Storage) WriteExport(path string, format ExportFormat, bookID string, highlights []*model.Highlight) error {
	content, err := ExportHighlights(format, bookID, highlights)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func exportJSON(highlights []*model.Highlight) (string, error) {
	data, err := json.MarshalIndent(exportEnvelope{
		Version:    exportedVersion,
		Type:       exportedType,
		Highlights: highlights,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export: %w", err)
	}
	return string(data), nil
}

func exportText(highlights []*model.Highlight) string {
	var lines []string
	for _, h := range highlights {
		lines = append(lines, h.Text)
		if h.HasNotes() {
			lines = append(lines, "", h.Notes)
		}
		lines = append(lines, "", "———", "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func exportMarkdown(bookID string, highlights []*model.Highlight) (string, error) {
	header, err := createFrontmatter(map[string]interface{}{
		"book":     bookID,
		"count":    len(highlights),
		"exported": time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(header)
	for _, h := range highlights {
		sb.WriteString("\n")
		for _, line := range strings.Split(h.Text, "\n") {
			sb.WriteString("> ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if h.HasNotes() {
			sb.WriteString("\n")
			sb.WriteString(h.Notes)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// createFrontmatter renders a yaml frontmatter block for markdown output.
func createFrontmatter(data map[string]interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(yamlBytes)
	sb.WriteString("---\n")
	return sb.String(), nil
}
