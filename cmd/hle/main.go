package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/highlight-editor/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "hle",
	Short: "Terminal editor for e-book highlight styles and notes",
	Long: `Highlight Editor is a terminal tool for annotating e-book highlights.

It keeps each book's highlights as plain files in an annotations
directory, and lets you browse them, edit their notes, and pick or
create highlight styles: builtin color fills, line decorations, or your
own custom styles, which are remembered across books.

Features:
  - Browse a book's highlights with notes preview and search
  - Edit notes and pick a style for each highlight
  - Create custom color or decoration styles
  - Export highlights as JSON, plain text or markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		book, _ := cmd.Flags().GetString("book")
		dark, _ := cmd.Flags().GetBool("dark")

		model := tui.New(dir, book, dark)
		p := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("dir", "", "Annotations directory (default: ~/.highlight-editor)")
	rootCmd.Flags().StringP("book", "b", "default", "Book id to annotate")
	rootCmd.Flags().Bool("dark", false, "Use the dark theme variant")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
