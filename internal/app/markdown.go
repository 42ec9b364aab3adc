package app

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderNoteContent renders note content as markdown for the viewing pane.
// Any renderer failure falls back to the raw text; display must never block
// on formatting.
func renderNoteContent(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
