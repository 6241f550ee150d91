package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders the engine's markdown
// responses (field summaries, confirmation recaps, receipts) for the
// terminal using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
		glamour.WithWordWrap(96),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
