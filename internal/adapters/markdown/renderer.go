// Package markdown renders markdown transcripts for the terminal with glamour.
package markdown

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/ui/output"
	"go.trai.ch/zerr"
)

// DefaultWordWrap is the column transcripts are wrapped at.
const DefaultWordWrap = 80

var _ ports.MarkdownRenderer = (*Renderer)(nil)

// Renderer implements ports.MarkdownRenderer.
type Renderer struct {
	mu   sync.Mutex
	term *glamour.TermRenderer
}

// NewRenderer creates a Renderer wrapping at width columns. NO_COLOR selects
// the plain notty style; otherwise the style follows the terminal background.
func NewRenderer(width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWordWrap
	}

	style := glamour.WithAutoStyle()
	if output.NoColor() {
		style = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	term, err := glamour.NewTermRenderer(
		style,
		glamour.WithColorProfile(output.ColorProfile()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create markdown renderer")
	}

	return &Renderer{term: term}, nil
}

// Render renders doc for display.
func (r *Renderer) Render(doc string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out, err := r.term.Render(doc)
	if err != nil {
		return "", zerr.Wrap(err, "failed to render markdown")
	}
	return out, nil
}
