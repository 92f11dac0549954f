package script

import (
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
)

// Transcript renders req as a markdown document: markdown cells verbatim,
// code cells fenced with the generator's language. Cells are separated by a blank line.
func (g *Generator) Transcript(req domain.Request) string {
	parts := make([]string, 0, len(req.Cells()))
	for _, cell := range req.Cells() {
		contents := strings.TrimRight(cell.Contents(), "\n")
		switch cell.(type) {
		case *domain.CodeCell:
			parts = append(parts, fence+g.language+"\n"+contents+"\n"+fence)
		default:
			parts = append(parts, contents)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}
