package markdown

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/ui/output"
)

// NodeID is the unique identifier for the markdown renderer Graft node.
const NodeID graft.ID = "adapter.markdown"

func init() {
	graft.Register(graft.Node[ports.MarkdownRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkdownRenderer, error) {
			return NewRenderer(output.Width(os.Stdout, DefaultWordWrap))
		},
	})
}
