package nix

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/codereq/internal/core/ports"
	"golang.org/x/term"
)

// NodeID is the unique identifier for the nix runner Graft node.
const NodeID graft.ID = "adapter.nix"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Runner, error) {
			return NewRunner().WithPTY(term.IsTerminal(int(os.Stdout.Fd()))), nil
		},
	})
}
