package flake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/codereq/internal/core/ports"
)

// NodeID is the unique identifier for the flake writer Graft node.
const NodeID graft.ID = "adapter.flake"

func init() {
	graft.Register(graft.Node[ports.FlakeWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FlakeWriter, error) {
			return NewWriter(), nil
		},
	})
}
