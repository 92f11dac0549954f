package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/codereq/internal/core/ports"
)

// NodeID is the unique identifier for the request store Graft node.
const NodeID graft.ID = "adapter.request_store"

func init() {
	graft.Register(graft.Node[ports.RequestStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequestStore, error) {
			return NewStore(), nil
		},
	})
}
