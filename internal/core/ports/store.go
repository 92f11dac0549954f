package ports

import "go.trai.ch/codereq/internal/core/domain"

// RequestStore defines the interface for a content-addressed request store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RequestStore interface {
	// Put stores the request under root and returns its content id.
	// Storing the same request twice yields the same id.
	Put(root string, req domain.Request) (string, error)

	// Get retrieves the request stored under id.
	// Returns nil, nil if not found.
	Get(root, id string) (domain.Request, error)
}
