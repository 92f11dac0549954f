package ports

import "context"

// Stager adds generated files to version control.
//
//go:generate mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Add stages paths, relative to the repository at dir, in one operation.
	Add(ctx context.Context, dir string, paths ...string) error
}
