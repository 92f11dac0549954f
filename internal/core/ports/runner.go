package ports

import (
	"context"
	"io"
)

// Runner executes a generated flake with an external runtime.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the flake in dir and blocks until it exits.
	// A non-zero exit is reported as an error.
	Run(ctx context.Context, dir string, stdout, stderr io.Writer) error
}
