package ports

import (
	"context"

	"go.trai.ch/codereq/internal/core/domain"
)

// FlakeWriter persists a request as a Nix flake.
//
//go:generate mockgen -source=flake.go -destination=mocks/mock_flake.go -package=mocks
type FlakeWriter interface {
	// Write renders the flake files for req into dir and returns the paths it wrote,
	// relative to dir. Only execution requests carry the generated script, built with
	// settings; any other request gets the flake metadata files only.
	Write(ctx context.Context, dir string, spec domain.FlakeSpec, settings domain.ScriptSettings, req domain.Request) ([]string, error)
}
