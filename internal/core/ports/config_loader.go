package ports

import "go.trai.ch/codereq/internal/core/domain"

// ConfigLoader defines the interface for loading the codereq configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to the nearest codereq.yaml and returns the resolved configuration.
	// It returns domain.DefaultConfig() when no file is found.
	Load(cwd string) (domain.Config, error)

	// DiscoverRoot walks up from cwd to the directory holding codereq.yaml.
	// It returns cwd when no file is found.
	DiscoverRoot(cwd string) (string, error)
}
