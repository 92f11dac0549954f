// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/codereq/internal/adapters/cas"
	_ "go.trai.ch/codereq/internal/adapters/config"
	_ "go.trai.ch/codereq/internal/adapters/flake"
	_ "go.trai.ch/codereq/internal/adapters/git"
	_ "go.trai.ch/codereq/internal/adapters/logger"
	_ "go.trai.ch/codereq/internal/adapters/markdown"
	_ "go.trai.ch/codereq/internal/adapters/nix"
	_ "go.trai.ch/codereq/internal/adapters/telemetry"
	_ "go.trai.ch/codereq/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/codereq/internal/app"
)
