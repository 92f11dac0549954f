package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/codereq/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/flake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/markdown"  //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/nix"       //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/codereq/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			flake.NodeID,
			git.NodeID,
			nix.NodeID,
			markdown.NodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RequestStore](ctx)
			if err != nil {
				return nil, err
			}

			flakes, err := graft.Dep[ports.FlakeWriter](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.MarkdownRenderer](ctx)
			if err != nil {
				return nil, err
			}

			newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, store, flakes, stager, runner, renderer, newWatcher, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    app,
				Logger: log,
			}, nil
		},
	})
}
