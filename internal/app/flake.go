package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FlakeOptions configuration for the Flake method.
type FlakeOptions struct {
	// Dir is the directory the flake is written to. Empty means the working directory.
	Dir string
	// NoStage skips staging the generated files in git.
	NoStage bool
	// Run runs the flake with nix once it is written.
	Run bool
}

// Flake packages the request named by source as a Nix flake, stages the
// generated files and records the request in the store. With Run set the
// flake is executed afterwards; only execution requests can run.
func (a *App) Flake(ctx context.Context, source string, opts FlakeOptions) error {
	return a.traced(ctx, "flake", source, func(ctx context.Context, span ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}

		if _, ok := req.(*domain.ExecutionRequest); opts.Run && !ok {
			return zerr.With(zerr.Wrap(domain.ErrNotImplemented, "only execution requests can run"), "kind", req.Kind())
		}

		dir := a.resolve(opts.Dir)
		spec := ws.config.Flake.WithInputs(req.Dependencies())

		paths, err := a.flakes.Write(ctx, dir, spec, ws.config.Script, req)
		if err != nil {
			return err
		}
		span.SetAttribute("files", paths)
		a.logger.Info(fmt.Sprintf("wrote %s to %s", strings.Join(paths, ", "), dir))

		var id string
		g, gctx := errgroup.WithContext(ctx)
		if !opts.NoStage {
			g.Go(func() error {
				return a.stager.Add(gctx, dir, paths...)
			})
		}
		g.Go(func() error {
			var putErr error
			id, putErr = a.store.Put(ws.root, req)
			return putErr
		})
		if err := g.Wait(); err != nil {
			return err
		}
		a.logger.Info("stored request " + id)

		if !opts.Run {
			return nil
		}
		return a.runner.Run(ctx, dir, a.stdout, a.stderr)
	})
}
