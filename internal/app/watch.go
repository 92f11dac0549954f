package app

import (
	"context"
	"errors"
	"io/fs"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/engine/script"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Out is the file the script is written to. Empty means stdout.
	Out string
	// Guard overrides the configured guard variable name.
	Guard string
	// Language overrides the configured fence language.
	Language string
}

// Watch renders the script for the request file at source, then renders it
// again every time the file changes until ctx is canceled. Decode failures
// while watching are logged and the previous script is kept.
func (a *App) Watch(ctx context.Context, source string, opts WatchOptions) error {
	return a.traced(ctx, "watch", source, func(ctx context.Context, span ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		gen := script.FromSettings(ws.config.Script).
			WithGuard(opts.Guard).
			WithLanguage(opts.Language)

		path := a.resolve(source)
		regenerate := func() error {
			req, err := a.readRequestFile(path)
			if err != nil {
				return err
			}
			return a.writeOutput(opts.Out, []byte(gen.Generate(req)))
		}

		if err := regenerate(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return zerr.With(zerr.Wrap(domain.ErrRequestNotFound, "cannot watch request"), "path", path)
			}
			return err
		}

		w, err := a.newWatcher()
		if err != nil {
			return err
		}
		defer func() {
			_ = w.Stop()
		}()

		if err := w.Start(ctx, path); err != nil {
			return err
		}
		a.logger.Info("watching " + path)

		regenerated := 0
		for event := range w.Events() {
			if event.Operation == ports.OpRemove {
				a.logger.Warn("request file removed, waiting for it to reappear: " + event.Path)
				continue
			}
			if err := regenerate(); err != nil {
				a.logger.Error(err)
				continue
			}
			regenerated++
			a.logger.Info("regenerated script from " + event.Path)
		}
		span.SetAttribute("regenerated", regenerated)

		return nil
	})
}
