package app

import (
	"context"

	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/engine/script"
)

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Out is the file the script is written to. Empty means stdout.
	Out string
	// Guard overrides the configured guard variable name.
	Guard string
	// Language overrides the configured fence language.
	Language string
}

// Render generates the fail-fast script for the request named by source.
func (a *App) Render(ctx context.Context, source string, opts RenderOptions) error {
	return a.traced(ctx, "render", source, func(_ context.Context, span ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}
		span.SetAttribute("cells", len(req.Cells()))

		gen := script.FromSettings(ws.config.Script).
			WithGuard(opts.Guard).
			WithLanguage(opts.Language)

		return a.writeOutput(opts.Out, []byte(gen.Generate(req)))
	})
}
