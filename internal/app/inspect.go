package app

import (
	"context"

	"go.trai.ch/codereq/internal/core/codec"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/engine/script"
	"go.trai.ch/zerr"
)

// Text formats accepted by Convert.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ConvertOptions configuration for the Convert method.
type ConvertOptions struct {
	// To is the target format, FormatJSON or FormatYAML.
	To string
	// Out is the file the record is written to. Empty means stdout.
	Out string
}

// Show renders the request named by source as a markdown transcript.
func (a *App) Show(ctx context.Context, source string) error {
	return a.traced(ctx, "show", source, func(_ context.Context, _ ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}

		doc := script.FromSettings(ws.config.Script).Transcript(req)
		rendered, err := a.markdown.Render(doc)
		if err != nil {
			return err
		}
		return a.writeOutput("", []byte(rendered))
	})
}

// Convert re-encodes the request named by source as a JSON or YAML record.
func (a *App) Convert(ctx context.Context, source string, opts ConvertOptions) error {
	return a.traced(ctx, "convert", source, func(_ context.Context, span ports.Span) error {
		span.SetAttribute("format", opts.To)

		var encode func(codec.Entity) ([]byte, error)
		switch opts.To {
		case FormatJSON:
			encode = a.codec.ToJSON
		case FormatYAML:
			encode = a.codec.ToYAML
		default:
			return zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "cannot convert request"), "format", opts.To)
		}

		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}

		data, err := encode(req)
		if err != nil {
			return err
		}
		return a.writeOutput(opts.Out, data)
	})
}

// Save records the request named by source in the request store and prints its id.
func (a *App) Save(ctx context.Context, source string) (string, error) {
	var id string
	err := a.traced(ctx, "save", source, func(_ context.Context, span ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}

		id, err = a.store.Put(ws.root, req)
		if err != nil {
			return err
		}
		span.SetAttribute("id", id)
		return a.printf("%s\n", id)
	})
	return id, err
}

// Deps prints the deduplicated dependencies of the request named by source.
func (a *App) Deps(ctx context.Context, source string) error {
	return a.traced(ctx, "deps", source, func(_ context.Context, span ports.Span) error {
		ws, err := a.workspace()
		if err != nil {
			return err
		}
		req, err := a.loadRequest(ws, source)
		if err != nil {
			return err
		}

		deps := req.Dependencies()
		span.SetAttribute("dependencies", len(deps))
		for _, dep := range deps {
			line := dep.String()
			if dep.URL != "" {
				line += " " + dep.URL
			}
			if err := a.printf("%s\n", line); err != nil {
				return err
			}
		}
		return nil
	})
}
