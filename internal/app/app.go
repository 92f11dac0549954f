// Package app implements the application layer for codereq.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/codereq/internal/adapters/telemetry"
	"go.trai.ch/codereq/internal/core/codec"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.RequestStore
	flakes       ports.FlakeWriter
	stager       ports.Stager
	runner       ports.Runner
	markdown     ports.MarkdownRenderer
	newWatcher   ports.WatcherFactory
	tracer       ports.Tracer
	codec        *codec.Codec
	workDir      string
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.RequestStore,
	flakes ports.FlakeWriter,
	stager ports.Stager,
	runner ports.Runner,
	markdown ports.MarkdownRenderer,
	newWatcher ports.WatcherFactory,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		flakes:       flakes,
		stager:       stager,
		runner:       runner,
		markdown:     markdown,
		newWatcher:   newWatcher,
		tracer:       tracer,
		codec:        codec.Default(),
		workDir:      ".",
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithWorkDir sets the directory relative sources and outputs are resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithOutput redirects command output and the output of runs.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// EnableTracing reports every finished operation span through the logger.
// The returned function flushes and shuts the tracer provider down.
func (a *App) EnableTracing() func(context.Context) error {
	tp := telemetry.NewProvider(a.logger)
	a.tracer = telemetry.NewTracerFromProvider(tp, telemetry.InstrumentationName)
	return tp.Shutdown
}

// traced runs fn inside a span named after the operation and records its error.
func (a *App) traced(ctx context.Context, name, source string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if source != "" {
		span.SetAttribute("source", source)
	}

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// workspace is the resolved environment of one operation.
type workspace struct {
	config domain.Config
	root   string
}

func (a *App) workspace() (workspace, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return workspace{}, zerr.Wrap(err, "failed to load configuration")
	}
	root, err := a.configLoader.DiscoverRoot(a.workDir)
	if err != nil {
		return workspace{}, zerr.Wrap(err, "failed to discover project root")
	}
	return workspace{config: cfg, root: root}, nil
}

// loadRequest reads source as a request file, falling back to the request store
// when no such file exists.
func (a *App) loadRequest(ws workspace, source string) (domain.Request, error) {
	req, err := a.readRequestFile(a.resolve(source))
	if !errors.Is(err, fs.ErrNotExist) {
		return req, err
	}

	req, err = a.store.Get(ws.root, source)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRequestNotFound, "no request file or stored request"), "source", source)
	}
	return req, nil
}

// readRequestFile decodes the request file at path. A missing file yields an
// error matching fs.ErrNotExist.
func (a *App) readRequestFile(path string) (domain.Request, error) {
	//nolint:gosec // Reading the user-supplied request is the purpose of this function
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequestReadFailed.Error()), "path", path)
	}
	return a.decodeRequest(path, data)
}

func (a *App) decodeRequest(path string, data []byte) (domain.Request, error) {
	var (
		entity codec.Entity
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entity, err = a.codec.FromJSON(data)
	case ".yaml", ".yml":
		entity, err = a.codec.FromYAML(data)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "unknown request file extension"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	req, ok := entity.(domain.Request)
	if !ok {
		err := zerr.Wrap(domain.ErrUnexpectedVariant, "expected a code request")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "kind", entity.Kind())
	}
	return req, nil
}

func (a *App) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.workDir, path)
}

// writeOutput writes data to the file at out, or to stdout when out is empty.
func (a *App) writeOutput(out string, data []byte) error {
	if out == "" {
		if _, err := a.stdout.Write(data); err != nil {
			return zerr.Wrap(err, domain.ErrRequestWriteFailed.Error())
		}
		return nil
	}

	path := a.resolve(out)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRequestWriteFailed.Error()), "path", path)
	}
	return nil
}

func (a *App) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(a.stdout, format, args...); err != nil {
		return zerr.Wrap(err, domain.ErrRequestWriteFailed.Error())
	}
	return nil
}
