// Package flake packages code requests as Nix flakes.
package flake

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/codereq/internal/engine/script"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultPython is the interpreter constraint used when no dependency pins python.
const defaultPython = "^3.10"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("flake").Funcs(template.FuncMap{
	"comment":   nixComment,
	"nixString": nixString,
	"nixAttr":   nixAttr,
	"toml":      tomlString,
	"tomlKey":   tomlKey,
}).ParseFS(templateFS, "templates/*.tmpl"))

var _ ports.FlakeWriter = (*Writer)(nil)

// Writer renders flake files into a directory.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

type flakeData struct {
	Spec          domain.FlakeSpec
	Inputs        []domain.Package
	Python        []string
	Dependencies  []domain.Package
	PythonVersion string
	Execute       bool
	ScriptFile    string
}

// Write renders flake.nix and the pyproject template for spec into dir. For an
// execution request it also writes the generated script. The returned paths are
// relative to dir and always in the same order.
func (w *Writer) Write(
	ctx context.Context,
	dir string,
	spec domain.FlakeSpec,
	settings domain.ScriptSettings,
	req domain.Request,
) ([]string, error) {
	_, execute := req.(*domain.ExecutionRequest)
	data, err := newFlakeData(spec, execute)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "dir", dir)
	}

	files := []string{domain.FlakeFileName, domain.PyprojectTemplateFileName}
	if execute {
		files = append(files, domain.ScriptFileName)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, name)
			if name == domain.ScriptFileName {
				return WriteScript(path, script.FromSettings(settings), req)
			}
			return renderFile(path, name+".tmpl", data)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// WriteScript writes the fail-fast script of req to path. Only execution
// requests carry a script; a plain code request yields ErrNotImplemented.
func WriteScript(path string, gen *script.Generator, req domain.Request) error {
	if _, ok := req.(*domain.ExecutionRequest); !ok {
		return zerr.With(zerr.Wrap(domain.ErrNotImplemented, "cannot write script"), "kind", req.Kind())
	}

	var buf bytes.Buffer
	if err := gen.Write(&buf, req); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "file", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "file", path)
	}
	return nil
}

func renderFile(path, tmpl string, data flakeData) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "template", tmpl)
	}
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlakeWriteFailed.Error()), "file", path)
	}
	return nil
}

// newFlakeData lays out the template data of spec. Flake inputs and pyproject
// keys are named after packages, so two versions of one package are a conflict.
func newFlakeData(spec domain.FlakeSpec, execute bool) (flakeData, error) {
	data := flakeData{
		Spec:          spec,
		PythonVersion: defaultPython,
		Execute:       execute,
		ScriptFile:    domain.ScriptFileName,
	}

	seen := make(map[string]domain.Package)
	for _, pkg := range spec.PackageInputs() {
		if prev, ok := seen[pkg.Name]; ok {
			err := zerr.Wrap(domain.ErrDependencyConflict, domain.ErrFlakeWriteFailed.Error())
			err = zerr.With(err, "dependency", pkg.Name)
			return flakeData{}, zerr.With(err, "versions", prev.Version+", "+pkg.Version)
		}
		seen[pkg.Name] = pkg

		if pkg.Name == "python" {
			if pkg.Version != "" {
				data.PythonVersion = pkg.Version
			}
			continue
		}
		data.Dependencies = append(data.Dependencies, pkg)
		if pkg.URL == "" {
			data.Python = append(data.Python, "ps."+nixAttr(pkg.Name))
			continue
		}
		data.Inputs = append(data.Inputs, pkg)
		data.Python = append(data.Python, "inputs."+nixAttr(pkg.Name)+".packages.${system}.default")
	}

	return data, nil
}

var (
	nixIdent  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_'-]*$`)
	tomlIdent = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

var nixEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `${`, `\${`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

var commentBreaks = strings.NewReplacer("\r\n", "\n# ", "\r", "\n# ", "\n", "\n# ")

// nixComment keeps s inside a line comment by starting every line it spans with "# ".
func nixComment(s string) string {
	return commentBreaks.Replace(s)
}

func nixString(s string) string {
	return `"` + nixEscaper.Replace(s) + `"`
}

func nixAttr(s string) string {
	if nixIdent.MatchString(s) {
		return s
	}
	return nixString(s)
}

func tomlString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func tomlKey(s string) string {
	if tomlIdent.MatchString(s) {
		return s
	}
	return tomlString(s)
}
