package flake_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/codereq/internal/adapters/flake"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/engine/script"
)

func fullSpec() domain.FlakeSpec {
	spec := domain.DefaultConfig().Flake
	spec.Homepage = "https://example.org"
	spec.Maintainers = []string{"Ada <ada@example.org>"}
	spec.CopyrightYear = 2024
	spec.CopyrightHolder = "Ada"
	return spec.WithInputs([]domain.Dependency{
		domain.NewDependency("numpy", "1.26.4", ""),
		domain.NewDependency("mylib", "1.0", "github:acme/mylib"),
		domain.NewDependency("python", "3.12", ""),
	})
}

func executionRequest() *domain.ExecutionRequest {
	return domain.NewExecutionRequest(domain.NewCodeRequest(
		domain.NewMarkdownCell("Compute."),
		domain.NewCodeCell("import numpy\nprint(numpy.pi)", nil),
	))
}

func TestWriter_ExecutionRequest(t *testing.T) {
	dir := t.TempDir()
	settings := domain.DefaultConfig().Script
	req := executionRequest()

	paths, err := flake.NewWriter().Write(t.Context(), dir, fullSpec(), settings, req)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FlakeFileName, domain.PyprojectTemplateFileName, domain.ScriptFileName}, paths)

	g := goldie.New(t)

	flakeNix, err := os.ReadFile(filepath.Join(dir, domain.FlakeFileName))
	require.NoError(t, err)
	g.Assert(t, "execution_flake", flakeNix)

	pyproject, err := os.ReadFile(filepath.Join(dir, domain.PyprojectTemplateFileName))
	require.NoError(t, err)
	g.Assert(t, "execution_pyproject", pyproject)

	code, err := os.ReadFile(filepath.Join(dir, domain.ScriptFileName))
	require.NoError(t, err)
	assert.Equal(t, script.FromSettings(settings).Generate(req), string(code))
}

func TestWriter_CodeRequestHasNoScript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	spec := domain.DefaultConfig().Flake

	paths, err := flake.NewWriter().Write(t.Context(), dir, spec, domain.ScriptSettings{}, domain.NewCodeRequest(
		domain.NewCodeCell("x = 1", nil),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FlakeFileName, domain.PyprojectTemplateFileName}, paths)

	assert.NoFileExists(t, filepath.Join(dir, domain.ScriptFileName))

	flakeNix, err := os.ReadFile(filepath.Join(dir, domain.FlakeFileName))
	require.NoError(t, err)
	assert.Contains(t, string(flakeNix), "packages.default = python;\n")
	assert.NotContains(t, string(flakeNix), "writeShellApplication")
	assert.NotContains(t, string(flakeNix), "# Copyright")

	pyproject, err := os.ReadFile(filepath.Join(dir, domain.PyprojectTemplateFileName))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), "authors = []\n")
	assert.Contains(t, string(pyproject), "python = \"^3.10\"\n")
}

func TestWriter_EscapesMetadata(t *testing.T) {
	dir := t.TempDir()
	spec := domain.DefaultConfig().Flake
	spec.Description = `say "hi" to ${USER}`
	spec = spec.WithInputs([]domain.Dependency{
		domain.NewDependency("ruamel.yaml", "", ""),
	})

	_, err := flake.NewWriter().Write(t.Context(), dir, spec, domain.ScriptSettings{}, domain.NewCodeRequest())
	require.NoError(t, err)

	flakeNix, err := os.ReadFile(filepath.Join(dir, domain.FlakeFileName))
	require.NoError(t, err)
	assert.Contains(t, string(flakeNix), `description = "say \"hi\" to \${USER}";`)
	assert.Contains(t, string(flakeNix), `ps."ruamel.yaml"`)

	pyproject, err := os.ReadFile(filepath.Join(dir, domain.PyprojectTemplateFileName))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `description = "say \"hi\" to ${USER}"`)
	assert.Contains(t, string(pyproject), `"ruamel.yaml" = "*"`)
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := flake.NewWriter().Write(ctx, t.TempDir(), domain.DefaultConfig().Flake, domain.ScriptSettings{}, executionRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriter_DirectoryNotWritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	_, err := flake.NewWriter().Write(t.Context(), file, domain.DefaultConfig().Flake, domain.ScriptSettings{}, executionRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFlakeWriteFailed.Error())
}

func TestWriteScript_CodeRequestNotImplemented(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.ScriptFileName)

	err := flake.WriteScript(path, script.New(), domain.NewCodeRequest(domain.NewCodeCell("x = 1", nil)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotImplemented))
	assert.NoFileExists(t, path)
}

func TestWriter_MultilineMetadataStaysInComments(t *testing.T) {
	dir := t.TempDir()
	spec := domain.DefaultConfig().Flake
	spec.Description = "x\nlet in"
	spec.CopyrightHolder = "Ada\r\nLovelace"
	spec.Maintainers = []string{"Ada\rinherit"}

	_, err := flake.NewWriter().Write(t.Context(), dir, spec, domain.ScriptSettings{}, domain.NewCodeRequest())
	require.NoError(t, err)

	flakeNix, err := os.ReadFile(filepath.Join(dir, domain.FlakeFileName))
	require.NoError(t, err)

	header, _, found := strings.Cut(string(flakeNix), "\n{\n")
	require.True(t, found)
	for line := range strings.Lines(header) {
		assert.True(t, strings.HasPrefix(line, "#"), "header line outside a comment: %q", line)
	}
	assert.NotContains(t, header, "\r")
	assert.Contains(t, header, "# x\n# let in\n")
	assert.Contains(t, string(flakeNix), `description = "x\nlet in";`)
}

func TestWriter_ConflictingVersions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	spec := domain.DefaultConfig().Flake.WithInputs([]domain.Dependency{
		domain.NewDependency("numpy", "1.0", ""),
		domain.NewDependency("numpy", "2.0", ""),
	})

	_, err := flake.NewWriter().Write(t.Context(), dir, spec, domain.ScriptSettings{}, executionRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDependencyConflict))
	assert.ErrorContains(t, err, domain.ErrFlakeWriteFailed.Error())
	assert.NoDirExists(t, dir)
}
