package nix_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/codereq/internal/adapters/nix"
	"go.trai.ch/codereq/internal/core/domain"
)

const fakeNix = `#!/bin/sh
echo "args: $*"
echo "cwd: $(pwd)"
if [ -n "$FAKE_NIX_FAIL" ]; then
	echo "error: flake evaluation failed" >&2
	exit 3
fi
echo "warning: dirty tree" >&2
`

// installFakeNix puts a shell script named nix first in PATH.
func installFakeNix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake nix requires a POSIX shell")
	}

	bin := t.TempDir()
	//nolint:gosec // test binary must be executable
	require.NoError(t, os.WriteFile(filepath.Join(bin, "nix"), []byte(fakeNix), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunner_Run(t *testing.T) {
	installFakeNix(t)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := nix.NewRunner().Run(t.Context(), dir, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "args: run --extra-experimental-features nix-command flakes path:"+dir+"\n")
	assert.Contains(t, stdout.String(), filepath.Base(dir)+"\n")
	assert.Equal(t, "warning: dirty tree\n", stderr.String())
}

func TestRunner_RunFailure(t *testing.T) {
	installFakeNix(t)
	t.Setenv("FAKE_NIX_FAIL", "1")

	var stdout, stderr bytes.Buffer
	err := nix.NewRunner().Run(t.Context(), t.TempDir(), &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRunFailed.Error())
	assert.Contains(t, stderr.String(), "error: flake evaluation failed")
}

func TestRunner_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := nix.NewRunner().Run(t.Context(), t.TempDir(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRunFailed.Error())
}

func TestRunner_RunPTY(t *testing.T) {
	installFakeNix(t)
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo terminals unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	var stdout, stderr bytes.Buffer
	err = nix.NewRunner().WithPTY(true).Run(t.Context(), t.TempDir(), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "args: run --extra-experimental-features nix-command flakes path:")
	assert.Contains(t, stdout.String(), "warning: dirty tree")
	assert.Empty(t, stderr.String())
}

func TestRunner_RunPTYFailure(t *testing.T) {
	installFakeNix(t)
	t.Setenv("FAKE_NIX_FAIL", "1")
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo terminals unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	var stdout bytes.Buffer
	err = nix.NewRunner().WithPTY(true).Run(t.Context(), t.TempDir(), &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRunFailed.Error())
	assert.Contains(t, stdout.String(), "error: flake evaluation failed")
}
