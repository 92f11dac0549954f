// Package nix runs generated flakes with the Nix CLI.
package nix

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/creack/pty"
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
)

// stderrTail bounds how much of nix's stderr is attached to a run failure.
const stderrTail = 4096

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using `nix run`.
type Runner struct {
	binary string
	usePTY bool
}

// NewRunner creates a Runner using the nix found in PATH.
func NewRunner() *Runner {
	return &Runner{binary: "nix"}
}

// WithPTY runs nix attached to a pseudo terminal so progress bars and colors
// survive. The terminal merges both streams into stdout.
func (r *Runner) WithPTY(enabled bool) *Runner {
	r.usePTY = enabled
	return r
}

// Run builds and runs the default app of the flake in dir, streaming its output.
func (r *Runner) Run(ctx context.Context, dir string, stdout, stderr io.Writer) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRunFailed.Error()), "dir", dir)
	}
	flakeRef := "path:" + abs

	//nolint:gosec // flakeRef is an absolute directory path
	cmd := exec.CommandContext(ctx, r.binary, "run",
		"--extra-experimental-features", "nix-command flakes",
		flakeRef)
	cmd.Dir = abs

	tail := &tailBuffer{limit: stderrTail}
	if r.usePTY {
		err = runPTY(cmd, io.MultiWriter(stdout, tail))
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = io.MultiWriter(stderr, tail)
		err = cmd.Run()
	}
	if err != nil {
		return runError(err, flakeRef, tail.String())
	}
	return nil
}

// runPTY starts cmd on a pseudo terminal and copies everything it prints to out.
func runPTY(cmd *exec.Cmd, out io.Writer) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master fails with EIO once the child side is closed.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	return err
}

func runError(err error, flakeRef, output string) error {
	runErr := zerr.Wrap(err, domain.ErrRunFailed.Error())
	runErr = zerr.With(runErr, "flake", flakeRef)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		runErr = zerr.With(runErr, "exit_code", exitErr.ExitCode())
	}

	if msg := strings.TrimSpace(output); msg != "" {
		runErr = zerr.With(runErr, "stderr", msg)
	}
	return runErr
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	if len(p) >= t.limit {
		t.buf = append(t.buf[:0], p[len(p)-t.limit:]...)
		return len(p), nil
	}
	if over := len(t.buf) + len(p) - t.limit; over > 0 {
		n := copy(t.buf, t.buf[over:])
		t.buf = t.buf[:n]
	}
	t.buf = append(t.buf, p...)
	return len(p), nil
}

// String returns the kept bytes, starting at the first complete rune.
func (t *tailBuffer) String() string {
	b := t.buf
	for len(b) > 0 && !utf8.RuneStart(b[0]) {
		b = b[1:]
	}
	return string(b)
}
