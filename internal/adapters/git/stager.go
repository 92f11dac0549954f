// Package git stages generated files with the git CLI.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager implements ports.Stager by running git.
type Stager struct {
	binary string
}

// NewStager creates a Stager running the git found in PATH.
func NewStager() *Stager {
	return &Stager{binary: "git"}
}

// Add stages paths in the repository containing dir.
func (s *Stager) Add(ctx context.Context, dir string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	args := append([]string{"-C", dir, "add", "--"}, paths...)
	//nolint:gosec // paths are generated file names, separated from flags by "--"
	cmd := exec.CommandContext(ctx, s.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stageErr := zerr.Wrap(err, domain.ErrGitStageFailed.Error())
		stageErr = zerr.With(stageErr, "dir", dir)
		stageErr = zerr.With(stageErr, "paths", strings.Join(paths, ", "))
		return zerr.With(stageErr, "stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
