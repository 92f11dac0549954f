package domain

import "path/filepath"

const (
	// CodeReqDirName is the name of the internal workspace directory.
	CodeReqDirName = ".codereq"

	// StoreDirName is the name of the request store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "codereq.yaml"

	// ScriptFileName is the name of the generated script.
	ScriptFileName = "code_request.py"

	// FlakeFileName is the name of the generated flake descriptor.
	FlakeFileName = "flake.nix"

	// PyprojectTemplateFileName is the name of the generated pyproject template.
	PyprojectTemplateFileName = "pyprojecttoml.template"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the request store.
// It joins .codereq and store.
func DefaultStorePath() string {
	return filepath.Join(CodeReqDirName, StoreDirName)
}
