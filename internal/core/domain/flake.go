package domain

import "slices"

// Inputs every generated flake declares on its own; they are not package inputs.
const (
	NixpkgsInputName    = "nixos"
	FlakeUtilsInputName = "flake-utils"
)

// FlakeSpec carries the metadata of the Nix flake wrapping a code request.
type FlakeSpec struct {
	// Name is the flake name (e.g., "code-execution").
	Name string

	// Version is the flake version.
	Version string

	// URL is the source URL of the flake.
	URL string

	// Inputs are the resolved packages the flake depends on.
	Inputs []Package

	// Description is a one-line summary of the flake.
	Description string

	// Homepage is the project's homepage.
	Homepage string

	// License is the nixpkgs license id (e.g., "gpl3").
	License string

	// Maintainers are listed as "name <email>".
	Maintainers []string

	// CopyrightYear is the first year of copyright.
	CopyrightYear int

	// CopyrightHolder is the copyright owner.
	CopyrightHolder string
}

// PackageInputs returns the inputs besides nixpkgs and flake-utils.
func (f FlakeSpec) PackageInputs() []Package {
	return slices.DeleteFunc(slices.Clone(f.Inputs), func(p Package) bool {
		return p.Name == NixpkgsInputName || p.Name == FlakeUtilsInputName
	})
}

// WithInputs returns a copy of the spec declaring one input per dependency.
func (f FlakeSpec) WithInputs(deps []Dependency) FlakeSpec {
	f.Maintainers = slices.Clone(f.Maintainers)
	f.Inputs = PackagesOf(deps)
	return f
}

// ScriptSettings tunes the generated script.
type ScriptSettings struct {
	// Guard is the name of the boolean guard variable.
	Guard string

	// Language is the info string of the fenced blocks echoing code cells.
	Language string
}

// Config is the resolved configuration of codereq.
type Config struct {
	// Flake holds the flake metadata defaults. Inputs are filled per request.
	Flake FlakeSpec

	// Script holds script generation settings.
	Script ScriptSettings
}

// Default flake metadata used when no config file overrides it.
const (
	DefaultFlakeName        = "code-execution"
	DefaultFlakeVersion     = "0.0.0"
	DefaultFlakeDescription = "Executes a code request"
	DefaultFlakeLicense     = "gpl3"
	DefaultGuard            = "_code_request_ok"
	DefaultLanguage         = "python"
)

// DefaultConfig returns the configuration used when no codereq.yaml is found.
func DefaultConfig() Config {
	return Config{
		Flake: FlakeSpec{
			Name:        DefaultFlakeName,
			Version:     DefaultFlakeVersion,
			Description: DefaultFlakeDescription,
			License:     DefaultFlakeLicense,
			Maintainers: []string{},
		},
		Script: ScriptSettings{
			Guard:    DefaultGuard,
			Language: DefaultLanguage,
		},
	}
}
