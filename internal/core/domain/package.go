package domain

// Package describes an external package as seen by a packaging backend.
// A resolved Package becomes one flake input per dependency.
type Package struct {
	// Name is the canonical package name (e.g., "numpy").
	Name string

	// Version is the resolved version string (e.g., "1.26.4").
	Version string

	// URL is the flake reference or source URL of the package.
	URL string
}

// Dependency derives the dependency record of the package, copying its fields verbatim.
func (p Package) Dependency() Dependency {
	return NewDependency(p.Name, p.Version, p.URL)
}

// PackageOf returns the package descriptor carrying the dependency's identity.
func PackageOf(d Dependency) Package {
	return Package{Name: d.Name, Version: d.Version, URL: d.URL}
}

// PackagesOf converts dependencies into packages, preserving order.
func PackagesOf(deps []Dependency) []Package {
	pkgs := make([]Package, len(deps))
	for i, d := range deps {
		pkgs[i] = PackageOf(d)
	}
	return pkgs
}
