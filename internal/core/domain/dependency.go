package domain

const (
	// KindDependency is the kind tag of Dependency records.
	KindDependency = "Dependency"

	// KindPythonedaDependency is the kind tag of dependencies on PythonEDA packages.
	KindPythonedaDependency = "PythonedaDependency"
)

// Dependency identifies a named, versioned external package a code cell needs.
// Two dependencies are the same dependency when Name and Version match;
// URL is informational only.
type Dependency struct {
	// Name is the package name (e.g., "numpy").
	Name string

	// Version is the package version (e.g., "1.26.4").
	Version string

	// URL points at the package source or homepage.
	URL string

	// Pythoneda labels a dependency on a PythonEDA package. It does not take
	// part in identity.
	Pythoneda bool
}

// DependencyKey is the identity of a Dependency.
type DependencyKey struct {
	Name    string
	Version string
}

// NewDependency creates a Dependency. Inputs are not validated.
func NewDependency(name, version, url string) Dependency {
	return Dependency{Name: name, Version: version, URL: url}
}

// NewPythonedaDependency creates a Dependency labeled as a PythonEDA package.
func NewPythonedaDependency(name, version, url string) Dependency {
	return Dependency{Name: name, Version: version, URL: url, Pythoneda: true}
}

// Kind returns the dependency's kind tag.
func (d Dependency) Kind() string {
	if d.Pythoneda {
		return KindPythonedaDependency
	}
	return KindDependency
}

// Key returns the identity of the dependency.
func (d Dependency) Key() DependencyKey {
	return DependencyKey{Name: d.Name, Version: d.Version}
}

// Equal reports whether both dependencies share name and version.
func (d Dependency) Equal(other Dependency) bool {
	return d.Key() == other.Key()
}

// String returns the "name@version" form used in logs and flake inputs.
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "@" + d.Version
}
