package domain

const (
	// KindCodeCell is the kind tag of CodeCell records.
	KindCodeCell = "CodeCell"

	// KindMarkdownCell is the kind tag of MarkdownCell records.
	KindMarkdownCell = "MarkdownCell"
)

// Cell is one fragment of a code request: either executable code or descriptive text.
// The set of variants is closed; CodeCell and MarkdownCell are the only implementations.
type Cell interface {
	// Kind returns the stable tag of the concrete variant.
	Kind() string

	// Contents returns the stored text, never transformed.
	Contents() string

	// Dependencies returns the packages the cell needs. It is empty unless the cell is code.
	Dependencies() []Dependency

	// Equal reports whether other is the same variant with the same contents.
	Equal(other Cell) bool

	isCell()
}

// CodeCell is one unit of executable code.
type CodeCell struct {
	contents     string
	dependencies []Dependency
}

// NewCodeCell creates a code cell. The dependency list is copied.
func NewCodeCell(contents string, dependencies []Dependency) *CodeCell {
	deps := make([]Dependency, len(dependencies))
	copy(deps, dependencies)
	return &CodeCell{contents: contents, dependencies: deps}
}

// Kind returns KindCodeCell.
func (c *CodeCell) Kind() string { return KindCodeCell }

// Contents returns the code.
func (c *CodeCell) Contents() string { return c.contents }

// Dependencies returns a copy of the cell's dependencies.
func (c *CodeCell) Dependencies() []Dependency {
	deps := make([]Dependency, len(c.dependencies))
	copy(deps, c.dependencies)
	return deps
}

// Equal reports whether other is a code cell with the same contents.
func (c *CodeCell) Equal(other Cell) bool {
	return sameCell(c, other)
}

func (c *CodeCell) isCell() {}

// MarkdownCell is one unit of descriptive text. It is never executed.
type MarkdownCell struct {
	contents string
}

// NewMarkdownCell creates a markdown cell.
func NewMarkdownCell(contents string) *MarkdownCell {
	return &MarkdownCell{contents: contents}
}

// Kind returns KindMarkdownCell.
func (c *MarkdownCell) Kind() string { return KindMarkdownCell }

// Contents returns the text.
func (c *MarkdownCell) Contents() string { return c.contents }

// Dependencies always returns an empty list.
func (c *MarkdownCell) Dependencies() []Dependency { return []Dependency{} }

// Equal reports whether other is a markdown cell with the same contents.
func (c *MarkdownCell) Equal(other Cell) bool {
	return sameCell(c, other)
}

func (c *MarkdownCell) isCell() {}

func sameCell(a, b Cell) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Contents() == b.Contents()
}
