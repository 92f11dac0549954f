package domain

import (
	"cmp"
	"slices"
)

const (
	// KindCodeRequest is the kind tag of CodeRequest records.
	KindCodeRequest = "CodeRequest"

	// KindExecutionRequest is the kind tag of ExecutionRequest records.
	KindExecutionRequest = "CodeExecutionRequest"
)

// Request is an ordered collection of cells representing one cohesive unit of work.
// CodeRequest and ExecutionRequest are its variants.
type Request interface {
	// Kind returns the stable tag of the concrete variant.
	Kind() string

	// Cells returns the cells in document order.
	Cells() []Cell

	// Dependencies returns the union of every cell's dependencies.
	Dependencies() []Dependency

	isRequest()
}

// CodeRequest holds cells in insertion order. The zero value is an empty request.
// Cells are never reordered or removed once appended.
type CodeRequest struct {
	cells []Cell
}

// NewCodeRequest creates a request holding the given cells in order.
func NewCodeRequest(cells ...Cell) *CodeRequest {
	r := &CodeRequest{cells: make([]Cell, 0, len(cells))}
	r.cells = append(r.cells, cells...)
	return r
}

// Kind returns KindCodeRequest.
func (r *CodeRequest) Kind() string { return KindCodeRequest }

// AppendMarkdown appends a markdown cell holding text.
func (r *CodeRequest) AppendMarkdown(text string) {
	r.cells = append(r.cells, NewMarkdownCell(text))
}

// AppendCode appends a code cell holding text and its dependencies.
func (r *CodeRequest) AppendCode(text string, dependencies []Dependency) {
	r.cells = append(r.cells, NewCodeCell(text, dependencies))
}

// Cells returns a copy of the cell list in document order.
func (r *CodeRequest) Cells() []Cell {
	if r == nil {
		return []Cell{}
	}
	cells := make([]Cell, len(r.cells))
	copy(cells, r.cells)
	return cells
}

// Dependencies returns the set of dependencies across all cells, deduplicated by
// name and version. The first URL seen for an identity wins. Callers must not rely
// on the order; it is sorted by name and version for stable output.
func (r *CodeRequest) Dependencies() []Dependency {
	if r == nil {
		return []Dependency{}
	}
	seen := make(map[DependencyKey]struct{})
	deps := make([]Dependency, 0)
	for _, cell := range r.cells {
		for _, dep := range cell.Dependencies() {
			if _, ok := seen[dep.Key()]; ok {
				continue
			}
			seen[dep.Key()] = struct{}{}
			deps = append(deps, dep)
		}
	}
	slices.SortFunc(deps, func(a, b Dependency) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Version, b.Version))
	})
	return deps
}

// Equal reports whether both requests hold equal cells in the same order.
// A nil request holds no cells.
func (r *CodeRequest) Equal(other *CodeRequest) bool {
	return slices.EqualFunc(r.Cells(), other.Cells(), func(a, b Cell) bool {
		return a.Equal(b)
	})
}

func (r *CodeRequest) isRequest() {}

// ExecutionRequest asks for the wrapped request to be executed.
type ExecutionRequest struct {
	request *CodeRequest
}

// NewExecutionRequest wraps req for execution.
func NewExecutionRequest(req *CodeRequest) *ExecutionRequest {
	return &ExecutionRequest{request: req}
}

// Kind returns KindExecutionRequest.
func (e *ExecutionRequest) Kind() string { return KindExecutionRequest }

// CodeRequest returns the wrapped request. It is nil for an empty placeholder.
func (e *ExecutionRequest) CodeRequest() *CodeRequest { return e.request }

// Cells returns the wrapped request's cells.
func (e *ExecutionRequest) Cells() []Cell { return e.request.Cells() }

// Dependencies returns the wrapped request's dependencies.
func (e *ExecutionRequest) Dependencies() []Dependency { return e.request.Dependencies() }

// Equal reports whether both wrap equal requests. A nil other is never equal.
func (e *ExecutionRequest) Equal(other *ExecutionRequest) bool {
	if other == nil {
		return false
	}
	if e.request == nil || other.request == nil {
		return e.request == nil && other.request == nil
	}
	return e.request.Equal(other.request)
}

func (e *ExecutionRequest) isRequest() {}

// HasCode reports whether any of the cells is a code cell.
func HasCode(req Request) bool {
	return slices.ContainsFunc(req.Cells(), func(c Cell) bool {
		_, ok := c.(*CodeCell)
		return ok
	})
}
