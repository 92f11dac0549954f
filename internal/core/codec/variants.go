package codec

import (
	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/zerr"
)

// Attribute names of the record format.
const (
	FieldName         = "name"
	FieldVersion      = "version"
	FieldURL          = "url"
	FieldContents     = "contents"
	FieldDependencies = "dependencies"
	FieldCells        = "cells"
	FieldCodeRequest  = "code_request"
)

func encodeDependency(_ *Codec, e Entity) (Record, error) {
	d, ok := e.(domain.Dependency)
	if !ok {
		return nil, unexpected(e)
	}
	return Record{
		FieldName:    d.Name,
		FieldVersion: d.Version,
		FieldURL:     d.URL,
	}, nil
}

func decodeDependency(_ *Codec, r Record) (Entity, error) {
	var d domain.Dependency
	var err error
	if d.Name, err = stringField(r, FieldName); err != nil {
		return nil, err
	}
	if d.Version, err = stringField(r, FieldVersion); err != nil {
		return nil, err
	}
	if d.URL, err = stringField(r, FieldURL); err != nil {
		return nil, err
	}
	return d, nil
}

func decodePythonedaDependency(c *Codec, r Record) (Entity, error) {
	e, err := decodeDependency(c, r)
	if err != nil {
		return nil, err
	}
	d, _ := e.(domain.Dependency)
	return domain.NewPythonedaDependency(d.Name, d.Version, d.URL), nil
}

func encodeCodeCell(c *Codec, e Entity) (Record, error) {
	cell, ok := e.(*domain.CodeCell)
	if !ok {
		return nil, unexpected(e)
	}
	deps := cell.Dependencies()
	encoded := make([]any, len(deps))
	for i, dep := range deps {
		r, err := c.Encode(dep)
		if err != nil {
			return nil, err
		}
		encoded[i] = r
	}
	return Record{
		FieldContents:     cell.Contents(),
		FieldDependencies: encoded,
	}, nil
}

func decodeCodeCell(c *Codec, r Record) (Entity, error) {
	contents, err := stringField(r, FieldContents)
	if err != nil {
		return nil, err
	}
	raw, err := listField(r, FieldDependencies)
	if err != nil {
		return nil, err
	}
	deps := make([]domain.Dependency, len(raw))
	for i, item := range raw {
		dep, err := DecodeAs[domain.Dependency](c, item)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid dependency"), "index", i)
		}
		deps[i] = dep
	}
	return domain.NewCodeCell(contents, deps), nil
}

func encodeMarkdownCell(_ *Codec, e Entity) (Record, error) {
	cell, ok := e.(*domain.MarkdownCell)
	if !ok {
		return nil, unexpected(e)
	}
	return Record{FieldContents: cell.Contents()}, nil
}

func decodeMarkdownCell(_ *Codec, r Record) (Entity, error) {
	contents, err := stringField(r, FieldContents)
	if err != nil {
		return nil, err
	}
	return domain.NewMarkdownCell(contents), nil
}

func encodeCodeRequest(c *Codec, e Entity) (Record, error) {
	req, ok := e.(*domain.CodeRequest)
	if !ok {
		return nil, unexpected(e)
	}
	cells := req.Cells()
	encoded := make([]any, len(cells))
	for i, cell := range cells {
		r, err := c.Encode(cell)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		encoded[i] = r
	}
	return Record{FieldCells: encoded}, nil
}

func decodeCodeRequest(c *Codec, r Record) (Entity, error) {
	raw, err := listField(r, FieldCells)
	if err != nil {
		return nil, err
	}
	cells := make([]domain.Cell, len(raw))
	for i, item := range raw {
		cell, err := DecodeAs[domain.Cell](c, item)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid cell"), "index", i)
		}
		cells[i] = cell
	}
	return domain.NewCodeRequest(cells...), nil
}

func encodeExecutionRequest(c *Codec, e Entity) (Record, error) {
	exec, ok := e.(*domain.ExecutionRequest)
	if !ok {
		return nil, unexpected(e)
	}
	if exec.CodeRequest() == nil {
		return Record{FieldCodeRequest: nil}, nil
	}
	inner, err := c.Encode(exec.CodeRequest())
	if err != nil {
		return nil, err
	}
	return Record{FieldCodeRequest: inner}, nil
}

func decodeExecutionRequest(c *Codec, r Record) (Entity, error) {
	raw, ok := r[FieldCodeRequest]
	if !ok || raw == nil {
		return domain.NewExecutionRequest(nil), nil
	}
	inner, err := DecodeAs[*domain.CodeRequest](c, raw)
	if err != nil {
		return nil, zerr.Wrap(err, "invalid code request")
	}
	return domain.NewExecutionRequest(inner), nil
}
