package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ToJSON encodes e and renders the record as indented JSON.
func (c *Codec) ToJSON(e Entity) ([]byte, error) {
	r, err := c.Encode(e)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal record")
	}
	return append(data, '\n'), nil
}

// FromJSON parses a JSON record and decodes the entity it describes.
func (c *Codec) FromJSON(data []byte) (Entity, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "invalid json"), "reason", err.Error())
	}
	if err := expectEOF(dec.Decode(&struct{}{})); err != nil {
		return nil, zerr.With(err, "format", "json")
	}
	return c.Decode(raw)
}

// ToYAML encodes e and renders the record as YAML.
func (c *Codec) ToYAML(e Entity) ([]byte, error) {
	r, err := c.Encode(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(r)); err != nil {
		return nil, zerr.Wrap(err, "failed to marshal record")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to marshal record")
	}
	return buf.Bytes(), nil
}

// FromYAML parses a YAML record and decodes the entity it describes.
func (c *Codec) FromYAML(data []byte) (Entity, error) {
	var raw map[string]any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMalformedInput, "invalid yaml"), "reason", err.Error())
	}
	var next any
	if err := expectEOF(dec.Decode(&next)); err != nil {
		return nil, zerr.With(err, "format", "yaml")
	}
	return c.Decode(raw)
}

// expectEOF turns anything but io.EOF from a second Decode call into a malformed input error.
func expectEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	reason := "trailing data after record"
	if err != nil {
		reason = err.Error()
	}
	return zerr.With(zerr.Wrap(domain.ErrMalformedInput, "invalid record text"), "reason", reason)
}
