// Package codec converts code request entities to tagged records and back.
//
// A record is a flat map holding the entity's kind tag under ClassKey next to its
// attributes. Decoding dispatches on the tag through an explicit registry, so
// adding a variant only requires a Register call.
package codec

import (
	"slices"
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/zerr"
)

// ClassKey is the record key holding the kind tag.
const ClassKey = "class"

// Record is the structured form of an entity.
type Record map[string]any

// Entity is anything the codec can encode.
type Entity interface {
	Kind() string
}

// EncodeFunc writes the attributes of e into a record.
// The codec sets ClassKey itself.
type EncodeFunc func(c *Codec, e Entity) (Record, error)

// DecodeFunc builds an entity from its empty form and the attributes of r.
type DecodeFunc func(c *Codec, r Record) (Entity, error)

type variant struct {
	encode EncodeFunc
	decode DecodeFunc
}

// Codec holds the kind tag registry.
type Codec struct {
	variants map[string]variant
}

// New creates a codec with no registered variants.
func New() *Codec {
	return &Codec{variants: make(map[string]variant)}
}

// Default creates a codec with every entity of the code request model registered.
func Default() *Codec {
	c := New()
	c.Register(domain.KindDependency, encodeDependency, decodeDependency)
	c.Register(domain.KindPythonedaDependency, encodeDependency, decodePythonedaDependency)
	c.Register(domain.KindCodeCell, encodeCodeCell, decodeCodeCell)
	c.Register(domain.KindMarkdownCell, encodeMarkdownCell, decodeMarkdownCell)
	c.Register(domain.KindCodeRequest, encodeCodeRequest, decodeCodeRequest)
	c.Register(domain.KindExecutionRequest, encodeExecutionRequest, decodeExecutionRequest)
	return c
}

// Register binds a kind tag to its encode and decode functions, replacing any previous binding.
func (c *Codec) Register(kind string, enc EncodeFunc, dec DecodeFunc) {
	c.variants[kind] = variant{encode: enc, decode: dec}
}

// Kinds returns the registered kind tags in sorted order.
func (c *Codec) Kinds() []string {
	kinds := make([]string, 0, len(c.variants))
	for kind := range c.variants {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Encode converts e into a record tagged with its kind.
func (c *Codec) Encode(e Entity) (Record, error) {
	if e == nil {
		return nil, malformed("nil entity")
	}
	v, ok := c.variants[e.Kind()]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownVariant, "cannot encode entity"), ClassKey, e.Kind())
	}
	r, err := v.encode(c, e)
	if err != nil {
		return nil, err
	}
	r[ClassKey] = e.Kind()
	return r, nil
}

// Decode reconstructs the entity described by value, which must be a record
// (a Record or a map[string]any produced by a text decoder).
func (c *Codec) Decode(value any) (Entity, error) {
	r, ok := asRecord(value)
	if !ok {
		return nil, malformed("not a record")
	}
	kind, ok := r[ClassKey].(string)
	if !ok {
		return nil, malformed("missing " + ClassKey)
	}
	v, ok := c.variants[kind]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownVariant, "cannot decode record"), ClassKey, kind)
		return nil, zerr.With(err, "known", strings.Join(c.Kinds(), ", "))
	}
	e, err := v.decode(c, r)
	if err != nil {
		return nil, zerr.With(err, ClassKey, kind)
	}
	return e, nil
}

// DecodeAs decodes value and asserts the result is a T.
func DecodeAs[T Entity](c *Codec, value any) (T, error) {
	var zero T
	e, err := c.Decode(value)
	if err != nil {
		return zero, err
	}
	t, ok := e.(T)
	if !ok {
		return zero, unexpected(e)
	}
	return t, nil
}

func asRecord(value any) (Record, bool) {
	switch v := value.(type) {
	case Record:
		return v, v != nil
	case map[string]any:
		return Record(v), v != nil
	default:
		return nil, false
	}
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []Record:
		list := make([]any, len(v))
		for i, r := range v {
			list[i] = r
		}
		return list, true
	default:
		return nil, false
	}
}

// stringField reads an optional string attribute. A missing or null attribute yields "".
func stringField(r Record, key string) (string, error) {
	raw, ok := r[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", zerr.With(malformed("expected string"), "field", key)
	}
	return s, nil
}

// listField reads an optional list attribute. A missing or null attribute yields nil.
func listField(r Record, key string) ([]any, error) {
	raw, ok := r[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := asList(raw)
	if !ok {
		return nil, zerr.With(malformed("expected list"), "field", key)
	}
	return list, nil
}

func malformed(reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedInput, "invalid record"), "reason", reason)
}

func unexpected(e Entity) error {
	return zerr.With(zerr.Wrap(domain.ErrUnexpectedVariant, "cannot use entity"), ClassKey, e.Kind())
}
