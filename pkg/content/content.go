// Package content models the input message content variants that can be
// attached to inline query results: contact, location, text and venue.
//
// Each variant serializes to a flat JSON object holding only the fields that
// were set. No type discriminant is written; the receiving API tells the
// variants apart by their fields.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mymmrac/telego"
)

// InlineContent is implemented by Contact, Location, Text and Venue.
// The set is closed.
type InlineContent interface {
	json.Marshaler

	Kind() Kind
	// Fields returns the set fields in declaration order.
	Fields() []Field

	toTelego() (telego.InputMessageContent, error)
}

// Field is one serialized field.
type Field struct {
	Name  string
	Value any
}

// Build constructs a variant from a field mapping. Numeric fields accept any
// Go integer or float type and json.Number.
func Build(kind Kind, fields map[string]any) (InlineContent, error) {
	s, vals, err := normalize(kind, fields)
	if err != nil {
		return nil, err
	}
	return s.build(vals), nil
}

// Serialize returns the set fields of c as a mapping.
func Serialize(c InlineContent) map[string]any {
	fields := c.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out
}

// Marshal encodes c as a JSON object with keys in declaration order.
func Marshal(c InlineContent) ([]byte, error) {
	if c == nil {
		return nil, errors.New("marshal inline content: nil content")
	}
	return c.MarshalJSON()
}

// Deserialize reconstructs a variant from a mapping such as the one returned
// by Serialize. Missing keys leave optional fields unset. Values that cannot
// be coerced are reported as a *ValidationError wrapping the *TypeError.
func Deserialize(kind Kind, mapping map[string]any) (InlineContent, error) {
	c, err := Build(kind, mapping)
	if err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			return nil, &ValidationError{Kind: kind, Field: te.Field, Reason: "cannot decode value", Err: te}
		}
		return nil, err
	}
	return c, nil
}

// Unmarshal decodes a JSON object into the given variant.
func Unmarshal(kind Kind, data []byte) (InlineContent, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var mapping map[string]any
	if err := dec.Decode(&mapping); err != nil {
		return nil, &ValidationError{Kind: kind, Reason: "expected a JSON object", Err: err}
	}
	if mapping == nil {
		return nil, &ValidationError{Kind: kind, Reason: "expected a JSON object, got null"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Kind: kind, Reason: "unexpected data after JSON object"}
	}
	return Deserialize(kind, mapping)
}

// ToTelego converts c into the matching telego input message content.
//
// Telego writes every field the Bot API requires, set or not, so a field that
// is optional here but required there must be set. Otherwise ToTelego returns
// a *ValidationError naming the first such field instead of sending a zero
// value.
func ToTelego(c InlineContent) (telego.InputMessageContent, error) {
	if c == nil {
		return nil, errors.New("convert inline content: nil content")
	}
	return c.toTelego()
}

type presence struct {
	name string
	set  bool
}

func requireSet(kind Kind, fields ...presence) error {
	for _, f := range fields {
		if !f.set {
			return &ValidationError{Kind: kind, Field: f.name, Reason: "required by the Bot API"}
		}
	}
	return nil
}

func marshalFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeValue(&buf, f.Value); err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeValue writes v without HTML escaping, so parse-mode markup in
// message_text stays readable.
func encodeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func unmarshalInto[T InlineContent](kind Kind, data []byte) (T, error) {
	var zero T
	c, err := Unmarshal(kind, data)
	if err != nil {
		return zero, err
	}
	v, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("unmarshal %s content: unexpected type %T", kind, c)
	}
	return v, nil
}
