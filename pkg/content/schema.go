package content

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

type scalar int

const (
	scalarText scalar = iota
	scalarNumber
	scalarBool
)

func (s scalar) String() string {
	switch s {
	case scalarText:
		return "string"
	case scalarNumber:
		return "number"
	case scalarBool:
		return "boolean"
	default:
		return "unknown"
	}
}

type fieldSpec struct {
	name     string
	typ      scalar
	required bool
}

type schema struct {
	fields []fieldSpec
	build  func(values) InlineContent
}

func (s schema) lookup(name string) (fieldSpec, bool) {
	for _, f := range s.fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldSpec{}, false
}

// schemaFor returns the declared field set of a variant. Declaration order is
// the serialization order.
func schemaFor(kind Kind) (schema, error) {
	switch kind {
	case KindContact:
		return schema{
			fields: []fieldSpec{
				{name: "phone_number", typ: scalarText, required: true},
				{name: "first_name", typ: scalarText},
				{name: "last_name", typ: scalarText},
			},
			build: buildContact,
		}, nil
	case KindLocation:
		return schema{
			fields: []fieldSpec{
				{name: "latitude", typ: scalarNumber, required: true},
				{name: "longitude", typ: scalarNumber, required: true},
			},
			build: buildLocation,
		}, nil
	case KindText:
		return schema{
			fields: []fieldSpec{
				{name: "message_text", typ: scalarText},
				{name: "parse_mode", typ: scalarText},
				{name: "disable_web_page_preview", typ: scalarBool},
			},
			build: buildText,
		}, nil
	case KindVenue:
		return schema{
			fields: []fieldSpec{
				{name: "latitude", typ: scalarNumber},
				{name: "longitude", typ: scalarNumber},
				{name: "title", typ: scalarText},
				{name: "address", typ: scalarText},
				{name: "foursquare_id", typ: scalarText},
			},
			build: buildVenue,
		}, nil
	default:
		return schema{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// FieldInfo describes one declared field of a variant.
type FieldInfo struct {
	Name     string
	Type     string
	Required bool
}

// Describe lists the declared fields of a variant in declaration order.
func Describe(kind Kind) ([]FieldInfo, error) {
	s, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	out := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, FieldInfo{Name: f.name, Type: f.typ.String(), Required: f.required})
	}
	return out, nil
}

// FieldNames lists the declared field names of a variant in declaration order.
func FieldNames(kind Kind) ([]string, error) {
	infos, err := Describe(kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names, nil
}

// ParseValue converts the textual form of a field value (as typed on a
// command line) into the field's scalar type.
func ParseValue(kind Kind, name, raw string) (any, error) {
	s, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	spec, ok := s.lookup(name)
	if !ok {
		return nil, &UnknownFieldError{Kind: kind, Field: name}
	}

	switch spec.typ {
	case scalarNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ValidationError{Kind: kind, Field: name, Reason: "not a number", Err: err}
		}
		return f, nil
	case scalarBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &ValidationError{Kind: kind, Field: name, Reason: "not a boolean", Err: err}
		}
		return b, nil
	default:
		return raw, nil
	}
}

// values is a field mapping whose entries have already been checked against
// the schema and normalized to string, float64 or bool.
type values map[string]any

func (v values) text(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v values) number(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

func (v values) optText(name string) Opt[string] {
	if s, ok := v[name].(string); ok {
		return Some(s)
	}
	return Opt[string]{}
}

func (v values) optNumber(name string) Opt[float64] {
	if f, ok := v[name].(float64); ok {
		return Some(f)
	}
	return Opt[float64]{}
}

func (v values) optBool(name string) Opt[bool] {
	if b, ok := v[name].(bool); ok {
		return Some(b)
	}
	return Opt[bool]{}
}

// normalize validates a raw field mapping against the variant schema.
// Unknown names are reported first, in sorted order, then type mismatches in
// declaration order, then missing required fields.
func normalize(kind Kind, fields map[string]any) (schema, values, error) {
	s, err := schemaFor(kind)
	if err != nil {
		return schema{}, nil, err
	}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if _, ok := s.lookup(name); !ok {
			return schema{}, nil, &UnknownFieldError{Kind: kind, Field: name}
		}
	}

	out := make(values, len(fields))
	for _, spec := range s.fields {
		raw, present := fields[spec.name]
		if !present {
			if spec.required {
				return schema{}, nil, &ValidationError{Kind: kind, Field: spec.name, Reason: "required field is missing"}
			}
			continue
		}
		v, err := coerce(kind, spec, raw)
		if err != nil {
			return schema{}, nil, err
		}
		out[spec.name] = v
	}
	return s, out, nil
}

func coerce(kind Kind, spec fieldSpec, raw any) (any, error) {
	mismatch := &TypeError{Kind: kind, Field: spec.name, Want: spec.typ.String(), Got: jsonTypeName(raw)}

	switch spec.typ {
	case scalarText:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch
		}
		return s, nil
	case scalarNumber:
		f, ok := toFloat(raw)
		if !ok {
			return nil, mismatch
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ValidationError{Kind: kind, Field: spec.name, Reason: "number must be finite"}
		}
		return f, nil
	case scalarBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, mismatch
		}
		return b, nil
	default:
		return nil, mismatch
	}
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func jsonTypeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
