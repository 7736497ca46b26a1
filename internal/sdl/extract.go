package sdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentic-research/povforge/internal/scene"
)

// field is one (identifier, value) pair of a variant's schema.
type field struct {
	name  string
	value any
}

// variantName returns the canonical variant name a block head is derived
// from. Exhaustive over the closed scene.Object set.
func variantName(obj scene.Object) string {
	switch obj.(type) {
	case scene.Camera:
		return "Camera"
	case scene.LightSource:
		return "LightSource"
	case scene.Sphere:
		return "Sphere"
	case scene.Box:
		return "Box"
	case scene.Pigment:
		return "Pigment"
	case scene.RGB:
		return "Color"
	}
	return fmt.Sprintf("%T", obj)
}

// fieldsOf returns a variant's fields in declaration order. The order is
// observable: it fixes the line order of the default rendering.
func fieldsOf(obj scene.Object) []field {
	switch o := obj.(type) {
	case scene.Camera:
		return []field{{"Location", o.Location}, {"LookAt", o.LookAt}}
	case scene.LightSource:
		return []field{{"Location", o.Location}, {"Color", o.Color}}
	case scene.Sphere:
		return []field{{"Location", o.Location}, {"Radius", o.Radius}, {"Pigment", o.Pigment}}
	case scene.Box:
		return []field{{"Corner1", o.Corner1}, {"Corner2", o.Corner2}, {"Pigment", o.Pigment}}
	case scene.Pigment:
		return []field{{"Color", o.Color}}
	case scene.RGB:
		return []field{{"Red", o.Red}, {"Green", o.Green}, {"Blue", o.Blue}}
	}
	return nil
}

// UnsupportedTypeError reports a field value outside the closed set of
// supported kinds (vector, float, int, string, nested object).
type UnsupportedTypeError struct {
	Variant string // entity variant, e.g. "Sphere"
	Field   string // field identifier, e.g. "Radius"
	Type    string // Go type of the offending value
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("sdl: unsupported field type %s for %s.%s", e.Type, e.Variant, e.Field)
}

// fieldMap is an ordered key -> rendered-text mapping for one object.
type fieldMap struct {
	entries []fieldEntry
}

type fieldEntry struct {
	key  string
	text string
}

func (m *fieldMap) put(key, text string) {
	m.entries = append(m.entries, fieldEntry{key: key, text: text})
}

// take removes and returns the entry for key. The key is guaranteed by the
// variant's fixed schema; absence is a defect, not a runtime condition.
func (m *fieldMap) take(key string) string {
	for i, e := range m.entries {
		if e.key == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return e.text
		}
	}
	panic(fmt.Sprintf("sdl: missing expected key %q", key))
}

func (m *fieldMap) keys() []string {
	ks := make([]string, len(m.entries))
	for i, e := range m.entries {
		ks[i] = e.key
	}
	return ks
}

// blockLines renders the default body rule: "  key value" per entry,
// newline-joined, in map order.
func (m *fieldMap) blockLines() string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = "  " + e.key + " " + e.text
	}
	return strings.Join(lines, "\n")
}

// inline renders the body used inside a composite's braces: "key value"
// per entry with no indent, newline-joined.
func (m *fieldMap) inline() string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = e.key + " " + e.text
	}
	return strings.Join(lines, "\n")
}

// extract walks obj's fields in declaration order and renders each value
// to text. Fails atomically: on an unsupported field no map is returned.
func extract(obj scene.Object) (*fieldMap, error) {
	return extractFields(variantName(obj), fieldsOf(obj))
}

func extractFields(variant string, fields []field) (*fieldMap, error) {
	m := &fieldMap{}
	for _, f := range fields {
		key := snakeCase(f.name)
		switch v := f.value.(type) {
		case scene.Vec:
			m.put(key, formatVec(v))
		case float64:
			m.put(key, formatFloat(v))
		case int:
			m.put(key, strconv.Itoa(v))
		case string:
			m.put(key, v)
		case scene.Object:
			sub, err := extract(v)
			if err != nil {
				return nil, err
			}
			if body, ok := renderBody(v, sub); ok {
				m.put(key, body)
			} else {
				m.put(key, "{"+sub.inline()+"}")
			}
		default:
			return nil, &UnsupportedTypeError{Variant: variant, Field: f.name, Type: fmt.Sprintf("%T", v)}
		}
	}
	return m, nil
}
