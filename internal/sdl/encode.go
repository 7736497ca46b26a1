// Package sdl serializes scene entities to POV-Ray scene description text.
//
// Each object becomes a named, brace-delimited block:
//
//	camera {
//	  location <0,0,0>
//	  look_at <0,0,10>
//	}
//
// Rendering is type-driven: a variant's fields are extracted in declaration
// order, each value formatted by kind, and variants with a custom body rule
// (light_source, sphere, box, color) reshape their own field map — folding
// positional values into an unlabeled header line, or replacing the body
// outright. The encoder is pure: identical input yields identical text.
package sdl

import (
	"strings"

	"github.com/agentic-research/povforge/internal/scene"
)

// renderBody applies a variant's custom body rule, consuming entries from
// m. Returns false for variants that use the default indented rule.
func renderBody(obj scene.Object, m *fieldMap) (string, bool) {
	switch o := obj.(type) {
	case scene.RGB:
		// Rendered straight from the components; the extracted entries
		// are intentionally ignored.
		return "rgb " + formatTriple(o.Red, o.Green, o.Blue), true
	case scene.LightSource:
		return m.take("location") + "\n" + m.blockLines(), true
	case scene.Sphere:
		return m.take("location") + "," + m.take("radius") + "\n" + m.blockLines(), true
	case scene.Box:
		return m.take("corner1") + "," + m.take("corner2") + "\n" + m.blockLines(), true
	}
	return "", false
}

// MarshalObject renders one object as a top-level SDL block.
func MarshalObject(obj scene.Object) (string, error) {
	m, err := extract(obj)
	if err != nil {
		return "", err
	}
	body, ok := renderBody(obj, m)
	if !ok {
		body = m.blockLines()
	}
	return snakeCase(variantName(obj)) + " {\n" + body + "\n}", nil
}

// Marshal renders a whole scene: one block per object, input order
// preserved, blocks separated by a single newline.
func Marshal(s scene.Scene) (string, error) {
	blocks := make([]string, 0, len(s))
	for _, obj := range s {
		b, err := MarshalObject(obj)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, b)
	}
	return strings.Join(blocks, "\n"), nil
}
