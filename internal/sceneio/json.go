package sceneio

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/agentic-research/povforge/internal/scene"
)

// DecodeJSON parses a JSON scene document: a top-level array of objects,
// each carrying a "type" discriminator. Array order is scene order.
func DecodeJSON(src []byte) (scene.Scene, error) {
	root, err := oj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse scene json: %w", err)
	}
	list, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("scene json: top level must be an array, got %T", root)
	}

	var s scene.Scene
	for i, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scene json: element %d must be an object, got %T", i, el)
		}
		typ, _ := m["type"].(string)
		obj, err := decodeJSONObject(typ, m)
		if err != nil {
			return nil, fmt.Errorf("scene json: element %d: %w", i, err)
		}
		s = append(s, obj)
	}
	return s, nil
}

func decodeJSONObject(typ string, m map[string]any) (scene.Object, error) {
	switch typ {
	case "camera":
		loc, err := jsonVec(m, "location", typ)
		if err != nil {
			return nil, err
		}
		la, err := jsonVec(m, "look_at", typ)
		if err != nil {
			return nil, err
		}
		return scene.Camera{Location: loc, LookAt: la}, nil

	case "light_source":
		loc, err := jsonVec(m, "location", typ)
		if err != nil {
			return nil, err
		}
		col, err := jsonRGB(m, "color", typ)
		if err != nil {
			return nil, err
		}
		return scene.LightSource{Location: loc, Color: col}, nil

	case "sphere":
		loc, err := jsonVec(m, "location", typ)
		if err != nil {
			return nil, err
		}
		radius, err := jsonFloat(m, "radius", typ)
		if err != nil {
			return nil, err
		}
		pig, err := jsonPigment(m, typ)
		if err != nil {
			return nil, err
		}
		return scene.Sphere{Location: loc, Radius: radius, Pigment: pig}, nil

	case "box":
		c1, err := jsonVec(m, "corner1", typ)
		if err != nil {
			return nil, err
		}
		c2, err := jsonVec(m, "corner2", typ)
		if err != nil {
			return nil, err
		}
		pig, err := jsonPigment(m, typ)
		if err != nil {
			return nil, err
		}
		return scene.Box{Corner1: c1, Corner2: c2, Pigment: pig}, nil

	case "":
		return nil, fmt.Errorf("missing \"type\" field")

	default:
		return nil, fmt.Errorf("unknown type %q", typ)
	}
}

func jsonPigment(m map[string]any, typ string) (scene.Pigment, error) {
	pm, ok := m["pigment"].(map[string]any)
	if !ok {
		return scene.Pigment{}, fmt.Errorf("%s: missing pigment object", typ)
	}
	col, err := jsonRGB(pm, "color", typ+".pigment")
	if err != nil {
		return scene.Pigment{}, err
	}
	return scene.Pigment{Color: col}, nil
}

func jsonVec(m map[string]any, key, typ string) (scene.Vec, error) {
	xs, err := jsonTriple(m, key, typ)
	if err != nil {
		return scene.Vec{}, err
	}
	return scene.Vec{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

func jsonRGB(m map[string]any, key, typ string) (scene.RGB, error) {
	xs, err := jsonTriple(m, key, typ)
	if err != nil {
		return scene.RGB{}, err
	}
	return scene.RGB{Red: xs[0], Green: xs[1], Blue: xs[2]}, nil
}

func jsonTriple(m map[string]any, key, typ string) ([3]float64, error) {
	var out [3]float64
	list, ok := m[key].([]any)
	if !ok {
		return out, fmt.Errorf("%s: %s must be an array of 3 numbers", typ, key)
	}
	if len(list) != 3 {
		return out, fmt.Errorf("%s: %s must have 3 components, got %d", typ, key, len(list))
	}
	for i, el := range list {
		f, ok := toFloat(el)
		if !ok {
			return out, fmt.Errorf("%s: %s[%d] must be a number, got %T", typ, key, i, el)
		}
		out[i] = f
	}
	return out, nil
}

func jsonFloat(m map[string]any, key, typ string) (float64, error) {
	f, ok := toFloat(m[key])
	if !ok {
		return 0, fmt.Errorf("%s: %s must be a number, got %T", typ, key, m[key])
	}
	return f, nil
}

// toFloat normalizes ojg's numeric types (int64 for integral literals,
// float64 otherwise).
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
