// Package sceneio decodes declarative scene files (HCL or JSON) into the
// typed entity model. Top-level declaration order is scene order and is
// preserved.
package sceneio

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/agentic-research/povforge/internal/scene"
)

// Decode targets for gohcl. Vectors and colors are written as number
// tuples: location = [0, 1, -10].
type cameraBlock struct {
	Location []float64 `hcl:"location"`
	LookAt   []float64 `hcl:"look_at"`
}

type lightBlock struct {
	Location []float64 `hcl:"location"`
	Color    []float64 `hcl:"color"`
}

type pigmentBlock struct {
	Color []float64 `hcl:"color"`
}

type sphereBlock struct {
	Location []float64     `hcl:"location"`
	Radius   float64       `hcl:"radius"`
	Pigment  *pigmentBlock `hcl:"pigment,block"`
}

type boxBlock struct {
	Corner1 []float64     `hcl:"corner1"`
	Corner2 []float64     `hcl:"corner2"`
	Pigment *pigmentBlock `hcl:"pigment,block"`
}

// DecodeHCL parses an HCL scene file. One block per entity; block order in
// the file is the order objects are rendered in.
func DecodeHCL(src []byte, filename string) (scene.Scene, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parse %s: expected native HCL syntax", filename)
	}

	var s scene.Scene
	for _, blk := range body.Blocks {
		if len(blk.Labels) > 0 {
			return nil, fmt.Errorf("%s: block %q takes no labels", filename, blk.Type)
		}
		obj, err := decodeBlock(blk)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		s = append(s, obj)
	}
	return s, nil
}

func decodeBlock(blk *hclsyntax.Block) (scene.Object, error) {
	switch blk.Type {
	case "camera":
		var cb cameraBlock
		if diags := gohcl.DecodeBody(blk.Body, nil, &cb); diags.HasErrors() {
			return nil, fmt.Errorf("camera: %w", diags)
		}
		loc, err := vec(cb.Location, "camera", "location")
		if err != nil {
			return nil, err
		}
		la, err := vec(cb.LookAt, "camera", "look_at")
		if err != nil {
			return nil, err
		}
		return scene.Camera{Location: loc, LookAt: la}, nil

	case "light_source":
		var lb lightBlock
		if diags := gohcl.DecodeBody(blk.Body, nil, &lb); diags.HasErrors() {
			return nil, fmt.Errorf("light_source: %w", diags)
		}
		loc, err := vec(lb.Location, "light_source", "location")
		if err != nil {
			return nil, err
		}
		col, err := rgb(lb.Color, "light_source", "color")
		if err != nil {
			return nil, err
		}
		return scene.LightSource{Location: loc, Color: col}, nil

	case "sphere":
		var sb sphereBlock
		if diags := gohcl.DecodeBody(blk.Body, nil, &sb); diags.HasErrors() {
			return nil, fmt.Errorf("sphere: %w", diags)
		}
		loc, err := vec(sb.Location, "sphere", "location")
		if err != nil {
			return nil, err
		}
		pig, err := pigment(sb.Pigment, "sphere")
		if err != nil {
			return nil, err
		}
		return scene.Sphere{Location: loc, Radius: sb.Radius, Pigment: pig}, nil

	case "box":
		var bb boxBlock
		if diags := gohcl.DecodeBody(blk.Body, nil, &bb); diags.HasErrors() {
			return nil, fmt.Errorf("box: %w", diags)
		}
		c1, err := vec(bb.Corner1, "box", "corner1")
		if err != nil {
			return nil, err
		}
		c2, err := vec(bb.Corner2, "box", "corner2")
		if err != nil {
			return nil, err
		}
		pig, err := pigment(bb.Pigment, "box")
		if err != nil {
			return nil, err
		}
		return scene.Box{Corner1: c1, Corner2: c2, Pigment: pig}, nil

	default:
		return nil, fmt.Errorf("unknown block type %q", blk.Type)
	}
}

func pigment(pb *pigmentBlock, block string) (scene.Pigment, error) {
	if pb == nil {
		return scene.Pigment{}, fmt.Errorf("%s: missing pigment block", block)
	}
	col, err := rgb(pb.Color, block, "pigment.color")
	if err != nil {
		return scene.Pigment{}, err
	}
	return scene.Pigment{Color: col}, nil
}

func vec(xs []float64, block, attr string) (scene.Vec, error) {
	if len(xs) != 3 {
		return scene.Vec{}, fmt.Errorf("%s: %s must have 3 components, got %d", block, attr, len(xs))
	}
	return scene.Vec{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

func rgb(xs []float64, block, attr string) (scene.RGB, error) {
	if len(xs) != 3 {
		return scene.RGB{}, fmt.Errorf("%s: %s must have 3 components, got %d", block, attr, len(xs))
	}
	return scene.RGB{Red: xs[0], Green: xs[1], Blue: xs[2]}, nil
}
