package sceneio

import (
	"testing"

	"github.com/agentic-research/povforge/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hclScene = `
camera {
  location = [0, 1, -10]
  look_at  = [0, 0, 10]
}

sphere {
  location = [-6, 0, 20]
  radius   = 5
  pigment {
    color = [0.99, 0.83, 0.4]
  }
}

light_source {
  location = [4, 3, -10]
  color    = [1, 1, 1]
}

box {
  corner1 = [-4, -3, 10]
  corner2 = [4, -2, 14]
  pigment {
    color = [0.2, 0.6, 0.4]
  }
}
`

const jsonScene = `[
  {"type": "camera", "location": [0, 1, -10], "look_at": [0, 0, 10]},
  {"type": "sphere", "location": [-6, 0, 20], "radius": 5,
   "pigment": {"color": [0.99, 0.83, 0.4]}},
  {"type": "light_source", "location": [4, 3, -10], "color": [1, 1, 1]},
  {"type": "box", "corner1": [-4, -3, 10], "corner2": [4, -2, 14],
   "pigment": {"color": [0.2, 0.6, 0.4]}}
]`

func wantScene() scene.Scene {
	return scene.Scene{
		scene.Camera{
			Location: scene.Vec{X: 0, Y: 1, Z: -10},
			LookAt:   scene.Vec{X: 0, Y: 0, Z: 10},
		},
		scene.Sphere{
			Location: scene.Vec{X: -6, Y: 0, Z: 20},
			Radius:   5,
			Pigment:  scene.Pigment{Color: scene.RGB{Red: 0.99, Green: 0.83, Blue: 0.4}},
		},
		scene.LightSource{
			Location: scene.Vec{X: 4, Y: 3, Z: -10},
			Color:    scene.RGB{Red: 1, Green: 1, Blue: 1},
		},
		scene.Box{
			Corner1: scene.Vec{X: -4, Y: -3, Z: 10},
			Corner2: scene.Vec{X: 4, Y: -2, Z: 14},
			Pigment: scene.Pigment{Color: scene.RGB{Red: 0.2, Green: 0.6, Blue: 0.4}},
		},
	}
}

func TestDecodeHCL(t *testing.T) {
	got, err := DecodeHCL([]byte(hclScene), "scene.hcl")
	require.NoError(t, err)
	assert.Equal(t, wantScene(), got)
}

func TestDecodeJSON(t *testing.T) {
	got, err := DecodeJSON([]byte(jsonScene))
	require.NoError(t, err)
	assert.Equal(t, wantScene(), got)
}

func TestFormatsAgree(t *testing.T) {
	fromHCL, err := DecodeHCL([]byte(hclScene), "scene.hcl")
	require.NoError(t, err)
	fromJSON, err := DecodeJSON([]byte(jsonScene))
	require.NoError(t, err)
	assert.Equal(t, fromHCL, fromJSON)
}

func TestDecodeHCLUnknownBlock(t *testing.T) {
	_, err := DecodeHCL([]byte("torus {\n  radius = 1\n}\n"), "scene.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "torus")
}

func TestDecodeHCLBadVectorArity(t *testing.T) {
	src := "camera {\n  location = [0, 1]\n  look_at = [0, 0, 10]\n}\n"
	_, err := DecodeHCL([]byte(src), "scene.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location")
}

func TestDecodeHCLMissingPigment(t *testing.T) {
	src := "sphere {\n  location = [0, 0, 0]\n  radius = 1\n}\n"
	_, err := DecodeHCL([]byte(src), "scene.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pigment")
}

func TestDecodeJSONErrors(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"type": "camera"}`))
	require.Error(t, err, "top level must be an array")

	_, err = DecodeJSON([]byte(`[{"location": [0,0,0]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")

	_, err = DecodeJSON([]byte(`[{"type": "sphere", "location": [0,0,0], "radius": "big",
	  "pigment": {"color": [1,1,1]}}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius")
}
