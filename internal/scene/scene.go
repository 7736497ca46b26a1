// Package scene defines the typed entity model for povforge scenes.
//
// The variant set is closed: every renderable thing in a scene is one of
// the types below, and the SDL encoder dispatches on them exhaustively.
// Values are plain immutable structs; building a scene is just building
// a slice.
package scene

// Vec is a 3-component vector (position, direction, or corner).
type Vec struct {
	X, Y, Z float64
}

// RGB is a color in POV-Ray's rgb representation. Components are in the
// 0..1 range by convention, but the model does not enforce it.
type RGB struct {
	Red, Green, Blue float64
}

// Camera places the viewpoint.
type Camera struct {
	Location Vec
	LookAt   Vec
}

// LightSource is a point light.
type LightSource struct {
	Location Vec
	Color    RGB
}

// Sphere is a sphere primitive with a surface pigment.
type Sphere struct {
	Location Vec
	Radius   float64
	Pigment  Pigment
}

// Box is an axis-aligned box spanned by two opposite corners.
type Box struct {
	Corner1 Vec
	Corner2 Vec
	Pigment Pigment
}

// Pigment wraps a surface color.
type Pigment struct {
	Color RGB
}

// Object is one renderable scene entity. The interface is sealed: only
// the variants in this package implement it.
type Object interface {
	sceneObject()
}

func (Camera) sceneObject()      {}
func (LightSource) sceneObject() {}
func (Sphere) sceneObject()      {}
func (Box) sceneObject()         {}
func (Pigment) sceneObject()     {}
func (RGB) sceneObject()         {}

// Scene is an ordered sequence of objects. Order is significant and is
// preserved verbatim in the serialized output.
type Scene []Object
