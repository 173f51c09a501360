// Package scene describes the transforms, cameras and drawables a renderer
// consumes. It knows nothing about how they are drawn.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a named node. The lane runs along world Y; a footprint is
// Scale.X() wide and Scale.Z() deep.
type Transform struct {
	Name     string
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

// Footprint returns the (width, depth) pair of the transform's scale.
func (t *Transform) Footprint() mgl32.Vec2 {
	return mgl32.Vec2{t.Scale.X(), t.Scale.Z()}
}

// SetFootprint sets width and depth, leaving height at 1.
func (t *Transform) SetFootprint(f mgl32.Vec2) {
	t.Scale = mgl32.Vec3{f.X(), 1, f.Y()}
}

// Mesh selects how a drawable's footprint is rendered.
type Mesh int

const (
	MeshBlock Mesh = iota // Filled footprint
	MeshShell             // Outlined footprint
	MeshFrame             // Outlined obstacle ring
)

// Drawable attaches a mesh to a transform.
type Drawable struct {
	Transform *Transform
	Mesh      Mesh
}

// Camera is a top-down orthographic camera centred on its transform.
type Camera struct {
	Transform *Transform
	Aspect    float32 // Viewport width / height
	Span      float32 // World units visible vertically
}

// ViewProjection maps world X/Y into normalized [-1, 1] screen space, y up.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	halfH := c.Span / 2
	halfW := halfH * c.Aspect
	p := c.Transform.Position
	return mgl32.Ortho2D(p.X()-halfW, p.X()+halfW, p.Y()-halfH, p.Y()+halfH)
}

// Project converts a world position to normalized screen space.
func (c *Camera) Project(world mgl32.Vec3) mgl32.Vec2 {
	v := c.ViewProjection().Mul4x1(mgl32.Vec4{world.X(), world.Y(), 0, 1})
	return mgl32.Vec2{v.X(), v.Y()}
}

// Scene owns every transform and camera of a level.
type Scene struct {
	Transforms []*Transform
	Drawables  []Drawable
	Cameras    []Camera
}

// Lookup returns the first transform with the given name.
func (s *Scene) Lookup(name string) (*Transform, bool) {
	for _, t := range s.Transforms {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Add appends a transform and a drawable for it.
func (s *Scene) Add(t *Transform, mesh Mesh) *Transform {
	s.Transforms = append(s.Transforms, t)
	s.Drawables = append(s.Drawables, Drawable{Transform: t, Mesh: mesh})
	return t
}

// Corners returns the four corners of a transform's footprint in world space,
// counter-clockwise from the near-left corner. unit is the world size of a
// footprint with scale 1.
func Corners(t *Transform, unit float32) [4]mgl32.Vec3 {
	hw := t.Scale.X() * unit / 2
	hd := t.Scale.Z() * unit / 2
	p := t.Position
	return [4]mgl32.Vec3{
		p.Add(mgl32.Vec3{-hw, -hd, 0}),
		p.Add(mgl32.Vec3{hw, -hd, 0}),
		p.Add(mgl32.Vec3{hw, hd, 0}),
		p.Add(mgl32.Vec3{-hw, hd, 0}),
	}
}
