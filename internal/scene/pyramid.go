package scene

import (
	"gldemos/internal/input"
	"gldemos/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// Pyramid is the orbiting-camera scene around a square pyramid.
type Pyramid struct {
	Orbit Orbit
	Mesh  *mesh.Pyramid
	Model mgl32.Mat4
	Proj  mgl32.Mat4

	normalsDirty bool
}

// NewPyramid builds the scene for a viewport of the given aspect ratio.
func NewPyramid(aspect float32, opts ...mesh.PyramidOption) *Pyramid {
	return &Pyramid{
		Orbit: DefaultOrbit(),
		Mesh:  mesh.NewPyramid(opts...),
		Model: mgl32.Ident4(),
		Proj:  Projection(aspect),
	}
}

// View returns the camera matrix at t seconds.
func (p *Pyramid) View(t float64) mgl32.Mat4 {
	return p.Orbit.View(t)
}

// HandleKey toggles between face and vertex normals on N.
func (p *Pyramid) HandleKey(ev input.KeyEvent) {
	if ev.Key == input.KeyN && ev.Action == input.Press {
		p.Mesh.ToggleNormals()
		p.normalsDirty = true
	}
}

// TakeNormalsDirty reports whether the active normals changed since the last
// call, and clears the flag.
func (p *Pyramid) TakeNormalsDirty() bool {
	d := p.normalsDirty
	p.normalsDirty = false
	return d
}
