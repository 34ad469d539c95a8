package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit moves a camera around the origin: a circle in x/z at Speed degrees per
// second and a bob in y between BaseY-Bob and BaseY+Bob at YSpeed degrees per second.
type Orbit struct {
	Radius float32
	Speed  float32
	YSpeed float32
	BaseY  float32
	Bob    float32
}

// DefaultOrbit is the pyramid demo's camera path.
func DefaultOrbit() Orbit {
	return Orbit{
		Radius: 3.0,
		Speed:  90.0,
		YSpeed: 45.0,
		BaseY:  5.0,
		Bob:    5.0,
	}
}

// Eye returns the camera position at t seconds.
func (o Orbit) Eye(t float64) mgl32.Vec3 {
	a := float64(mgl32.DegToRad(o.Speed)) * t
	b := float64(mgl32.DegToRad(o.YSpeed)) * t
	return mgl32.Vec3{
		o.Radius * float32(math.Sin(a)),
		o.BaseY + o.Bob*float32(math.Sin(b)),
		o.Radius * float32(math.Cos(a)),
	}
}

// View returns the look-at matrix toward the origin with +y up.
func (o Orbit) View(t float64) mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(t), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection parameters shared by the 3D demo.
const (
	FieldOfView = 60.0
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}
