package scene

import (
	"math"
	"testing"
	"time"

	"gldemos/internal/input"
	"gldemos/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockElapsed(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	c := NewClockWithSource(func() time.Time { return now })
	c.Start()
	now = base.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, c.Elapsed(), 1e-9)
}

func TestBladeAnglesAtZero(t *testing.T) {
	assert.Equal(t, float32(0), LargeBladeAngle(0))
	assert.Equal(t, float32(0), SmallBladeAngle(0))
}

func TestBladeAnglesArePure(t *testing.T) {
	for _, tc := range []float64{0.25, 1, math.Pi / 2, 7.3} {
		assert.Equal(t, LargeBladeAngle(tc), LargeBladeAngle(tc))
		want := float32(math.Sin(tc) * math.Pi * 2)
		assert.InDelta(t, want, LargeBladeAngle(tc), 1e-6)
		assert.InDelta(t, -5*LargeBladeAngle(tc), SmallBladeAngle(tc), 1e-4)
	}
}

func TestWindmillDrawList(t *testing.T) {
	items := WindmillDrawList(0)
	require.Len(t, items, 4)
	assert.Equal(t, PartPole, items[0].Part)
	assert.Equal(t, PartLargeBlade, items[1].Part)
	assert.Equal(t, PartSmallBlade, items[2].Part)
	assert.Equal(t, PartSmallBlade, items[3].Part)

	origin := mgl32.Vec4{0, 0, 0, 1}
	pole := items[0].Transform.Mul4x1(origin)
	assert.InDelta(t, PoleY, pole.Y(), 1e-6)

	hub := items[1].Transform.Mul4x1(origin)
	assert.InDelta(t, HubY, hub.Y(), 1e-6)

	left := items[2].Transform.Mul4x1(origin)
	right := items[3].Transform.Mul4x1(origin)
	assert.InDelta(t, -LargeBladeWidth/2, left.X(), 1e-6)
	assert.InDelta(t, LargeBladeWidth/2, right.X(), 1e-6)
	assert.InDelta(t, HubY, right.Y(), 1e-6)
}

func TestSmallBladesRideTheLargeBlade(t *testing.T) {
	for _, tc := range []float64{0.3, 1.1, 2.9} {
		items := WindmillDrawList(tc)
		tip := items[3].Transform.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		// The blade tip stays at half the large blade's width from the hub.
		d := mgl32.Vec2{tip.X(), tip.Y() - HubY}.Len()
		assert.InDelta(t, LargeBladeWidth/2, d, 1e-5)
	}
}

func TestOrbitEye(t *testing.T) {
	o := DefaultOrbit()
	eye := o.Eye(0)
	assert.InDelta(t, 0, eye.X(), 1e-6)
	assert.InDelta(t, 5, eye.Y(), 1e-6)
	assert.InDelta(t, 3, eye.Z(), 1e-6)

	// A quarter turn at 90 deg/s takes one second.
	eye = o.Eye(1)
	assert.InDelta(t, 3, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Z(), 1e-5)

	for _, tc := range []float64{0, 0.7, 2, 5.5, 13} {
		e := o.Eye(tc)
		assert.InDelta(t, 3, mgl32.Vec2{e.X(), e.Z()}.Len(), 1e-5)
		assert.GreaterOrEqual(t, e.Y(), float32(0))
		assert.LessOrEqual(t, e.Y(), float32(10))
	}
}

func TestOrbitViewLooksAtOrigin(t *testing.T) {
	o := DefaultOrbit()
	v := o.View(1.7)
	p := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// The origin lands on the view axis in front of the camera.
	assert.InDelta(t, 0, p.X(), 1e-4)
	assert.InDelta(t, 0, p.Y(), 1e-4)
	assert.Less(t, p.Z(), float32(0))
}

func TestPyramidNormalToggle(t *testing.T) {
	p := NewPyramid(1)
	assert.False(t, p.TakeNormalsDirty())

	p.HandleKey(input.KeyEvent{Key: input.KeyN, Action: input.Repeat})
	assert.False(t, p.TakeNormalsDirty())

	p.HandleKey(input.KeyEvent{Key: input.KeyN, Action: input.Press})
	assert.Equal(t, mesh.VertexNormals, p.Mesh.Mode())
	assert.True(t, p.TakeNormalsDirty())
	assert.False(t, p.TakeNormalsDirty())
}

func TestRectangleOffset(t *testing.T) {
	r := NewRectangle(input.SchemeMixed, 0)
	r.HandleKey(input.KeyEvent{Key: input.KeyArrowUp, Action: input.Press})
	r.Advance()
	off := r.Offset()
	assert.Equal(t, float32(0), off.X())
	assert.InDelta(t, DefaultMoveStep, off.Y(), 1e-7)
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		aspect float32
		want   Viewport
	}{
		{"exact", 700, 700, 1, Viewport{0, 0, 700, 700}},
		{"wide", 1000, 600, 1, Viewport{200, 0, 600, 600}},
		{"tall", 600, 1000, 1, Viewport{0, 200, 600, 600}},
		{"hidpi", 1400, 1400, 1, Viewport{0, 0, 1400, 1400}},
		{"empty", 0, 600, 1, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitViewport(tt.w, tt.h, tt.aspect))
		})
	}
}
