package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Windmill dimensions in clip space.
const (
	PoleWidth  = 0.15
	PoleHeight = 0.8
	PoleY      = -0.3

	LargeBladeWidth  = 0.8
	LargeBladeHeight = 0.1

	SmallBladeWidth  = 0.2
	SmallBladeHeight = 0.06

	// HubY is where the blades turn: the top of the pole.
	HubY = PoleY + PoleHeight/2
)

// Angular factors applied to sin(t).
const (
	LargeBladeSpeed = 2.0
	SmallBladeSpeed = -10.0
)

// Part identifies which rectangle a draw item uses.
type Part int

const (
	PartPole Part = iota
	PartLargeBlade
	PartSmallBlade
	PartCount
)

// DrawItem is one draw call: a part and its model transform.
type DrawItem struct {
	Part      Part
	Transform mgl32.Mat4
}

// LargeBladeAngle is the large blade's rotation in radians at t seconds.
func LargeBladeAngle(t float64) float32 {
	return float32(math.Sin(t) * math.Pi * LargeBladeSpeed)
}

// SmallBladeAngle is the small blades' rotation relative to the large blade.
func SmallBladeAngle(t float64) float32 {
	return float32(math.Sin(t) * math.Pi * SmallBladeSpeed)
}

// WindmillDrawList returns the pole, the large blade and the two small blades
// in draw order for elapsed time t.
func WindmillDrawList(t float64) []DrawItem {
	large := LargeBladeAngle(t)
	small := SmallBladeAngle(t)

	hub := mgl32.Translate3D(0, HubY, 0).Mul4(mgl32.HomogRotate3DZ(large))

	items := make([]DrawItem, 0, 4)
	items = append(items,
		DrawItem{Part: PartPole, Transform: mgl32.Translate3D(0, PoleY, 0)},
		DrawItem{Part: PartLargeBlade, Transform: hub},
	)
	for _, x := range []float32{-LargeBladeWidth / 2, LargeBladeWidth / 2} {
		m := hub.Mul4(mgl32.Translate3D(x, 0, 0)).Mul4(mgl32.HomogRotate3DZ(small))
		items = append(items, DrawItem{Part: PartSmallBlade, Transform: m})
	}
	return items
}
