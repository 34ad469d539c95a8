package scene

import (
	"gldemos/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// RectHalf is the half width and half height of the movable square.
	RectHalf = 0.1
	// CanvasHalf is the half extent of clip space.
	CanvasHalf = 1.0
	// DefaultMoveStep is how far one step moves the square.
	DefaultMoveStep = 0.01
)

// Rectangle is the keyboard-driven square.
type Rectangle struct {
	ctrl *input.Controller
}

// NewRectangle places the square at the origin.
func NewRectangle(scheme input.Scheme, step float32) *Rectangle {
	if step <= 0 {
		step = DefaultMoveStep
	}
	return &Rectangle{
		ctrl: input.NewController(scheme, step, input.NewBounds(CanvasHalf, RectHalf)),
	}
}

// HandleKey forwards a key event to the controller.
func (r *Rectangle) HandleKey(ev input.KeyEvent) {
	r.ctrl.HandleKey(ev)
}

// Advance applies one frame of held-key movement.
func (r *Rectangle) Advance() {
	r.ctrl.Advance()
}

// Offset is the translation uploaded as the move uniform.
func (r *Rectangle) Offset() mgl32.Vec2 {
	x, y := r.ctrl.Position()
	return mgl32.Vec2{x, y}
}
