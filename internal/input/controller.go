package input

import "fmt"

// Scheme selects how key events move the controlled shape.
type Scheme string

const (
	// SchemeTap moves one step per key press; auto-repeat is ignored.
	SchemeTap Scheme = "tap"
	// SchemeHeld moves one step per frame for every held direction.
	SchemeHeld Scheme = "held"
	// SchemeMixed steps once on the first press and switches to per-frame
	// movement once the host starts auto-repeating the key.
	SchemeMixed Scheme = "mixed"
)

// ParseScheme validates a scheme name.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeTap, SchemeHeld, SchemeMixed:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("unknown input scheme %q", s)
}

// Bounds is the symmetric box the offset must stay in: |x| <= X and |y| <= Y.
type Bounds struct {
	X, Y float32
}

// NewBounds returns the bounds that keep a shape of half extent shapeHalf
// inside a canvas of half extent canvasHalf.
func NewBounds(canvasHalf, shapeHalf float32) Bounds {
	limit := canvasHalf - shapeHalf
	return Bounds{X: limit, Y: limit}
}

// Contains reports whether (x, y) is inside the bounds.
func (b Bounds) Contains(x, y float32) bool {
	return x >= -b.X && x <= b.X && y >= -b.Y && y <= b.Y
}

func clamp(v, limit float32) float32 {
	if v < -limit {
		return -limit
	}
	if v > limit {
		return limit
	}
	return v
}

// Controller turns directional key events into a bounded 2D offset.
type Controller struct {
	scheme Scheme
	step   float32
	bounds Bounds
	held   KeyState

	x, y float32
}

// NewController creates a controller at the origin.
func NewController(scheme Scheme, step float32, bounds Bounds) *Controller {
	return &Controller{scheme: scheme, step: step, bounds: bounds}
}

// Scheme returns the active control scheme.
func (c *Controller) Scheme() Scheme {
	return c.scheme
}

// Position returns the current offset.
func (c *Controller) Position() (x, y float32) {
	return c.x, c.y
}

// Held reports whether d is currently held.
func (c *Controller) Held(d Direction) bool {
	return c.held.Held(d)
}

// HandleKey applies one key event. Keys that are not arrows are ignored.
func (c *Controller) HandleKey(ev KeyEvent) {
	dir, ok := ev.Key.Direction()
	if !ok {
		return
	}

	switch ev.Action {
	case Release:
		c.held.Clear(dir)
	case Press:
		if c.scheme == SchemeHeld {
			c.held.Set(dir)
			return
		}
		c.Tap(dir)
	case Repeat:
		if c.scheme != SchemeTap {
			c.held.Set(dir)
		}
	}
}

// Tap moves one step in d, clamped to the bounds.
func (c *Controller) Tap(d Direction) {
	switch d {
	case Left:
		c.x = clamp(c.x-c.step, c.bounds.X)
	case Right:
		c.x = clamp(c.x+c.step, c.bounds.X)
	case Up:
		c.y = clamp(c.y+c.step, c.bounds.Y)
	case Down:
		c.y = clamp(c.y-c.step, c.bounds.Y)
	}
}

// Advance applies one frame of held-key movement. A candidate coordinate that
// would leave the bounds is dropped for that axis; opposing keys cancel out.
func (c *Controller) Advance() {
	var dx, dy float32
	if c.held.Held(Left) {
		dx -= c.step
	}
	if c.held.Held(Right) {
		dx += c.step
	}
	if c.held.Held(Up) {
		dy += c.step
	}
	if c.held.Held(Down) {
		dy -= c.step
	}

	if nx := c.x + dx; nx >= -c.bounds.X && nx <= c.bounds.X {
		c.x = nx
	}
	if ny := c.y + dy; ny >= -c.bounds.Y && ny <= c.bounds.Y {
		c.y = ny
	}
}

// Reset returns to the origin and releases every key.
func (c *Controller) Reset() {
	c.x, c.y = 0, 0
	c.held.Reset()
}
