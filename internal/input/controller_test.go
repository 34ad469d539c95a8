package input

import (
	"math/rand"
	"testing"
)

const step = 0.01

func newTestController(scheme Scheme) *Controller {
	return NewController(scheme, step, NewBounds(1.0, 0.1))
}

func TestNewBounds(t *testing.T) {
	b := NewBounds(1.0, 0.1)
	if b.X != 0.9 || b.Y != 0.9 {
		t.Fatalf("got %+v, want 0.9 both axes", b)
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range []string{"tap", "held", "mixed"} {
		if _, err := ParseScheme(s); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
	if _, err := ParseScheme("joystick"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestTapStep(t *testing.T) {
	c := newTestController(SchemeTap)
	c.HandleKey(KeyEvent{Key: KeyArrowRight, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyArrowUp, Action: Press})
	x, y := c.Position()
	if x != step || y != step {
		t.Fatalf("after one tap right and up: got (%v, %v)", x, y)
	}

	// Auto-repeat does not move in tap mode and does not mark the key held.
	c.HandleKey(KeyEvent{Key: KeyArrowRight, Action: Repeat})
	c.Advance()
	if nx, _ := c.Position(); nx != x {
		t.Fatalf("repeat moved the shape: %v -> %v", x, nx)
	}
}

func TestNonDirectionKeysIgnored(t *testing.T) {
	c := newTestController(SchemeMixed)
	c.HandleKey(KeyEvent{Key: KeyN, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyUnknown, Action: Repeat})
	c.Advance()
	if x, y := c.Position(); x != 0 || y != 0 {
		t.Fatalf("got (%v, %v), want origin", x, y)
	}
	for d := Direction(0); d < DirectionCount; d++ {
		if c.Held(d) {
			t.Fatalf("%v held after non-direction keys", d)
		}
	}
}

func TestMixedRepeatMarksHeld(t *testing.T) {
	c := newTestController(SchemeMixed)
	c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Press})
	if c.Held(Left) {
		t.Fatal("first press must not mark held")
	}
	c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Repeat})
	if !c.Held(Left) {
		t.Fatal("repeat must mark held")
	}
	c.Advance()
	c.Advance()
	x, _ := c.Position()
	if want := float32(-step - step - step); x < want-1e-6 || x > want+1e-6 {
		t.Fatalf("got x=%v, want %v", x, want)
	}
	c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Release})
	if c.Held(Left) {
		t.Fatal("release must clear held")
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	c := newTestController(SchemeHeld)
	for i := 0; i < 7; i++ {
		c.HandleKey(KeyEvent{Key: KeyArrowUp, Action: Press})
		c.Advance()
		c.HandleKey(KeyEvent{Key: KeyArrowUp, Action: Release})
	}
	x0, y0 := c.Position()

	c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyArrowRight, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyArrowUp, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyArrowDown, Action: Press})
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	if x, y := c.Position(); x != x0 || y != y0 {
		t.Fatalf("opposing keys moved the shape: (%v, %v) -> (%v, %v)", x0, y0, x, y)
	}
}

func TestHeldStopsAtBounds(t *testing.T) {
	c := newTestController(SchemeHeld)
	c.HandleKey(KeyEvent{Key: KeyArrowRight, Action: Press})
	c.HandleKey(KeyEvent{Key: KeyArrowDown, Action: Press})
	for i := 0; i < 500; i++ {
		c.Advance()
	}
	x, y := c.Position()
	if x > 0.9 || x < 0.88 {
		t.Fatalf("x=%v, want just inside 0.9", x)
	}
	if y < -0.9 || y > -0.88 {
		t.Fatalf("y=%v, want just inside -0.9", y)
	}
}

func TestTapClampsToBounds(t *testing.T) {
	c := newTestController(SchemeTap)
	for i := 0; i < 500; i++ {
		c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Press})
		c.HandleKey(KeyEvent{Key: KeyArrowLeft, Action: Release})
	}
	if x, _ := c.Position(); x != -0.9 {
		t.Fatalf("x=%v, want clamp at -0.9", x)
	}
}

func TestRandomInputStaysInBounds(t *testing.T) {
	keys := []Key{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight, KeyN}
	actions := []Action{Press, Repeat, Release}
	bounds := NewBounds(1.0, 0.1)

	for _, scheme := range []Scheme{SchemeTap, SchemeHeld, SchemeMixed} {
		rng := rand.New(rand.NewSource(42))
		c := NewController(scheme, 0.037, bounds)
		for i := 0; i < 20000; i++ {
			c.HandleKey(KeyEvent{Key: keys[rng.Intn(len(keys))], Action: actions[rng.Intn(len(actions))]})
			if rng.Intn(2) == 0 {
				c.Advance()
			}
			if x, y := c.Position(); !bounds.Contains(x, y) {
				t.Fatalf("%s: step %d left bounds at (%v, %v)", scheme, i, x, y)
			}
		}
	}
}

func TestReset(t *testing.T) {
	c := newTestController(SchemeHeld)
	c.HandleKey(KeyEvent{Key: KeyArrowUp, Action: Press})
	c.Advance()
	c.Reset()
	if x, y := c.Position(); x != 0 || y != 0 || c.Held(Up) {
		t.Fatalf("reset left (%v, %v) held=%v", x, y, c.Held(Up))
	}
}
