package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRectangle(t *testing.T) {
	m := Rectangle(0.8, 0.1, mgl32.Vec4{1, 1, 1, 1})
	if got := m.VertexCount(); got != 4 {
		t.Fatalf("vertex count: got %d, want 4", got)
	}
	if got := m.DrawCount(); got != 6 {
		t.Fatalf("draw count: got %d, want 6", got)
	}
	pos := m.Attributes[0].Data
	if pos[0] != -0.4 || pos[1] != 0.05 {
		t.Fatalf("top left corner: got (%v, %v)", pos[0], pos[1])
	}
	if got := len(m.Attributes[1].Data); got != 16 {
		t.Fatalf("color floats: got %d, want 16", got)
	}
}

func TestSquare(t *testing.T) {
	m := Square(0.1)
	if m.Indices != nil {
		t.Fatal("square is drawn as a fan without indices")
	}
	if got := m.DrawCount(); got != 4 {
		t.Fatalf("draw count: got %d, want 4", got)
	}
}

func TestAxes(t *testing.T) {
	m := Axes(1.8)
	if got := m.DrawCount(); got != 6 {
		t.Fatalf("draw count: got %d, want 6", got)
	}
	if got := m.Attributes[0].Data[3]; got != 1.8 {
		t.Fatalf("x axis end: got %v, want 1.8", got)
	}
}

func TestBlockOffsetsEmpty(t *testing.T) {
	offsets, total := BlockOffsets(nil)
	if len(offsets) != 0 || total != 0 {
		t.Fatalf("got %v, %d", offsets, total)
	}
}
