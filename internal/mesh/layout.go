// Package mesh builds static vertex data for the demos. Nothing here touches GL;
// the graphics package uploads what this package produces.
package mesh

import "github.com/go-gl/mathgl/mgl32"

const float32Bytes = 4

// Attribute is one per-vertex attribute stored as a flat float array.
// Location matches the layout qualifier in the shader.
type Attribute struct {
	Name       string
	Location   uint32
	Components int32
	Data       []float32
}

// ByteLen returns the size of the attribute's data in bytes.
func (a Attribute) ByteLen() int {
	return len(a.Data) * float32Bytes
}

// VertexCount returns how many vertices the attribute describes.
func (a Attribute) VertexCount() int {
	if a.Components == 0 {
		return 0
	}
	return len(a.Data) / int(a.Components)
}

// BlockOffsets returns the byte offset of every attribute when the attributes are
// concatenated block after block into a single buffer, plus the buffer's total size.
func BlockOffsets(attrs []Attribute) ([]int, int) {
	offsets := make([]int, len(attrs))
	total := 0
	for i, a := range attrs {
		offsets[i] = total
		total += a.ByteLen()
	}
	return offsets, total
}

// Indexed is a mesh made of parallel attribute arrays and an optional index list.
// A nil Indices slice means the vertices are drawn in array order.
type Indexed struct {
	Attributes []Attribute
	Indices    []uint16
}

// VertexCount returns the number of vertices of the first attribute.
func (m *Indexed) VertexCount() int {
	if len(m.Attributes) == 0 {
		return 0
	}
	return m.Attributes[0].VertexCount()
}

// DrawCount is the element count passed to the draw call.
func (m *Indexed) DrawCount() int {
	if m.Indices != nil {
		return len(m.Indices)
	}
	return m.VertexCount()
}

func repeatColor(c mgl32.Vec4, n int) []float32 {
	out := make([]float32, 0, n*4)
	for i := 0; i < n; i++ {
		out = append(out, c[0], c[1], c[2], c[3])
	}
	return out
}
