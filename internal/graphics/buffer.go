package graphics

import (
	"gldemos/internal/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer is a vertex array object backed by one array buffer holding every
// attribute as a contiguous block, plus an optional index buffer.
type Buffer struct {
	vao, vbo, ebo uint32
	mode          uint32
	count         int32
	attrs         []mesh.Attribute
	offsets       []int
}

// NewBuffer uploads m once. Attribute pointers use each attribute's Location.
func NewBuffer(m *mesh.Indexed, mode uint32) *Buffer {
	return newBuffer(m, mode, func(a mesh.Attribute, offset int) {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, 0, uintptr(offset))
	})
}

// NewBufferForShader uploads m and resolves attribute locations by name in s.
func NewBufferForShader(m *mesh.Indexed, mode uint32, s *Shader) *Buffer {
	return newBuffer(m, mode, func(a mesh.Attribute, offset int) {
		s.SetAttribPointer(a.Name, a.Components, 0, offset)
	})
}

func newBuffer(m *mesh.Indexed, mode uint32, pointer func(mesh.Attribute, int)) *Buffer {
	offsets, total := mesh.BlockOffsets(m.Attributes)
	b := &Buffer{
		mode:    mode,
		count:   int32(m.DrawCount()),
		attrs:   m.Attributes,
		offsets: offsets,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, total, nil, gl.STATIC_DRAW)
	for i, a := range m.Attributes {
		if a.ByteLen() > 0 {
			gl.BufferSubData(gl.ARRAY_BUFFER, offsets[i], a.ByteLen(), gl.Ptr(a.Data))
		}
		pointer(a, offsets[i])
	}

	if m.Indices != nil {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// UpdateAttribute re-uploads attribute i from its (possibly mutated) data
// slice. Only that block's byte range is written.
func (b *Buffer) UpdateAttribute(i int) {
	a := b.attrs[i]
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, b.offsets[i], a.ByteLen(), gl.Ptr(a.Data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues one draw call for the whole buffer.
func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	if b.ebo != 0 {
		gl.DrawElements(b.mode, b.count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL handles. It is safe to call twice.
func (b *Buffer) Delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
