package mesh

import "github.com/go-gl/mathgl/mgl32"

// Rectangle returns a width x height quad centered on the origin with a single
// color. Positions are 2D; the quad is drawn as two indexed triangles.
func Rectangle(width, height float32, color mgl32.Vec4) *Indexed {
	hw, hh := width/2, height/2
	positions := []float32{
		-hw, hh, // top left
		-hw, -hh, // bottom left
		hw, -hh, // bottom right
		hw, hh, // top right
	}
	return &Indexed{
		Attributes: []Attribute{
			{Name: "a_position", Location: 0, Components: 2, Data: positions},
			{Name: "a_color", Location: 1, Components: 4, Data: repeatColor(color, 4)},
		},
		Indices: []uint16{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

// Square returns the four corners of a square of the given half extent,
// counter-clockwise from the bottom left, for drawing as a triangle fan.
func Square(half float32) *Indexed {
	return &Indexed{
		Attributes: []Attribute{
			{Name: "aPos", Location: 0, Components: 3, Data: []float32{
				-half, -half, 0,
				half, -half, 0,
				half, half, 0,
				-half, half, 0,
			}},
		},
	}
}

// Axes returns line segments from the origin along +x, +y and +z, colored
// red, green and blue.
func Axes(length float32) *Indexed {
	positions := []float32{
		0, 0, 0, length, 0, 0,
		0, 0, 0, 0, length, 0,
		0, 0, 0, 0, 0, length,
	}
	colors := []float32{
		1, 0, 0, 1, 1, 0, 0, 1,
		0, 1, 0, 1, 0, 1, 0, 1,
		0, 0, 1, 1, 0, 0, 1, 1,
	}
	return &Indexed{
		Attributes: []Attribute{
			{Name: "a_position", Location: 0, Components: 3, Data: positions},
			{Name: "a_color", Location: 1, Components: 4, Data: colors},
		},
	}
}
