package square

import (
	"context"
	"io/fs"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/mesh"
	"gldemos/internal/profiling"
	"gldemos/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Square draws the keyboard-driven square offset by the scene's move uniform
type Square struct {
	scene    *scene.Rectangle
	vertPath string
	fragPath string

	shader *graphics.Shader
	buffer *graphics.Buffer
}

// NewSquare creates a square renderable for s using the given program sources
func NewSquare(s *scene.Rectangle, vertPath, fragPath string) *Square {
	return &Square{scene: s, vertPath: vertPath, fragPath: fragPath}
}

// Init compiles the program and uploads the four corners
func (q *Square) Init(ctx context.Context, assets fs.FS) error {
	var err error
	q.shader, err = graphics.LoadShader(ctx, assets, q.vertPath, q.fragPath)
	if err != nil {
		return err
	}
	q.buffer = graphics.NewBufferForShader(mesh.Square(scene.RectHalf), gl.TRIANGLE_FAN, q.shader)
	return nil
}

// Render draws the square at its current offset
func (q *Square) Render(_ renderer.RenderContext) {
	defer profiling.Track("square.Render")()
	off := q.scene.Offset()
	q.shader.Use()
	q.shader.SetVec2("uMove", off.X(), off.Y())
	q.buffer.Draw()
}

// Dispose releases the buffer and program
func (q *Square) Dispose() {
	if q.buffer != nil {
		q.buffer.Delete()
	}
	if q.shader != nil {
		q.shader.Delete()
	}
}
