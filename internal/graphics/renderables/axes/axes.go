package axes

import (
	"context"
	"io/fs"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/mesh"
	"gldemos/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	VertShader = "axes/axes.vert"
	FragShader = "axes/axes.frag"
)

// Axes draws the x, y and z axes with their own program
type Axes struct {
	length float32
	shader *graphics.Shader
	buffer *graphics.Buffer
}

// NewAxes creates axes of the given length
func NewAxes(length float32) *Axes {
	return &Axes{length: length}
}

// Init initializes the axes rendering system
func (a *Axes) Init(ctx context.Context, assets fs.FS) error {
	var err error
	a.shader, err = graphics.LoadShader(ctx, assets, VertShader, FragShader)
	if err != nil {
		return err
	}
	a.buffer = graphics.NewBuffer(mesh.Axes(a.length), gl.LINES)
	return nil
}

// Render renders the axes with the frame's camera
func (a *Axes) Render(rc renderer.RenderContext) {
	defer profiling.Track("axes.Render")()
	a.shader.Use()
	a.shader.SetMat4("u_view", rc.View)
	a.shader.SetMat4("u_projection", rc.Proj)
	gl.LineWidth(1.0)
	a.buffer.Draw()
}

// Dispose cleans up OpenGL resources
func (a *Axes) Dispose() {
	if a.buffer != nil {
		a.buffer.Delete()
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}
