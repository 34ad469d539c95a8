package windmill

import (
	"context"
	"io/fs"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/mesh"
	"gldemos/internal/profiling"
	"gldemos/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	PoleColor       = mgl32.Vec4{0.65, 0.45, 0.25, 1.0}
	LargeBladeColor = mgl32.Vec4{1.0, 1.0, 1.0, 1.0}
	SmallBladeColor = mgl32.Vec4{0.65, 0.65, 0.65, 1.0}
)

// Windmill draws the pole and the rotating blades from one rectangle buffer per part
type Windmill struct {
	vertPath string
	fragPath string

	shader *graphics.Shader
	parts  [scene.PartCount]*graphics.Buffer
}

// NewWindmill creates the windmill renderable
func NewWindmill(vertPath, fragPath string) *Windmill {
	return &Windmill{vertPath: vertPath, fragPath: fragPath}
}

// Init compiles the program and uploads the three rectangles
func (w *Windmill) Init(ctx context.Context, assets fs.FS) error {
	var err error
	w.shader, err = graphics.LoadShader(ctx, assets, w.vertPath, w.fragPath)
	if err != nil {
		return err
	}
	w.parts[scene.PartPole] = graphics.NewBuffer(mesh.Rectangle(scene.PoleWidth, scene.PoleHeight, PoleColor), gl.TRIANGLES)
	w.parts[scene.PartLargeBlade] = graphics.NewBuffer(mesh.Rectangle(scene.LargeBladeWidth, scene.LargeBladeHeight, LargeBladeColor), gl.TRIANGLES)
	w.parts[scene.PartSmallBlade] = graphics.NewBuffer(mesh.Rectangle(scene.SmallBladeWidth, scene.SmallBladeHeight, SmallBladeColor), gl.TRIANGLES)
	return nil
}

// Render issues one draw call per item of the scene's draw list
func (w *Windmill) Render(rc renderer.RenderContext) {
	defer profiling.Track("windmill.Render")()
	w.shader.Use()
	for _, item := range scene.WindmillDrawList(rc.Elapsed) {
		w.shader.SetMat4("u_transform", item.Transform)
		w.parts[item.Part].Draw()
	}
}

// Dispose releases the buffers and program
func (w *Windmill) Dispose() {
	for _, b := range w.parts {
		if b != nil {
			b.Delete()
		}
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}
