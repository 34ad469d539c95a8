package pyramid

import (
	"context"
	"io/fs"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/profiling"
	"gldemos/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction of the light used to shade the pyramid, in world space.
var LightDir = mgl32.Vec3{0.4, 1.0, 0.6}.Normalize()

// normalBlock is the index of the normal attribute in the pyramid's blocks.
const normalBlock = 1

// Pyramid uploads the pyramid mesh as four attribute blocks in one buffer
type Pyramid struct {
	scene    *scene.Pyramid
	vertPath string
	fragPath string
	texPath  string

	shader  *graphics.Shader
	buffer  *graphics.Buffer
	texture *graphics.Texture
}

// NewPyramid creates the pyramid renderable for s. texPath may be empty,
// in which case only the vertex colors are drawn.
func NewPyramid(s *scene.Pyramid, vertPath, fragPath, texPath string) *Pyramid {
	return &Pyramid{scene: s, vertPath: vertPath, fragPath: fragPath, texPath: texPath}
}

// Init compiles the program, loads the texture if any and uploads positions,
// normals, colors and texcoords
func (p *Pyramid) Init(ctx context.Context, assets fs.FS) error {
	var err error
	p.shader, err = graphics.LoadShader(ctx, assets, p.vertPath, p.fragPath)
	if err != nil {
		return err
	}
	if p.texPath != "" {
		p.texture, err = graphics.LoadTexture(assets, p.texPath)
		if err != nil {
			p.Dispose()
			return err
		}
	}
	p.buffer = graphics.NewBuffer(p.scene.Mesh.Indexed(), gl.TRIANGLES)
	return nil
}

// Render re-uploads the normal block if the normal mode changed, then draws
func (p *Pyramid) Render(rc renderer.RenderContext) {
	defer profiling.Track("pyramid.Render")()
	if p.scene.TakeNormalsDirty() {
		p.buffer.UpdateAttribute(normalBlock)
	}
	p.shader.Use()
	p.shader.SetMat4("u_model", p.scene.Model)
	p.shader.SetMat4("u_view", rc.View)
	p.shader.SetMat4("u_projection", rc.Proj)
	p.shader.SetVec3("u_lightDir", LightDir)
	p.shader.SetBool("u_useTexture", p.texture != nil)
	if p.texture != nil {
		p.texture.Bind(0)
		p.shader.SetInt("u_texture", 0)
	}
	p.buffer.Draw()
}

// Dispose releases the buffer, texture and program
func (p *Pyramid) Dispose() {
	if p.texture != nil {
		p.texture.Delete()
		p.texture = nil
	}
	if p.buffer != nil {
		p.buffer.Delete()
		p.buffer = nil
	}
	if p.shader != nil {
		p.shader.Delete()
		p.shader = nil
	}
}
