package graphics

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text shader sources, relative to the shader root.
const (
	TextVertShader = "overlay/text.vert"
	TextFragShader = "overlay/text.frag"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX, AtlasY float32
	Width, Height  float32
	// Offset from the pen position on the baseline
	BearingX, BearingY float32
	Advance            float32
}

// FontAtlas is an alpha atlas of the printable ASCII range and its glyph table
type FontAtlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
}

// BuildFontAtlas rasterizes printable ASCII from a TrueType/OpenType font at
// the given pixel size. A nil ttf uses the Go Regular font.
func BuildFontAtlas(ttf []byte, fontPixels int) (*FontAtlas, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	const atlasW = 512
	padding := 1

	// First pass: pack in rows to find the atlas height
	rowH := face.Metrics().Height.Ceil() + padding
	x, atlasH := 0, rowH
	for r := rune(32); r <= 126; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if x+dr.Dx()+padding > atlasW {
			x = 0
			atlasH += rowH
		}
		x += dr.Dx() + padding
	}

	atlas := &FontAtlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasW, atlasH)),
		Glyphs: make(map[rune]Glyph),
	}

	// Second pass: draw glyphs and record metrics
	x, y := 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if x+gw+padding > atlasW {
			x = 0
			y += rowH
		}
		if gw > 0 && gh > 0 {
			draw.Draw(atlas.Image, image.Rect(x, y, x+gw, y+gh), mask, maskp, draw.Src)
		}
		atlas.Glyphs[r] = Glyph{
			AtlasX:   float32(x),
			AtlasY:   float32(y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  float32(math.Round(float64(advance) / 64.0)),
		}
		x += gw + padding
	}
	return atlas, nil
}

// TextRenderer draws strings in window pixel coordinates (top-left origin)
type TextRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao, vbo   uint32
}

// NewTextRenderer uploads the atlas and loads the text shader from fsys
func NewTextRenderer(ctx context.Context, fsys fs.FS, atlas *FontAtlas, width, height int) (*TextRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := LoadShader(ctx, fsys, TextVertShader, TextFragShader)
	if err != nil {
		return nil, err
	}
	tr := &TextRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1),
	}
	tr.initGL()
	return tr, nil
}

func (tr *TextRenderer) initGL() {
	b := tr.atlas.Image.Bounds()
	gl.GenTextures(1, &tr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(tr.atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &tr.vao)
	gl.GenBuffers(1, &tr.vbo)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render draws text with its baseline starting at (x, y)
func (tr *TextRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	verts := tr.atlas.Layout(text, x, y, scale)
	if len(verts) == 0 {
		return
	}

	depth := gl.IsEnabled(gl.DEPTH_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	tr.shader.Use()
	tr.shader.SetVec3("textColor", color)
	tr.shader.SetMat4("projection", tr.projection)
	tr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.texture)
	gl.BindVertexArray(tr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
	}
}

// Dispose releases the texture, buffers and program
func (tr *TextRenderer) Dispose() {
	if tr.texture != 0 {
		gl.DeleteTextures(1, &tr.texture)
		tr.texture = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	tr.shader.Delete()
}

// Layout builds two textured triangles per visible glyph: x, y, u, v per vertex.
// Unknown runes advance by the width of a space.
func (a *FontAtlas) Layout(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Bounds().Dx())
	ah := float32(a.Image.Bounds().Dy())
	verts := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += a.Glyphs[' '].Advance * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			verts = append(verts,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}
