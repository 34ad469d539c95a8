package overlay

import (
	"context"
	"io/fs"

	"gldemos/internal/graphics"
	renderer "gldemos/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const fontPixels = 18

// Overlay draws static instructional text in the top-left corner
type Overlay struct {
	text          string
	width, height int
	color         mgl32.Vec3
	tr            *graphics.TextRenderer
}

// NewOverlay creates an overlay for a window of width x height pixels
func NewOverlay(text string, width, height int, color mgl32.Vec3) *Overlay {
	return &Overlay{text: text, width: width, height: height, color: color}
}

// ContrastColor picks black or white text for the given background.
func ContrastColor(bg mgl32.Vec4) mgl32.Vec3 {
	if 0.299*bg[0]+0.587*bg[1]+0.114*bg[2] > 0.5 {
		return mgl32.Vec3{0, 0, 0}
	}
	return mgl32.Vec3{1, 1, 1}
}

// Init bakes the font atlas and uploads it
func (o *Overlay) Init(ctx context.Context, assets fs.FS) error {
	atlas, err := graphics.BuildFontAtlas(nil, fontPixels)
	if err != nil {
		return err
	}
	o.tr, err = graphics.NewTextRenderer(ctx, assets, atlas, o.width, o.height)
	return err
}

// Render draws the text
func (o *Overlay) Render(_ renderer.RenderContext) {
	o.tr.Render(o.text, 10, 10+fontPixels, 1, o.color)
}

// Dispose releases the text renderer
func (o *Overlay) Dispose() {
	if o.tr != nil {
		o.tr.Dispose()
	}
}
