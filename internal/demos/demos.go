// Package demos assembles each demo from its scene state and renderables.
package demos

import (
	"context"
	"io/fs"

	"gldemos/internal/config"
	"gldemos/internal/graphics/renderables/overlay"
	renderer "gldemos/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// base holds what every demo shares: its renderer and where it loads from.
type base struct {
	cfg      *config.Config
	assets   fs.FS
	log      *zap.Logger
	renderer *renderer.Renderer
}

func newBase(cfg *config.Config, assets fs.FS, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{cfg: cfg, assets: assets, log: log}
}

// build creates the renderer from rs plus the text overlay, if any, and
// initializes it.
func (b *base) build(ctx context.Context, opts renderer.Options, width, height int, rs ...renderer.Renderable) error {
	if text := b.cfg.Render.Overlay; text != "" {
		color := overlay.ContrastColor(mgl32.Vec4(b.cfg.Render.ClearColor))
		rs = append(rs, overlay.NewOverlay(text, width, height, color))
	}
	b.renderer = renderer.NewRenderer(opts, rs...)
	if err := b.renderer.Init(ctx, b.assets); err != nil {
		b.renderer = nil
		return err
	}
	b.log.Debug("renderer ready", zap.Int("renderables", len(rs)))
	return nil
}

// Dispose releases every GPU resource of the demo.
func (b *base) Dispose() {
	if b.renderer != nil {
		b.renderer.Dispose()
		b.renderer = nil
	}
}
