package demos

import (
	"context"
	"io/fs"

	"gldemos/internal/config"
	"gldemos/internal/graphics/renderables/axes"
	"gldemos/internal/graphics/renderables/pyramid"
	renderer "gldemos/internal/graphics/renderer"
	"gldemos/internal/input"
	"gldemos/internal/scene"

	"go.uber.org/zap"
)

// AxisLength is the length of each drawn coordinate axis.
const AxisLength = 1.8

// Pyramid is the orbiting-camera pyramid demo.
type Pyramid struct {
	base
	scene *scene.Pyramid
}

// NewPyramid creates the demo for the window aspect in cfg.
func NewPyramid(cfg *config.Config, assets fs.FS, log *zap.Logger) *Pyramid {
	return &Pyramid{
		base:  newBase(cfg, assets, log),
		scene: scene.NewPyramid(cfg.Aspect()),
	}
}

// Init loads both programs with depth testing on and uploads the geometry.
func (p *Pyramid) Init(ctx context.Context, width, height int) error {
	pyr := pyramid.NewPyramid(p.scene, p.cfg.Shaders.Vertex, p.cfg.Shaders.Fragment, p.cfg.Render.Texture)
	return p.build(ctx, renderer.Options{DepthTest: true}, width, height, pyr, axes.NewAxes(AxisLength))
}

// HandleKey toggles the normal mode on N.
func (p *Pyramid) HandleKey(ev input.KeyEvent) {
	p.scene.HandleKey(ev)
	if ev.Key == input.KeyN && ev.Action == input.Press {
		p.log.Info("normals toggled", zap.Stringer("mode", p.scene.Mesh.Mode()))
	}
}

// Frame draws the pyramid and axes from the camera at elapsed seconds.
func (p *Pyramid) Frame(elapsed float64) {
	p.renderer.Render(renderer.RenderContext{
		Elapsed: elapsed,
		View:    p.scene.View(elapsed),
		Proj:    p.scene.Proj,
	})
}
