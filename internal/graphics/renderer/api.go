package renderer

import (
	"context"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Elapsed float64
	View    mgl32.Mat4
	Proj    mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	// Init loads shaders from assets and uploads static geometry.
	Init(ctx context.Context, assets fs.FS) error
	Render(rc RenderContext)
	Dispose()
}
