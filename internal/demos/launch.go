package demos

import (
	"context"
	"fmt"
	"io/fs"

	"gldemos/internal/app"
	"gldemos/internal/assets"
	"gldemos/internal/config"
	"gldemos/internal/graphics"
	"gldemos/internal/logger"
	"gldemos/internal/notice"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

// New creates the named demo.
func New(name string, cfg *config.Config, assets fs.FS, log *zap.Logger) (app.Demo, error) {
	switch name {
	case config.DemoRectangle:
		return NewRectangle(cfg, assets, log)
	case config.DemoWindmill:
		return NewWindmill(cfg, assets, log), nil
	case config.DemoPyramid:
		return NewPyramid(cfg, assets, log), nil
	}
	return nil, fmt.Errorf("unknown demo %q", name)
}

// acceptsKeys reports whether the demo reacts to the keyboard.
func acceptsKeys(name string) bool {
	return name != config.DemoWindmill
}

// Launch loads the configuration, opens the window and runs the named demo
// until the window is closed. Must be called from the main OS thread.
func Launch(ctx context.Context, name string, flags *config.Flags) error {
	cfg, err := config.Load(name, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	closer.Bind(logger.Sync)

	log := logger.Named(name)
	log.Info("starting",
		zap.String("shaders", cfg.Shaders.Dir),
		zap.String("scheme", cfg.Input.Scheme),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	demo, err := New(name, cfg, assets.Dir(cfg.Shaders.Dir), log)
	if err != nil {
		return err
	}

	surface := graphics.NewSurface(cfg.Window)
	defer surface.Close()

	a := app.New(surface, demo, app.Options{
		Name:       name,
		ClearColor: mgl32.Vec4(cfg.Render.ClearColor),
		FPSLimit:   cfg.Window.FPSLimit,
		AcceptKeys: acceptsKeys(name),
		Logger:     log,
		Notifier:   notice.NewDialog(log),
	})
	return a.Run(ctx)
}
