// Package app drives one demo: startup, the per-frame loop and teardown.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gldemos/internal/input"
	"gldemos/internal/profiling"
	"gldemos/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	// ErrCapabilityUnavailable means the window or GL context could not be created.
	ErrCapabilityUnavailable = errors.New("graphics capability unavailable")
	// ErrInitialization means shader loading or geometry setup failed.
	ErrInitialization = errors.New("initialization failed")
)

// State is the app lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Surface is the drawable window.
type Surface interface {
	Open() error
	Configure(clear mgl32.Vec4)
	Size() (width, height int)
	SetKeyHandler(fn func(input.KeyEvent))
	ShouldClose() bool
	EndFrame()
}

// Demo is one scene: its GPU resources, input handling and frame drawing.
type Demo interface {
	Init(ctx context.Context, width, height int) error
	HandleKey(ev input.KeyEvent)
	Frame(elapsed float64)
	Dispose()
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(title, message string)
}

// Options configures an App.
type Options struct {
	Name       string
	ClearColor mgl32.Vec4
	FPSLimit   int
	AcceptKeys bool
	Logger     *zap.Logger
	Notifier   Notifier
	Clock      *scene.Clock
}

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App owns the surface and the demo and runs the frame loop.
type App struct {
	surface  Surface
	demo     Demo
	opts     Options
	log      *zap.Logger
	clock    *scene.Clock
	limiter  *FPSLimiter
	state    State
	frames   uint64
	disposed bool
}

// New creates an app in the uninitialized state.
func New(surface Surface, demo Demo, opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = scene.NewClock()
	}
	return &App{
		surface: surface,
		demo:    demo,
		opts:    opts,
		log:     log,
		clock:   clock,
		limiter: NewFPSLimiter(opts.FPSLimit),
	}
}

// State returns the lifecycle state.
func (a *App) State() State {
	return a.state
}

// Frames returns how many frames have been drawn.
func (a *App) Frames() uint64 {
	return a.frames
}

// Start runs the one-time startup sequence. On failure the app logs the
// error, shows one notice and stays failed for good.
func (a *App) Start(ctx context.Context) error {
	switch a.state {
	case StateRunning:
		a.log.Warn("already initialized")
		return nil
	case StateFailed:
		return fmt.Errorf("%s: %w", a.opts.Name, ErrInitialization)
	}

	if err := a.start(ctx); err != nil {
		a.state = StateFailed
		a.log.Error("failed to initialize program", zap.String("demo", a.opts.Name), zap.Error(err))
		if a.opts.Notifier != nil {
			a.opts.Notifier.Notify(a.opts.Name, "Failed to initialize program: "+err.Error())
		}
		return err
	}
	a.state = StateRunning
	return nil
}

func (a *App) start(ctx context.Context) error {
	if err := a.surface.Open(); err != nil {
		return fmt.Errorf("%w: %w", ErrCapabilityUnavailable, err)
	}
	if v, ok := a.surface.(interface{ Version() string }); ok {
		a.log.Info("context created", zap.String("gl", v.Version()))
	}
	a.surface.Configure(a.opts.ClearColor)

	width, height := a.surface.Size()
	begin := time.Now()
	if err := a.demo.Init(ctx, width, height); err != nil {
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	a.log.Info("demo initialized",
		zap.String("demo", a.opts.Name),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Duration("took", time.Since(begin)))

	if a.opts.AcceptKeys {
		a.surface.SetKeyHandler(a.demo.HandleKey)
	}
	a.clock.Start()
	return nil
}

// Frame advances one frame: draw at the current elapsed time, present,
// deliver input, then wait for the frame pacing.
func (a *App) Frame() {
	if a.state != StateRunning {
		return
	}
	profiling.ResetFrame()
	begin := time.Now()

	a.demo.Frame(a.clock.Elapsed())
	a.surface.EndFrame()
	a.frames++

	if took := time.Since(begin); took > slowFrame {
		a.log.Warn("slow frame", zap.Duration("took", took), zap.String("top", profiling.TopN(3)))
	}
	a.limiter.Wait()
}

// Run starts the app if needed and draws frames until the window closes or
// ctx is done. GPU resources are released before it returns.
func (a *App) Run(ctx context.Context) error {
	if a.state != StateRunning {
		if err := a.Start(ctx); err != nil {
			return err
		}
	}
	defer a.dispose()

	for !a.surface.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		a.Frame()
	}
	a.log.Info("demo stopped", zap.String("demo", a.opts.Name), zap.Uint64("frames", a.frames))
	return nil
}

func (a *App) dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.demo.Dispose()
}
