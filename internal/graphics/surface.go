package graphics

import (
	"errors"
	"fmt"

	"gldemos/internal/config"
	"gldemos/internal/input"
	"gldemos/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the GLFW window and its OpenGL 4.1 core context.
// All methods must be called from the main OS thread.
type Surface struct {
	cfg      config.WindowConfig
	window   *glfw.Window
	glfwUp   bool
	version  string
	onKey    func(input.KeyEvent)
	viewport scene.Viewport
}

// NewSurface prepares a surface; nothing is created until Open.
func NewSurface(cfg config.WindowConfig) *Surface {
	return &Surface{cfg: cfg}
}

// Open creates the window and context and checks that OpenGL is usable.
func (s *Surface) Open() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	s.glfwUp = true

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if s.cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(s.cfg.Width, s.cfg.Height, s.cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	s.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	s.version = gl.GoStr(gl.GetString(gl.VERSION))
	if s.version == "" {
		return errors.New("driver reported no OpenGL version")
	}

	if s.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window.SetKeyCallback(s.keyCallback)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.fitViewport(width, height)
	})
	return nil
}

// Version returns the GL version string of the context.
func (s *Surface) Version() string {
	return s.version
}

// Configure sets the viewport and the clear color.
func (s *Surface) Configure(clear mgl32.Vec4) {
	s.fitViewport(s.window.GetFramebufferSize())
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
}

// Viewport returns the current viewport rectangle.
func (s *Surface) Viewport() scene.Viewport {
	return s.viewport
}

func (s *Surface) fitViewport(fbWidth, fbHeight int) {
	aspect := float32(s.cfg.Width) / float32(s.cfg.Height)
	s.viewport = scene.FitViewport(fbWidth, fbHeight, aspect)
	gl.Viewport(s.viewport.X, s.viewport.Y, s.viewport.Width, s.viewport.Height)
}

// Size returns the logical drawing size from the configuration.
func (s *Surface) Size() (int, int) {
	return s.cfg.Width, s.cfg.Height
}

// SetKeyHandler routes key events to fn.
func (s *Surface) SetKeyHandler(fn func(input.KeyEvent)) {
	s.onKey = fn
}

func (s *Surface) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
	if s.onKey == nil {
		return
	}
	s.onKey(input.KeyEvent{Key: translateKey(key), Action: translateAction(action)})
}

func translateKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyUp:
		return input.KeyArrowUp
	case glfw.KeyDown:
		return input.KeyArrowDown
	case glfw.KeyLeft:
		return input.KeyArrowLeft
	case glfw.KeyRight:
		return input.KeyArrowRight
	case glfw.KeyN:
		return input.KeyN
	case glfw.KeyEscape:
		return input.KeyEscape
	}
	return input.KeyUnknown
}

func translateAction(a glfw.Action) input.Action {
	switch a {
	case glfw.Repeat:
		return input.Repeat
	case glfw.Release:
		return input.Release
	}
	return input.Press
}

// ShouldClose reports whether the user asked to close the window.
func (s *Surface) ShouldClose() bool {
	return s.window == nil || s.window.ShouldClose()
}

// EndFrame presents the frame and delivers pending input events.
func (s *Surface) EndFrame() {
	s.window.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and shuts GLFW down.
func (s *Surface) Close() {
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	if s.glfwUp {
		glfw.Terminate()
		s.glfwUp = false
	}
}
