package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	tests := []struct {
		demo   string
		width  int
		clear  [4]float32
		vertex string
	}{
		{DemoRectangle, 600, [4]float32{0, 0, 0, 1}, "rectangle/shVert.glsl"},
		{DemoWindmill, 700, [4]float32{0.1, 0.2, 0.3, 1}, "windmill/shVert.glsl"},
		{DemoPyramid, 700, [4]float32{0.7, 0.8, 0.9, 1}, "pyramid/shVert.glsl"},
	}
	for _, tt := range tests {
		cfg, err := Default(tt.demo)
		if err != nil {
			t.Fatalf("%s: %v", tt.demo, err)
		}
		if cfg.Window.Width != tt.width || cfg.Window.Height != tt.width {
			t.Errorf("%s: size %dx%d, want %dx%d", tt.demo, cfg.Window.Width, cfg.Window.Height, tt.width, tt.width)
		}
		if cfg.Render.ClearColor != tt.clear {
			t.Errorf("%s: clear color %v, want %v", tt.demo, cfg.Render.ClearColor, tt.clear)
		}
		if cfg.Shaders.Vertex != tt.vertex {
			t.Errorf("%s: vertex shader %s, want %s", tt.demo, cfg.Shaders.Vertex, tt.vertex)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: default config invalid: %v", tt.demo, err)
		}
	}
}

func TestDefaultUnknownDemo(t *testing.T) {
	if _, err := Default("teapot"); err == nil {
		t.Fatal("expected error for unknown demo")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "rectangle.yaml")

	yamlContent := `
window:
  width: 800
  fps_limit: 60
input:
  scheme: tap
  move_step: 0.05
logging:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(DemoRectangle, &Flags{Config: configPath})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	// Unset keys keep their defaults.
	if cfg.Window.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Window.FPSLimit)
	}
	if cfg.Input.Scheme != "tap" || cfg.Input.MoveStep != 0.05 {
		t.Errorf("unexpected input config %+v", cfg.Input)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "cfg.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-width", "1024", "-debug", "-scheme", "held"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(DemoWindmill, f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Window.Width)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	if cfg.Input.Scheme != "held" {
		t.Errorf("expected held scheme, got %s", cfg.Input.Scheme)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("input:\n  scheme: joystick\nwindow:\n  width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(DemoPyramid, &Flags{Config: configPath}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("window: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(DemoPyramid, &Flags{Config: configPath}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg, err := Default(DemoPyramid)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Window.FPSLimit = 144
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(DemoPyramid, &Flags{Config: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Window.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", loaded.Window.FPSLimit)
	}
}

func TestAspect(t *testing.T) {
	cfg := &Config{Window: WindowConfig{Width: 800, Height: 400}}
	if got := cfg.Aspect(); got != 2 {
		t.Errorf("aspect: got %v, want 2", got)
	}
}
