package assets

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestReadShaderSources(t *testing.T) {
	fsys := fstest.MapFS{
		"demo/shVert.glsl": {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"demo/shFrag.glsl": {Data: []byte("#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1); }\n")},
	}
	src, err := ReadShaderSources(context.Background(), fsys, "demo/shVert.glsl", "demo/shFrag.glsl")
	if err != nil {
		t.Fatalf("ReadShaderSources: %v", err)
	}
	if src.Vertex != string(fsys["demo/shVert.glsl"].Data) {
		t.Errorf("vertex source mismatch: %q", src.Vertex)
	}
	if src.Fragment != string(fsys["demo/shFrag.glsl"].Data) {
		t.Errorf("fragment source mismatch: %q", src.Fragment)
	}
}

func TestReadShaderSourcesMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"shVert.glsl": {Data: []byte("v")},
	}
	_, err := ReadShaderSources(context.Background(), fsys, "shVert.glsl", "shFrag.glsl")
	if err == nil {
		t.Fatal("expected error for missing fragment shader")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestReadShaderSourcesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fsys := fstest.MapFS{
		"a": {Data: []byte("a")},
		"b": {Data: []byte("b")},
	}
	if _, err := ReadShaderSources(ctx, fsys, "a", "b"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.glsl"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := fs.ReadFile(Dir(dir), "x.glsl")
	if err != nil || string(data) != "x" {
		t.Fatalf("got %q, %v", data, err)
	}
}
