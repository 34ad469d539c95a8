// Package assets reads shader sources and other text resources.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
)

// Dir returns a file system rooted at dir.
func Dir(dir string) fs.FS {
	return os.DirFS(dir)
}

// ShaderSources holds the two stage sources of one program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// ReadShaderSources reads the vertex and fragment sources concurrently.
// It fails if either read fails or ctx is done before both finish.
func ReadShaderSources(ctx context.Context, fsys fs.FS, vertexPath, fragmentPath string) (ShaderSources, error) {
	var src ShaderSources
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := readText(gctx, fsys, vertexPath)
		if err != nil {
			return fmt.Errorf("vertex shader: %w", err)
		}
		src.Vertex = s
		return nil
	})
	g.Go(func() error {
		s, err := readText(gctx, fsys, fragmentPath)
		if err != nil {
			return fmt.Errorf("fragment shader: %w", err)
		}
		src.Fragment = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return ShaderSources{}, err
	}
	return src, nil
}

func readText(ctx context.Context, fsys fs.FS, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(data), nil
}
