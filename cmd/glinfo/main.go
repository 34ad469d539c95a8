// Command glinfo checks that an OpenGL 4.1 core context can be created and
// prints what the driver reports. It exits non-zero when the demos could not run.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"gldemos/internal/config"
	"gldemos/internal/graphics"
	"gldemos/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()
	defer closer.Close()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintln(os.Stderr, "glinfo:", err)
		closer.Exit(1)
	}
	closer.Bind(logger.Sync)

	surface := graphics.NewSurface(config.WindowConfig{Width: 64, Height: 64, Title: "glinfo", Hidden: true})
	if err := surface.Open(); err != nil {
		surface.Close()
		logger.Log.Error("OpenGL unavailable", zap.Error(err))
		closer.Exit(1)
	}

	fmt.Println("version: ", surface.Version())
	fmt.Println("renderer:", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Println("vendor:  ", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Println("glsl:    ", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	surface.Close()
}
