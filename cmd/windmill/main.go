package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"gldemos/internal/config"
	"gldemos/internal/demos"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()
	defer closer.Close()

	if err := demos.Launch(context.Background(), config.DemoWindmill, flags); err != nil {
		fmt.Fprintln(os.Stderr, "windmill:", err)
		closer.Exit(1)
	}
}
