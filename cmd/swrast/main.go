// Command swrast opens a window and renders an OBJ mesh with the CPU
// rasterizer in the engine and raster packages.
package main

import (
	"fmt"
	"os"

	"github.com/mfritz/swrast/engine"
	"github.com/mfritz/swrast/internal/logx"
	"github.com/mfritz/swrast/internal/profile"
	"github.com/mfritz/swrast/mesh"
	"github.com/mfritz/swrast/present"
)

const (
	defaultMeshPath = "meshes/head.obj"
	width           = 800
	height          = 600
)

func main() {
	path := defaultMeshPath
	switch len(os.Args) {
	case 1:
	case 2:
		path = os.Args[1]
	default:
		usage()
		os.Exit(1)
	}

	boilerPlate()

	m := mesh.Load(path)
	logx.Info("loaded mesh", "path", path, "triangles", m.TriangleCount())

	win := present.NewWindow(width, height, "swrast")
	state := engine.New(win.ColorBuffer(), width, height, m, engine.Config{})
	win.SetFrameFunc(func(w *present.Window) { state.Frame(w) })

	defer dumpProfile()

	if err := win.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "swrast:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [mesh.obj]\n", os.Args[0])
}

func boilerPlate() {
	fmt.Println("swrast — CPU software rasterizer")
}

func dumpProfile() {
	f, err := os.Create("profile.txt")
	if err != nil {
		logx.Error("failed to create profile.txt", "err", err)
		return
	}
	defer f.Close()
	if err := profile.Dump(f); err != nil {
		logx.Error("failed to write profile.txt", "err", err)
	}
}
