// Command demo shows two counter-rotating triangles in a desktop window.
// Drag with the left mouse button to spin them, scroll to zoom, R to reset.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"twotriangles/camera"
	"twotriangles/canvas"
	"twotriangles/common/logs"
	"twotriangles/config"
	"twotriangles/gesture"
	"twotriangles/render"
	"twotriangles/state"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := pflag.StringP("config", "c", "", "TOML config file")
	statePath := pflag.String("state", "", "file the rotation angle is kept in (overrides config)")
	debug := pflag.Bool("debug", false, "check GL errors after every draw")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *statePath != "" {
		cfg.State.Path = *statePath
	}
	if cfg.State.Path == "" {
		if cfg.State.Path, err = state.DefaultPath(); err != nil {
			return err
		}
	}
	cfg.Render.Debug = cfg.Render.Debug || *debug

	log, err := logs.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	st := camera.NewState()
	if angle, ok, err := state.Load(cfg.State.Path); err != nil {
		log.Warn("ignoring saved state", zap.Error(err))
	} else if ok {
		st.SetAngle(angle)
		log.Info("restored angle", zap.Float32("angle", angle))
	}

	if err := InitGui(); err != nil {
		return err
	}
	defer glfw.Terminate()
	window, err := CreateWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer := render.New(st, render.Options{
		Sources:    canvas.GLSL410,
		ClearColor: mgl32.Vec4(cfg.Render.ClearColor),
		Debug:      cfg.Render.Debug,
	}, log)
	host := newSurfaceHost(window, renderer, log)
	ctl := gesture.NewController(st, host, log)
	registerEvent(window, ctl, st, host, cfg.Gesture, log)

	fw, fh := window.GetFramebufferSize()
	st.SetOrientation(camera.OrientationOf(fw, fh))
	host.Resize(fw, fh, st.Orientation())

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return host.Run(ctx) })

	// render only when something asked for it
	for !window.ShouldClose() && ctx.Err() == nil {
		glfw.WaitEvents()
	}
	cancel()
	err = g.Wait()

	if serr := state.Save(cfg.State.Path, st.Angle()); serr != nil {
		log.Error("save state", zap.Error(serr))
	} else {
		log.Info("saved angle", zap.Float32("angle", st.Angle()), zap.String("path", cfg.State.Path))
	}
	return err
}
