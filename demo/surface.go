package main

import (
	"context"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"twotriangles/camera"
	"twotriangles/canvas/glcore"
	"twotriangles/render"
)

type surfaceSize struct {
	width, height int
	orientation   camera.Orientation
}

// surfaceHost runs the renderer on its own OS thread. The input side talks
// to it only through the two coalescing channels below.
type surfaceHost struct {
	window   *glfw.Window
	renderer *render.Renderer
	log      *zap.Logger

	redraw chan struct{}
	resize chan surfaceSize
}

func newSurfaceHost(window *glfw.Window, renderer *render.Renderer, log *zap.Logger) *surfaceHost {
	return &surfaceHost{
		window:   window,
		renderer: renderer,
		log:      log,
		redraw:   make(chan struct{}, 1),
		resize:   make(chan surfaceSize, 1),
	}
}

// RequestRender marks the surface dirty. Requests made before the next frame
// collapse into one.
func (h *surfaceHost) RequestRender() {
	select {
	case h.redraw <- struct{}{}:
	default:
	}
}

// Resize replaces any resize the render goroutine has not picked up yet.
func (h *surfaceHost) Resize(width, height int, o camera.Orientation) {
	sz := surfaceSize{width: width, height: height, orientation: o}
	for {
		select {
		case h.resize <- sz:
			return
		default:
		}
		select {
		case <-h.resize:
		default:
		}
	}
}

func (h *surfaceHost) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	// wake the main loop out of WaitEvents however we leave
	defer glfw.PostEmptyEvent()

	h.window.MakeContextCurrent()
	defer glfw.DetachCurrentContext()

	glctx, err := glcore.New()
	if err != nil {
		return err
	}
	defer glctx.Release()
	h.log.Info("opengl ready", zap.String("version", glcore.Version()))

	if err := h.renderer.OnSurfaceCreated(glctx); err != nil {
		return err
	}
	defer h.renderer.OnSurfaceDestroyed()

	for {
		select {
		case <-ctx.Done():
			return nil
		case sz := <-h.resize:
			h.renderer.OnSurfaceChanged(sz.width, sz.height, sz.orientation)
			h.draw()
		case <-h.redraw:
			h.draw()
		}
	}
}

func (h *surfaceHost) draw() {
	h.renderer.OnDrawFrame()
	h.window.SwapBuffers()
}
