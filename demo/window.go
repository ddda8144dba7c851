package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"twotriangles/camera"
	"twotriangles/config"
	"twotriangles/gesture"
)

func InitGui() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
}

// CreateWindow opens the window without keeping its context current; the
// render goroutine claims it.
func CreateWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	glfw.DetachCurrentContext()
	return window, nil
}

// registerEvent wires glfw input to the gesture controller. Callbacks run on
// the main thread, which is the only writer of the camera state.
func registerEvent(window *glfw.Window, ctl *gesture.Controller, st *camera.State, host *surfaceHost,
	cfg config.GestureConfig, log *zap.Logger) {
	w, h := window.GetSize()
	ctl.SetSurfaceSize(w, h)

	// mouse drag stands in for a single-finger touch
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			ctl.OnPointerDown(float32(x), float32(y))
		case glfw.Release:
			ctl.OnPointerUp(float32(x), float32(y))
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		if w.GetMouseButton(glfw.MouseButtonLeft) != glfw.Press {
			return
		}
		ctl.OnPointerMove(float32(xpos), float32(ypos))
	})
	// one wheel notch is one pinch update; scrolling up zooms in
	window.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		if yoff == 0 {
			return
		}
		ctl.OnScaleBegin()
		ctl.OnScale(math32.Pow(cfg.WheelZoomStep, -float32(yoff)))
		ctl.OnScaleEnd()
	})
	window.SetSizeCallback(func(w *glfw.Window, width int, height int) {
		ctl.SetSurfaceSize(width, height)
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		if width == 0 || height == 0 {
			// minimised
			return
		}
		host.Resize(width, height, camera.OrientationOf(width, height))
	})
	window.SetRefreshCallback(func(w *glfw.Window) {
		host.RequestRender()
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyR:
			st.SetAngle(0)
			st.SetEyeDistance(camera.DefaultEyeDistance)
			host.RequestRender()
		}
	})
	window.SetCloseCallback(func(w *glfw.Window) {
		log.Info("shutting down")
	})
}
