//go:build darwin || linux || windows

// Command demo_mobile is the gomobile build of the two-triangle sample:
//
//	gomobile build twotriangles/demo_mobile
//
// One finger spins the triangles, two fingers pinch-zoom the camera.
package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"twotriangles/camera"
	"twotriangles/canvas"
	"twotriangles/common/logs"
	"twotriangles/config"
	"twotriangles/gesture"
	"twotriangles/render"
	"twotriangles/state"
)

func main() {
	cfg := config.NewConfig()
	log, err := logs.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	st := camera.NewState()
	// angle saved when the surface goes away, restored when it comes back
	var saved []byte

	app.Main(func(a app.App) {
		renderer := render.New(st, render.Options{
			Sources:    canvas.GLSL100,
			ClearColor: mgl32.Vec4(cfg.Render.ClearColor),
			Debug:      cfg.Render.Debug,
		}, log)
		ctl := gesture.NewController(st, gesture.RedrawFunc(func() { a.Send(paint.Event{}) }), log)
		pinch := gesture.NewPinchDetector(ctl)

		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if saved != nil {
						if angle, err := state.Decode(saved); err != nil {
							log.Warn("ignoring saved state", zap.Error(err))
						} else {
							st.SetAngle(angle)
						}
					}
					if err := renderer.OnSurfaceCreated(glctx); err != nil {
						log.Fatal("build shapes", zap.Error(err))
					}
					if sz.WidthPx > 0 && sz.HeightPx > 0 {
						renderer.OnSurfaceChanged(sz.WidthPx, sz.HeightPx, st.Orientation())
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if saved, err = state.Encode(st.Angle()); err != nil {
						log.Error("save state", zap.Error(err))
					}
					renderer.OnSurfaceDestroyed()
					glctx = nil
				}
			case size.Event:
				sz = e
				o := orientationOf(e)
				st.SetOrientation(o)
				ctl.SetSurfaceSize(e.WidthPx, e.HeightPx)
				if glctx != nil && e.WidthPx > 0 && e.HeightPx > 0 {
					renderer.OnSurfaceChanged(e.WidthPx, e.HeightPx, o)
				}
			case paint.Event:
				if glctx == nil {
					continue
				}
				renderer.OnDrawFrame()
				a.Publish()
			case touch.Event:
				onTouch(e, ctl, pinch)
			}
		}
	})
}

func orientationOf(e size.Event) camera.Orientation {
	switch e.Orientation {
	case size.OrientationLandscape:
		return camera.Landscape
	case size.OrientationPortrait:
		return camera.Portrait
	}
	return camera.OrientationOf(e.WidthPx, e.HeightPx)
}

// onTouch feeds the pinch detector first, then lets the first finger drive
// rotation.
func onTouch(e touch.Event, ctl *gesture.Controller, pinch *gesture.PinchDetector) {
	var ty gesture.TouchType
	switch e.Type {
	case touch.TypeBegin:
		ty = gesture.TouchBegin
	case touch.TypeMove:
		ty = gesture.TouchMove
	case touch.TypeEnd:
		ty = gesture.TouchEnd
	default:
		return
	}
	pinch.Touch(int64(e.Sequence), ty, e.X, e.Y)

	if e.Sequence != 0 {
		return
	}
	switch ty {
	case gesture.TouchBegin:
		ctl.OnPointerDown(e.X, e.Y)
	case gesture.TouchMove:
		ctl.OnPointerMove(e.X, e.Y)
	case gesture.TouchEnd:
		ctl.OnPointerUp(e.X, e.Y)
	}
}
