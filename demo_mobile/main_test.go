//go:build darwin || linux || windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"twotriangles/camera"
	"twotriangles/gesture"
)

func TestOrientationOf(t *testing.T) {
	assert.Equal(t, camera.Landscape, orientationOf(size.Event{Orientation: size.OrientationLandscape, WidthPx: 10, HeightPx: 20}))
	assert.Equal(t, camera.Portrait, orientationOf(size.Event{Orientation: size.OrientationPortrait, WidthPx: 20, HeightPx: 10}))
	assert.Equal(t, camera.Landscape, orientationOf(size.Event{WidthPx: 20, HeightPx: 10}))
}

func TestOnTouch(t *testing.T) {
	st := camera.NewState()
	ctl := gesture.NewController(st, gesture.RedrawFunc(func() {}), zaptest.NewLogger(t))
	ctl.SetSurfaceSize(1000, 2000)
	pinch := gesture.NewPinchDetector(ctl)

	onTouch(touch.Event{Sequence: 0, Type: touch.TypeBegin, X: 600, Y: 500}, ctl, pinch)
	onTouch(touch.Event{Sequence: 0, Type: touch.TypeMove, X: 610, Y: 500}, ctl, pinch)
	assert.InDelta(t, 10*gesture.TouchScaleFactor, st.Angle(), 1e-4)

	// second finger turns it into a pinch; the first finger stops rotating
	onTouch(touch.Event{Sequence: 1, Type: touch.TypeBegin, X: 810, Y: 500}, ctl, pinch)
	assert.Equal(t, gesture.Scaling, ctl.Phase())
	onTouch(touch.Event{Sequence: 1, Type: touch.TypeMove, X: 1010, Y: 500}, ctl, pinch)
	onTouch(touch.Event{Sequence: 0, Type: touch.TypeMove, X: 610, Y: 500}, ctl, pinch)
	assert.InDelta(t, 10*gesture.TouchScaleFactor, st.Angle(), 1e-4)
	assert.InDelta(t, 6, st.EyeDistance(), 1e-4)

	onTouch(touch.Event{Sequence: 1, Type: touch.TypeEnd, X: 1010, Y: 500}, ctl, pinch)
	assert.Equal(t, gesture.Idle, ctl.Phase())
}
