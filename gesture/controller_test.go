package gesture

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"twotriangles/camera"
)

type redrawCounter struct{ n int }

func (r *redrawCounter) RequestRender() { r.n++ }

func newTestController(t *testing.T) (*Controller, *camera.State, *redrawCounter) {
	st := camera.NewState()
	r := &redrawCounter{}
	c := NewController(st, r, zaptest.NewLogger(t))
	c.SetSurfaceSize(1000, 2000)
	return c, st, r
}

func TestDragBelowMidline(t *testing.T) {
	c, st, r := newTestController(t)
	c.OnPointerDown(600, 1500)
	c.OnPointerMove(610, 1500)

	assert.InDelta(t, -5.8333, st.Angle(), 1e-4)
	assert.Equal(t, 1, r.n)
	assert.Equal(t, Idle, c.Phase())
}

func TestDragSignInversion(t *testing.T) {
	for _, tc := range []struct {
		name       string
		x, y       float32
		wantDegPer float32
	}{
		// dx=+10, dy=+10 in every case
		{"above right, none inverted", 600, 500, 20},
		{"below left, both inverted", 400, 1500, -20},
		{"below right, dx inverted", 600, 1500, 0},
		{"above left, dy inverted", 400, 500, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, st, _ := newTestController(t)
			c.OnPointerDown(tc.x-10, tc.y-10)
			c.OnPointerMove(tc.x, tc.y)
			assert.InDelta(t, tc.wantDegPer*TouchScaleFactor, st.Angle(), 1e-4)
		})
	}
}

func TestDragAccumulatesWithoutReset(t *testing.T) {
	c, st, r := newTestController(t)
	c.OnPointerDown(600, 100)
	want := float32(0)
	x := float32(600)
	for i := 0; i < 2000; i++ {
		x += 3
		c.OnPointerMove(x, 100)
		want += 3 * TouchScaleFactor
	}
	assert.InDelta(t, want, st.Angle(), 0.5)
	assert.Greater(t, st.Angle(), float32(360), "angle is not wrapped")
	assert.Equal(t, 2000, r.n)
}

func TestScalingSuppressesDrag(t *testing.T) {
	c, st, r := newTestController(t)
	c.OnPointerDown(600, 100)
	c.OnScaleBegin()
	assert.Equal(t, Scaling, c.Phase())

	c.OnPointerMove(700, 100)
	assert.Equal(t, float32(0), st.Angle())
	assert.Equal(t, 0, r.n)

	c.OnScaleEnd()
	assert.Equal(t, Idle, c.Phase())

	// previous position tracked the swallowed move
	c.OnPointerMove(710, 100)
	assert.InDelta(t, 10*TouchScaleFactor, st.Angle(), 1e-4)
}

func TestPinchClampsToNearLimit(t *testing.T) {
	c, st, r := newTestController(t)
	c.OnScaleBegin()
	assert.True(t, c.OnScale(0.05))
	c.OnScaleEnd()

	assert.Equal(t, float32(1.5), st.EyeDistance())
	assert.InDelta(t, 0.1, c.ScaleFactor(), 1e-6)
	assert.Equal(t, 1, r.n)
}

func TestPinchUsesIncrementalFactor(t *testing.T) {
	c, st, _ := newTestController(t)
	c.OnScaleBegin()
	c.OnScale(2)
	c.OnScale(1.5)
	assert.InDelta(t, 9, st.EyeDistance(), 1e-5)
	assert.InDelta(t, 3, c.ScaleFactor(), 1e-5)
}

func TestPinchLandscapeLimits(t *testing.T) {
	c, st, _ := newTestController(t)
	st.SetOrientation(camera.Landscape)
	c.OnScaleBegin()
	c.OnScale(4)
	assert.Equal(t, float32(9), st.EyeDistance())
	c.OnScale(0.01)
	assert.Equal(t, float32(2.5), st.EyeDistance())
}

func TestPinchRejectsBadFactor(t *testing.T) {
	c, st, r := newTestController(t)
	assert.False(t, c.OnScale(0))
	assert.False(t, c.OnScale(-2))
	assert.Equal(t, camera.DefaultEyeDistance, st.EyeDistance())
	assert.Equal(t, 0, r.n)
}

func TestPinchBoundsHold(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, o := range []camera.Orientation{camera.Portrait, camera.Landscape} {
		c, st, _ := newTestController(t)
		st.SetOrientation(o)
		lim := camera.LimitsFor(o)
		c.OnScaleBegin()
		for i := 0; i < 5000; i++ {
			c.OnScale(0.2 + rng.Float32()*3)
			assert.GreaterOrEqual(t, c.ScaleFactor(), MinScaleFactor)
			assert.LessOrEqual(t, c.ScaleFactor(), MaxScaleFactor)
			assert.GreaterOrEqual(t, st.EyeDistance(), lim.Near)
			assert.LessOrEqual(t, st.EyeDistance(), lim.Far)
		}
		c.OnScaleEnd()
	}
}
