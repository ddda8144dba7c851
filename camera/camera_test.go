package camera

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLimitsFor(t *testing.T) {
	assert.Equal(t, Limits{Near: 1.5, Far: 12}, LimitsFor(Portrait))
	assert.Equal(t, Limits{Near: 2.5, Far: 9}, LimitsFor(Landscape))
}

func TestOrientationOf(t *testing.T) {
	assert.Equal(t, Portrait, OrientationOf(720, 1280))
	assert.Equal(t, Landscape, OrientationOf(1280, 720))
	assert.Equal(t, Portrait, OrientationOf(800, 800))
	assert.Equal(t, "landscape", Landscape.String())
}

func TestStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, float32(0), s.Angle())
	assert.Equal(t, DefaultEyeDistance, s.EyeDistance())
	assert.Equal(t, Portrait, s.Orientation())

	s.SetAngle(-725.5)
	s.SetEyeDistance(7)
	s.SetOrientation(Landscape)
	assert.Equal(t, float32(-725.5), s.Angle())
	assert.Equal(t, float32(7), s.EyeDistance())
	assert.Equal(t, Landscape, s.Orientation())
}

func TestStateOneWriterOneReader(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= 1000; i++ {
			s.SetAngle(float32(i))
			s.SetEyeDistance(float32(i%10) + 1.5)
		}
	}()
	go func() {
		defer wg.Done()
		last := float32(0)
		for i := 0; i < 1000; i++ {
			a := s.Angle()
			assert.GreaterOrEqual(t, a, last)
			last = a
			_ = s.EyeDistance()
		}
	}()
	wg.Wait()
	assert.Equal(t, float32(1000), s.Angle())
}

func TestOnResize(t *testing.T) {
	var p Projection
	m := p.OnResize(720, 1280, Portrait)
	aspect := float32(720) / 1280
	assert.True(t, m.ApproxEqual(mgl32.Frustum(-aspect, aspect, -1, 1, 1.5, 12)))
	assert.Equal(t, PortraitLimits, p.Limits())

	m = p.OnResize(1280, 720, Landscape)
	aspect = float32(1280) / 720
	assert.True(t, m.ApproxEqual(mgl32.Frustum(-aspect, aspect, -1, 1, 2.5, 9)))
	assert.Equal(t, LandscapeLimits, p.Limits())
	assert.Equal(t, aspect, p.Aspect())
}

func TestSetOrientationWithoutResize(t *testing.T) {
	var p Projection
	assert.False(t, p.SetOrientation(Landscape), "no surface yet")

	p.OnResize(1000, 1000, Portrait)
	assert.False(t, p.SetOrientation(Portrait))
	assert.True(t, p.SetOrientation(Landscape))
	assert.Equal(t, LandscapeLimits, p.Limits())
	assert.True(t, p.Matrix().ApproxEqual(mgl32.Frustum(-1, 1, -1, 1, 2.5, 9)))
}

func TestOnResizeRejectsEmptySurface(t *testing.T) {
	var p Projection
	assert.Panics(t, func() { p.OnResize(0, 100, Portrait) })
}

func TestProjectionGeneration(t *testing.T) {
	var p Projection
	assert.Equal(t, uint64(0), p.Generation())
	p.SetOrientation(Landscape)
	assert.Equal(t, uint64(0), p.Generation(), "no surface yet")

	p.OnResize(1280, 720, Landscape)
	assert.Equal(t, uint64(1), p.Generation())
	p.SetOrientation(Landscape)
	assert.Equal(t, uint64(1), p.Generation())
	p.SetOrientation(Portrait)
	assert.Equal(t, uint64(2), p.Generation())
}
