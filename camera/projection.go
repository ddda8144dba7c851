package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"twotriangles/common"
)

// Projection is owned by the render goroutine. It recomputes the frustum only
// when the surface size or the orientation changes.
type Projection struct {
	width, height int
	orientation   Orientation
	aspect        float32
	limits        Limits
	matrix        mgl32.Mat4
	valid         bool
	generation    uint64
}

func (p *Projection) OnResize(width, height int, o Orientation) mgl32.Mat4 {
	common.AssertTrue(width > 0 && height > 0, "surface size %dx%d", width, height)
	p.width, p.height = width, height
	p.orientation = o
	p.recompute()
	return p.matrix
}

// SetOrientation recomputes with the last surface size. It reports whether
// anything changed.
func (p *Projection) SetOrientation(o Orientation) bool {
	if p.valid && o == p.orientation {
		return false
	}
	p.orientation = o
	if p.width == 0 || p.height == 0 {
		return false
	}
	p.recompute()
	return true
}

func (p *Projection) recompute() {
	p.aspect = float32(p.width) / float32(p.height)
	p.limits = LimitsFor(p.orientation)
	p.matrix = Frustum(p.aspect, p.limits)
	p.valid = true
	p.generation++
}

// Generation counts recomputes of the matrix.
func (p *Projection) Generation() uint64 {
	return p.generation
}

// Frustum is the asymmetric projection used for both orientations:
// left/right span the aspect ratio, bottom/top are fixed at -1/1.
func Frustum(aspect float32, l Limits) mgl32.Mat4 {
	return mgl32.Frustum(-aspect, aspect, -1, 1, l.Near, l.Far)
}

func (p *Projection) Matrix() mgl32.Mat4 {
	return p.matrix
}

func (p *Projection) Valid() bool {
	return p.valid
}

func (p *Projection) Orientation() Orientation {
	return p.orientation
}

func (p *Projection) Limits() Limits {
	return p.limits
}

func (p *Projection) Aspect() float32 {
	return p.aspect
}
