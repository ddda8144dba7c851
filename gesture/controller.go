package gesture

import (
	"go.uber.org/zap"

	"twotriangles/camera"
	"twotriangles/common"
)

const (
	// TouchScaleFactor converts pixels of drag into degrees of rotation.
	TouchScaleFactor float32 = 210.0 / 360

	MinScaleFactor float32 = 0.1
	MaxScaleFactor float32 = 5.0
)

type Phase int

const (
	Idle Phase = iota
	Dragging
	Scaling
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Scaling:
		return "scaling"
	}
	return "idle"
}

// Redrawer is the host surface's "render when dirty" hook.
type Redrawer interface {
	RequestRender()
}

type RedrawFunc func()

func (f RedrawFunc) RequestRender() { f() }

// Controller turns pointer and pinch events into camera.State updates. All
// methods must be called from the single input goroutine.
type Controller struct {
	state  *camera.State
	redraw Redrawer
	log    *zap.Logger

	width, height int
	prevX, prevY  float32
	scaleFactor   float32
	phase         Phase
}

func NewController(state *camera.State, redraw Redrawer, log *zap.Logger) *Controller {
	return &Controller{
		state:       state,
		redraw:      redraw,
		log:         log,
		scaleFactor: 1,
	}
}

// SetSurfaceSize sets the size the drag midlines are taken from, in the same
// units as pointer coordinates.
func (c *Controller) SetSurfaceSize(width, height int) {
	c.width, c.height = width, height
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// ScaleFactor is the cumulative pinch tracking factor.
func (c *Controller) ScaleFactor() float32 {
	return c.scaleFactor
}

func (c *Controller) OnPointerDown(x, y float32) {
	c.prevX, c.prevY = x, y
}

func (c *Controller) OnPointerUp(x, y float32) {
	c.prevX, c.prevY = x, y
}

// OnPointerMove rotates by the delta from the previous pointer position,
// unless a pinch is in progress. The previous position is always updated.
func (c *Controller) OnPointerMove(x, y float32) {
	if c.phase != Scaling {
		c.phase = Dragging
		c.drag(x, y)
		c.phase = Idle
	}
	c.prevX, c.prevY = x, y
}

func (c *Controller) drag(x, y float32) {
	dx := x - c.prevX
	dy := y - c.prevY

	// below the horizontal midline, horizontal drags spin the other way
	if y > float32(c.height/2) {
		dx = -dx
	}
	// left of the vertical midline, vertical drags spin the other way
	if x < float32(c.width/2) {
		dy = -dy
	}
	c.state.SetAngle(c.state.Angle() + (dx+dy)*TouchScaleFactor)
	c.redraw.RequestRender()
}

func (c *Controller) OnScaleBegin() {
	c.phase = Scaling
	c.log.Debug("pinch begin", zap.Float32("eye", c.state.EyeDistance()))
}

// OnScale applies one incremental pinch factor. The cumulative factor and the
// eye distance are clamped independently: the first only bounds the tracking
// variable, the second keeps the eye inside the active near/far planes.
func (c *Controller) OnScale(factor float32) bool {
	if !(factor > 0) {
		return false
	}
	c.scaleFactor *= factor
	eye := c.state.EyeDistance() * factor
	c.scaleFactor = common.Clampf(c.scaleFactor, MinScaleFactor, MaxScaleFactor)

	lim := camera.LimitsFor(c.state.Orientation())
	c.state.SetEyeDistance(common.Clampf(eye, lim.Near, lim.Far))
	c.redraw.RequestRender()
	return true
}

func (c *Controller) OnScaleEnd() {
	c.phase = Idle
	c.log.Debug("pinch end",
		zap.Float32("eye", c.state.EyeDistance()),
		zap.Float32("scaleFactor", c.scaleFactor))
}
