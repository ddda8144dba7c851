package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/mobile/gl"

	"twotriangles/camera"
	"twotriangles/canvas"
)

// Placement positions a drawable on screen: translate along x, then spin
// about Axis by the session angle. Both steps are applied to the already
// combined projection*view matrix, in that order.
type Placement struct {
	OffsetX float32
	Axis    mgl32.Vec3
}

var (
	Left  = Placement{OffsetX: -0.5, Axis: mgl32.Vec3{0, 0, -1}}
	Right = Placement{OffsetX: 0.5, Axis: mgl32.Vec3{0, 0, 1}}
)

func (p Placement) Transform(base mgl32.Mat4, angle float32) mgl32.Mat4 {
	return base.
		Mul4(mgl32.Translate3D(p.OffsetX, 0, 0)).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), p.Axis))
}

// ViewMatrix looks at the origin from eye units down +z, y up.
func ViewMatrix(eye float32) mgl32.Mat4 {
	return mgl32.LookAt(0, 0, eye, 0, 0, 0, 0, 1, 0)
}

// ShapeTransforms returns the counter-rotating pair drawn every frame.
func ShapeTransforms(base mgl32.Mat4, angle float32) (left, right mgl32.Mat4) {
	return Left.Transform(base, angle), Right.Transform(base, angle)
}

// Shape is a drawable that owns GPU objects freed with the surface.
type Shape interface {
	canvas.Drawable
	Release()
}

// ShapeFactory builds one drawable against a freshly linked program.
type ShapeFactory func(glctx canvas.GL, program *canvas.Program, opts ...canvas.ShapeOption) Shape

// Triangle is the ShapeFactory for canvas.NewTriangle.
func Triangle(glctx canvas.GL, program *canvas.Program, opts ...canvas.ShapeOption) Shape {
	return canvas.NewTriangle(glctx, program, opts...)
}

type item struct {
	place   Placement
	factory ShapeFactory
	shape   Shape
	program *canvas.Program
}

type Options struct {
	Sources    canvas.Sources
	ClearColor mgl32.Vec4
	// Debug logs any GL error raised by a draw call.
	Debug bool
}

// Renderer owns everything that lives on the render goroutine: GL objects,
// the projection, and the per-frame matrices. Of camera.State it writes only
// the orientation, and only from OnSurfaceChanged.
type Renderer struct {
	state *camera.State
	opts  Options
	log   *zap.Logger

	glctx      canvas.GL
	projection camera.Projection
	items      []*item
}

func New(state *camera.State, opts Options, log *zap.Logger) *Renderer {
	r := &Renderer{state: state, opts: opts, log: log}
	r.Add(Left, Triangle)
	r.Add(Right, Triangle)
	return r
}

// Add registers another shape. Shapes are built on the next
// OnSurfaceCreated and drawn in registration order.
func (r *Renderer) Add(place Placement, factory ShapeFactory) {
	r.items = append(r.items, &item{place: place, factory: factory})
}

// OnSurfaceCreated compiles one program per shape and uploads the geometry.
// A shader error is fatal: nothing that was built is kept.
func (r *Renderer) OnSurfaceCreated(glctx canvas.GL) error {
	r.glctx = glctx
	c := r.opts.ClearColor
	glctx.ClearColor(c[0], c[1], c[2], c[3])

	var shapeOpts []canvas.ShapeOption
	if r.opts.Debug {
		shapeOpts = append(shapeOpts, canvas.WithErrorCheck(r.log))
	}
	for i, it := range r.items {
		prg, err := canvas.NewProgram(glctx, r.opts.Sources.Vertex, r.opts.Sources.Fragment)
		if err != nil {
			r.release()
			return fmt.Errorf("shape %d: %w", i, err)
		}
		it.program = prg
		it.shape = it.factory(glctx, prg, shapeOpts...)
	}
	r.log.Info("surface created", zap.Int("shapes", len(r.items)))
	return nil
}

func (r *Renderer) OnSurfaceChanged(width, height int, o camera.Orientation) {
	r.glctx.Viewport(0, 0, width, height)
	r.state.SetOrientation(o)
	r.projection.OnResize(width, height, o)
	r.log.Info("surface changed",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("orientation", o))
}

// FrameTransforms computes this frame's matrices, one per shape, from the
// current camera state. The projection is refreshed first if the orientation
// changed since the last resize.
func (r *Renderer) FrameTransforms() []mgl32.Mat4 {
	if o := r.state.Orientation(); o != r.projection.Orientation() {
		if r.projection.SetOrientation(o) {
			r.log.Debug("orientation changed", zap.Stringer("orientation", o))
		}
	}
	base := r.projection.Matrix().Mul4(ViewMatrix(r.state.EyeDistance()))
	angle := r.state.Angle()

	out := make([]mgl32.Mat4, len(r.items))
	for i, it := range r.items {
		out[i] = it.place.Transform(base, angle)
	}
	return out
}

func (r *Renderer) OnDrawFrame() {
	r.glctx.Clear(gl.COLOR_BUFFER_BIT)
	if !r.projection.Valid() {
		return
	}
	for i, mvp := range r.FrameTransforms() {
		if s := r.items[i].shape; s != nil {
			s.Draw(mvp)
		}
	}
}

// OnSurfaceDestroyed frees GL objects. Camera state is untouched so the next
// surface picks up where this one left off.
func (r *Renderer) OnSurfaceDestroyed() {
	r.release()
	r.glctx = nil
}

func (r *Renderer) release() {
	for _, it := range r.items {
		if it.shape != nil {
			it.shape.Release()
			it.shape = nil
		}
		if it.program != nil {
			it.program.Release()
			it.program = nil
		}
	}
}
