package canvas

import (
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"twotriangles/common"
)

const (
	CoordsPerVertex = 3
	GL_FLOAT32_SIZE = 4
	vertexStride    = CoordsPerVertex * GL_FLOAT32_SIZE
)

// Drawable is anything the frame renderer can submit with a final MVP matrix.
type Drawable interface {
	Draw(mvp mgl32.Mat4)
}

// Shape is a flat-coloured triangle list held in a GPU buffer.
type Shape struct {
	glctx       GL
	program     *Program
	buf         gl.Buffer
	vertexCount int
	color       mgl32.Vec4

	position gl.Attrib
	mvp      gl.Uniform
	colorU   gl.Uniform

	errLog *zap.Logger
}

type ShapeOption func(*Shape)

// WithErrorCheck makes Draw query glGetError after the draw call and log
// anything other than NO_ERROR.
func WithErrorCheck(log *zap.Logger) ShapeOption {
	return func(s *Shape) { s.errLog = log }
}

// NewShape uploads coords (xyz per vertex, counter-clockwise) to a static
// buffer. The program is shared, not owned.
func NewShape(glctx GL, program *Program, coords []float32, color mgl32.Vec4, opts ...ShapeOption) *Shape {
	common.AssertTrue(program != nil, "shape needs a linked program")
	common.AssertTrue(len(coords) > 0 && len(coords)%CoordsPerVertex == 0,
		"vertex data length %d is not a positive multiple of %d", len(coords), CoordsPerVertex)

	s := &Shape{
		glctx:       glctx,
		program:     program,
		vertexCount: len(coords) / CoordsPerVertex,
		color:       color,
	}
	for _, o := range opts {
		o(s)
	}

	data := f32.Bytes(binary.LittleEndian, coords...)
	common.AssertTrue(len(data) == s.vertexCount*vertexStride)
	s.buf = glctx.CreateBuffer()
	glctx.BindBuffer(gl.ARRAY_BUFFER, s.buf)
	glctx.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)

	p := program.Handle()
	s.position = glctx.GetAttribLocation(p, AttribPosition)
	s.mvp = glctx.GetUniformLocation(p, UniformMVP)
	s.colorU = glctx.GetUniformLocation(p, UniformColor)
	return s
}

func (s *Shape) VertexCount() int {
	return s.vertexCount
}

func (s *Shape) Draw(mvp mgl32.Mat4) {
	s.glctx.UseProgram(s.program.Handle())

	s.glctx.BindBuffer(gl.ARRAY_BUFFER, s.buf)
	s.glctx.EnableVertexAttribArray(s.position)
	s.glctx.VertexAttribPointer(s.position, CoordsPerVertex, gl.FLOAT, false, vertexStride, 0)

	s.glctx.UniformMatrix4fv(s.mvp, mvp[:])
	s.glctx.Uniform4fv(s.colorU, s.color[:])

	s.glctx.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)

	// leave no attribute array enabled for whatever draws next
	s.glctx.DisableVertexAttribArray(s.position)

	if s.errLog != nil {
		if e := s.glctx.GetError(); e != gl.NO_ERROR {
			s.errLog.Error("gl error after draw", zap.Uint32("code", uint32(e)), zap.Int("vertices", s.vertexCount))
		}
	}
}

// Release frees the vertex buffer. The program is released by its owner.
func (s *Shape) Release() {
	s.glctx.DeleteBuffer(s.buf)
}
