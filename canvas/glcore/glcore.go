// Package glcore adapts a desktop OpenGL 4.1 core profile context to
// canvas.GL. It must be used from the goroutine that owns the current context.
package glcore

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	mgl "golang.org/x/mobile/gl"

	"twotriangles/canvas"
)

var _ canvas.GL = (*Context)(nil)

type Context struct {
	// core profile refuses attribute pointers without a bound VAO
	vao uint32
}

// New loads the GL entry points for the current context and binds the one
// vertex array object all shapes share.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	c := &Context{}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) Release() {
	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &c.vao)
}

func (c *Context) CreateShader(ty mgl.Enum) mgl.Shader {
	return mgl.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (c *Context) ShaderSource(s mgl.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.Value, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s mgl.Shader) {
	gl.CompileShader(s.Value)
}

func (c *Context) GetShaderi(s mgl.Shader, pname mgl.Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetShaderInfoLog(s mgl.Shader) string {
	var logLength int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s.Value, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s mgl.Shader) {
	gl.DeleteShader(s.Value)
}

func (c *Context) CreateProgram() mgl.Program {
	return mgl.Program{Init: true, Value: gl.CreateProgram()}
}

func (c *Context) AttachShader(p mgl.Program, s mgl.Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (c *Context) LinkProgram(p mgl.Program) {
	gl.LinkProgram(p.Value)
}

func (c *Context) GetProgrami(p mgl.Program, pname mgl.Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (c *Context) GetProgramInfoLog(p mgl.Program) string {
	var logLength int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(p.Value, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(p mgl.Program) {
	gl.DeleteProgram(p.Value)
}

func (c *Context) UseProgram(p mgl.Program) {
	gl.UseProgram(p.Value)
}

func (c *Context) GetAttribLocation(p mgl.Program, name string) mgl.Attrib {
	return mgl.Attrib{Value: uint(gl.GetAttribLocation(p.Value, gl.Str(name+"\x00")))}
}

func (c *Context) GetUniformLocation(p mgl.Program, name string) mgl.Uniform {
	return mgl.Uniform{Value: gl.GetUniformLocation(p.Value, gl.Str(name+"\x00"))}
}

func (c *Context) CreateBuffer() mgl.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return mgl.Buffer{Value: vbo}
}

func (c *Context) BindBuffer(target mgl.Enum, b mgl.Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (c *Context) BufferData(target mgl.Enum, src []byte, usage mgl.Enum) {
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (c *Context) DeleteBuffer(b mgl.Buffer) {
	gl.DeleteBuffers(1, &b.Value)
}

func (c *Context) EnableVertexAttribArray(a mgl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (c *Context) DisableVertexAttribArray(a mgl.Attrib) {
	gl.DisableVertexAttribArray(uint32(a.Value))
}

func (c *Context) VertexAttribPointer(dst mgl.Attrib, size int, ty mgl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), gl.PtrOffset(offset))
}

func (c *Context) UniformMatrix4fv(dst mgl.Uniform, src []float32) {
	gl.UniformMatrix4fv(dst.Value, int32(len(src)/16), false, &src[0])
}

func (c *Context) Uniform4fv(dst mgl.Uniform, src []float32) {
	gl.Uniform4fv(dst.Value, int32(len(src)/4), &src[0])
}

func (c *Context) DrawArrays(mode mgl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (c *Context) Clear(mask mgl.Enum) {
	gl.Clear(uint32(mask))
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (c *Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *Context) GetError() mgl.Enum {
	return mgl.Enum(gl.GetError())
}
