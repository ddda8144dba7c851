package canvas

import "golang.org/x/mobile/gl"

// GL is the part of gl.Context needed to build and draw shapes. A gomobile
// gl.Context satisfies it as is; package glcore adapts desktop OpenGL.
type GL interface {
	CreateShader(ty gl.Enum) gl.Shader
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	DeleteShader(s gl.Shader)

	CreateProgram() gl.Program
	AttachShader(p gl.Program, s gl.Shader)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	DeleteProgram(p gl.Program)
	UseProgram(p gl.Program)
	GetAttribLocation(p gl.Program, name string) gl.Attrib
	GetUniformLocation(p gl.Program, name string) gl.Uniform

	CreateBuffer() gl.Buffer
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)
	DeleteBuffer(v gl.Buffer)

	EnableVertexAttribArray(a gl.Attrib)
	DisableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	UniformMatrix4fv(dst gl.Uniform, src []float32)
	Uniform4fv(dst gl.Uniform, src []float32)
	DrawArrays(mode gl.Enum, first, count int)

	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	Viewport(x, y, width, height int)
	GetError() gl.Enum
}

var _ GL = gl.Context(nil)
