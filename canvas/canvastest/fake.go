// Package canvastest provides a recording canvas.GL for tests that run
// without a GPU.
package canvastest

import (
	"fmt"
	"strings"

	"golang.org/x/mobile/gl"
)

type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type GL struct {
	Calls []Call

	// FailCompile maps a shader stage to the info log it fails with.
	FailCompile map[gl.Enum]string
	// FailLink makes LinkProgram fail with this info log when non-empty.
	FailLink string
	// Err is returned once by the next GetError.
	Err gl.Enum

	next     uint32
	shaders  map[uint32]gl.Enum
	Live     map[string]int
	Matrices [][16]float32
	Colors   [][4]float32
}

func New() *GL {
	return &GL{
		FailCompile: map[gl.Enum]string{},
		shaders:     map[uint32]gl.Enum{},
		Live:        map[string]int{},
	}
}

func (f *GL) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

func (f *GL) id() uint32 {
	f.next++
	return f.next
}

// Names returns the recorded call names, optionally only those in filter.
func (f *GL) Names(filter ...string) []string {
	keep := map[string]bool{}
	for _, n := range filter {
		keep[n] = true
	}
	var out []string
	for _, c := range f.Calls {
		if len(keep) == 0 || keep[c.Name] {
			out = append(out, c.Name)
		}
	}
	return out
}

func (f *GL) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func (f *GL) Reset() {
	f.Calls = nil
	f.Matrices = nil
	f.Colors = nil
}

func (f *GL) String() string {
	var sb strings.Builder
	for _, c := range f.Calls {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *GL) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: f.id()}
	f.shaders[s.Value] = ty
	f.Live["shader"]++
	f.record("CreateShader", ty)
	return s
}

func (f *GL) ShaderSource(s gl.Shader, src string) { f.record("ShaderSource", s.Value, src) }
func (f *GL) CompileShader(s gl.Shader)            { f.record("CompileShader", s.Value) }

func (f *GL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi", s.Value, pname)
	if pname == gl.COMPILE_STATUS {
		if _, fail := f.FailCompile[f.shaders[s.Value]]; fail {
			return 0
		}
		return 1
	}
	return 0
}

func (f *GL) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog", s.Value)
	return f.FailCompile[f.shaders[s.Value]]
}

func (f *GL) DeleteShader(s gl.Shader) {
	f.Live["shader"]--
	f.record("DeleteShader", s.Value)
}

func (f *GL) CreateProgram() gl.Program {
	f.Live["program"]++
	f.record("CreateProgram")
	return gl.Program{Init: true, Value: f.id()}
}

func (f *GL) AttachShader(p gl.Program, s gl.Shader) { f.record("AttachShader", p.Value, s.Value) }
func (f *GL) LinkProgram(p gl.Program)               { f.record("LinkProgram", p.Value) }

func (f *GL) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami", p.Value, pname)
	if pname == gl.LINK_STATUS {
		if f.FailLink != "" {
			return 0
		}
		return 1
	}
	return 0
}

func (f *GL) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog", p.Value)
	return f.FailLink
}

func (f *GL) DeleteProgram(p gl.Program) {
	f.Live["program"]--
	f.record("DeleteProgram", p.Value)
}

func (f *GL) UseProgram(p gl.Program) { f.record("UseProgram", p.Value) }

func (f *GL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	f.record("GetAttribLocation", p.Value, name)
	return gl.Attrib{Value: 0}
}

func (f *GL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p.Value, name)
	return gl.Uniform{Value: int32(len(name))}
}

func (f *GL) CreateBuffer() gl.Buffer {
	f.Live["buffer"]++
	f.record("CreateBuffer")
	return gl.Buffer{Value: f.id()}
}

func (f *GL) BindBuffer(target gl.Enum, b gl.Buffer) { f.record("BindBuffer", target, b.Value) }

func (f *GL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData", target, len(src), usage)
}

func (f *GL) DeleteBuffer(b gl.Buffer) {
	f.Live["buffer"]--
	f.record("DeleteBuffer", b.Value)
}

func (f *GL) EnableVertexAttribArray(a gl.Attrib)  { f.record("EnableVertexAttribArray", a.Value) }
func (f *GL) DisableVertexAttribArray(a gl.Attrib) { f.record("DisableVertexAttribArray", a.Value) }

func (f *GL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", dst.Value, size, ty, normalized, stride, offset)
}

func (f *GL) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	var m [16]float32
	copy(m[:], src)
	f.Matrices = append(f.Matrices, m)
	f.record("UniformMatrix4fv", dst.Value)
}

func (f *GL) Uniform4fv(dst gl.Uniform, src []float32) {
	var c [4]float32
	copy(c[:], src)
	f.Colors = append(f.Colors, c)
	f.record("Uniform4fv", dst.Value)
}

func (f *GL) DrawArrays(mode gl.Enum, first, count int) { f.record("DrawArrays", mode, first, count) }
func (f *GL) Clear(mask gl.Enum)                        { f.record("Clear", mask) }

func (f *GL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
}

func (f *GL) Viewport(x, y, width, height int) { f.record("Viewport", x, y, width, height) }

func (f *GL) GetError() gl.Enum {
	f.record("GetError")
	e := f.Err
	f.Err = gl.NO_ERROR
	return e
}
