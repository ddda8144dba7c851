package canvas

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// Program is a linked vertex+fragment shader pair. The caller owns it and
// must Release it before the GL context goes away.
type Program struct {
	glctx  GL
	handle gl.Program
}

func NewProgram(glctx GL, vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	vertexShader, err := compileShader(glctx, gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return nil, err
	}
	defer glctx.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	defer glctx.DeleteShader(fragmentShader)

	program := glctx.CreateProgram()
	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(program)
		glctx.DeleteProgram(program)
		return nil, &ShaderLinkError{Log: log}
	}
	return &Program{glctx: glctx, handle: program}, nil
}

func compileShader(glctx GL, shaderType gl.Enum, source string) (gl.Shader, error) {
	shader := glctx.CreateShader(shaderType)
	glctx.ShaderSource(shader, source)
	glctx.CompileShader(shader)

	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(shader)
		glctx.DeleteShader(shader)
		return gl.Shader{}, &ShaderCompileError{Stage: stageName(shaderType), Log: log}
	}
	return shader, nil
}

func stageName(shaderType gl.Enum) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", uint32(shaderType))
}

func (p *Program) Handle() gl.Program {
	return p.handle
}

func (p *Program) Release() {
	p.glctx.DeleteProgram(p.handle)
}
