package canvas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/gl"

	"twotriangles/canvas/canvastest"
)

func TestNewProgram(t *testing.T) {
	f := canvastest.New()
	p, err := NewProgram(f, GLSL100.Vertex, GLSL100.Fragment)
	require.NoError(t, err)
	assert.True(t, p.Handle().Init)

	assert.Equal(t, 1, f.Count("LinkProgram"))
	assert.Equal(t, 2, f.Count("AttachShader"))
	// shaders are flagged for deletion once linked
	assert.Equal(t, 0, f.Live["shader"])
	assert.Equal(t, 1, f.Live["program"])

	p.Release()
	assert.Equal(t, 0, f.Live["program"])
}

func TestNewProgramCompileError(t *testing.T) {
	for _, tc := range []struct {
		stage gl.Enum
		name  string
	}{
		{gl.VERTEX_SHADER, "vertex"},
		{gl.FRAGMENT_SHADER, "fragment"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := canvastest.New()
			f.FailCompile[tc.stage] = "0:3: 'vPositon' : undeclared identifier"

			p, err := NewProgram(f, GLSL100.Vertex, GLSL100.Fragment)
			assert.Nil(t, p)

			var ce *ShaderCompileError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tc.name, ce.Stage)
			assert.Contains(t, ce.Error(), "undeclared identifier")
			assert.Equal(t, 0, f.Count("LinkProgram"))
			assert.Equal(t, 0, f.Live["shader"])
			assert.Equal(t, 0, f.Live["program"])
		})
	}
}

func TestNewProgramLinkError(t *testing.T) {
	f := canvastest.New()
	f.FailLink = "varying mismatch"

	p, err := NewProgram(f, GLSL100.Vertex, GLSL100.Fragment)
	assert.Nil(t, p)

	var le *ShaderLinkError
	require.True(t, errors.As(err, &le), "got %v", err)
	assert.Equal(t, "varying mismatch", le.Log)
	assert.Equal(t, 0, f.Live["shader"])
	assert.Equal(t, 0, f.Live["program"])
}
