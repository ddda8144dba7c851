package canvas

// Sources is a vertex+fragment GLSL pair. Every dialect below exposes the
// same interface: attribute vPosition, uniforms uMVPMatrix and vColor.
type Sources struct {
	Vertex   string
	Fragment string
}

const (
	AttribPosition = "vPosition"
	UniformMVP     = "uMVPMatrix"
	UniformColor   = "vColor"
)

// GLSL100 targets OpenGL ES 2.0.
var GLSL100 = Sources{
	Vertex: `#version 100
uniform mat4 uMVPMatrix;
attribute vec4 vPosition;
void main() {
	gl_Position = uMVPMatrix * vPosition;
}`,
	Fragment: `#version 100
precision mediump float;
uniform vec4 vColor;
void main() {
	gl_FragColor = vColor;
}`,
}

// GLSL410 targets a desktop OpenGL 4.1 core profile.
var GLSL410 = Sources{
	Vertex: `#version 410 core
uniform mat4 uMVPMatrix;
in vec4 vPosition;
void main() {
	gl_Position = uMVPMatrix * vPosition;
}`,
	Fragment: `#version 410 core
uniform vec4 vColor;
out vec4 fragColor;
void main() {
	fragColor = vColor;
}`,
}
