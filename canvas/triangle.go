package canvas

import "github.com/go-gl/mathgl/mgl32"

// TriangleCoords is an equilateral triangle centred on the origin.
var TriangleCoords = []float32{
	0.0, 0.622008459, 0.0, // top
	-0.5, -0.311004243, 0.0, // bottom left
	0.5, -0.311004243, 0.0, // bottom right
}

var TriangleColor = mgl32.Vec4{0.63671875, 0.76953125, 0.22265625, 1.0}

func NewTriangle(glctx GL, program *Program, opts ...ShapeOption) *Shape {
	return NewShape(glctx, program, TriangleCoords, TriangleColor, opts...)
}
