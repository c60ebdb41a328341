package renderer

import (
	"github.com/bloeys/nmage-recipes/buffers"
	"github.com/bloeys/nmage-recipes/materials"
)

type Render interface {
	// DrawVertexArray draws count vertices as triangles starting at firstElement, reading
	// them from the vertex array (which may have no buffers when the shader generates the vertices)
	DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, count int32)
	FrameEnd()
}
