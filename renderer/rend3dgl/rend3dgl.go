package rend3dgl

import (
	"github.com/bloeys/nmage-recipes/buffers"
	"github.com/bloeys/nmage-recipes/materials"
	"github.com/bloeys/nmage-recipes/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

// Rend3DGL skips rebinding the vertex array and material used by the previous draw.
// Anything that binds either outside of it must call FrameEnd (or draw again after a FrameEnd)
type Rend3DGL struct {
	BoundVaoId uint32
	BoundMatId uint32
}

func (r *Rend3DGL) DrawVertexArray(mat *materials.Material, vao *buffers.VertexArray, firstElement int32, elementCount int32) {

	if vao.Id != r.BoundVaoId {
		vao.Bind()
		r.BoundVaoId = vao.Id
	}

	if mat.Id != r.BoundMatId {
		mat.Bind()
		r.BoundMatId = mat.Id
	}

	gl.DrawArrays(gl.TRIANGLES, firstElement, elementCount)
}

func (r3d *Rend3DGL) FrameEnd() {
	r3d.BoundVaoId = 0
	r3d.BoundMatId = 0
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
