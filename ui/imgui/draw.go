package nmageimgui

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/buffers"
)

// DrawVertLayout is the layout of ImDrawVert: vec2 position, vec2 uv and a packed RGBA8 color
func DrawVertLayout() []buffers.Element {
	return []buffers.Element{
		{ElementType: buffers.DataTypeVec2},
		{ElementType: buffers.DataTypeVec2},
		{ElementType: buffers.DataTypeColorU8},
	}
}

func assertDrawVertLayout(vbo *buffers.VertexBuffer, vertexSize, posOffset, uvOffset, colOffset int) {

	layout := vbo.GetLayout()
	assert.T(
		int(vbo.Stride) == vertexSize && layout[0].Offset == posOffset && layout[1].Offset == uvOffset && layout[2].Offset == colOffset,
		"imgui vertex layout (size=%d; pos=%d; uv=%d; col=%d) doesn't match the vertex buffer layout %v (stride=%d)",
		vertexSize, posOffset, uvOffset, colOffset, layout, vbo.Stride,
	)
}

// ProjectionFromDisplay returns the orthographic projection mapping the imgui display rectangle to clip space,
// with the top left of the display at (-1, 1). Note that gglm.Ortho takes top before bottom
func ProjectionFromDisplay(displayPos, displaySize imgui.Vec2) gglm.Mat4 {

	left := displayPos.X
	right := displayPos.X + displaySize.X
	top := displayPos.Y
	bottom := displayPos.Y + displaySize.Y

	return gglm.Ortho(left, right, top, bottom, -1, 1).Mat4
}

// ScissorRect converts an imgui clip rect (min x, min y, max x, max y with y pointing down)
// to a glScissor rectangle, whose origin is the bottom left of the framebuffer
func ScissorRect(clipRect imgui.Vec4, fbHeight int32) (x, y, width, height int32) {
	return int32(clipRect.X), fbHeight - int32(clipRect.W), int32(clipRect.Z - clipRect.X), int32(clipRect.W - clipRect.Y)
}
