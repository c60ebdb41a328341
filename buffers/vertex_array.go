package buffers

import (
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer

	// attribCount is the next free attribute location
	attribCount uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer assigns the elements of the vbo layout to consecutive attribute locations,
// continuing after the locations used by previously added vbos
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]
		loc := va.attribCount

		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, l.ElementType.CompCount(), l.ElementType.GLType(), l.ElementType.IsNormalized(), vbo.Stride, uintptr(l.Offset))

		va.attribCount++
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete deletes the vertex array only. Buffers added to it are owned by the caller
func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
