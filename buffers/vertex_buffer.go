package buffers

import (
	"unsafe"

	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexBuffer struct {
	Id     uint32
	Stride int32
	// Capacity is the number of bytes currently allocated on the GPU
	Capacity int
	Usage    BufUsage
	layout   []Element
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Reserve allocates sizeInBytes of uninitialized storage, discarding old contents
func (vb *VertexBuffer) Reserve(sizeInBytes int, usage BufUsage) {

	vb.Bind()

	vb.Usage = usage
	vb.Capacity = sizeInBytes
	gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, nil, usage.ToGL())
}

// SetDataRaw writes sizeInBytes bytes from data at the start of the buffer.
// The buffer is reallocated if its capacity is too small.
//
// The buffer must be bound.
func (vb *VertexBuffer) SetDataRaw(data unsafe.Pointer, sizeInBytes int) {

	if sizeInBytes == 0 {
		return
	}

	if sizeInBytes > vb.Capacity {
		vb.Capacity = growCapacity(vb.Capacity, sizeInBytes)
		gl.BufferData(gl.ARRAY_BUFFER, vb.Capacity, nil, vb.Usage.ToGL())
	}

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, sizeInBytes, data)
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout))
	copy(e, vb.layout)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {

	vb.Stride = 0
	vb.layout = layout

	for i := 0; i < len(vb.layout); i++ {

		vb.layout[i].Offset = int(vb.Stride)
		vb.Stride += vb.layout[i].Size()
	}
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{Usage: BufUsage_Static_Draw}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}

func (vb *VertexBuffer) Delete() {
	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
	vb.Capacity = 0
}
