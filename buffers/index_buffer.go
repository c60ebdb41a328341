package buffers

import (
	"fmt"
	"unsafe"

	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type IndexBuffer struct {
	Id uint32
	// IndexBufCount is the number of elements in the index buffer. Updated in IndexBuffer.SetDataRaw
	IndexBufCount int32
	// IndexSize is the size of one index in bytes, either 2 or 4
	IndexSize int
	Capacity  int
	Usage     BufUsage
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// GLType returns the type passed to the draw elements family of calls
func (ib *IndexBuffer) GLType() uint32 {
	return IndexGLType(ib.IndexSize)
}

// Reserve allocates sizeInBytes of uninitialized storage, discarding old contents
func (ib *IndexBuffer) Reserve(sizeInBytes int, usage BufUsage) {

	ib.Bind()

	ib.Usage = usage
	ib.Capacity = sizeInBytes
	ib.IndexBufCount = 0
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeInBytes, nil, usage.ToGL())
}

// SetDataRaw writes indexCount indices of IndexSize bytes each from data at the start of the buffer,
// growing it if needed.
//
// The buffer must be bound.
func (ib *IndexBuffer) SetDataRaw(data unsafe.Pointer, indexCount int) {

	ib.IndexBufCount = int32(indexCount)

	sizeInBytes := indexCount * ib.IndexSize
	if sizeInBytes == 0 {
		return
	}

	if sizeInBytes > ib.Capacity {
		ib.Capacity = growCapacity(ib.Capacity, sizeInBytes)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ib.Capacity, nil, ib.Usage.ToGL())
	}

	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, sizeInBytes, data)
}

func (ib *IndexBuffer) Delete() {
	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.Capacity = 0
}

// IndexGLType maps an index size in bytes to its OpenGL type
func IndexGLType(indexSize int) uint32 {

	switch indexSize {
	case 2:
		return gl.UNSIGNED_SHORT
	case 4:
		return gl.UNSIGNED_INT
	}

	assert.T(false, fmt.Sprintf("Unsupported index size of %d bytes", indexSize))
	return 0
}

func NewIndexBuffer(indexSize int) IndexBuffer {

	ib := IndexBuffer{
		IndexSize: indexSize,
		Usage:     BufUsage_Static_Draw,
	}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	return ib
}
