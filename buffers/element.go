package buffers

import (
	"github.com/bloeys/nmage-recipes/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents an element that makes up a buffer (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of an element thats makes up a buffer (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	DataTypeMat2
	DataTypeMat3
	DataTypeMat4

	// DataTypeColorU8 is four unsigned bytes that the shader reads as a normalized vec4 (e.g. a packed RGBA color)
	DataTypeColorU8
)

type elementTypeInfo struct {
	name      string
	glType    uint32
	compSize  int32
	compCount int32

	// std140Align is the base alignment of a single (non-array) field in a std140 uniform block.
	// Zero for types that can't be used in uniform blocks
	std140Align uint16
	normalized  bool
}

var elementTypeInfos = [...]elementTypeInfo{
	DataTypeUint32:  {name: "uint32", glType: gl.UNSIGNED_INT, compSize: 4, compCount: 1, std140Align: 4},
	DataTypeInt32:   {name: "int32", glType: gl.INT, compSize: 4, compCount: 1, std140Align: 4},
	DataTypeFloat32: {name: "float32", glType: gl.FLOAT, compSize: 4, compCount: 1, std140Align: 4},

	DataTypeVec2: {name: "Vec2", glType: gl.FLOAT, compSize: 4, compCount: 2, std140Align: 8},
	DataTypeVec3: {name: "Vec3", glType: gl.FLOAT, compSize: 4, compCount: 3, std140Align: 16},
	DataTypeVec4: {name: "Vec4", glType: gl.FLOAT, compSize: 4, compCount: 4, std140Align: 16},

	DataTypeMat2: {name: "Mat2", glType: gl.FLOAT, compSize: 4, compCount: 2 * 2, std140Align: 16},
	DataTypeMat3: {name: "Mat3", glType: gl.FLOAT, compSize: 4, compCount: 3 * 3, std140Align: 16},
	DataTypeMat4: {name: "Mat4", glType: gl.FLOAT, compSize: 4, compCount: 4 * 4, std140Align: 16},

	DataTypeColorU8: {name: "ColorU8", glType: gl.UNSIGNED_BYTE, compSize: 1, compCount: 4, normalized: true},
}

func (dt ElementType) info() *elementTypeInfo {

	if dt == DataTypeUnknown || int(dt) >= len(elementTypeInfos) {
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return &elementTypeInfos[DataTypeUnknown]
	}

	return &elementTypeInfos[dt]
}

func (dt ElementType) GLType() uint32 {
	return dt.info().glType
}

// IsNormalized is true for integer types that reach the shader as floats in the [0, 1] range
func (dt ElementType) IsNormalized() bool {
	return dt.info().normalized
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {
	return dt.info().compSize
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {
	return dt.info().compCount
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompSize() * dt.CompCount()
}

func (dt ElementType) GlStd140AlignmentBoundary() uint16 {

	align := dt.info().std140Align
	assert.T(align != 0, "Data type '%s' can't be used in a uniform buffer", dt)
	return align
}

func (dt ElementType) String() string {

	if int(dt) >= len(elementTypeInfos) || dt == DataTypeUnknown {
		return "Unknown"
	}

	return elementTypeInfos[dt].name
}
