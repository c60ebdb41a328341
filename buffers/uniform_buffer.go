package buffers

import (
	"math"
	"reflect"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type UniformBufferFieldInput struct {
	Id   uint16
	Type ElementType
	// Count should be set in case this field is an array of type `[Count]Type`.
	// Count=0 is valid and is equivalent to Count=1, which means the type is NOT an array, but a single field.
	Count uint16
}

type UniformBufferField struct {
	Id            uint16
	AlignedOffset uint16
	// Count is 1 for a single field and the array length for arrays
	Count   uint16
	IsArray bool
	Type    ElementType
}

type UniformBuffer struct {
	Id uint32
	// Size is the allocated memory in bytes on the GPU for this uniform buffer
	Size   uint32
	Fields []UniformBufferField
}

func (ub *UniformBuffer) Bind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.Id)
}

func (ub *UniformBuffer) UnBind() {
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// SetBindPoint binds the whole buffer to the indexed uniform binding point, where
// shader uniform blocks bound to the same index will read from it
func (ub *UniformBuffer) SetBindPoint(bindPointIndex uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id)
}

// SetBindPointRange is like SetBindPoint but only exposes size bytes starting at offset
func (ub *UniformBuffer) SetBindPointRange(bindPointIndex uint32, offset, size int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, bindPointIndex, ub.Id, offset, size)
}

func (ub *UniformBuffer) Delete() {
	gl.DeleteBuffers(1, &ub.Id)
	ub.Id = 0
}

// std140ArrayStride returns the distance in bytes between two array elements of the type.
// Every array element is rounded up to the size of a vec4, and a matrix is an array of column vectors.
func std140ArrayStride(t ElementType) uint16 {

	switch t {
	case DataTypeMat2:
		return 2 * 16
	case DataTypeMat3:
		return 3 * 16
	case DataTypeMat4:
		return 4 * 16
	default:
		return 16
	}
}

// std140Size returns the bytes a single non-array field occupies
func std140Size(t ElementType) uint16 {

	switch t {
	case DataTypeMat2, DataTypeMat3, DataTypeMat4:
		return std140ArrayStride(t)
	default:
		return uint16(t.Size())
	}
}

// computeStd140Layout returns the fields with their aligned offsets along with the
// total size of the block, which is padded to a 16 byte boundary
func computeStd140Layout(fieldsToAdd []UniformBufferFieldInput) (fields []UniformBufferField, totalSize uint32) {

	if len(fieldsToAdd) == 0 {
		return nil, 0
	}

	fields = make([]UniformBufferField, 0, len(fieldsToAdd))
	fieldIdToTypeMap := make(map[uint16]ElementType, len(fieldsToAdd))

	var alignedOffset uint16 = 0
	for i := 0; i < len(fieldsToAdd); i++ {

		f := fieldsToAdd[i]

		existingFieldType, ok := fieldIdToTypeMap[f.Id]
		assert.T(!ok, "Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%s and then used on a different field with type=%s\n", f.Id, existingFieldType.String(), f.Type.String())
		fieldIdToTypeMap[f.Id] = f.Type

		isArray := f.Count > 1
		count := f.Count
		if count == 0 {
			count = 1
		}

		// To understand this take an example. Say we have a total offset of 100 and we are adding a vec4.
		// Vec4s must be aligned to a 16 byte boundary but 100 is not (100 % 16 != 0).
		//
		// To fix this, we take the alignment error which is alignErr=100 % 16=4, but this is error to the nearest
		// boundary, which is below the offset.
		//
		// To get the nearest boundary larger than the offset we can:
		// offset + (boundary - alignErr) == 100 + (16 - 4) == 112; 112 % 16 == 0, meaning its a boundary
		//
		// Note that arrays of scalars/vectors are always aligned to 16 bytes, like a vec4
		var alignmentBoundary uint16 = 16
		if !isArray {
			alignmentBoundary = f.Type.GlStd140AlignmentBoundary()
		}

		alignmentError := alignedOffset % alignmentBoundary
		if alignmentError != 0 {
			alignedOffset += alignmentBoundary - alignmentError
		}

		fields = append(fields, UniformBufferField{
			Id:            f.Id,
			Type:          f.Type,
			AlignedOffset: alignedOffset,
			Count:         count,
			IsArray:       isArray,
		})

		if isArray {
			alignedOffset += std140ArrayStride(f.Type) * count
		} else {
			alignedOffset += std140Size(f.Type)
		}
	}

	padTo16Boundary(&alignedOffset)
	return fields, uint32(alignedOffset)
}

func padTo16Boundary[T uint16 | int | int32](val *T) {
	alignmentError := *val % 16
	if alignmentError != 0 {
		*val += 16 - alignmentError
	}
}

func (ub *UniformBuffer) getField(fieldId uint16, fieldType ElementType) UniformBufferField {

	for i := 0; i < len(ub.Fields); i++ {

		f := ub.Fields[i]

		if f.Id != fieldId {
			continue
		}

		assert.T(f.Type == fieldType, "Uniform buffer field id is reused within the same uniform buffer. FieldId=%d was first used on a field with type=%v, but is now being used on a field with type=%v\n", fieldId, f.Type.String(), fieldType.String())

		return f
	}

	logging.ErrLog.Panicf("couldn't find uniform buffer field of id=%d and type=%s\n", fieldId, fieldType.String())
	return UniformBufferField{}
}

// SetMat4 writes to whatever buffer is bound to GL_UNIFORM_BUFFER, so the buffer must be bound first.
// A mat4 column is exactly a vec4 and so needs no padding
func (ub *UniformBuffer) SetMat4(fieldId uint16, val *gglm.Mat4) {
	f := ub.getField(fieldId, DataTypeMat4)
	gl.BufferSubData(gl.UNIFORM_BUFFER, int(f.AlignedOffset), 4*16, gl.Ptr(&val.Data[0][0]))
}

// SetStruct uploads all fields of inputStruct, whose exported fields must match
// the uniform buffer fields in order and type
func (ub *UniformBuffer) SetStruct(inputStruct any) {

	buf := make([]byte, ub.Size)
	bytesWritten := encodeStruct(ub.Fields, buf, inputStruct)
	if bytesWritten == 0 {
		return
	}

	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, bytesWritten, gl.Ptr(&buf[0]))
}

// encodeStruct writes inputStruct into buf following the std140 offsets of fields and returns
// the number of bytes from the start of buf up to the end of the last written field
func encodeStruct(fields []UniformBufferField, buf []byte, inputStruct any) (bytesWritten int) {

	if inputStruct == nil {
		logging.ErrLog.Panicf("UniformBuffer.SetStruct called with a value that is nil")
	}

	structVal := reflect.ValueOf(inputStruct)
	if structVal.Kind() == reflect.Pointer {
		structVal = structVal.Elem()
	}

	if structVal.Kind() != reflect.Struct {
		logging.ErrLog.Panicf("UniformBuffer.SetStruct called with a value that is not a struct. Val=%v\n", inputStruct)
	}

	assert.T(structVal.NumField() == len(fields), "UniformBuffer.SetStruct got a struct with %d fields but the uniform buffer has %d fields", structVal.NumField(), len(fields))

	for i := 0; i < len(fields); i++ {

		ubField := &fields[i]
		valField := structVal.Field(i)

		if ubField.IsArray {

			kind := valField.Kind()
			assert.T(kind == reflect.Slice || kind == reflect.Array, "ubo field of id=%d is an array field but got input of kind=%s\n", ubField.Id, kind.String())
			assert.T(valField.Len() == int(ubField.Count), "ubo field of id=%d is an array/slice field of length=%d but got input of length=%d\n", ubField.Id, ubField.Count, valField.Len())

			stride := int(std140ArrayStride(ubField.Type))
			for j := 0; j < valField.Len(); j++ {
				bytesWritten = writeUniformValue(buf, int(ubField.AlignedOffset)+j*stride, ubField, valField.Index(j))
			}

			continue
		}

		bytesWritten = writeUniformValue(buf, int(ubField.AlignedOffset), ubField, valField)
	}

	return bytesWritten
}

// writeUniformValue writes one non-array value at offset and returns the offset right after it
func writeUniformValue(buf []byte, offset int, ubField *UniformBufferField, v reflect.Value) int {

	if !ReflectValueMatchesUniformBufferField(v, ubField) {
		logging.ErrLog.Panicf("Struct field ordering and types must match uniform buffer fields, but got UniformBufferField=%+v and a struct field of type %s\n", *ubField, v.Type().String())
	}

	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch ubField.Type {

	case DataTypeUint32:
		Write32BitIntegerToByteBuf(buf, &offset, uint32(v.Uint()))
	case DataTypeInt32:
		Write32BitIntegerToByteBuf(buf, &offset, int32(v.Int()))
	case DataTypeFloat32:
		WriteF32ToByteBuf(buf, &offset, float32(v.Float()))

	case DataTypeVec2:
		vec := v.Interface().(gglm.Vec2)
		WriteF32SliceToByteBuf(buf, &offset, vec.Data[:])
	case DataTypeVec3:
		vec := v.Interface().(gglm.Vec3)
		WriteF32SliceToByteBuf(buf, &offset, vec.Data[:])
	case DataTypeVec4:
		vec := v.Interface().(gglm.Vec4)
		WriteF32SliceToByteBuf(buf, &offset, vec.Data[:])

	// Matrix columns are each padded to a vec4
	case DataTypeMat2:
		m := v.Interface().(gglm.Mat2)
		for c := 0; c < 2; c++ {
			colStart := offset
			WriteF32SliceToByteBuf(buf, &offset, m.Data[c][:])
			offset = colStart + 16
		}
	case DataTypeMat3:
		m := v.Interface().(gglm.Mat3)
		for c := 0; c < 3; c++ {
			colStart := offset
			WriteF32SliceToByteBuf(buf, &offset, m.Data[c][:])
			offset = colStart + 16
		}
	case DataTypeMat4:
		m := v.Interface().(gglm.Mat4)
		for c := 0; c < 4; c++ {
			WriteF32SliceToByteBuf(buf, &offset, m.Data[c][:])
		}

	default:
		assert.T(false, "Unknown uniform buffer data type passed. DataType '%d'", ubField.Type)
	}

	return offset
}

func Write32BitIntegerToByteBuf[T uint32 | int32](buf []byte, startIndex *int, val T) {

	assert.T(*startIndex+4 <= len(buf), "failed to write uint32/int32 to buffer because the buffer doesn't have enough space. Start index=%d, Buffer length=%d", *startIndex, len(buf))

	buf[*startIndex] = byte(val)
	buf[*startIndex+1] = byte(val >> 8)
	buf[*startIndex+2] = byte(val >> 16)
	buf[*startIndex+3] = byte(val >> 24)

	*startIndex += 4
}

func WriteF32ToByteBuf(buf []byte, startIndex *int, val float32) {
	Write32BitIntegerToByteBuf(buf, startIndex, math.Float32bits(val))
}

func WriteF32SliceToByteBuf(buf []byte, startIndex *int, vals []float32) {

	assert.T(*startIndex+len(vals)*4 <= len(buf), "failed to write slice of float32 to buffer because the buffer doesn't have enough space. Start index=%d, Buffer length=%d, but needs %d bytes free", *startIndex, len(buf), len(vals)*4)

	for i := 0; i < len(vals); i++ {
		WriteF32ToByteBuf(buf, startIndex, vals[i])
	}
}

func ReflectValueMatchesUniformBufferField(v reflect.Value, ubField *UniformBufferField) bool {

	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch ubField.Type {

	case DataTypeUint32:
		return v.Kind() == reflect.Uint32
	case DataTypeFloat32:
		return v.Kind() == reflect.Float32
	case DataTypeInt32:
		return v.Kind() == reflect.Int32
	case DataTypeVec2:
		_, ok := v.Interface().(gglm.Vec2)
		return ok
	case DataTypeVec3:
		_, ok := v.Interface().(gglm.Vec3)
		return ok
	case DataTypeVec4:
		_, ok := v.Interface().(gglm.Vec4)
		return ok
	case DataTypeMat2:
		_, ok := v.Interface().(gglm.Mat2)
		return ok
	case DataTypeMat3:
		_, ok := v.Interface().(gglm.Mat3)
		return ok
	case DataTypeMat4:
		_, ok := v.Interface().(gglm.Mat4)
		return ok

	default:
		assert.T(false, "Unknown uniform buffer data type passed. DataType '%d'", ubField.Type)
		return false
	}
}

func NewUniformBuffer(fields []UniformBufferFieldInput, usage BufUsage) UniformBuffer {

	ub := UniformBuffer{}
	ub.Fields, ub.Size = computeStd140Layout(fields)

	gl.GenBuffers(1, &ub.Id)
	if ub.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer for a uniform buffer")
	}

	ub.Bind()
	gl.BufferData(gl.UNIFORM_BUFFER, int(ub.Size), gl.Ptr(nil), usage.ToGL())
	ub.UnBind()

	return ub
}
