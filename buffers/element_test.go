package buffers

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		wantSize  int32
		wantCount int32
		wantGL    uint32
	}{
		{DataTypeFloat32, 4, 1, gl.FLOAT},
		{DataTypeInt32, 4, 1, gl.INT},
		{DataTypeUint32, 4, 1, gl.UNSIGNED_INT},
		{DataTypeVec2, 8, 2, gl.FLOAT},
		{DataTypeVec3, 12, 3, gl.FLOAT},
		{DataTypeVec4, 16, 4, gl.FLOAT},
		{DataTypeMat4, 64, 16, gl.FLOAT},
		{DataTypeColorU8, 4, 4, gl.UNSIGNED_BYTE},
	}

	for _, tc := range tests {
		if got := tc.dt.Size(); got != tc.wantSize {
			t.Errorf("%s.Size() = %d, want %d", tc.dt, got, tc.wantSize)
		}
		if got := tc.dt.CompCount(); got != tc.wantCount {
			t.Errorf("%s.CompCount() = %d, want %d", tc.dt, got, tc.wantCount)
		}
		if got := tc.dt.GLType(); got != tc.wantGL {
			t.Errorf("%s.GLType() = %#x, want %#x", tc.dt, got, tc.wantGL)
		}
	}
}

func TestOnlyColorIsNormalized(t *testing.T) {

	for _, dt := range []ElementType{DataTypeFloat32, DataTypeVec2, DataTypeVec4, DataTypeInt32} {
		if dt.IsNormalized() {
			t.Errorf("%s.IsNormalized() = true, want false", dt)
		}
	}

	if !DataTypeColorU8.IsNormalized() {
		t.Error("ColorU8.IsNormalized() = false, want true")
	}
}

func TestSetLayoutInterleaved(t *testing.T) {

	// Position, UV and packed color, the layout of an imgui draw vertex
	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeColorU8},
	)

	if vb.Stride != 20 {
		t.Errorf("Stride = %d, want 20", vb.Stride)
	}

	wantOffsets := []int{0, 8, 16}
	layout := vb.GetLayout()
	for i, e := range layout {
		if e.Offset != wantOffsets[i] {
			t.Errorf("element %d offset = %d, want %d", i, e.Offset, wantOffsets[i])
		}
	}
}

func TestIndexGLType(t *testing.T) {

	if got := IndexGLType(2); got != gl.UNSIGNED_SHORT {
		t.Errorf("IndexGLType(2) = %#x, want UNSIGNED_SHORT", got)
	}

	if got := IndexGLType(4); got != gl.UNSIGNED_INT {
		t.Errorf("IndexGLType(4) = %#x, want UNSIGNED_INT", got)
	}
}

func TestStd140Alignment(t *testing.T) {

	tests := []struct {
		dt   ElementType
		want uint16
	}{
		{DataTypeFloat32, 4},
		{DataTypeInt32, 4},
		{DataTypeVec2, 8},
		{DataTypeVec3, 16},
		{DataTypeMat2, 16},
		{DataTypeMat4, 16},
	}

	for _, tc := range tests {
		if got := tc.dt.GlStd140AlignmentBoundary(); got != tc.want {
			t.Errorf("%s.GlStd140AlignmentBoundary() = %d, want %d", tc.dt, got, tc.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("GlStd140AlignmentBoundary() of ColorU8 didn't panic")
		}
	}()
	DataTypeColorU8.GlStd140AlignmentBoundary()
}

func TestElementTypeString(t *testing.T) {

	if got := DataTypeMat3.String(); got != "Mat3" {
		t.Errorf("Mat3.String() = %q, want %q", got, "Mat3")
	}

	if got := ElementType(200).String(); got != "Unknown" {
		t.Errorf("ElementType(200).String() = %q, want %q", got, "Unknown")
	}
}
