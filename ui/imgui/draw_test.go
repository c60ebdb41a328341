package nmageimgui

import (
	"math"
	"testing"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-recipes/buffers"
)

// transformPoint returns the clip space x and y of (x, y, 0, 1). gglm matrices are column major
func transformPoint(m *gglm.Mat4, x, y float32) (float32, float32) {
	return m.Data[0][0]*x + m.Data[1][0]*y + m.Data[3][0],
		m.Data[0][1]*x + m.Data[1][1]*y + m.Data[3][1]
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestProjectionFromDisplay(t *testing.T) {

	tests := []struct {
		name         string
		pos, size    imgui.Vec2
		x, y         float32
		wantX, wantY float32
	}{
		{name: "top left", size: imgui.Vec2{X: 1024, Y: 768}, x: 0, y: 0, wantX: -1, wantY: 1},
		{name: "bottom right", size: imgui.Vec2{X: 1024, Y: 768}, x: 1024, y: 768, wantX: 1, wantY: -1},
		{name: "center", size: imgui.Vec2{X: 1024, Y: 768}, x: 512, y: 384, wantX: 0, wantY: 0},
		{name: "offset display", pos: imgui.Vec2{X: 100, Y: 50}, size: imgui.Vec2{X: 200, Y: 100}, x: 100, y: 50, wantX: -1, wantY: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			m := ProjectionFromDisplay(tc.pos, tc.size)
			gotX, gotY := transformPoint(&m, tc.x, tc.y)
			if !near(gotX, tc.wantX) || !near(gotY, tc.wantY) {
				t.Errorf("(%v, %v) projected to (%v, %v), want (%v, %v)", tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestScissorRect(t *testing.T) {

	tests := []struct {
		name                       string
		clip                       imgui.Vec4
		fbHeight                   int32
		wantX, wantY, wantW, wantH int32
	}{
		{name: "full", clip: imgui.Vec4{X: 0, Y: 0, Z: 1024, W: 768}, fbHeight: 768, wantX: 0, wantY: 0, wantW: 1024, wantH: 768},
		{name: "top left corner", clip: imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}, fbHeight: 768, wantX: 10, wantY: 698, wantW: 100, wantH: 50},
		{name: "bottom strip", clip: imgui.Vec4{X: 0, Y: 700, Z: 50, W: 768}, fbHeight: 768, wantX: 0, wantY: 0, wantW: 50, wantH: 68},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := ScissorRect(tc.clip, tc.fbHeight)
			if x != tc.wantX || y != tc.wantY || w != tc.wantW || h != tc.wantH {
				t.Errorf("ScissorRect() = (%d, %d, %d, %d), want (%d, %d, %d, %d)", x, y, w, h, tc.wantX, tc.wantY, tc.wantW, tc.wantH)
			}
		})
	}
}

// Geometry drawn at a clip rect's corners must land on the corners of the scissor box
func TestProjectionMatchesScissor(t *testing.T) {

	const fbWidth, fbHeight = 1024, 768
	m := ProjectionFromDisplay(imgui.Vec2{}, imgui.Vec2{X: fbWidth, Y: fbHeight})

	clip := imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70}
	x, y, w, h := ScissorRect(clip, fbHeight)

	toWindow := func(cx, cy float32) (float32, float32) {
		return (cx + 1) / 2 * fbWidth, (cy + 1) / 2 * fbHeight
	}

	minX, maxY := toWindow(transformPoint(&m, clip.X, clip.Y))
	maxX, minY := toWindow(transformPoint(&m, clip.Z, clip.W))

	nearPx := func(a float32, b int32) bool {
		return math.Abs(float64(a)-float64(b)) < 0.01
	}

	if !nearPx(minX, x) || !nearPx(maxX, x+w) {
		t.Errorf("clip x range [%v, %v] drawn at [%v, %v]", x, x+w, minX, maxX)
	}

	if !nearPx(minY, y) || !nearPx(maxY, y+h) {
		t.Errorf("clip y range [%v, %v] drawn at [%v, %v]", y, y+h, minY, maxY)
	}
}

func TestDrawVertLayout(t *testing.T) {

	vb := buffers.VertexBuffer{}
	vb.SetLayout(DrawVertLayout()...)

	// sizeof(ImDrawVert) and its field offsets
	if vb.Stride != 20 {
		t.Errorf("stride = %d, want 20", vb.Stride)
	}

	want := []int{0, 8, 16}
	for i, e := range vb.GetLayout() {
		if e.Offset != want[i] {
			t.Errorf("element %d offset = %d, want %d", i, e.Offset, want[i])
		}
	}
}
