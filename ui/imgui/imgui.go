package nmageimgui

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/assets"
	"github.com/bloeys/nmage-recipes/buffers"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/bloeys/nmage-recipes/materials"
	"github.com/bloeys/nmage-recipes/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	// PerFrameDataBindPoint is the uniform buffer binding point of the 'PerFrameData' block holding the projection
	PerFrameDataBindPoint = 0

	initialVertexBufferSize = 128 * 1024
	initialIndexBufferSize  = 256 * 1024
)

type FontOptions struct {
	RasterizerMultiply float32
	OversampleH        int32
	OversampleV        int32
	PixelSnapH         bool
}

type ImguiInfo struct {
	Mat materials.Material
	Vao buffers.VertexArray
	Vbo buffers.VertexBuffer
	Ibo buffers.IndexBuffer
	Ubo buffers.UniformBuffer

	// FontTexID is the OpenGL texture holding the font atlas
	FontTexID uint32

	isMouseLeftDown   bool
	isMouseMiddleDown bool
	isMouseRightDown  bool
}

func (i *ImguiInfo) FrameStart(displayWidth, displayHeight float32) {

	imIO := imgui.CurrentIO()
	imIO.SetDisplaySize(imgui.Vec2{X: displayWidth, Y: displayHeight})
	imIO.SetDisplayFramebufferScale(imgui.Vec2{X: 1, Y: 1})
	imIO.SetDeltaTime(timing.DT())

	imgui.NewFrame()
}

// SetRenderState sets the blending, culling, depth and scissor state the draw lists expect
func (i *ImguiInfo) SetRenderState() {

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
}

// Render ends the imgui frame and draws it into the currently bound framebuffer
func (i *ImguiInfo) Render(fbWidth, fbHeight int32) {

	imgui.Render()

	// Avoid rendering when minimized
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	drawData := imgui.CurrentDrawData()

	projMat := ProjectionFromDisplay(drawData.DisplayPos(), drawData.DisplaySize())
	i.Ubo.Bind()
	i.Ubo.SetMat4(0, &projMat)

	i.SetRenderState()

	i.Mat.Bind()
	i.Vao.Bind()
	i.Vbo.Bind()
	i.Ibo.Bind()

	indexSize := imgui.IndexBufferLayout()
	assert.T(indexSize == i.Ibo.IndexSize, "imgui index size changed from %d to %d", i.Ibo.IndexSize, indexSize)
	indexType := buffers.IndexGLType(indexSize)

	for _, list := range drawData.CommandLists() {

		vertexBuffer, vertexBufferSize := list.GetVertexBuffer()
		i.Vbo.SetDataRaw(vertexBuffer, vertexBufferSize)

		indexBuffer, indexBufferSize := list.GetIndexBuffer()
		i.Ibo.SetDataRaw(indexBuffer, indexBufferSize/indexSize)

		for _, cmd := range list.Commands() {

			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}

			x, y, w, h := ScissorRect(cmd.ClipRect(), fbHeight)
			gl.Scissor(x, y, w, h)

			gl.ActiveTexture(gl.TEXTURE0 + uint32(materials.TextureSlot_Diffuse))
			gl.BindTexture(gl.TEXTURE_2D, textureIDToGL(cmd.TextureId()))

			gl.DrawElementsBaseVertexWithOffset(
				gl.TRIANGLES,
				int32(cmd.ElemCount()),
				indexType,
				uintptr(int(cmd.IdxOffset())*indexSize),
				int32(cmd.VtxOffset()),
			)
		}
	}

	gl.Scissor(0, 0, fbWidth, fbHeight)
}

// AddFontTTF loads a ttf font, rebuilds the font atlas texture and makes the new font the default one
func (i *ImguiInfo) AddFontTTF(fontPath string, fontSize float32, opts *FontOptions) error {

	if _, err := os.Stat(fontPath); err != nil {
		return fmt.Errorf("failed to load font '%s'. Err: %w", fontPath, err)
	}

	// The atlas copies the config, so both can be freed once the font is added
	fontConfig := imgui.NewFontConfig()
	defer fontConfig.Destroy()

	if opts != nil {
		fontConfig.SetRasterizerMultiply(opts.RasterizerMultiply)
		fontConfig.SetOversampleH(opts.OversampleH)
		fontConfig.SetOversampleV(opts.OversampleV)
		fontConfig.SetPixelSnapH(opts.PixelSnapH)
	}
	fontConfig.SetFontDataOwnedByAtlas(false)

	glyphRanges := imgui.NewGlyphRange()
	defer glyphRanges.Destroy()

	imIO := imgui.CurrentIO()
	f := imIO.Fonts().AddFontFromFileTTFV(fontPath, fontSize, fontConfig, glyphRanges.Data())
	if f == 0 {
		return errors.New("failed to add font '" + fontPath + "' to the font atlas")
	}
	imIO.SetFontDefault(f)

	return i.uploadFontAtlas()
}

func (i *ImguiInfo) uploadFontAtlas() error {

	atlas := imgui.CurrentIO().Fonts()
	pixels, width, height, _ := atlas.GetTextureDataAsRGBA32()

	texID, err := assets.NewTexture2D(pixels, int32(width), int32(height), 4)
	if err != nil {
		return fmt.Errorf("failed to upload imgui font atlas. Err: %w", err)
	}

	if i.FontTexID != 0 {
		gl.DeleteTextures(1, &i.FontTexID)
	}

	i.FontTexID = texID
	atlas.SetTexID(glToTextureID(texID))
	return nil
}

// Destroy releases the OpenGL objects and the imgui context
func (i *ImguiInfo) Destroy() {

	if i.FontTexID != 0 {
		gl.DeleteTextures(1, &i.FontTexID)
		i.FontTexID = 0
	}

	i.Vao.Delete()
	i.Vbo.Delete()
	i.Ibo.Delete()
	i.Ubo.Delete()
	i.Mat.Delete()

	imgui.DestroyContext()
}

func glToTextureID(texID uint32) imgui.TextureID {
	return imgui.TextureID(unsafe.Pointer(uintptr(texID)))
}

func textureIDToGL(texID imgui.TextureID) uint32 {
	return uint32(uintptr(texID))
}

// NewImGui creates the imgui context and everything needed to render it.
// shaderSrc is a combined shader with a 'PerFrameData' uniform block and a 'Texture' sampler
func NewImGui(shaderSrc []byte) (ImguiInfo, error) {

	imguiMat, err := materials.NewMaterialSrc("ImGUI Mat", shaderSrc)
	if err != nil {
		return ImguiInfo{}, err
	}

	imgui.CreateContext()

	imIO := imgui.CurrentIO()
	imIO.SetBackendFlags(imIO.BackendFlags() | imgui.BackendFlagsRendererHasVtxOffset)

	imguiInfo := ImguiInfo{
		Mat: imguiMat,
		Vao: buffers.NewVertexArray(),
		Vbo: buffers.NewVertexBuffer(DrawVertLayout()...),
		Ibo: buffers.NewIndexBuffer(imgui.IndexBufferLayout()),
		Ubo: buffers.NewUniformBuffer(
			[]buffers.UniformBufferFieldInput{{Id: 0, Type: buffers.DataTypeMat4}},
			buffers.BufUsage_Dynamic_Draw,
		),
	}

	vertexSize, posOffset, uvOffset, colOffset := imgui.VertexBufferLayout()
	assertDrawVertLayout(&imguiInfo.Vbo, vertexSize, posOffset, uvOffset, colOffset)

	imguiInfo.Vbo.Reserve(initialVertexBufferSize, buffers.BufUsage_Dynamic_Draw)
	imguiInfo.Ibo.Reserve(initialIndexBufferSize, buffers.BufUsage_Dynamic_Draw)

	imguiInfo.Vao.AddVertexBuffer(imguiInfo.Vbo)
	imguiInfo.Vao.SetIndexBuffer(imguiInfo.Ibo)
	imguiInfo.Vao.UnBind()

	imguiInfo.Ubo.SetBindPoint(PerFrameDataBindPoint)
	imguiInfo.Mat.SetUniformBlockBindingPoint("PerFrameData", PerFrameDataBindPoint)
	imguiInfo.Mat.SetUnifInt32("Texture", int32(materials.TextureSlot_Diffuse))

	// The default font is used until AddFontTTF is called
	if err := imguiInfo.uploadFontAtlas(); err != nil {
		imguiInfo.Destroy()
		return ImguiInfo{}, err
	}

	logging.InfoLog.Printf("Created imgui context. Vertex size=%d bytes; Index size=%d bytes\n", vertexSize, imguiInfo.Ibo.IndexSize)
	return imguiInfo, nil
}
