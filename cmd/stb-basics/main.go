package main

import (
	"flag"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nmage-recipes/assets"
	"github.com/bloeys/nmage-recipes/buffers"
	"github.com/bloeys/nmage-recipes/engine"
	"github.com/bloeys/nmage-recipes/input"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/bloeys/nmage-recipes/materials"
	"github.com/bloeys/nmage-recipes/renderer/rend3dgl"
	"github.com/bloeys/nmage-recipes/res"
	"github.com/bloeys/nmage-recipes/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	WINDOW_WIDTH  = 1024
	WINDOW_HEIGHT = 768
	WINDOW_TITLE  = "Simple example"

	perFrameDataBindPoint = 0
)

var (
	imagePath      = flag.String("image", "data/ch2_sample3_STB.jpg", "image drawn on the triangle")
	screenshotPath = flag.String("screenshot", "screenshot.png", "file written when F9 is pressed")
)

// PerFrameData mirrors the 'PerFrameData' uniform block of the triangle shader
type PerFrameData struct {
	MVP gglm.Mat4
}

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL

	TriangleMat  materials.Material
	TriangleVao  buffers.VertexArray
	PerFrameUbo  buffers.UniformBuffer
	TriangleTex  assets.Texture
	perFrameData PerFrameData

	takeScreenshot bool
}

func main() {

	flag.Parse()

	err := engine.Init()
	if err != nil {
		engine.ExitWithError(err)
	}

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowCentered(WINDOW_TITLE, WINDOW_WIDTH, WINDOW_HEIGHT, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		engine.ExitWithError(err)
	}

	engine.SetVSync(true)

	game := &Game{
		Win:  window,
		Rend: rend,
	}
	engine.Run(game, window, nil)

	window.Destroy()
	engine.DeInit()
}

func (g *Game) Init() {

	var err error
	g.TriangleMat, err = materials.NewMaterialSrc("STB Triangle Mat", res.StbTriangleShader)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create triangle material. Err:", err)
	}

	g.TriangleMat.SetUniformBlockBindingPoint("PerFrameData", perFrameDataBindPoint)
	g.TriangleMat.SetUnifInt32("texture0", int32(materials.TextureSlot_Diffuse))

	// The vertices are hardcoded in the shader, but a vao must still be bound to draw
	g.TriangleVao = buffers.NewVertexArray()

	g.PerFrameUbo = buffers.NewUniformBuffer(
		[]buffers.UniformBufferFieldInput{{Id: 0, Type: buffers.DataTypeMat4}},
		buffers.BufUsage_Dynamic_Draw,
	)
	g.PerFrameUbo.SetBindPointRange(perFrameDataBindPoint, 0, int(g.PerFrameUbo.Size))

	g.TriangleTex, err = assets.LoadTexture(*imagePath, &assets.TextureLoadOptions{
		ImageLoadOptions: assets.ImageLoadOptions{
			Channels:       3,
			FlipVertically: true,
		},
	})
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load triangle texture. Err:", err)
	}
	g.TriangleMat.DiffuseTex = g.TriangleTex.TexID

	logging.InfoLog.Printf("Loaded '%s' (%dx%d). Press F9 to save a screenshot to '%s'\n", *imagePath, g.TriangleTex.Width, g.TriangleTex.Height, *screenshotPath)

	gl.ClearColor(1, 0.8, 0.6, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonOffset(-1, -1)
}

func (g *Game) Update() {

	if input.KeyClickedCaptured(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_F9) {
		g.takeScreenshot = true
	}
}

func (g *Game) Render() {

	fbWidth, fbHeight := g.Win.FramebufferSize()

	// Minimized
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	gl.Viewport(0, 0, fbWidth, fbHeight)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ratio := float32(fbWidth) / float32(fbHeight)
	g.perFrameData.MVP = TriangleMVP(float32(timing.ElapsedTime()), ratio)

	g.PerFrameUbo.Bind()
	g.PerFrameUbo.SetStruct(&g.perFrameData)

	g.Rend.DrawVertexArray(&g.TriangleMat, &g.TriangleVao, 0, 3)
}

func (g *Game) FrameEnd() {

	if !g.takeScreenshot {
		return
	}
	g.takeScreenshot = false

	fbWidth, fbHeight := g.Win.FramebufferSize()
	if err := assets.SaveScreenshot(*screenshotPath, fbWidth, fbHeight); err != nil {
		logging.ErrLog.Println(err)
		return
	}

	logging.InfoLog.Printf("Saved %dx%d screenshot to '%s'\n", fbWidth, fbHeight, *screenshotPath)
}

func (g *Game) DeInit() {
	g.TriangleTex.Delete()
	g.PerFrameUbo.Delete()
	g.TriangleMat.Delete()
	g.TriangleVao.Delete()
}
