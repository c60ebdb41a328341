package main

import (
	"flag"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/nmage-recipes/engine"
	"github.com/bloeys/nmage-recipes/input"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/bloeys/nmage-recipes/renderer/rend3dgl"
	"github.com/bloeys/nmage-recipes/res"
	nmageimgui "github.com/bloeys/nmage-recipes/ui/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	WINDOW_WIDTH  = 1024
	WINDOW_HEIGHT = 768
	WINDOW_TITLE  = "Simple example"

	FONT_SIZE = WINDOW_HEIGHT / 32
)

var (
	fontPath = flag.String("font", "data/OpenSans-Light.ttf", "ttf font used by the GUI. The built-in font is used if it can't be loaded")
)

type Game struct {
	Win       *engine.Window
	ImGUIInfo nmageimgui.ImguiInfo
}

func main() {

	flag.Parse()

	err := engine.Init()
	if err != nil {
		engine.ExitWithError(err)
	}

	window, err := engine.CreateOpenGLWindowCentered(WINDOW_TITLE, WINDOW_WIDTH, WINDOW_HEIGHT, engine.WindowFlags_RESIZABLE, rend3dgl.NewRend3DGL())
	if err != nil {
		engine.ExitWithError(err)
	}

	engine.SetVSync(true)

	imguiInfo, err := nmageimgui.NewImGui(res.ImguiShader)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create imgui. Err:", err)
	}

	game := &Game{
		Win:       window,
		ImGUIInfo: imguiInfo,
	}
	engine.Run(game, window, &game.ImGUIInfo)

	window.Destroy()
	engine.DeInit()
}

func (g *Game) Init() {

	err := g.ImGUIInfo.AddFontTTF(*fontPath, FONT_SIZE, &nmageimgui.FontOptions{
		RasterizerMultiply: 1.5,
		OversampleH:        4,
		OversampleV:        4,
		PixelSnapH:         true,
	})
	if err != nil {
		logging.WarnLog.Println("Using the default imgui font.", err)
	}

	g.ImGUIInfo.SetRenderState()
	gl.ClearColor(1, 1, 1, 1)
}

func (g *Game) Update() {

	// Escape always quits, even while imgui has the keyboard
	if input.KeyClickedCaptured(sdl.K_ESCAPE) {
		engine.Quit()
	}
}

func (g *Game) Render() {

	fbWidth, fbHeight := g.Win.FramebufferSize()

	// Scissoring stays on for imgui, so reset it in case the window got bigger
	gl.Viewport(0, 0, fbWidth, fbHeight)
	gl.Scissor(0, 0, fbWidth, fbHeight)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	g.ImGUIInfo.FrameStart(float32(fbWidth), float32(fbHeight))
	imgui.ShowDemoWindow()
	g.ImGUIInfo.Render(fbWidth, fbHeight)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.ImGUIInfo.Destroy()
}
