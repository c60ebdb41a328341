package engine

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bloeys/nmage-recipes/assert"
	"github.com/bloeys/nmage-recipes/input"
	"github.com/bloeys/nmage-recipes/logging"
	"github.com/bloeys/nmage-recipes/renderer"
	"github.com/bloeys/nmage-recipes/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

// UI receives the window events before the game does, and can capture the mouse and keyboard
type UI interface {
	WantCapture() (mouse, keyboard bool)
	HandleEvent(e sdl.Event)
	EventsEnd()
}

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
	Rend           renderer.Render
}

func (w *Window) handleInputs(ui UI) {

	mouseCaptured, keyboardCaptured := false, false
	if ui != nil {
		mouseCaptured, keyboardCaptured = ui.WantCapture()
	}

	input.EventLoopStart(mouseCaptured, keyboardCaptured)

	// Otherwise keys held when the ui takes over stay held, since the release goes to the ui
	if mouseCaptured {
		input.ClearMouseState()
	}

	if keyboardCaptured {
		input.ClearKeyboardState()
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		if ui != nil {
			ui.HandleEvent(event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.MouseButtonEvent:
			input.HandleMouseBtnEvent(e)

		case *sdl.MouseMotionEvent:
			input.HandleMouseMotionEvent(e)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}

	if ui != nil {
		ui.EventsEnd()
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.FramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

// FramebufferSize returns the size in pixels of the window's default framebuffer, which
// can be bigger than the window size on high DPI displays
func (w *Window) FramebufferSize() (width, height int32) {
	return w.SDLWin.GLGetDrawableSize()
}

func (w *Window) Destroy() error {
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func Init() error {

	isInited = true

	runtime.LockOSThread()
	timing.Init()
	err := initSDL()

	return err
}

// DeInit shuts down sdl. Windows must be destroyed first
func DeInit() {
	sdl.Quit()
	isInited = false
}

// ExitWithError reports err on stderr as 'Error: <err>', shuts down sdl and exits with a failure code
func ExitWithError(err error) {

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)

	if isInited {
		DeInit()
	}

	os.Exit(1)
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	// Required on macOS for core profiles
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	return nil
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, rend)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
		Rend:           rend,
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	err = initOpenGL()
	if err != nil {
		win.Destroy()
		return nil, err
	}

	win.handleWindowResize()
	return win, nil
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	logging.InfoLog.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))
	logging.InfoLog.Println("OpenGL renderer:", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}
