package nmageimgui

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/veandco/go-sdl2/sdl"
)

// WantCapture reports whether imgui is using the mouse and keyboard, in which case the
// game should ignore them
func (i *ImguiInfo) WantCapture() (mouse, keyboard bool) {
	imIO := imgui.CurrentIO()
	return imIO.WantCaptureMouse(), imIO.WantCaptureKeyboard()
}

// HandleEvent forwards one sdl event to imgui
func (i *ImguiInfo) HandleEvent(event sdl.Event) {

	imIO := imgui.CurrentIO()

	switch e := event.(type) {

	case *sdl.MouseWheelEvent:
		imIO.AddMouseWheelDelta(float32(e.X), float32(e.Y))

	case *sdl.KeyboardEvent:

		isDown := e.Type == sdl.KEYDOWN
		imIO.AddKeyEvent(SdlScancodeToImGuiKey(e.Keysym.Scancode), isDown)

		// Send modifier key updates to imgui
		switch e.Keysym.Sym {
		case sdl.K_LCTRL, sdl.K_RCTRL:
			imIO.SetKeyCtrl(isDown)
		case sdl.K_LSHIFT, sdl.K_RSHIFT:
			imIO.SetKeyShift(isDown)
		case sdl.K_LALT, sdl.K_RALT:
			imIO.SetKeyAlt(isDown)
		case sdl.K_LGUI, sdl.K_RGUI:
			imIO.SetKeySuper(isDown)
		}

	case *sdl.TextInputEvent:
		imIO.AddInputCharactersUTF8(e.GetText())

	case *sdl.MouseButtonEvent:

		isPressed := e.State == sdl.PRESSED

		switch e.Button {
		case sdl.BUTTON_LEFT:
			i.isMouseLeftDown = isPressed
		case sdl.BUTTON_MIDDLE:
			i.isMouseMiddleDown = isPressed
		case sdl.BUTTON_RIGHT:
			i.isMouseRightDown = isPressed
		}
	}
}

// EventsEnd sends the mouse state to imgui after all events of the frame were handled
func (i *ImguiInfo) EventsEnd() {

	imIO := imgui.CurrentIO()

	x, y, _ := sdl.GetMouseState()
	imIO.SetMousePos(imgui.Vec2{X: float32(x), Y: float32(y)})

	imIO.SetMouseButtonDown(imgui.MouseButtonLeft, i.isMouseLeftDown)
	imIO.SetMouseButtonDown(imgui.MouseButtonRight, i.isMouseRightDown)
	imIO.SetMouseButtonDown(imgui.MouseButtonMiddle, i.isMouseMiddleDown)
}
