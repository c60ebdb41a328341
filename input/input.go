// The input package tracks keyboard and mouse state per frame, so that
// besides 'is this key down' you can ask 'was this key pressed this frame'.
//
// Most functions come in two forms, 'xy' and 'xyCaptured'. When the GUI
// is capturing the mouse or keyboard the 'xy' form returns zero/false, while the
// captured form always reports the real state. Use the captured form for
// things that must always work, like closing the window with escape.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               int
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

type mouseBtnState struct {
	Btn   int
	State int

	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
	IsDoubleClicked     bool
}

type mouseMotionState struct {
	XDelta int32
	YDelta int32
	XPos   int32
	YPos   int32
}

var (
	mouseMotion = mouseMotionState{}
	mouseBtnMap = make(map[int]mouseBtnState)
	keyMap      = make(map[sdl.Keycode]keyState)

	isQuitRequested    bool
	isMouseCaptured    bool
	isKeyboardCaptured bool
)

// EventLoopStart resets the per-frame state and must be called before the events of a new frame are handled
func EventLoopStart(mouseGotCaptured, keyboardGotCaptured bool) {

	isMouseCaptured = mouseGotCaptured
	isKeyboardCaptured = keyboardGotCaptured

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	for k, v := range mouseBtnMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		v.IsDoubleClicked = false
		mouseBtnMap[k] = v
	}

	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0

	isQuitRequested = false
}

// ClearKeyboardState forgets held keys. Used when the GUI takes the keyboard, as the
// key up events will go to the GUI and keys would otherwise stay held
func ClearKeyboardState() {
	clear(keyMap)
}

func ClearMouseState() {
	clear(mouseBtnMap)
	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func IsMouseCaptured() bool {
	return isMouseCaptured
}

func IsKeyboardCaptured() bool {
	return isKeyboardCaptured
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	// Repeats keep the key down but aren't new presses
	isFirst := e.Repeat == 0

	keyMap[e.Keysym.Sym] = keyState{
		Key:                 e.Keysym.Sym,
		State:               int(e.State),
		IsPressedThisFrame:  isFirst && e.State == sdl.PRESSED,
		IsReleasedThisFrame: isFirst && e.State == sdl.RELEASED,
	}
}

func HandleMouseBtnEvent(e *sdl.MouseButtonEvent) {

	isPressed := e.State == sdl.PRESSED

	mouseBtnMap[int(e.Button)] = mouseBtnState{
		Btn:                 int(e.Button),
		State:               int(e.State),
		IsPressedThisFrame:  isPressed,
		IsReleasedThisFrame: !isPressed,
		IsDoubleClicked:     isPressed && e.Clicks == 2,
	}
}

func HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {

	mouseMotion.XPos = e.X
	mouseMotion.YPos = e.Y

	// Several motion events can arrive in one frame
	mouseMotion.XDelta += e.XRel
	mouseMotion.YDelta += e.YRel
}

// GetMousePos returns the window coordinates of the mouse regardless of whether the mouse is captured or not
func GetMousePos() (x, y int32) {
	return mouseMotion.XPos, mouseMotion.YPos
}

// GetMouseMotion returns how many pixels were moved this frame
func GetMouseMotion() (xDelta, yDelta int32) {

	if isMouseCaptured {
		return 0, 0
	}

	return mouseMotion.XDelta, mouseMotion.YDelta
}

func KeyClicked(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyClickedCaptured(kc)
}

func KeyClickedCaptured(kc sdl.Keycode) bool {
	return keyMap[kc].IsPressedThisFrame
}

func KeyReleased(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyReleasedCaptured(kc)
}

func KeyReleasedCaptured(kc sdl.Keycode) bool {
	return keyMap[kc].IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyDownCaptured(kc)
}

func KeyDownCaptured(kc sdl.Keycode) bool {
	return keyMap[kc].State == sdl.PRESSED
}

func MouseClicked(mb int) bool {
	return !isMouseCaptured && MouseClickedCaptured(mb)
}

func MouseClickedCaptured(mb int) bool {
	return mouseBtnMap[mb].IsPressedThisFrame
}

func MouseDoubleClicked(mb int) bool {
	return !isMouseCaptured && mouseBtnMap[mb].IsDoubleClicked
}

func MouseDown(mb int) bool {
	return !isMouseCaptured && MouseDownCaptured(mb)
}

func MouseDownCaptured(mb int) bool {
	return mouseBtnMap[mb].State == sdl.PRESSED
}
