package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(kc sdl.Keycode, state uint8, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		State:  state,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: kc},
	}
}

func resetState() {
	ClearKeyboardState()
	ClearMouseState()
	EventLoopStart(false, false)
}

func TestKeyLifecycle(t *testing.T) {

	resetState()

	// Frame 1: pressed
	EventLoopStart(false, false)
	HandleKeyboardEvent(keyEvent(sdl.K_F9, sdl.PRESSED, 0))
	if !KeyClicked(sdl.K_F9) || !KeyDown(sdl.K_F9) {
		t.Fatalf("frame 1: KeyClicked=%v KeyDown=%v, want true true", KeyClicked(sdl.K_F9), KeyDown(sdl.K_F9))
	}

	// Frame 2: held, no events
	EventLoopStart(false, false)
	if KeyClicked(sdl.K_F9) || !KeyDown(sdl.K_F9) {
		t.Fatalf("frame 2: KeyClicked=%v KeyDown=%v, want false true", KeyClicked(sdl.K_F9), KeyDown(sdl.K_F9))
	}

	// Frame 3: key repeat isn't a new click
	EventLoopStart(false, false)
	HandleKeyboardEvent(keyEvent(sdl.K_F9, sdl.PRESSED, 1))
	if KeyClicked(sdl.K_F9) {
		t.Fatal("frame 3: KeyClicked = true on a repeat event, want false")
	}

	// Frame 4: released
	EventLoopStart(false, false)
	HandleKeyboardEvent(keyEvent(sdl.K_F9, sdl.RELEASED, 0))
	if !KeyReleased(sdl.K_F9) || KeyDown(sdl.K_F9) {
		t.Fatalf("frame 4: KeyReleased=%v KeyDown=%v, want true false", KeyReleased(sdl.K_F9), KeyDown(sdl.K_F9))
	}

	if KeyDown(sdl.K_a) {
		t.Error("KeyDown of a key that never got an event = true, want false")
	}
}

func TestKeyboardCaptured(t *testing.T) {

	resetState()

	EventLoopStart(false, true)
	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.PRESSED, 0))

	if KeyClicked(sdl.K_ESCAPE) {
		t.Error("KeyClicked while captured = true, want false")
	}

	if !KeyClickedCaptured(sdl.K_ESCAPE) {
		t.Error("KeyClickedCaptured while captured = false, want true")
	}

	if !IsKeyboardCaptured() || IsMouseCaptured() {
		t.Errorf("IsKeyboardCaptured=%v IsMouseCaptured=%v, want true false", IsKeyboardCaptured(), IsMouseCaptured())
	}
}

func TestMouseButtons(t *testing.T) {

	resetState()

	EventLoopStart(false, false)
	HandleMouseBtnEvent(&sdl.MouseButtonEvent{Button: sdl.BUTTON_LEFT, State: sdl.PRESSED, Clicks: 2})

	if !MouseClicked(sdl.BUTTON_LEFT) || !MouseDown(sdl.BUTTON_LEFT) || !MouseDoubleClicked(sdl.BUTTON_LEFT) {
		t.Errorf("after double click: clicked=%v down=%v double=%v, want all true",
			MouseClicked(sdl.BUTTON_LEFT), MouseDown(sdl.BUTTON_LEFT), MouseDoubleClicked(sdl.BUTTON_LEFT))
	}

	// Captured mouse hides the state, and clearing forgets the held button
	EventLoopStart(true, false)
	if MouseDown(sdl.BUTTON_LEFT) || !MouseDownCaptured(sdl.BUTTON_LEFT) {
		t.Errorf("captured: MouseDown=%v MouseDownCaptured=%v, want false true", MouseDown(sdl.BUTTON_LEFT), MouseDownCaptured(sdl.BUTTON_LEFT))
	}

	ClearMouseState()
	if MouseDownCaptured(sdl.BUTTON_LEFT) {
		t.Error("MouseDownCaptured after ClearMouseState = true, want false")
	}
}

func TestMouseMotion(t *testing.T) {

	resetState()

	EventLoopStart(false, false)
	HandleMouseMotionEvent(&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: 3, YRel: -1})
	HandleMouseMotionEvent(&sdl.MouseMotionEvent{X: 12, Y: 18, XRel: 2, YRel: -2})

	if x, y := GetMousePos(); x != 12 || y != 18 {
		t.Errorf("GetMousePos() = (%d, %d), want (12, 18)", x, y)
	}

	if dx, dy := GetMouseMotion(); dx != 5 || dy != -3 {
		t.Errorf("GetMouseMotion() = (%d, %d), want (5, -3)", dx, dy)
	}

	EventLoopStart(false, false)
	if dx, dy := GetMouseMotion(); dx != 0 || dy != 0 {
		t.Errorf("GetMouseMotion() on a new frame = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestQuit(t *testing.T) {

	resetState()

	HandleQuitEvent(&sdl.QuitEvent{})
	if !IsQuitClicked() {
		t.Fatal("IsQuitClicked() = false after a quit event")
	}

	EventLoopStart(false, false)
	if IsQuitClicked() {
		t.Error("IsQuitClicked() = true on the next frame, want false")
	}
}
