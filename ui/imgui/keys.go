package nmageimgui

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlScancodeToImguiKey = map[sdl.Scancode]imgui.Key{
	sdl.SCANCODE_TAB:       imgui.KeyTab,
	sdl.SCANCODE_LEFT:      imgui.KeyLeftArrow,
	sdl.SCANCODE_RIGHT:     imgui.KeyRightArrow,
	sdl.SCANCODE_UP:        imgui.KeyUpArrow,
	sdl.SCANCODE_DOWN:      imgui.KeyDownArrow,
	sdl.SCANCODE_PAGEUP:    imgui.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:  imgui.KeyPageDown,
	sdl.SCANCODE_HOME:      imgui.KeyHome,
	sdl.SCANCODE_END:       imgui.KeyEnd,
	sdl.SCANCODE_INSERT:    imgui.KeyInsert,
	sdl.SCANCODE_DELETE:    imgui.KeyDelete,
	sdl.SCANCODE_BACKSPACE: imgui.KeyBackspace,
	sdl.SCANCODE_SPACE:     imgui.KeySpace,
	sdl.SCANCODE_RETURN:    imgui.KeyEnter,
	sdl.SCANCODE_ESCAPE:    imgui.KeyEscape,

	sdl.SCANCODE_APOSTROPHE:   imgui.KeyApostrophe,
	sdl.SCANCODE_COMMA:        imgui.KeyComma,
	sdl.SCANCODE_MINUS:        imgui.KeyMinus,
	sdl.SCANCODE_PERIOD:       imgui.KeyPeriod,
	sdl.SCANCODE_SLASH:        imgui.KeySlash,
	sdl.SCANCODE_SEMICOLON:    imgui.KeySemicolon,
	sdl.SCANCODE_EQUALS:       imgui.KeyEqual,
	sdl.SCANCODE_LEFTBRACKET:  imgui.KeyLeftBracket,
	sdl.SCANCODE_BACKSLASH:    imgui.KeyBackslash,
	sdl.SCANCODE_RIGHTBRACKET: imgui.KeyRightBracket,
	sdl.SCANCODE_GRAVE:        imgui.KeyGraveAccent,

	sdl.SCANCODE_CAPSLOCK:     imgui.KeyCapsLock,
	sdl.SCANCODE_SCROLLLOCK:   imgui.KeyScrollLock,
	sdl.SCANCODE_NUMLOCKCLEAR: imgui.KeyNumLock,
	sdl.SCANCODE_PRINTSCREEN:  imgui.KeyPrintScreen,
	sdl.SCANCODE_PAUSE:        imgui.KeyPause,
	sdl.SCANCODE_APPLICATION:  imgui.KeyMenu,

	sdl.SCANCODE_KP_0:        imgui.KeyKeypad0,
	sdl.SCANCODE_KP_PERIOD:   imgui.KeyKeypadDecimal,
	sdl.SCANCODE_KP_DIVIDE:   imgui.KeyKeypadDivide,
	sdl.SCANCODE_KP_MULTIPLY: imgui.KeyKeypadMultiply,
	sdl.SCANCODE_KP_MINUS:    imgui.KeyKeypadSubtract,
	sdl.SCANCODE_KP_PLUS:     imgui.KeyKeypadAdd,
	sdl.SCANCODE_KP_ENTER:    imgui.KeyKeypadEnter,
	sdl.SCANCODE_KP_EQUALS:   imgui.KeyKeypadEqual,

	sdl.SCANCODE_LCTRL:  imgui.KeyLeftCtrl,
	sdl.SCANCODE_LSHIFT: imgui.KeyLeftShift,
	sdl.SCANCODE_LALT:   imgui.KeyLeftAlt,
	sdl.SCANCODE_LGUI:   imgui.KeyLeftSuper,
	sdl.SCANCODE_RCTRL:  imgui.KeyRightCtrl,
	sdl.SCANCODE_RSHIFT: imgui.KeyRightShift,
	sdl.SCANCODE_RALT:   imgui.KeyRightAlt,
	sdl.SCANCODE_RGUI:   imgui.KeyRightSuper,

	sdl.SCANCODE_0: imgui.Key0,
}

func SdlScancodeToImGuiKey(scancode sdl.Scancode) imgui.Key {

	if k, ok := sdlScancodeToImguiKey[scancode]; ok {
		return k
	}

	// These ranges are contiguous in both enums. Note that sdl has 0 after 9 for both
	// the number row and the keypad, so those two zeros are in the map above
	switch {
	case scancode >= sdl.SCANCODE_A && scancode <= sdl.SCANCODE_Z:
		return imgui.KeyA + imgui.Key(scancode-sdl.SCANCODE_A)
	case scancode >= sdl.SCANCODE_1 && scancode <= sdl.SCANCODE_9:
		return imgui.Key1 + imgui.Key(scancode-sdl.SCANCODE_1)
	case scancode >= sdl.SCANCODE_KP_1 && scancode <= sdl.SCANCODE_KP_9:
		return imgui.KeyKeypad1 + imgui.Key(scancode-sdl.SCANCODE_KP_1)
	case scancode >= sdl.SCANCODE_F1 && scancode <= sdl.SCANCODE_F12:
		return imgui.KeyF1 + imgui.Key(scancode-sdl.SCANCODE_F1)
	}

	return imgui.KeyNone
}
