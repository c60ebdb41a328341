package nmageimgui

import (
	"testing"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSdlScancodeToImGuiKey(t *testing.T) {

	tests := []struct {
		scancode sdl.Scancode
		want     imgui.Key
	}{
		{sdl.SCANCODE_A, imgui.KeyA},
		{sdl.SCANCODE_M, imgui.KeyM},
		{sdl.SCANCODE_Z, imgui.KeyZ},
		{sdl.SCANCODE_1, imgui.Key1},
		{sdl.SCANCODE_9, imgui.Key9},
		{sdl.SCANCODE_0, imgui.Key0},
		{sdl.SCANCODE_KP_1, imgui.KeyKeypad1},
		{sdl.SCANCODE_KP_9, imgui.KeyKeypad9},
		{sdl.SCANCODE_KP_0, imgui.KeyKeypad0},
		{sdl.SCANCODE_F1, imgui.KeyF1},
		{sdl.SCANCODE_F9, imgui.KeyF9},
		{sdl.SCANCODE_F12, imgui.KeyF12},
		{sdl.SCANCODE_ESCAPE, imgui.KeyEscape},
		{sdl.SCANCODE_RETURN, imgui.KeyEnter},
		{sdl.SCANCODE_LCTRL, imgui.KeyLeftCtrl},
		{sdl.SCANCODE_RGUI, imgui.KeyRightSuper},
		{sdl.SCANCODE_UNKNOWN, imgui.KeyNone},
		{sdl.SCANCODE_F13, imgui.KeyNone},
	}

	for _, tc := range tests {
		if got := SdlScancodeToImGuiKey(tc.scancode); got != tc.want {
			t.Errorf("SdlScancodeToImGuiKey(%d) = %v, want %v", tc.scancode, got, tc.want)
		}
	}
}
