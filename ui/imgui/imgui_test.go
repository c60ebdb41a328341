package nmageimgui

import (
	"path/filepath"
	"testing"
)

func TestAddFontTTFMissingFile(t *testing.T) {

	info := ImguiInfo{}
	err := info.AddFontTTF(filepath.Join(t.TempDir(), "missing.ttf"), 24, &FontOptions{OversampleH: 4, OversampleV: 4})
	if err == nil {
		t.Fatal("expected an error for a missing font file")
	}

	if info.FontTexID != 0 {
		t.Errorf("FontTexID = %d, want 0 after a failed load", info.FontTexID)
	}
}
