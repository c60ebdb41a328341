package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPixelsToImage(t *testing.T) {

	// Bottom row first, the way glReadPixels returns it
	pixels := []byte{
		0, 0, 255, 0, 0, 255, 0, 0, // bottom: blue, green
		255, 0, 0, 10, 255, 255, 255, 20, // top: red, white
	}

	img, err := PixelsToImage(pixels, 2, 2)
	if err != nil {
		t.Fatalf("PixelsToImage() error = %v", err)
	}

	tests := []struct {
		x, y       int
		r, g, b, a uint8
	}{
		{0, 0, 255, 0, 0, 255},
		{1, 0, 255, 255, 255, 255},
		{0, 1, 0, 0, 255, 255},
		{1, 1, 0, 255, 0, 255},
	}

	for _, tc := range tests {
		got := img.NRGBAAt(tc.x, tc.y)
		if got.R != tc.r || got.G != tc.g || got.B != tc.b || got.A != tc.a {
			t.Errorf("pixel (%d, %d) = %v, want {%d %d %d %d}", tc.x, tc.y, got, tc.r, tc.g, tc.b, tc.a)
		}
	}
}

func TestPixelsToImageBadSize(t *testing.T) {

	if _, err := PixelsToImage(make([]byte, 15), 2, 2); err == nil {
		t.Error("PixelsToImage() with short buffer error = nil, want error")
	}

	if _, err := PixelsToImage(nil, 0, 0); err == nil {
		t.Error("PixelsToImage() with zero size error = nil, want error")
	}
}

func TestEncodeScreenshotPNG(t *testing.T) {

	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	var buf bytes.Buffer
	if err := EncodeScreenshotPNG(&buf, pixels, 3, 1); err != nil {
		t.Fatalf("EncodeScreenshotPNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	if got := img.Bounds().Dx(); got != 3 {
		t.Errorf("width = %d, want 3", got)
	}

	r, g, b, _ := img.At(1, 0).RGBA()
	if r>>8 != 5 || g>>8 != 6 || b>>8 != 7 {
		t.Errorf("pixel (1, 0) = %d %d %d, want 5 6 7", r>>8, g>>8, b>>8)
	}
}
