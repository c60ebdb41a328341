package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

// twoByTwo is a 2x2 image with red, green on the top row and blue, semi transparent white on the bottom one
func twoByTwo() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	return img
}

func TestPackPixels(t *testing.T) {

	tests := []struct {
		name     string
		channels int
		flip     bool
		want     []byte
	}{
		{
			name:     "rgba",
			channels: 4,
			want:     []byte{255, 0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255, 255, 255, 255, 128},
		},
		{
			name:     "rgb",
			channels: 3,
			want:     []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255},
		},
		{
			name:     "rgb flipped",
			channels: 3,
			flip:     true,
			want:     []byte{0, 0, 255, 255, 255, 255, 255, 0, 0, 0, 255, 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := packPixels(twoByTwo(), tc.channels, tc.flip)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("packPixels() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPackPixelsSubImage(t *testing.T) {

	// The bottom right pixel only, which exercises non-zero bounds and a stride wider than the row
	sub := twoByTwo().SubImage(image.Rect(1, 1, 2, 2)).(*image.NRGBA)

	got := packPixels(sub, 4, false)
	want := []byte{255, 255, 255, 128}
	if !bytes.Equal(got, want) {
		t.Errorf("packPixels() = %v, want %v", got, want)
	}
}

func TestDecodeImage(t *testing.T) {

	var buf bytes.Buffer
	if err := png.Encode(&buf, twoByTwo()); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeImage(bytes.NewReader(buf.Bytes()), &ImageLoadOptions{Channels: 3, FlipVertically: true})
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}

	if got.Width != 2 || got.Height != 2 || got.Channels != 3 {
		t.Fatalf("DecodeImage() size = %dx%dx%d, want 2x2x3", got.Width, got.Height, got.Channels)
	}

	// First row is the bottom row of the image: blue then white
	want := []byte{0, 0, 255, 255, 255, 255, 255, 0, 0, 0, 255, 0}
	if !bytes.Equal(got.Pixels, want) {
		t.Errorf("DecodeImage() pixels = %v, want %v", got.Pixels, want)
	}
}

func TestDecodeImageGray(t *testing.T) {

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 200})

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeImage(&buf, nil)
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}

	want := []byte{200, 200, 200, 255}
	if got.Channels != 4 || !bytes.Equal(got.Pixels, want) {
		t.Errorf("DecodeImage() = %d channels %v, want 4 channels %v", got.Channels, got.Pixels, want)
	}
}

func TestDecodeImageErrors(t *testing.T) {

	if _, err := DecodeImage(strings.NewReader("not an image"), nil); err == nil {
		t.Error("DecodeImage() of garbage error = nil, want error")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, twoByTwo()); err != nil {
		t.Fatal(err)
	}

	if _, err := DecodeImage(&buf, &ImageLoadOptions{Channels: 2}); err == nil {
		t.Error("DecodeImage() with 2 channels error = nil, want error")
	}

	if _, err := DecodeImageFile(filepath.Join(t.TempDir(), "missing.jpg"), nil); err == nil {
		t.Error("DecodeImageFile() of missing file error = nil, want error")
	}
}
