package assets

import (
	"fmt"
	"image"
	"io"
	"os"
	"runtime"

	// Decoders registered with the image package, covering the formats
	// the recipes are expected to load
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mandykoh/prism"
)

type ImageLoadOptions struct {
	// Channels is the number of 8-bit channels per pixel of the output, 3 (RGB) or 4 (RGBA).
	// Zero means 4
	Channels int

	// FlipVertically makes the first row of Pixels the bottom row of the image, which is what
	// OpenGL expects since texture coordinate (0, 0) is the bottom left
	FlipVertically bool
}

// Image is a decoded image with tightly packed rows (no padding)
type Image struct {
	Width    int32
	Height   int32
	Channels int
	Pixels   []byte
}

func DecodeImageFile(imgPath string, opts *ImageLoadOptions) (Image, error) {

	f, err := os.Open(imgPath)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	return DecodeImage(f, opts)
}

// DecodeImage decodes any registered format and converts it to 8-bit channels
func DecodeImage(r io.Reader, opts *ImageLoadOptions) (Image, error) {

	if opts == nil {
		opts = &ImageLoadOptions{}
	}

	channels := opts.Channels
	if channels == 0 {
		channels = 4
	}

	if channels != 3 && channels != 4 {
		return Image{}, fmt.Errorf("unsupported channel count of %d. Only 3 and 4 are supported", channels)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image. Err: %w", err)
	}

	// Handles every color model (gray, paletted, YCbCr, CMYK and 16-bit) the same way
	nrgbaImg := prism.ConvertImageToNRGBA(img, runtime.NumCPU())

	bounds := nrgbaImg.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return Image{}, fmt.Errorf("decoded %s image has zero size", format)
	}

	return Image{
		Width:    int32(bounds.Dx()),
		Height:   int32(bounds.Dy()),
		Channels: channels,
		Pixels:   packPixels(nrgbaImg, channels, opts.FlipVertically),
	}, nil
}

// packPixels copies the pixels of img into a tightly packed buffer of the requested channel count.
// The alpha channel is dropped when channels is 3
func packPixels(img *image.NRGBA, channels int, flip bool) []byte {

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := make([]byte, width*height*channels)
	outRowSize := width * channels

	for y := 0; y < height; y++ {

		srcRowStart := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		srcRow := img.Pix[srcRowStart : srcRowStart+width*4]

		dstY := y
		if flip {
			dstY = height - 1 - y
		}
		dstRow := out[dstY*outRowSize : (dstY+1)*outRowSize]

		if channels == 4 {
			copy(dstRow, srcRow)
			continue
		}

		for x := 0; x < width; x++ {
			dstRow[x*3+0] = srcRow[x*4+0]
			dstRow[x*3+1] = srcRow[x*4+1]
			dstRow[x*3+2] = srcRow[x*4+2]
		}
	}

	return out
}
