package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebufferPixels reads the RGBA8 pixels of the currently bound read framebuffer.
// Rows are bottom to top, the way OpenGL returns them
func ReadFramebufferPixels(width, height int32) ([]byte, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("can't read a framebuffer of size %dx%d", width, height)
	}

	pixels := make([]byte, int(width)*int(height)*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels failed. OpenGl Error=%d", glErr)
	}

	return pixels, nil
}

// PixelsToImage turns bottom-to-top RGBA8 rows (e.g. from ReadFramebufferPixels) into an upright image.
// Alpha is forced to opaque since the default framebuffer alpha is meaningless once presented
func PixelsToImage(pixels []byte, width, height int) (*image.NRGBA, error) {

	rowSize := width * 4
	if width <= 0 || height <= 0 || len(pixels) != rowSize*height {
		return nil, fmt.Errorf("got %d bytes of pixels for an image of size %dx%d", len(pixels), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {

		srcRow := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		dstRow := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		copy(dstRow, srcRow)

		for x := 3; x < rowSize; x += 4 {
			dstRow[x] = 255
		}
	}

	return img, nil
}

func EncodeScreenshotPNG(w io.Writer, pixels []byte, width, height int) error {

	img, err := PixelsToImage(pixels, width, height)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// SaveScreenshot writes the current contents of the bound read framebuffer to a png file
func SaveScreenshot(filePath string, width, height int32) error {

	pixels, err := ReadFramebufferPixels(width, height)
	if err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create screenshot file '%s'. Err: %w", filePath, err)
	}

	err = EncodeScreenshotPNG(f, pixels, int(width), int(height))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("failed to write screenshot file '%s'. Err: %w", filePath, err)
	}

	return nil
}
