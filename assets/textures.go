package assets

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type TextureLoadOptions struct {
	ImageLoadOptions

	// KeepPixels keeps the CPU side copy of the pixels after they are uploaded
	KeepPixels bool
}

type Texture struct {
	TexID uint32
	Image
}

func (t *Texture) Bind(slot uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + slot)
	gl.BindTexture(gl.TEXTURE_2D, t.TexID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

// glFormats returns the internal format and pixel format for 8-bit textures with the given channel count
func glFormats(channels int) (internalFormat int32, format uint32, err error) {

	switch channels {
	case 3:
		return gl.RGB8, gl.RGB, nil
	case 4:
		return gl.RGBA8, gl.RGBA, nil
	default:
		return 0, 0, fmt.Errorf("unsupported channel count of %d. Only 3 and 4 are supported", channels)
	}
}

// NewTexture2D uploads tightly packed 8-bit pixels into a new 2D texture with linear filtering and no mipmaps.
// pixels must hold width*height*channels bytes
func NewTexture2D(pixels unsafe.Pointer, width, height int32, channels int) (uint32, error) {

	internalFormat, format, err := glFormats(channels)
	if err != nil {
		return 0, err
	}

	var texId uint32
	gl.GenTextures(1, &texId)
	if texId == 0 {
		return 0, fmt.Errorf("failed to create OpenGL texture. OpenGl Error=%d", gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, texId)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Rows are tightly packed, which for RGB isn't a multiple of the default 4 byte alignment
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, format, gl.UNSIGNED_BYTE, pixels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	return texId, nil
}

func NewTextureFromImage(img Image, keepPixels bool) (Texture, error) {

	if len(img.Pixels) != int(img.Width)*int(img.Height)*img.Channels {
		return Texture{}, fmt.Errorf("image of size %dx%dx%d has %d bytes of pixels", img.Width, img.Height, img.Channels, len(img.Pixels))
	}

	texId, err := NewTexture2D(gl.Ptr(&img.Pixels[0]), img.Width, img.Height, img.Channels)
	if err != nil {
		return Texture{}, err
	}

	tex := Texture{TexID: texId, Image: img}
	if !keepPixels {
		tex.Pixels = nil
	}

	return tex, nil
}

func LoadTexture(imgPath string, loadOptions *TextureLoadOptions) (Texture, error) {

	if loadOptions == nil {
		loadOptions = &TextureLoadOptions{}
	}

	img, err := DecodeImageFile(imgPath, &loadOptions.ImageLoadOptions)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to load texture '%s'. Err: %w", imgPath, err)
	}

	return NewTextureFromImage(img, loadOptions.KeepPixels)
}
