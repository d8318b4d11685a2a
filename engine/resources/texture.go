package resources

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// TextureConfig describes the pixel source of a texture. Either Image or
// the raw Width/Height/Pixels triple must be set.
type TextureConfig struct {
	Image image.Image

	Width  uint32
	Height uint32
	// Pixels is tightly packed RGBA, 4 bytes per texel.
	Pixels []uint8
}

// Texture wraps an RGBA pixel source. Textures are referenced from
// materials by id and may be shared.
type Texture struct {
	id         string
	Width      uint32
	Height     uint32
	Pixels     []uint8
	Generation uint32
}

func NewTexture(id string, config TextureConfig) (*Texture, error) {
	if config.Image != nil {
		width, height, pixels := rgbaPixels(config.Image)
		return &Texture{id: id, Width: width, Height: height, Pixels: pixels}, nil
	}
	if want := int(config.Width) * int(config.Height) * 4; len(config.Pixels) != want {
		return nil, fmt.Errorf("texture %q: expected %d pixel bytes, got %d", id, want, len(config.Pixels))
	}
	return &Texture{
		id:     id,
		Width:  config.Width,
		Height: config.Height,
		Pixels: config.Pixels,
	}, nil
}

func (t *Texture) ResourceID() string {
	return t.id
}

// rgbaPixels converts an arbitrary image into the tightly packed RGBA
// layout the renderer contract expects.
func rgbaPixels(img image.Image) (uint32, uint32, []uint8) {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return uint32(bounds.Dx()), uint32(bounds.Dy()), rgba.Pix
}
