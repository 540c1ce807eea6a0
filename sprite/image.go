package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Image wraps a decoded PNG and converts its pixels into the formats the
// asset recipes consume. Pixels are always delivered in row-major order,
// top-left first.
type Image struct {
	img image.Image
}

// Load reads and decodes the PNG at path. Only PNG input is accepted.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %s: %w", path, err)
	}

	return &Image{img: img}, nil
}

// Size returns the pixel dimensions of the image.
func (i *Image) Size() (int, int) {
	bounds := i.img.Bounds()

	return bounds.Dx(), bounds.Dy()
}

// RGB24 returns the width, height, and pixel data of the image. Alpha is
// dropped, not blended.
func (i *Image) RGB24() (int, int, []RGB24) {
	bounds := i.img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]RGB24, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(i.img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, RGB24{R: c.R, G: c.G, B: c.B})
		}
	}

	return width, height, pixels
}

// Monochrome returns the width, height, and set/unset pixel data of the
// image. A pixel is set exactly when its alpha channel is non-zero; color
// is ignored, so glyph art can be drawn in any color over transparency.
func (i *Image) Monochrome() (int, int, []bool) {
	bounds := i.img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]bool, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := i.img.At(x, y).RGBA()
			pixels = append(pixels, a != 0)
		}
	}

	return width, height, pixels
}
