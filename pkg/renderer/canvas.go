package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// Canvas is the render target: a row-major grid of linear colors with (0,0) at the top-left.
// Workers write disjoint rows concurrently, so no row is ever touched by two goroutines.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas allocates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (c *Canvas) Set(x, y int, pixel core.Color) {
	c.pixels[y*c.Width+x] = pixel
}

// At returns the color of pixel (x, y)
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// Row returns the pixels of row y; writes through the slice land in the canvas
func (c *Canvas) Row(y int) []core.Color {
	return c.pixels[y*c.Width : (y+1)*c.Width]
}

// ToImage converts the canvas to an 8-bit image with clamping and gamma correction
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x, pixel := range c.Row(y) {
			img.SetRGBA(x, y, color.RGBA{
				R: core.ToByte(pixel.R),
				G: core.ToByte(pixel.G),
				B: core.ToByte(pixel.B),
				A: 255,
			})
		}
	}
	return img
}

// Equal reports whether two canvases hold exactly the same pixels
func (c *Canvas) Equal(other *Canvas) bool {
	if c.Width != other.Width || c.Height != other.Height {
		return false
	}
	for i := range c.pixels {
		if c.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// AverageLuminance returns the mean linear luminance over all pixels
func (c *Canvas) AverageLuminance() float64 {
	if len(c.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, pixel := range c.pixels {
		total += pixel.Luminance()
	}
	return total / float64(len(c.pixels))
}
