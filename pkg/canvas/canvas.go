// Package canvas provides the 2D color grid the renderer writes into.
// The canvas is a pure data sink: the renderer owns it while rendering and
// hands it to whatever serializes it afterwards.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Canvas is a width x height grid of colors, row-major, default black
type Canvas struct {
	Width  int
	Height int
	pixels []math.Color
}

// New creates a canvas with every pixel black
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]math.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) outside %dx%d", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// WritePixel sets the color at (x, y). Out-of-range coordinates panic:
// every pixel is owned by exactly one writer, so a bad coordinate is a
// bug, not data.
func (c *Canvas) WritePixel(x, y int, col math.Color) {
	c.pixels[c.index(x, y)] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) math.Color {
	return c.pixels[c.index(x, y)]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// component to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: componentToByte(pixel.R),
				G: componentToByte(pixel.G),
				B: componentToByte(pixel.B),
				A: 255,
			})
		}
	}
	return img
}

func componentToByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
