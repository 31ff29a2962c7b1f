package pattern

import (
	"math"

	gmath "github.com/whitted-go/raytracer/pkg/math"
)

// Checker alternates two colors in a 3D checkerboard of unit cubes
type Checker struct {
	base
	A, B gmath.Color
}

// NewChecker creates a checker pattern
func NewChecker(a, b gmath.Color) *Checker {
	return &Checker{base: newBase(), A: a, B: b}
}

// At returns A when the sum of the floored components is even
func (c *Checker) At(objectPoint gmath.Tuple) gmath.Color {
	point := c.patternPoint(objectPoint)
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int64(sum)%2 == 0 {
		return c.A
	}
	return c.B
}
