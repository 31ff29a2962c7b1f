package pattern

import (
	"math"

	gmath "github.com/whitted-go/raytracer/pkg/math"
)

// Gradient blends linearly from A to B along the x axis
type Gradient struct {
	base
	A, B gmath.Color
}

// NewGradient creates a gradient pattern
func NewGradient(a, b gmath.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

// At interpolates between A and B by the fractional part of x
func (g *Gradient) At(objectPoint gmath.Tuple) gmath.Color {
	point := g.patternPoint(objectPoint)
	distance := g.B.Sub(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Scale(fraction))
}
