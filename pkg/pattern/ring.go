package pattern

import (
	"math"

	gmath "github.com/whitted-go/raytracer/pkg/math"
)

// Ring alternates two colors in concentric circles around the y axis
type Ring struct {
	base
	A, B gmath.Color
}

// NewRing creates a ring pattern
func NewRing(a, b gmath.Color) *Ring {
	return &Ring{base: newBase(), A: a, B: b}
}

// At returns A when the floored radial distance in the xz plane is even
func (r *Ring) At(objectPoint gmath.Tuple) gmath.Color {
	point := r.patternPoint(objectPoint)
	distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int64(math.Floor(distance))%2 == 0 {
		return r.A
	}
	return r.B
}
