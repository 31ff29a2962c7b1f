package pattern

import (
	"math"

	gmath "github.com/whitted-go/raytracer/pkg/math"
)

// Stripe alternates between two colors in 1-unit bands along the x axis
type Stripe struct {
	base
	A, B gmath.Color
}

// NewStripe creates a stripe pattern
func NewStripe(a, b gmath.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// At returns A when floor(x) is even, B otherwise
func (s *Stripe) At(objectPoint gmath.Tuple) gmath.Color {
	point := s.patternPoint(objectPoint)
	if int64(math.Floor(point.X))%2 == 0 {
		return s.A
	}
	return s.B
}
