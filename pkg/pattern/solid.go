package pattern

import "github.com/whitted-go/raytracer/pkg/math"

// Solid is a pattern that returns the same color everywhere
type Solid struct {
	base
	Color math.Color
}

// NewSolid creates a solid pattern
func NewSolid(c math.Color) *Solid {
	return &Solid{base: newBase(), Color: c}
}

// At returns the solid color regardless of the point
func (s *Solid) At(math.Tuple) math.Color {
	return s.Color
}
