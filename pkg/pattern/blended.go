package pattern

import gmath "github.com/whitted-go/raytracer/pkg/math"

// Blended averages the colors of two sub-patterns. The sub-patterns keep
// their own transforms, which compose with the blended pattern's transform.
type Blended struct {
	base
	A, B Pattern
}

// NewBlended creates a blended pattern over two sub-patterns
func NewBlended(a, b Pattern) *Blended {
	return &Blended{base: newBase(), A: a, B: b}
}

// At returns the average of the two sub-pattern colors
func (p *Blended) At(objectPoint gmath.Tuple) gmath.Color {
	point := p.patternPoint(objectPoint)
	return p.A.At(point).Add(p.B.At(point)).Scale(0.5)
}
