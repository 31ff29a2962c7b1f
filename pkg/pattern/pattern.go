// Package pattern implements procedural surface patterns. Each pattern owns
// its own transform, which composes with the shape's transform: callers
// hand At a point already converted to object space, and the pattern maps
// it into pattern space through its cached inverse.
package pattern

import (
	"fmt"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Pattern maps an object-space point to a color
type Pattern interface {
	// At returns the pattern color for a point in object space
	At(objectPoint math.Tuple) math.Color
	// Transform returns the pattern's transform matrix
	Transform() math.Matrix
	// SetTransform assigns the pattern transform, rejecting non-invertible
	// matrices
	SetTransform(m math.Matrix) error
}

// base carries the transform handling shared by all patterns
type base struct {
	transform math.Matrix
	inverse   math.Matrix
}

func newBase() base {
	return base{transform: math.Identity(), inverse: math.Identity()}
}

func (b *base) Transform() math.Matrix {
	return b.transform
}

func (b *base) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	b.transform = m
	b.inverse = inverse
	return nil
}

// patternPoint converts an object-space point to pattern space
func (b *base) patternPoint(objectPoint math.Tuple) math.Tuple {
	return b.inverse.MulTuple(objectPoint)
}
