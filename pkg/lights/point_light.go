// Package lights defines the light sources a world can contain.
package lights

import "github.com/whitted-go/raytracer/pkg/math"

// PointLight is a light source with no size, existing at a single point
// and radiating in every direction. Immutable during a render.
type PointLight struct {
	Position  math.Tuple
	Intensity math.Color
}

// NewPointLight creates a point light at the given position
func NewPointLight(position math.Tuple, intensity math.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
