package world

import (
	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/math"
)

// Computations bundles everything the shading equations need about a hit:
// the intersection point, the viewing and surface vectors, the
// epsilon-bumped points used to spawn secondary rays, and the refractive
// indices on either side of the surface.
type Computations struct {
	T      float64
	Object geometry.Shape
	Point  math.Tuple
	// OverPoint is the point bumped along the normal, used for shadow
	// tests and reflection rays so they cannot re-hit their own surface
	OverPoint math.Tuple
	// UnderPoint is the point bumped against the normal, where refracted
	// rays originate
	UnderPoint math.Tuple
	EyeV       math.Tuple
	NormalV    math.Tuple
	ReflectV   math.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices of the media the ray is
	// leaving and entering
	N1, N2 float64
}

// prepareComputations derives the shading state for the intersection at
// hitIndex. The full sorted intersection list is needed to reconstruct
// which shapes the ray is currently inside of.
func prepareComputations(hitIndex int, ray math.Ray, xs geometry.Intersections) Computations {
	hit := xs[hitIndex]

	point := ray.Position(hit.T)
	eyev := ray.Direction.Neg()
	normalv := geometry.NormalAt(hit.Object, point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Neg()
	}

	comps := Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(normalv.Mul(math.Epsilon)),
		UnderPoint: point.Sub(normalv.Mul(math.Epsilon)),
		EyeV:       eyev,
		NormalV:    normalv,
		ReflectV:   ray.Direction.Reflect(normalv),
		Inside:     inside,
	}
	comps.N1, comps.N2 = refractiveIndices(hitIndex, xs)
	return comps
}

// refractiveIndices walks the intersection list up to the hit, tracking
// which shapes have been entered but not yet exited. The media on either
// side of the hit are whatever shape is innermost just before and just
// after it, defaulting to vacuum.
func refractiveIndices(hitIndex int, xs geometry.Intersections) (n1, n2 float64) {
	var containers []geometry.Shape

	for i, x := range xs {
		if i == hitIndex {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// A shape already in the container list is being exited,
		// otherwise it is being entered
		if idx := indexOfShape(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if i == hitIndex {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOfShape(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate.ID() == s.ID() {
			return i
		}
	}
	return -1
}
