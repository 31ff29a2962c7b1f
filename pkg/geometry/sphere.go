package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
)

// Sphere is a unit sphere centered at the object-space origin. Position
// and size come from the shape's transform.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere with the identity transform
func NewSphere() *Sphere {
	return &Sphere{object: newObject()}
}

// NewGlassSphere creates a unit sphere with a transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

// LocalIntersect solves the quadratic for a ray against the unit sphere
func (s *Sphere) LocalIntersect(ray math.Ray) Intersections {
	// Vector from the sphere's center to the ray origin
	sphereToRay := ray.Origin.Sub(math.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the normal at a point on the unit sphere, which is
// just the vector from the origin to the point
func (s *Sphere) LocalNormalAt(point math.Tuple) math.Tuple {
	return point.Sub(math.NewPoint(0, 0, 0))
}
