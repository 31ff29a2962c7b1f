package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct {
	object
}

// NewPlane creates a plane with the identity transform
func NewPlane() *Plane {
	return &Plane{object: newObject()}
}

// LocalIntersect intersects a ray with the xz plane. A ray parallel to the
// plane (including coplanar rays) yields no intersections.
func (p *Plane) LocalIntersect(ray math.Ray) Intersections {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(math.Tuple) math.Tuple {
	return math.NewVector(0, 1, 0)
}
