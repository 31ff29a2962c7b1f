package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Triangle is a flat triangle defined by three object-space points. Edge
// vectors and the face normal are precomputed at construction.
type Triangle struct {
	object
	P1, P2, P3 math.Tuple
	E1, E2     math.Tuple
	Normal     math.Tuple
}

// NewTriangle creates a triangle from three points
func NewTriangle(p1, p2, p3 math.Tuple) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		object: newObject(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

// LocalIntersect uses the Moller-Trumbore algorithm: project the ray into
// the triangle's barycentric space and reject points outside it
func (tr *Triangle) LocalIntersect(ray math.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(tr.E2)
	determinant := tr.E1.Dot(dirCrossE2)

	// Ray parallel to the triangle's plane
	if stdmath.Abs(determinant) < math.Epsilon {
		return nil
	}

	f := 1 / determinant
	p1ToOrigin := ray.Origin.Sub(tr.P1)

	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * tr.E2.Dot(originCrossE1)
	return Intersections{NewIntersection(t, tr)}
}

// LocalNormalAt returns the precomputed face normal
func (tr *Triangle) LocalNormalAt(math.Tuple) math.Tuple {
	return tr.Normal
}
