package geometry

import "github.com/whitted-go/raytracer/pkg/math"

// TestShape is a shape with injectable local behavior. It exists for tests
// in this package and elsewhere that need to observe the rays a shape
// receives or make a shape misbehave on demand; it never appears in real
// scenes.
type TestShape struct {
	object

	// SavedRay records the last object-space ray passed to LocalIntersect
	SavedRay math.Ray

	// IntersectFunc, when set, supplies the local intersection result
	IntersectFunc func(ray math.Ray) Intersections
	// NormalFunc, when set, supplies the local normal
	NormalFunc func(point math.Tuple) math.Tuple
}

// NewTestShape creates a test shape with the identity transform. Without
// injected behavior it intersects nothing and reports the surface normal of
// a unit sphere.
func NewTestShape() *TestShape {
	return &TestShape{object: newObject()}
}

// LocalIntersect records the ray and delegates to IntersectFunc if set
func (s *TestShape) LocalIntersect(ray math.Ray) Intersections {
	s.SavedRay = ray
	if s.IntersectFunc != nil {
		return s.IntersectFunc(ray)
	}
	return nil
}

// LocalNormalAt delegates to NormalFunc if set
func (s *TestShape) LocalNormalAt(point math.Tuple) math.Tuple {
	if s.NormalFunc != nil {
		return s.NormalFunc(point)
	}
	return point.Sub(math.NewPoint(0, 0, 0))
}
