package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Cube is an axis-aligned cube spanning -1..1 on each object-space axis
type Cube struct {
	object
}

// NewCube creates a unit cube with the identity transform
func NewCube() *Cube {
	return &Cube{object: newObject()}
}

// checkAxis intersects the ray against the pair of parallel planes
// bounding one axis, returning the near and far t values. A direction
// component of zero produces infinities with the correct signs.
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if stdmath.Abs(direction) >= math.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * stdmath.Inf(1)
		tmax = tmaxNumerator * stdmath.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalIntersect treats the cube as six axis-aligned planes: the overall
// entry point is the largest of the per-axis minimums, the exit the
// smallest of the maximums
func (c *Cube) LocalIntersect(ray math.Ray) Intersections {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := stdmath.Max(stdmath.Max(xtmin, ytmin), ztmin)
	tmax := stdmath.Min(stdmath.Min(xtmax, ytmax), ztmax)

	if tmin > tmax {
		return nil
	}

	return Intersections{
		NewIntersection(tmin, c),
		NewIntersection(tmax, c),
	}
}

// LocalNormalAt picks the face whose axis has the largest absolute
// component
func (c *Cube) LocalNormalAt(point math.Tuple) math.Tuple {
	maxc := stdmath.Max(stdmath.Max(stdmath.Abs(point.X), stdmath.Abs(point.Y)), stdmath.Abs(point.Z))

	switch maxc {
	case stdmath.Abs(point.X):
		return math.NewVector(point.X, 0, 0)
	case stdmath.Abs(point.Y):
		return math.NewVector(0, point.Y, 0)
	default:
		return math.NewVector(0, 0, point.Z)
	}
}
