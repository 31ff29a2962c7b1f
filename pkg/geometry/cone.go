package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Cone is a double-napped cone around the object-space y axis, with its
// tip at the origin and radius equal to |y|. Like the cylinder it is
// infinite and open unless truncated and closed.
type Cone struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		object:  newObject(),
		Minimum: stdmath.Inf(-1),
		Maximum: stdmath.Inf(1),
	}
}

// checkConeCap reports whether the ray at t is within the cap radius,
// which for a cone is the |y| of the truncation plane
func checkConeCap(ray math.Ray, y, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= y*y
}

func (c *Cone) intersectCaps(ray math.Ray, xs Intersections) Intersections {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, c.Minimum, t) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, c.Maximum, t) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalIntersect intersects a ray with the cone walls and caps. When the
// ray is parallel to one of the cone's halves the quadratic degenerates to
// a linear equation with a single wall hit.
func (c *Cone) LocalIntersect(ray math.Ray) Intersections {
	var xs Intersections

	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if stdmath.Abs(a) < math.Epsilon {
		// Parallel to one half: a single intersection with the other,
		// unless b is also zero and the ray misses entirely
		if stdmath.Abs(b) < math.Epsilon {
			return c.intersectCaps(ray, xs)
		}
		t := -cc / (2 * b)
		y := o.Y + t*d.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, NewIntersection(t, c))
		}
		return c.intersectCaps(ray, xs)
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return c.intersectCaps(ray, xs)
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	y0 := o.Y + t0*d.Y
	if c.Minimum < y0 && y0 < c.Maximum {
		xs = append(xs, NewIntersection(t0, c))
	}

	y1 := o.Y + t1*d.Y
	if c.Minimum < y1 && y1 < c.Maximum {
		xs = append(xs, NewIntersection(t1, c))
	}

	return c.intersectCaps(ray, xs)
}

// LocalNormalAt computes the cone normal, using the point's height to
// orient the y component and the truncation planes to detect cap points
func (c *Cone) LocalNormalAt(point math.Tuple) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}

	y := stdmath.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return math.NewVector(point.X, y, point.Z)
}
