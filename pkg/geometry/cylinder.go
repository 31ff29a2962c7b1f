package geometry

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Cylinder is a radius-1 cylinder around the object-space y axis. It is
// infinite and open by default; Minimum/Maximum truncate it and Closed
// adds end caps.
type Cylinder struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		object:  newObject(),
		Minimum: stdmath.Inf(-1),
		Maximum: stdmath.Inf(1),
	}
}

// checkCylinderCap reports whether the ray at t is within radius 1 of the
// y axis
func checkCylinderCap(ray math.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// intersectCaps adds intersections with the end-cap planes. Caps only
// matter when the cylinder is closed and the ray could cross them.
func (c *Cylinder) intersectCaps(ray math.Ray, xs Intersections) Intersections {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	// Lower cap: plane at y = minimum
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}

	// Upper cap: plane at y = maximum
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalIntersect intersects a ray with the cylinder walls and caps
func (c *Cylinder) LocalIntersect(ray math.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// A ray parallel to the y axis can only hit the caps
	if stdmath.Abs(a) < math.Epsilon {
		return c.intersectCaps(ray, xs)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Keep wall hits whose y lies strictly between the truncation planes
	y0 := ray.Origin.Y + t0*ray.Direction.Y
	if c.Minimum < y0 && y0 < c.Maximum {
		xs = append(xs, NewIntersection(t0, c))
	}

	y1 := ray.Origin.Y + t1*ray.Direction.Y
	if c.Minimum < y1 && y1 < c.Maximum {
		xs = append(xs, NewIntersection(t1, c))
	}

	return c.intersectCaps(ray, xs)
}

// LocalNormalAt distinguishes cap points from wall points by the point's
// radial distance and height
func (c *Cylinder) LocalNormalAt(point math.Tuple) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}
	return math.NewVector(point.X, 0, point.Z)
}
