package math

import (
	"fmt"
	"math"
)

// Tuple is a 4-component value. W=1 marks a point, W=0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with W=1
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W=0
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple represents a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple represents a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// checkW panics when an operation produces a tuple that is neither a point
// nor a vector, e.g. adding two points. Such tuples indicate a bug in scene
// construction, not bad input data.
func checkW(op string, t Tuple) Tuple {
	if t.W != 0 && t.W != 1 {
		panic(fmt.Sprintf("math: %s produced invalid tuple with w=%v", op, t.W))
	}
	return t
}

// Add returns the component-wise sum. Adding two points panics.
func (t Tuple) Add(other Tuple) Tuple {
	return checkW("add", Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W})
}

// Sub returns the component-wise difference. Subtracting a point from a
// vector panics.
func (t Tuple) Sub(other Tuple) Tuple {
	return checkW("sub", Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W})
}

// Neg returns the negated tuple
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Mul returns the tuple scaled by a scalar
func (t Tuple) Mul(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Div returns the tuple divided by a scalar
func (t Tuple) Div(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. The zero vector
// normalizes to itself.
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}
	}
	return Tuple{t.X / magnitude, t.Y / magnitude, t.Z / magnitude, t.W / magnitude}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. Panics if either operand
// is a point.
func (t Tuple) Cross(other Tuple) Tuple {
	if !t.IsVector() || !other.IsVector() {
		panic("math: cross product requires two vectors")
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the vector reflected around the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Mul(2 * t.Dot(normal)))
}

// Equals reports whether two tuples are equal within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return Equals(t.X, other.X) &&
		Equals(t.Y, other.Y) &&
		Equals(t.Z, other.Z) &&
		Equals(t.W, other.W)
}
