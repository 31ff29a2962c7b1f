package math

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors are
// unaffected because their w component is zero.
func Translation(x, y, z float64) Matrix {
	return NewMatrix(
		[]float64{1, 0, 0, x},
		[]float64{0, 1, 0, y},
		[]float64{0, 0, 1, z},
		[]float64{0, 0, 0, 1},
	)
}

// Scaling returns a matrix that scales tuples by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(
		[]float64{x, 0, 0, 0},
		[]float64{0, y, 0, 0},
		[]float64{0, 0, z, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationX returns a matrix rotating around the x axis by r radians
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{0, cos, -sin, 0},
		[]float64{0, sin, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationY returns a matrix rotating around the y axis by r radians
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{cos, 0, sin, 0},
		[]float64{0, 1, 0, 0},
		[]float64{-sin, 0, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationZ returns a matrix rotating around the z axis by r radians
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{cos, -sin, 0, 0},
		[]float64{sin, cos, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Shearing returns a matrix where each component is shifted in proportion
// to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		[]float64{1, xy, xz, 0},
		[]float64{yx, 1, yz, 0},
		[]float64{zx, zy, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// ViewTransform builds the matrix that orients the world relative to a
// camera positioned at from, looking at to, with up approximately up.
// The up vector only needs to be roughly correct; the true up is recomputed
// from the left vector, which makes framing scenes easier.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)

	// Move the scene into place before orienting it
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
