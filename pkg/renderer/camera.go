package renderer

import (
	"fmt"
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/math"
)

// Camera maps canvas pixels to world-space rays. Its canvas sits one unit
// in front of the camera; the field of view and aspect ratio determine the
// canvas's world-space extent, and the view transform orients the world
// relative to the camera.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  math.Matrix
	inverse    math.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for a hsize x vsize canvas with the given
// field of view and the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   math.Identity(),
		inverse:     math.Identity(),
	}

	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() math.Matrix {
	return c.transform
}

// SetTransform assigns the view transform, rejecting non-invertible
// matrices
func (c *Camera) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// PixelSize returns the world-space size of one canvas pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the camera through the center of the
// given pixel. Identical coordinates always produce identical rays.
func (c *Camera) RayForPixel(px, py int) math.Ray {
	// Offset from the canvas edge to the pixel's center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Untransformed canvas coordinates: the camera looks toward -z, so +x
	// is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	// The canvas sits at z = -1. Transform the canvas point and the
	// camera origin into world space, then aim from one through the other.
	pixel := c.inverse.MulTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulTuple(math.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return math.NewRay(origin, direction)
}
