// Package geometry implements the shape hierarchy. Every shape does its
// intersection and normal math in its own object space; the world-space
// wrappers Intersect and NormalAt convert through the shape's cached
// inverse transform, walking parent chains for shapes nested in groups.
package geometry

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
)

// Shape is the contract shared by all geometric primitives. The interface
// is closed: the unexported accessors keep implementations inside this
// package, so the variant set stays the known shape kinds.
type Shape interface {
	// ID returns the shape's unique identity, used to track which shapes a
	// refracted ray is currently inside of and to name shapes in errors
	ID() uuid.UUID
	// Transform returns the shape's transform matrix
	Transform() math.Matrix
	// SetTransform assigns the shape transform, rejecting non-invertible
	// matrices at construction time
	SetTransform(m math.Matrix) error
	// Material returns the shape's material
	Material() material.Material
	// SetMaterial assigns the shape's material
	SetMaterial(m material.Material)
	// Parent returns the group this shape belongs to, or nil
	Parent() Shape
	// SetParent records a non-owning back-reference to the enclosing group
	SetParent(p Shape)
	// CastsShadow reports whether the shape blocks light in shadow tests
	CastsShadow() bool
	// SetCastsShadow toggles shadow casting
	SetCastsShadow(casts bool)
	// LocalIntersect intersects a ray already in object space
	LocalIntersect(ray math.Ray) Intersections
	// LocalNormalAt computes the normal for a point in object space
	LocalNormalAt(point math.Tuple) math.Tuple

	inverseTransform() math.Matrix
	inverseTransposeTransform() math.Matrix
}

// object carries the state common to every shape and implements the
// non-geometric half of the Shape interface
type object struct {
	id               uuid.UUID
	transform        math.Matrix
	inverse          math.Matrix
	inverseTranspose math.Matrix
	material         material.Material
	parent           Shape
	castsShadow      bool
}

func newObject() object {
	return object{
		id:               uuid.New(),
		transform:        math.Identity(),
		inverse:          math.Identity(),
		inverseTranspose: math.Identity(),
		material:         material.New(),
		castsShadow:      true,
	}
}

func (o *object) ID() uuid.UUID {
	return o.id
}

func (o *object) Transform() math.Matrix {
	return o.transform
}

// SetTransform caches the inverse and inverse-transpose so the render path
// never recomputes them. A non-invertible matrix is rejected here, which
// makes this the single place the policy is enforced.
func (o *object) SetTransform(m math.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape %s transform: %w", o.id, err)
	}
	o.transform = m
	o.inverse = inverse
	o.inverseTranspose = inverse.Transpose()
	return nil
}

func (o *object) Material() material.Material {
	return o.material
}

func (o *object) SetMaterial(m material.Material) {
	o.material = m
}

func (o *object) Parent() Shape {
	return o.parent
}

func (o *object) SetParent(p Shape) {
	o.parent = p
}

func (o *object) CastsShadow() bool {
	return o.castsShadow
}

func (o *object) SetCastsShadow(casts bool) {
	o.castsShadow = casts
}

func (o *object) inverseTransform() math.Matrix {
	return o.inverse
}

func (o *object) inverseTransposeTransform() math.Matrix {
	return o.inverseTranspose
}

// Intersect transforms the ray into the shape's object space and delegates
// to the shape's local intersection routine
func Intersect(s Shape, ray math.Ray) Intersections {
	localRay := ray.Transform(s.inverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point
func NormalAt(s Shape, worldPoint math.Tuple) math.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's object
// space, applying the transforms of any enclosing groups outermost first
func WorldToObject(s Shape, point math.Tuple) math.Tuple {
	if s.Parent() != nil {
		point = WorldToObject(s.Parent(), point)
	}
	return s.inverseTransform().MulTuple(point)
}

// NormalToWorld converts an object-space normal to world space through the
// inverse-transpose of each transform in the parent chain, innermost first
func NormalToWorld(s Shape, normal math.Tuple) math.Tuple {
	normal = s.inverseTransposeTransform().MulTuple(normal)
	// The inverse-transpose can smear a value into w; zero it before
	// renormalizing
	normal.W = 0
	normal = normal.Normalize()

	if s.Parent() != nil {
		normal = NormalToWorld(s.Parent(), normal)
	}
	return normal
}
