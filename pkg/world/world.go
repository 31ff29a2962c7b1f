// Package world holds the scene graph and computes the color seen along a
// ray: nearest-hit selection, Phong shading per light with shadow tests,
// and depth-limited recursion into reflection and refraction.
package world

import (
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
)

// MaxRecursionDepth bounds reflection/refraction recursion. Mutually
// reflective surfaces would otherwise never terminate.
const MaxRecursionDepth = 5

// World is an ordered collection of shapes and lights. Build it before
// rendering; it is read-only during a render, which is what makes
// concurrent pixel evaluation safe.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// Default returns the canonical two-sphere test world: a light at
// (-10, 10, -10) and two concentric spheres
func Default() *World {
	outer := geometry.NewSphere()
	m := material.New()
	m.Color = math.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	return &World{
		Objects: []geometry.Shape{outer, inner},
		Lights: []lights.PointLight{
			lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
		},
	}
}

// Intersect gathers the intersections of the ray with every shape in the
// world, ordered by distance
func (w *World) Intersect(ray math.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the color seen along the ray, or black when the ray hits
// nothing. remaining is the recursion budget for reflection/refraction.
func (w *World) ColorAt(ray math.Ray, remaining int) math.Color {
	xs := w.Intersect(ray)

	hitIndex := -1
	for i, x := range xs {
		if x.T >= 0 {
			hitIndex = i
			break
		}
	}
	if hitIndex < 0 {
		return math.Black()
	}

	comps := prepareComputations(hitIndex, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a prepared intersection: the Phong
// surface term summed over all lights, plus the reflected and refracted
// contributions. When a material is both reflective and transparent the
// two are blended by the Schlick reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) math.Color {
	mat := comps.Object.Material()
	objectPoint := geometry.WorldToObject(comps.Object, comps.OverPoint)

	surface := math.Black()
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(mat.Lighting(light, comps.OverPoint, objectPoint, comps.EyeV, comps.NormalV, inShadow))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor spawns a ray along the reflection vector and returns its
// color scaled by the material's reflectivity. A spent recursion budget or
// a non-reflective material contributes nothing.
func (w *World) ReflectedColor(comps Computations, remaining int) math.Color {
	if remaining <= 0 {
		return math.Black()
	}

	reflective := comps.Object.Material().Reflective
	if stdmath.Abs(reflective) < math.Epsilon {
		return math.Black()
	}

	reflectRay := math.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// RefractedColor bends a ray through the surface via Snell's law and
// returns its color scaled by the material's transparency. Total internal
// reflection contributes nothing.
func (w *World) RefractedColor(comps Computations, remaining int) math.Color {
	if remaining <= 0 {
		return math.Black()
	}

	transparency := comps.Object.Material().Transparency
	if stdmath.Abs(transparency) < math.Epsilon {
		return math.Black()
	}

	// Snell: sin(theta_i) / sin(theta_t) = n2 / n1
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)

	// sin^2 above one has no real angle: total internal reflection
	if sin2T > 1 {
		return math.Black()
	}

	cosT := stdmath.Sqrt(1 - sin2T)
	direction := comps.NormalV.Mul(nRatio*cosI - cosT).Sub(comps.EyeV.Mul(nRatio))

	refractRay := math.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// Schlick approximates the Fresnel reflectance: the fraction of light that
// reflects rather than refracts at the surface, between 0 and 1
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	// Total internal reflection can only occur when n1 > n2
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}

		// When n1 > n2 use cos(theta_t) instead
		cos = stdmath.Sqrt(1 - sin2T)
	}

	r0 := ((comps.N1 - comps.N2) / (comps.N1 + comps.N2))
	r0 = r0 * r0
	return r0 + (1-r0)*stdmath.Pow(1-cos, 5)
}

// IsShadowed reports whether a shadow-casting shape sits between the point
// and the light
func (w *World) IsShadowed(point math.Tuple, light lights.PointLight) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()

	ray := math.NewRay(point, toLight.Normalize())
	xs := w.Intersect(ray)

	if hit, ok := xs.Hit(); ok && hit.Object.CastsShadow() {
		return hit.T < distance
	}
	return false
}
