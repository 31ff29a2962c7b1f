// Package material implements the Phong reflectance model: surface color
// (or pattern) plus the scalar coefficients that drive local illumination,
// reflection and refraction.
package material

import (
	"math"

	"github.com/whitted-go/raytracer/pkg/lights"
	gmath "github.com/whitted-go/raytracer/pkg/math"
	"github.com/whitted-go/raytracer/pkg/pattern"
)

// Refractive indices for common media
const (
	RefractionVacuum = 1.0
	RefractionGlass  = 1.5
)

// Material holds the surface reflectance parameters for a shape. Configure
// it before rendering; it is read-only during a render pass.
type Material struct {
	Color           gmath.Color
	Pattern         pattern.Pattern // overrides Color when non-nil
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// New returns a material with the default Phong parameters
func New() Material {
	return Material{
		Color:           gmath.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractionVacuum,
	}
}

// Glass returns a transparent, reflective material
func Glass() Material {
	m := New()
	m.Transparency = 1.0
	m.Reflective = 1.0
	m.RefractiveIndex = RefractionGlass
	return m
}

// Lighting evaluates the Phong equation for a single light. worldPoint is
// the illuminated point in world space; objectPoint is the same point in
// the shape's object space, which is where patterns are sampled. When the
// point is in shadow only the ambient term contributes.
func (m Material) Lighting(light lights.PointLight, worldPoint, objectPoint, eyev, normalv gmath.Tuple, inShadow bool) gmath.Color {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.At(objectPoint)
	}

	// Combine the surface color with the light's color/intensity
	effectiveColor := color.Hadamard(light.Intensity)

	// Direction to the light source
	lightv := light.Position.Sub(worldPoint).Normalize()

	ambient := effectiveColor.Scale(m.Ambient)

	// Diffuse and specular both depend on the light source, so a shadowed
	// point keeps only the ambient component
	if inShadow {
		return ambient
	}

	// Cosine of the angle between the light vector and the normal. A
	// negative value means the light is on the other side of the surface.
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	// Cosine of the angle between the reflection vector and the eye. A
	// non-positive value means the light reflects away from the eye.
	reflectv := lightv.Neg().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
