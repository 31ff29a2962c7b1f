// Package scene builds ready-to-render worlds and cameras. Scene
// construction is the collaborator surface in front of the core: nothing
// here is consulted during rendering.
package scene

import (
	"fmt"
	stdmath "math"

	"github.com/whitted-go/raytracer/pkg/geometry"
	"github.com/whitted-go/raytracer/pkg/lights"
	"github.com/whitted-go/raytracer/pkg/material"
	"github.com/whitted-go/raytracer/pkg/math"
	"github.com/whitted-go/raytracer/pkg/pattern"
	"github.com/whitted-go/raytracer/pkg/renderer"
	"github.com/whitted-go/raytracer/pkg/world"
)

// Default builds the three-spheres-on-a-patterned-floor scene at the given
// canvas size
func Default(width, height int) (*world.World, *renderer.Camera, error) {
	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Color = math.NewColor(1, 0.9, 0.9)
	floorMat.Pattern = pattern.NewRing(math.NewColor(1, 0, 0), math.White())
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	middle := geometry.NewSphere()
	if err := middle.SetTransform(math.Translation(-0.5, 1, 0.5)); err != nil {
		return nil, nil, fmt.Errorf("middle sphere: %w", err)
	}
	checker := pattern.NewChecker(math.NewColor(0.1, 1, 0.5), math.White())
	if err := checker.SetTransform(math.Scaling(0.4, 0.4, 0.4)); err != nil {
		return nil, nil, fmt.Errorf("checker pattern: %w", err)
	}
	middleMat := material.New()
	middleMat.Color = math.NewColor(0.1, 1, 0.5)
	middleMat.Pattern = checker
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	if err := right.SetTransform(math.Translation(1.5, 0.5, -0.5).Mul(math.Scaling(0.5, 0.5, 0.5))); err != nil {
		return nil, nil, fmt.Errorf("right sphere: %w", err)
	}
	rightMat := material.New()
	rightMat.Color = math.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	if err := left.SetTransform(math.Translation(-1.5, 0.33, -0.75).Mul(math.Scaling(0.33, 0.33, 0.33))); err != nil {
		return nil, nil, fmt.Errorf("left sphere: %w", err)
	}
	leftMat := material.New()
	leftMat.Color = math.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	w := world.New()
	w.Objects = []geometry.Shape{floor, middle, right, left}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-10, 10, -10), math.White()),
	}

	cam := renderer.NewCamera(width, height, stdmath.Pi/3)
	if err := cam.SetTransform(math.ViewTransform(
		math.NewPoint(0, 1.5, -5),
		math.NewPoint(0, 1, 0),
		math.NewVector(0, 1, 0),
	)); err != nil {
		return nil, nil, fmt.Errorf("camera: %w", err)
	}

	return w, cam, nil
}

// Showcase builds a scene exercising every primitive: a reflective checker
// floor, a glass sphere, a mirrored sphere, a gradient cube, a striped
// capped cylinder, a cone and a grouped triangle pyramid
func Showcase(width, height int) (*world.World, *renderer.Camera, error) {
	floor := geometry.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = pattern.NewChecker(math.NewColor(0.85, 0.85, 0.85), math.NewColor(0.3, 0.3, 0.35))
	floorMat.Specular = 0.1
	floorMat.Reflective = 0.15
	floor.SetMaterial(floorMat)

	glass := geometry.NewGlassSphere()
	if err := glass.SetTransform(math.Translation(0, 1, 0.5)); err != nil {
		return nil, nil, fmt.Errorf("glass sphere: %w", err)
	}
	glassMat := glass.Material()
	glassMat.Color = math.NewColor(0.05, 0.05, 0.08)
	glassMat.Diffuse = 0.05
	glassMat.Ambient = 0.02
	glassMat.Reflective = 0.9
	glass.SetMaterial(glassMat)
	// Shadow from a transparent sphere would read as a solid blob
	glass.SetCastsShadow(false)

	mirror := geometry.NewSphere()
	if err := mirror.SetTransform(math.Translation(2.2, 0.75, 2).Mul(math.Scaling(0.75, 0.75, 0.75))); err != nil {
		return nil, nil, fmt.Errorf("mirror sphere: %w", err)
	}
	mirrorMat := material.New()
	mirrorMat.Color = math.NewColor(0.1, 0.1, 0.1)
	mirrorMat.Diffuse = 0.3
	mirrorMat.Reflective = 0.9
	mirror.SetMaterial(mirrorMat)

	cube := geometry.NewCube()
	if err := cube.SetTransform(
		math.Translation(-2.6, 0.5, 1.5).
			Mul(math.RotationY(stdmath.Pi / 5)).
			Mul(math.Scaling(0.5, 0.5, 0.5))); err != nil {
		return nil, nil, fmt.Errorf("cube: %w", err)
	}
	gradient := pattern.NewGradient(math.NewColor(1, 0.3, 0.2), math.NewColor(0.2, 0.3, 1))
	if err := gradient.SetTransform(math.Translation(-1, 0, 0).Mul(math.Scaling(2, 1, 1))); err != nil {
		return nil, nil, fmt.Errorf("gradient pattern: %w", err)
	}
	cubeMat := material.New()
	cubeMat.Pattern = gradient
	cubeMat.Specular = 0.4
	cube.SetMaterial(cubeMat)

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 1.5
	cylinder.Closed = true
	if err := cylinder.SetTransform(math.Translation(3.8, 0, -0.5).Mul(math.Scaling(0.5, 1, 0.5))); err != nil {
		return nil, nil, fmt.Errorf("cylinder: %w", err)
	}
	stripeA := pattern.NewStripe(math.NewColor(0.9, 0.7, 0.1), math.NewColor(0.5, 0.2, 0.05))
	if err := stripeA.SetTransform(math.Scaling(0.25, 0.25, 0.25).Mul(math.RotationZ(stdmath.Pi / 2))); err != nil {
		return nil, nil, fmt.Errorf("stripe pattern: %w", err)
	}
	stripeB := pattern.NewStripe(math.NewColor(0.9, 0.7, 0.1), math.NewColor(0.5, 0.2, 0.05))
	if err := stripeB.SetTransform(math.Scaling(0.25, 0.25, 0.25)); err != nil {
		return nil, nil, fmt.Errorf("stripe pattern: %w", err)
	}
	cylinderMat := material.New()
	cylinderMat.Pattern = pattern.NewBlended(stripeA, stripeB)
	cylinder.SetMaterial(cylinderMat)

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	if err := cone.SetTransform(math.Translation(-4.2, 1, 2.5).Mul(math.Scaling(0.6, 1, 0.6))); err != nil {
		return nil, nil, fmt.Errorf("cone: %w", err)
	}
	coneMat := material.New()
	coneMat.Color = math.NewColor(0.8, 0.35, 0.1)
	coneMat.Specular = 0.5
	cone.SetMaterial(coneMat)

	pyramid, err := trianglePyramid()
	if err != nil {
		return nil, nil, fmt.Errorf("pyramid: %w", err)
	}

	w := world.New()
	w.Objects = []geometry.Shape{floor, glass, mirror, cube, cylinder, cone, pyramid}
	w.Lights = []lights.PointLight{
		lights.NewPointLight(math.NewPoint(-10, 10, -10), math.NewColor(0.9, 0.9, 0.9)),
		lights.NewPointLight(math.NewPoint(8, 6, -8), math.NewColor(0.25, 0.25, 0.3)),
	}

	cam := renderer.NewCamera(width, height, stdmath.Pi/3)
	if err := cam.SetTransform(math.ViewTransform(
		math.NewPoint(0, 2.2, -6.5),
		math.NewPoint(0, 0.9, 0),
		math.NewVector(0, 1, 0),
	)); err != nil {
		return nil, nil, fmt.Errorf("camera: %w", err)
	}

	return w, cam, nil
}

// trianglePyramid assembles four triangles into a grouped pyramid so the
// group transform positions them as one unit
func trianglePyramid() (*geometry.Group, error) {
	apex := math.NewPoint(0, 1, 0)
	base := []math.Tuple{
		math.NewPoint(-1, 0, -1),
		math.NewPoint(1, 0, -1),
		math.NewPoint(1, 0, 1),
		math.NewPoint(-1, 0, 1),
	}

	mat := material.New()
	mat.Color = math.NewColor(0.2, 0.5, 0.8)
	mat.Specular = 0.6
	mat.Shininess = 50

	group := geometry.NewGroup()
	for i := range base {
		side := geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex)
		side.SetMaterial(mat)
		group.AddChild(side)
	}

	if err := group.SetTransform(
		math.Translation(1.2, 0, 4).
			Mul(math.RotationY(stdmath.Pi / 7)).
			Mul(math.Scaling(0.8, 0.8, 0.8))); err != nil {
		return nil, err
	}
	return group, nil
}
