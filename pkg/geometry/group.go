package geometry

import "github.com/whitted-go/raytracer/pkg/math"

// Group is a shape that contains other shapes. The group owns its
// children; each child keeps a non-owning back-reference to the group so
// transform chains can be resolved from the inside out.
type Group struct {
	object
	children []Shape
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{object: newObject()}
}

// AddChild adds a shape to the group and records the parent reference
func (g *Group) AddChild(s Shape) {
	s.SetParent(g)
	g.children = append(g.children, s)
}

// Children returns the group's child shapes
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersect intersects every child with the group-space ray and
// merges the results into a single distance-ordered list. Each child
// applies its own transform on top.
func (g *Group) LocalIntersect(ray math.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: normals are only ever computed on concrete
// surfaces, and a group has none of its own
func (g *Group) LocalNormalAt(math.Tuple) math.Tuple {
	panic("geometry: group has no local normal")
}
