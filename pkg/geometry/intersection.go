package geometry

import "sort"

// Intersection records a ray hitting a shape at distance T along the ray
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates an intersection record
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersection records, sortable by distance
type Intersections []Intersection

// Sort orders the intersections by ascending T
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visually relevant intersection: the one with the
// smallest non-negative T. Expects the list to be sorted ascending.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
