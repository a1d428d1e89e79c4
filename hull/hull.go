// Package hull finds convex hulls of 2-D point sets with the brute force
// half-plane test.
//
// A pair of points bounds the hull iff the line through them has every other
// point on one closed side. Testing every pair against every point is Θ(n³),
// far slower than Graham scan or gift wrapping, but its handling of exact
// collinear ties is part of the contract here: a fully collinear point set
// is reported in its entirety, which the faster algorithms do not do.
package hull

import "github.com/pkg/errors"

// FindSegments finds the boundary segments of the convex hull of points by
// brute force. It assumes points are distinct, that there are at least two of
// them, and that no point lies on the boundary of the hull polygon unless it
// is a vertex of it. A point exactly collinear with a hull edge silently
// corrupts the result rather than crashing.
func FindSegments(points []Point) []Segment {
	segments := []Segment{}
	for i := 0; i < len(points)-1; i++ {
		for j := i + 1; j < len(points); j++ {
			// The line through points i and j, in implicit form ax + by = c
			a := points[j].Y - points[i].Y
			b := points[i].X - points[j].X
			c := points[j].Y*points[i].X - points[i].Y*points[j].X

			// Which sides of the line do the other points fall on? The
			// comparisons are exact: points i and j evaluate to exactly c and
			// count for neither side, as does any other point exactly on the
			// line.
			var lt, gt bool
			for _, p := range points {
				val := a*p.X + b*p.Y - c
				if val < 0 {
					lt = true
				} else if val > 0 {
					gt = true
				}
			}

			// The pair is a hull edge iff no two points straddle its line
			if !lt || !gt {
				segments = append(segments, Segment{points[i], points[j]})
			}
		}
	}
	return segments
}

// ExtractVertices reduces boundary segments to the hull's vertex sequence:
// endpoints deduplicated and in lexicographic order. One VertexSet resolves
// both concerns, since its insert is idempotent and Sorted emits the total
// order.
func ExtractVertices(segments []Segment) []Point {
	vertices := make(VertexSet)
	for _, s := range segments {
		vertices.Insert(s.Start)
		vertices.Insert(s.End)
	}
	return vertices.Sorted()
}

// FindHull computes the convex hull of a set of distinct points, returning
// its vertices in lexicographic order. The hull of one point is that point;
// the hull of zero points is undefined and returns an error.
func FindHull(points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, errors.New("one or more points are required to find the convex hull")
	}
	if len(points) == 1 {
		// The convex hull of a single point is the point itself
		return []Point{points[0]}, nil
	}
	return ExtractVertices(FindSegments(points)), nil
}
