// A brute force convex hull package for Go.
//
// This package takes a set of distinct 2-D points and finds the vertices of
// their convex hull, reported without duplicates and in lexicographic order.
// The underlying algorithm tests every pair of points against every other
// point, which is cubic in the input size. That cost buys a very particular
// behavior on degenerate input: points that are all mutually collinear are
// all reported as hull vertices, rather than being reduced to the two
// extremes. Callers who want a fast hull, or the strict hull of collinear
// input, want a different package.
package convexhull

import "github.com/osuushi/convexhull/hull"

type Point = hull.Point
type Segment = hull.Segment

// FindHull returns the hull vertices of a set of distinct points, in
// lexicographic order (X compared first, then Y, both ascending). An empty
// input is an error. See the hull package for the assumptions the pairwise
// test makes about points exactly collinear with a hull edge.
func FindHull(points []Point) ([]Point, error) {
	return hull.FindHull(points)
}
