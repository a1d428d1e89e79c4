package hull

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/convexhull/dbg"
)

// Points are plain values. Equality is exact componentwise equality, so two
// points with the same coordinates are indistinguishable and a Point can be
// used directly as a map key. We never round or normalize a coordinate on the
// way through; deduplication requires exact equality, and we cannot tolerate
// loss of precision.
type Point struct {
	X float64
	Y float64
}

// Lexicographic order on points: X is compared first, ties fall through to Y,
// both ascending. All hull output is reported in this order.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// A segment is a single edge of the hull boundary. It exists only to carry
// its two endpoints into vertex extraction; nothing downstream looks at its
// direction or length.
type Segment struct {
	Start Point
	End   Point
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment %s { %v, %v }", s.DbgName(), s.Start, s.End)
}

func (s *Segment) DbgName() string {
	name := dbg.Name(s)
	if s.Start.X == s.End.X { // Vertical
		name = aurora.Cyan(name).String()
	} else if s.Start.Y == s.End.Y { // Horizontal
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

// VertexSet accumulates hull vertices without duplicates. Insert is
// idempotent, so a point that is an endpoint of many segments still shows up
// exactly once in Sorted.
type VertexSet map[Point]struct{}

func (vs VertexSet) Insert(p Point) {
	vs[p] = struct{}{}
}

func (vs VertexSet) Has(p Point) bool {
	_, ok := vs[p]
	return ok
}

// Sorted returns the set's contents in lexicographic order.
func (vs VertexSet) Sorted() []Point {
	points := make([]Point, 0, len(vs))
	for p := range vs {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
	return points
}
