package convexhull

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/convexhull/hull"
)

// ReadPoints reads newline separated points in the form "x y" from r, where x
// and y are real numbers. Duplicate points are dropped, and the result comes
// back in lexicographic order, ready to hand to FindHull. A line that isn't
// two floats is an error naming the offending line; an empty (or all-blank)
// input is not an error, it just reads as zero points.
func ReadPoints(r io.Reader) ([]Point, error) {
	seen := make(hull.VertexSet)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("error reading point on line %d", lineno)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading point on line %d", lineno)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading point on line %d", lineno)
		}
		seen.Insert(Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seen.Sorted(), nil
}

// ReadPointsFile reads points from the named file. See ReadPoints.
func ReadPointsFile(filename string) ([]Point, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := ReadPoints(f)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}
	return points, nil
}

// WritePoints writes points to w, one per line, in the form "(x,y)". The
// caller decides the order; FindHull output is already in lexicographic
// order.
func WritePoints(w io.Writer, points []Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
