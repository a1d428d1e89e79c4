package main

import (
	"fmt"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/hull"
)

// Command line wrapper around the brute force hull. Reads newline separated
// points of the form "x y" from a file, prints the hull vertices in
// lexicographic order, and reports how long the hull computation itself took.
var (
	app      = kingpin.New("hull", "Compute the convex hull of a set of points.")
	infile   = app.Arg("infile", "File containing points, one \"x y\" pair per line.").Required().String()
	dump     = app.Flag("segments", "Dump every boundary segment the pairwise test found.").Bool()
	drawPath = app.Flag("draw", "Render the points and hull edges to a PNG at the given path.").String()
	catImage = app.Flag("cat", "Write the rendered PNG to the terminal as an inline image.").Bool()
	scale    = app.Flag("scale", "Pixels per input unit when rendering.").Default("50").Float64()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	points, err := convexhull.ReadPointsFile(*infile)
	if err != nil {
		app.Fatalf("%v", err)
	}

	// Time only the hull computation, not reading or printing
	start := time.Now()
	vertices, err := convexhull.FindHull(points)
	elapsed := time.Since(start)
	if err != nil {
		app.Fatalf("%v", err)
	}

	fmt.Println(aurora.Bold(fmt.Sprintf("Convex Hull (%d Points):", len(vertices))))
	if err := convexhull.WritePoints(os.Stdout, vertices); err != nil {
		app.Fatalf("%v", err)
	}
	fmt.Printf("Elapsed Time (microseconds): %d\n", elapsed.Microseconds())

	if !*dump && *drawPath == "" && !*catImage {
		return
	}

	// FindHull doesn't keep the segment set around, so rerun the pairwise
	// pass for the debug output
	segments := hull.FindSegments(points)
	if *dump {
		for i := range segments {
			fmt.Println(&segments[i])
		}
	}
	if *drawPath != "" || *catImage {
		path := *drawPath
		if path == "" {
			path = "/tmp/hull.png"
		}
		if err := hull.Draw(points, segments, *scale, path); err != nil {
			app.Fatalf("%v", err)
		}
		if *catImage {
			hull.Cat(path)
		}
	}
}
