package hull

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const drawPadding = 20

// Draw renders a point set and its hull segments to a PNG at path. Hull edges
// are stroked in cyan, hull vertices drawn in green, and interior points in
// white. Useful for eyeballing what the pairwise test decided.
func Draw(points []Point, segments []Segment, scale float64, path string) error {
	if len(points) == 0 {
		return errors.New("no points to draw")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := range segments {
		c.MoveTo(segments[i].Start.X, segments[i].Start.Y)
		c.LineTo(segments[i].End.X, segments[i].End.Y)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	onHull := make(VertexSet)
	for _, s := range segments {
		onHull.Insert(s.Start)
		onHull.Insert(s.End)
	}
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 4/scale)
		if onHull.Has(p) {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 1, 1)
		}
		c.Fill()
	}

	return c.SavePNG(path)
}

// Cat writes the PNG at path to the terminal as an inline image.
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
