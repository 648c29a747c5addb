// Package render draws triangulations to PNG, for the command line tool and
// for eyeballing test failures.
package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/earcut/advanced"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const Padding = 20

// Hue step between consecutive triangles, so neighbors rarely look alike
const goldenAngle = 137.50776405

func Bounds(p advanced.Polygon) r2.Rect {
	bounds := r2.EmptyRect()
	for _, c := range p.Exterior {
		bounds = bounds.AddPoint(r2.Point{X: c.X, Y: c.Y})
	}
	return bounds
}

// Color of the i-th triangle.
func TriangleColor(i int) colorful.Color {
	return colorful.Hsv(math.Mod(float64(i)*goldenAngle, 360), 0.55, 0.85)
}

// Draw the triangulation at the given scale (pixels per unit): each triangle
// filled with its own color, then the polygon rings outlined on top.
func Draw(p advanced.Polygon, raw advanced.Raw, scale float64) image.Image {
	bounds := Bounds(p)
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}
	size := bounds.Size()

	// Set up the context
	width := int(math.Ceil(scale*size.X)) + Padding*2
	height := int(math.Ceil(scale*size.Y)) + Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(Padding, Padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	lo := bounds.Lo()
	c.Translate(-lo.X, -lo.Y)

	i := 0
	for tri := range raw.Triangles() {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetColor(TriangleColor(i))
		c.FillPreserve()
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(1)
		c.Stroke()
		i++
	}

	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	for _, ring := range append([]advanced.Ring{p.Exterior}, p.Interiors...) {
		if len(ring) == 0 {
			continue
		}
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, point := range ring[1:] {
			c.LineTo(point.X, point.Y)
		}
		c.ClosePath()
		c.Stroke()
	}
	return c.Image()
}

func SavePNG(path string, p advanced.Polygon, raw advanced.Raw, scale float64) error {
	img := Draw(p, raw, scale)
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}

// Print a saved PNG inline in the terminal (iTerm only).
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "printing %s", path)
}
