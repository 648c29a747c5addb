// Package fixtures provides polygons for tests and benchmarks: SVG drawings
// embedded from the fixtures/ directory, and a handful of generated shapes.
package fixtures

import (
	"embed"
	"io/fs"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/osuushi/earcut/advanced"
	"github.com/osuushi/earcut/internal/svgpoly"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// The first <polygon> of each drawing is the exterior, the rest are holes.

//go:embed fixtures
var fixtures embed.FS

// Load a fixture by name. Panics via log.Fatalf if anything goes wrong, since
// fixtures are only used by tests.
func Load(name string) advanced.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygon, err := svgpoly.Parse(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return polygon
}

// Names of every embedded fixture, sorted.
func Names() []string {
	entries, err := fs.ReadDir(fixtures, "fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	var names []string
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".svg"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Fixtures that are not simple polygons. Triangulating them must not fail,
// but the result is not expected to cover the drawing.
var Degenerate = map[string]bool{
	"bowtie": true,
}

// Some ad hoc code specified fixtures

func star(x, y, outerRadius, innerRadius float64, points int) advanced.Ring {
	ring := make(advanced.Ring, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := math.Pi * float64(i) / float64(points)
		ring = append(ring, advanced.Coord{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return ring
}

func SimpleStar() advanced.Polygon {
	return advanced.Polygon{Exterior: star(0, 0, 5, 2, 5)}
}

func Square() advanced.Polygon {
	return advanced.Polygon{Exterior: advanced.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
}

func SquareWithHole() advanced.Polygon {
	return advanced.Polygon{
		Exterior:  advanced.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Interiors: []advanced.Ring{{{X: 3, Y: 3}, {X: 3, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 3}}},
	}
}

func StarOutline() advanced.Polygon {
	return advanced.Polygon{
		Exterior:  star(0, 0, 10, 5, 5),
		Interiors: []advanced.Ring{star(0, 0, 8, 3, 5).Reverse()},
	}
}

// A regular polygon with n vertices, counterclockwise.
func Circle(x, y, radius float64, n int) advanced.Ring {
	ring := make(advanced.Ring, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, advanced.Coord{X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle)})
	}
	return ring
}

// A large disc with a grid of small star shaped holes, enough vertices to be
// indexed with the default options.
func StarryDisc() advanced.Polygon {
	p := advanced.Polygon{Exterior: Circle(0, 0, 50, 96)}
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			// Offsets keep hole vertices off each other's rows and columns
			x := float64(i)*22 + float64(j)*0.7
			y := float64(j)*22 - float64(i)*0.9
			p.Interiors = append(p.Interiors, star(x, y, 6, 3, 4))
		}
	}
	return p
}

// Self-intersecting: two triangles touching at a crossing point.
func Bowtie() advanced.Polygon {
	return advanced.Polygon{Exterior: advanced.Ring{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}}
}
