// Package polyio reads polygons and writes triangulations in the formats the
// command line tool supports.
package polyio

import (
	"bufio"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/earcut/advanced"
	"github.com/osuushi/earcut/internal/svgpoly"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatRaw  = "raw"
)

var InputFormats = []string{FormatText, FormatSVG, FormatYAML, FormatJSON}

// Guess the input format from a file name, falling back to text.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}
	return FormatText
}

func Read(r io.Reader, format string) (advanced.Polygon, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatSVG:
		return svgpoly.Parse(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatJSON:
		return ReadJSON(r)
	}
	return advanced.Polygon{}, errors.Errorf("unknown input format %q", format)
}

// ReadText reads newline separated points in the form "x y", with each ring
// separated by an extra newline. The first ring is the exterior and the rest
// are holes. Lines starting with # are ignored.
func ReadText(r io.Reader) (advanced.Polygon, error) {
	var rings []advanced.Ring
	var ring advanced.Ring
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(ring) > 0 {
				rings = append(rings, ring)
				ring = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return advanced.Polygon{}, errors.Wrapf(err, "line %d", lineNumber)
		}
		ring = append(ring, point)
	}
	if err := scanner.Err(); err != nil {
		return advanced.Polygon{}, errors.Wrap(err, "reading points")
	}

	// Handle trailing ring if any
	if len(ring) > 0 {
		rings = append(rings, ring)
	}
	if len(rings) == 0 {
		return advanced.Polygon{}, nil
	}
	return advanced.Polygon{Exterior: rings[0], Interiors: rings[1:]}, nil
}

func parsePoint(line string) (advanced.Coord, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Coord{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Coord{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Coord{}, errors.Wrap(err, "invalid y")
	}
	return advanced.Coord{X: x, Y: y}, nil
}

// Document form shared by YAML and JSON: each point is an [x, y] pair.
type polygonDoc struct {
	Exterior  [][2]float64   `yaml:"exterior" json:"exterior"`
	Interiors [][][2]float64 `yaml:"interiors,omitempty" json:"interiors,omitempty"`
}

func (d polygonDoc) polygon() advanced.Polygon {
	toRing := func(points [][2]float64) advanced.Ring {
		ring := make(advanced.Ring, len(points))
		for i, p := range points {
			ring[i] = advanced.Coord{X: p[0], Y: p[1]}
		}
		return ring
	}

	p := advanced.Polygon{Exterior: toRing(d.Exterior)}
	for _, hole := range d.Interiors {
		p.Interiors = append(p.Interiors, toRing(hole))
	}
	return p
}

func ReadYAML(r io.Reader) (advanced.Polygon, error) {
	var doc polygonDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return advanced.Polygon{}, errors.Wrap(err, "decoding yaml")
	}
	return doc.polygon(), nil
}

func ReadJSON(r io.Reader) (advanced.Polygon, error) {
	var doc polygonDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return advanced.Polygon{}, errors.Wrap(err, "decoding json")
	}
	return doc.polygon(), nil
}
