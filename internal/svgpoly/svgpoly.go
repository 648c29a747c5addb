// Package svgpoly reads polygons out of SVG documents. This is not a full (or
// even correct) SVG reader: it only looks at <polygon> elements. The first one
// is the exterior ring, and any others are holes. Transforms, paths and
// styles are ignored.
package svgpoly

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/earcut/advanced"
	"github.com/pkg/errors"
)

func Parse(r io.Reader) (advanced.Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return advanced.Polygon{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return advanced.Polygon{}, errors.New("no polygons found")
	}

	var result advanced.Polygon
	for i, polygonEl := range polygons {
		ring, err := ParsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return advanced.Polygon{}, errors.Wrapf(err, "polygon %d", i)
		}
		if i == 0 {
			result.Exterior = ring
		} else {
			result.Interiors = append(result.Interiors, ring)
		}
	}
	return result, nil
}

// ParsePoints parses the points attribute of a <polygon>. Numbers may be
// separated by commas, whitespace, or both.
func ParsePoints(points string) (advanced.Ring, error) {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	ring := make(advanced.Ring, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		ring = append(ring, advanced.Coord{X: x, Y: y})
	}
	return ring, nil
}
