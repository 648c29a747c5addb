package polyio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/osuushi/earcut/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var OutputFormats = []string{FormatText, FormatRaw, FormatYAML, FormatJSON}

// Document form of a triangulation.
type resultDoc struct {
	Vertices  [][2]float64 `yaml:"vertices" json:"vertices"`
	Triangles [][3]int     `yaml:"triangles" json:"triangles"`
	Deviation float64      `yaml:"deviation" json:"deviation"`
}

func newResultDoc(raw advanced.Raw, deviation float64) resultDoc {
	doc := resultDoc{
		Vertices:  make([][2]float64, 0, len(raw.Vertices)/2),
		Triangles: make([][3]int, 0, raw.Len()),
		Deviation: deviation,
	}
	for i := 0; i+1 < len(raw.Vertices); i += 2 {
		doc.Vertices = append(doc.Vertices, [2]float64{raw.Vertices[i], raw.Vertices[i+1]})
	}
	for i := 0; i < raw.Len(); i++ {
		t := raw.TriangleIndices[i*3 : i*3+3]
		doc.Triangles = append(doc.Triangles, [3]int{t[0], t[1], t[2]})
	}
	return doc
}

// Write a triangulation. Text writes one triangle per line as six
// coordinates, raw writes one index triple per line.
func Write(w io.Writer, format string, raw advanced.Raw, deviation float64) error {
	switch format {
	case FormatText:
		return WriteText(w, raw)
	case FormatRaw:
		return WriteRaw(w, raw)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResultDoc(raw, deviation)); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(newResultDoc(raw, deviation)), "encoding json")
	}
	return errors.Errorf("unknown output format %q", format)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func WriteText(w io.Writer, raw advanced.Raw) error {
	for tri := range raw.Triangles() {
		_, err := fmt.Fprintf(w, "%s %s %s %s %s %s\n",
			formatFloat(tri.A.X), formatFloat(tri.A.Y),
			formatFloat(tri.B.X), formatFloat(tri.B.Y),
			formatFloat(tri.C.X), formatFloat(tri.C.Y))
		if err != nil {
			return errors.Wrap(err, "writing triangles")
		}
	}
	return nil
}

func WriteRaw(w io.Writer, raw advanced.Raw) error {
	for i := 0; i < raw.Len(); i++ {
		t := raw.TriangleIndices[i*3 : i*3+3]
		if _, err := fmt.Fprintf(w, "%d %d %d\n", t[0], t[1], t[2]); err != nil {
			return errors.Wrap(err, "writing indices")
		}
	}
	return nil
}
