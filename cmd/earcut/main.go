// Command earcut triangulates a polygon with holes and prints or renders the
// result.
//
// Input defaults to stdin in the text format: newline separated points in
// the form "x y", with each ring separated by an extra newline. The first ring
// is the exterior and the rest are holes. Winding does not matter. Rings
// should be simple, and holes should lie inside the exterior without
// overlapping each other. None of these requirements are validated; the
// triangulation degrades instead of failing.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/osuushi/earcut/advanced"
	"github.com/osuushi/earcut/internal/polyio"
	"github.com/osuushi/earcut/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input          string
	inputFormat    string
	format         string
	indexThreshold int
	png            string
	scale          float64
	imgcat         bool
	verbose        bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("earcut", "Triangulate a polygon with holes by ear clipping.")
	app.Flag("input-format", "Input format. Defaults to the input file extension, else text.").
		Short('i').EnumVar(&cfg.inputFormat, polyio.InputFormats...)
	app.Flag("format", "Output format.").
		Short('f').Default(polyio.FormatText).EnumVar(&cfg.format, polyio.OutputFormats...)
	app.Flag("index-threshold", "Index the ring along a z-order curve above this many vertices. Negative disables.").
		Default("80").IntVar(&cfg.indexThreshold)
	app.Flag("png", "Render the triangulation to this PNG file.").
		PlaceHolder("FILE").StringVar(&cfg.png)
	app.Flag("scale", "PNG scale, in pixels per unit.").
		Default("20").Float64Var(&cfg.scale)
	app.Flag("imgcat", "Print the PNG inline (iTerm only).").
		BoolVar(&cfg.imgcat)
	app.Flag("verbose", "Log engine diagnostics to stderr.").
		Short('v').BoolVar(&cfg.verbose)
	app.Arg("input", "Polygon file. Reads stdin when omitted.").
		StringVar(&cfg.input)
	return app
}

func main() {
	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(run(cfg, os.Stdin, os.Stdout, os.Stderr), "")
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	if cfg.verbose {
		advanced.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer advanced.SetLogger(nil)
	}

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	if cfg.inputFormat == "" {
		cfg.inputFormat = polyio.FormatFromPath(cfg.input)
	}

	polygon, err := polyio.Read(in, cfg.inputFormat)
	if err != nil {
		return errors.Wrap(err, "reading polygon")
	}

	opts := advanced.Options{IndexThreshold: cfg.indexThreshold}
	raw := opts.Triangulate(polygon)
	flat := advanced.Flatten(polygon)
	deviation := advanced.Deviation(flat.Vertices, flat.Holes, flat.Dim, raw.TriangleIndices)
	advanced.Logger().Info("triangulated",
		"vertices", flat.VertexCount(), "holes", len(flat.Holes), "triangles", raw.Len(), "deviation", deviation)

	if err := polyio.Write(stdout, cfg.format, raw, deviation); err != nil {
		return err
	}

	if cfg.png != "" {
		if err := render.SavePNG(cfg.png, polygon, raw, cfg.scale); err != nil {
			return err
		}
		if cfg.imgcat {
			return render.Cat(cfg.png, stdout)
		}
	}
	return nil
}
