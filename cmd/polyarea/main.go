package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polyarea/geom"
	"github.com/osuushi/polyarea/internal/draw"
	"github.com/osuushi/polyarea/internal/input"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var strategies = map[string]geom.Strategy[float64]{
	"shoelace": geom.Shoelace[float64]{},
	"quad":     geom.Quad[float64]{},
	"unit":     geom.Unit[float64]{},
}

// Same keys as strategies, each measuring through a fixed polygon that
// carries the strategy as its type argument.
var fixedAreas = map[string]func(input.Polygon) float64{
	"shoelace": fixedArea[geom.Shoelace[float64]],
	"quad":     fixedArea[geom.Quad[float64]],
	"unit":     fixedArea[geom.Unit[float64]],
}

func fixedArea[A geom.Strategy[float64]](polygon input.Polygon) float64 {
	fixed := geom.FixedOf[float64, A, geom.Point[float64]](polygon...)
	return fixed.Area()
}

type config struct {
	svgPath  string
	strategy string
	pngPath  string
	imgcat   bool
	scale    float64
	color    bool
}

// Prints the area of each polygon read from stdin or an SVG file. Input on
// stdin should be newline separated points in the form "x y", with each
// polygon separated by an extra newline.
//
// Polygons may wind either way and are not validated. Self-intersecting
// polygons get the shoelace area, which is not the area they cover.
func main() {
	var cfg config
	var verbose bool

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)

	app := kingpin.New("polyarea", "Print the area of polygons.")
	app.Flag("svg", "Read every <polygon> from this SVG file instead of stdin.").
		Envar("POLYAREA_SVG").ExistingFileVar(&cfg.svgPath)
	app.Flag("strategy", "Area strategy: quad only differs from shoelace on four vertices, unit always gives 1.").
		Default("shoelace").Envar("POLYAREA_STRATEGY").EnumVar(&cfg.strategy, names...)
	app.Flag("png", "Render the polygons to this PNG file.").
		Envar("POLYAREA_PNG").StringVar(&cfg.pngPath)
	app.Flag("imgcat", "Show the rendered polygons inline (iTerm only).").
		Envar("POLYAREA_IMGCAT").BoolVar(&cfg.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").
		Default("100").Envar("POLYAREA_SCALE").Float64Var(&cfg.scale)
	app.Flag("color", "Colorize output.").
		Default("true").Envar("POLYAREA_COLOR").BoolVar(&cfg.color)
	app.Flag("verbose", "Log debug output to stderr.").
		Short('v').Envar("POLYAREA_VERBOSE").BoolVar(&verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "polyarea"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, stdin io.Reader, out io.Writer, logger *log.Logger) error {
	polygons, err := readPolygons(cfg, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read polygons", "count", len(polygons), "strategy", cfg.strategy)

	strategy, ok := strategies[cfg.strategy]
	fixed, fixedOK := fixedAreas[cfg.strategy]
	if !ok || !fixedOK {
		return errors.Errorf("unknown strategy %q", cfg.strategy)
	}

	au := aurora.NewAurora(cfg.color)
	for i, polygon := range polygons {
		area := measure(polygon, fixed, strategy, logger)
		fmt.Fprintf(out, "%v %d vertices %v area %v\n",
			au.Bold("#"+strconv.Itoa(i)),
			polygon.Len(),
			winding(polygon),
			au.Green(strconv.FormatFloat(area, 'g', -1, 64)),
		)
	}

	pngPath := cfg.pngPath
	if pngPath == "" && cfg.imgcat {
		pngPath = filepath.Join(os.TempDir(), "polyarea.png")
	}
	if pngPath != "" {
		if err := draw.SavePNG(polygons, cfg.scale, pngPath); err != nil {
			return err
		}
		logger.Debug("rendered polygons", "path", pngPath)
	}
	if cfg.imgcat {
		return draw.Cat(pngPath, out)
	}
	return nil
}

func readPolygons(cfg config, stdin io.Reader) ([]input.Polygon, error) {
	if cfg.svgPath == "" {
		return input.ReadText(stdin)
	}
	f, err := os.Open(cfg.svgPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	polygons, err := input.ReadSVG(f)
	return polygons, errors.Wrap(err, cfg.svgPath)
}

// Polygons that fit are measured through a fixed polygon, the same path an
// allocation-free caller would take. Larger ones go straight to the strategy.
func measure(polygon input.Polygon, fixed func(input.Polygon) float64, strategy geom.Strategy[float64], logger *log.Logger) float64 {
	if polygon.Len() <= geom.MaxVertices {
		return fixed(polygon)
	}
	logger.Debug("polygon exceeds fixed capacity", "vertices", polygon.Len(), "max", geom.MaxVertices)
	xs := make([]float64, polygon.Len())
	ys := make([]float64, polygon.Len())
	for i, p := range polygon {
		xs[i], ys[i] = p.X(), p.Y()
	}
	return strategy.Area(xs, ys)
}

func winding(polygon input.Polygon) string {
	switch {
	case polygon.Len() < 3:
		return "degenerate"
	case polygon.IsClockwise():
		return "cw"
	default:
		return "ccw"
	}
}
