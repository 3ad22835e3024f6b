// Package draw renders polygons to a PNG so the input of the polyarea command
// can be checked by eye.
package draw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polyarea/internal/input"
	"github.com/pkg/errors"
)

// Padding around the shapes, in pixels
const Padding = 20

// MaxSide is the largest image width or height Render will produce.
const MaxSide = 16384

// Bounds returns the bounding box of every vertex in polygons. With no
// vertices at all, min is +Inf and max is -Inf.
func Bounds(polygons []input.Polygon) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly {
			minX = math.Min(minX, p.X())
			minY = math.Min(minY, p.Y())
			maxX = math.Max(maxX, p.X())
			maxY = math.Max(maxY, p.Y())
		}
	}
	return
}

// Render draws polygons on a black background, scaled by scale pixels per
// unit, with the origin at the bottom left.
func Render(polygons []input.Polygon, scale float64) (*gg.Context, error) {
	minX, minY, maxX, maxY := Bounds(polygons)
	if math.IsInf(minX, 1) {
		return nil, errors.New("nothing to draw")
	}
	if scale <= 0 || math.IsNaN(scale) {
		return nil, errors.Errorf("invalid scale %v", scale)
	}

	spanX := scale*(maxX-minX) + Padding*2
	spanY := scale*(maxY-minY) + Padding*2
	if math.IsNaN(spanX) || math.IsNaN(spanY) || math.IsInf(spanX, 0) || math.IsInf(spanY, 0) {
		return nil, errors.New("bounds are not finite")
	}
	if spanX > MaxSide || spanY > MaxSide {
		return nil, errors.Errorf("image too large: %gx%g", math.Floor(spanX), math.Floor(spanY))
	}

	// Set up the context
	width := int(spanX)
	height := int(spanY)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(Padding, Padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, poly := range polygons {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(poly[0].X(), poly[0].Y())
		for _, p := range poly[1:] {
			c.LineTo(p.X(), p.Y())
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()
	return c, nil
}

// SavePNG renders polygons and writes them to path.
func SavePNG(polygons []input.Polygon, scale float64, path string) error {
	c, err := Render(polygons, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Cat prints the PNG at path inline in the terminal. This only works in
// terminals that support the iTerm image protocol.
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "displaying %s", path)
}
