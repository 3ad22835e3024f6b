// Package input reads polygons for the polyarea command.
//
// Two formats are understood. The text format has one "x y" point per line,
// with polygons separated by a blank line; lines starting with '#' are
// comments. The SVG format takes every <polygon> element in the document and
// reads its points attribute.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyarea/geom"
	"github.com/pkg/errors"
)

type Polygon = geom.Ring[float64, geom.Point[float64]]

// ReadText reads polygons in the text format. A trailing polygon without a
// blank line after it is kept.
func ReadText(in io.Reader) ([]Polygon, error) {
	polygons := []Polygon{}
	points := Polygon{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = Polygon{}
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// ReadSVG reads the points of every <polygon> element in an SVG document, in
// document order. This is not a full SVG reader: transforms are ignored.
func ReadSVG(in io.Reader) ([]Polygon, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	polygons := make([]Polygon, 0, len(elements))
	for i, el := range elements {
		polygon, err := ParsePoints(el.Attributes["points"])
		if err != nil {
			name := "#" + strconv.Itoa(i)
			if id, ok := el.Attributes["id"]; ok {
				name = strconv.Quote(id)
			}
			return nil, errors.Wrapf(err, "polygon %s", name)
		}
		polygons = append(polygons, polygon)
	}
	return polygons, nil
}

// ParsePoints parses an SVG points attribute such as "0,0 1,0 0.5,1".
// Commas and whitespace are interchangeable separators.
func ParsePoints(attr string) (Polygon, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	polygon := make(Polygon, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i : i+2])
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i/2)
		}
		polygon = append(polygon, point)
	}
	return polygon, nil
}

func parsePoint(fields []string) (geom.Point[float64], error) {
	if len(fields) != 2 {
		return geom.Point[float64]{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point[float64]{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point[float64]{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return geom.Pt(x, y), nil
}
