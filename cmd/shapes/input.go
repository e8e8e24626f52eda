package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/shapes/geom"
	"github.com/pkg/errors"
)

// Reads newline separated points in the form "x y", with each polygon
// separated by an extra newline. Lines starting with # are ignored.
func readPolygons(in io.Reader) ([]geom.Polygon, error) {
	polygons := []geom.Polygon{}
	scanner := bufio.NewScanner(in)
	points := geom.Polygon{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// An empty line ends the polygon, if we collected any points
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = geom.Polygon{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (geom.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrap(err, "parsing y")
	}
	return geom.Vector2{X: x, Y: y}, nil
}
