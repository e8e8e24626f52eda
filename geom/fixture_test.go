package geom

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds the single polygon element in the
// file and converts it into a counterclockwise Polygon. If anything goes
// wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var result Polygon
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		result = append(result, Vector2{x, y})
	}

	result.FixWindingOrder()
	return result
}

// Some ad hoc code specified fixtures

func SimpleStar() Polygon {
	return makeStar(0, 0, 5, 2)
}

func makeStar(x, y, outerRadius, innerRadius float64) Polygon {
	var points Polygon
	for i := 0; i < 10; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Vector2{x + r*math.Cos(angle), y + r*math.Sin(angle)})
	}
	return points
}

func UnitSquare() Polygon {
	return Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// L shaped hexagon, concave at (1, 1). Area 3, centroid (5/6, 5/6).
func LShape() Polygon {
	return Polygon{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
}

// U shape opening upwards, which is not y-monotone.
func UShape() Polygon {
	return Polygon{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}}
}

var fixtureNames = []string{"spiral", "comb", "blob"}
