package dbg

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/shapes/collision"
	"github.com/osuushi/shapes/geom"
)

var colors atomic.Bool

func init() {
	colors.Store(true)
}

// SetColors turns terminal colors in descriptions on or off.
func SetColors(enabled bool) {
	colors.Store(enabled)
}

func au() aurora.Aurora {
	return aurora.NewAurora(colors.Load())
}

// Describe returns a one line summary of a shape, with the kind colored by
// how the shape collides: cyan for round shapes, green for solids and yellow
// for open outlines.
func Describe(s geom.Shape) string {
	if s == nil {
		return au().Red("<nil>").String()
	}
	a := au()
	var kind aurora.Value
	switch s.Kind() {
	case geom.KindCircle:
		kind = a.Cyan(s.Kind())
	case geom.KindSegment, geom.KindPolyline:
		kind = a.Yellow(s.Kind())
	default:
		kind = a.Green(s.Kind())
	}

	var body string
	switch s := s.(type) {
	case geom.Circle:
		body = fmt.Sprintf("%v r%g", s.Center, s.Radius)
	case geom.Segment:
		body = fmt.Sprintf("%v -> %v", s.Start, s.End)
	case geom.Rect:
		body = fmt.Sprintf("%v %gx%g", s.Min(), s.Width, s.Height)
	default:
		body = describePoints(s.Vertices())
		if area := s.Area(); area > 0 {
			body += fmt.Sprintf(" area %g", area)
		}
	}
	return fmt.Sprintf("%s %s", kind, body)
}

func describePoints(points geom.Points) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DescribeCast summarizes the outcome of a cast.
func DescribeCast(info collision.CastInfo) string {
	a := au()
	switch {
	case info.Overlapping:
		return a.Red("overlapping").String()
	case !info.Collided:
		return a.Green("clear").String()
	}
	return fmt.Sprintf("%s at t=%.4g point %v normal %v",
		a.Yellow("collides"), info.Time, info.CollisionPoint, info.Normal)
}
