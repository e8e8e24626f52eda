package dbg

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/shapes/collision"
	"github.com/osuushi/shapes/geom"
	"golang.org/x/image/colornames"
)

const DrawPadding = 20

// Palette used by the Add helpers.
var (
	SolidFill    color.Color = color.RGBA{0, 128, 0, 160}
	SolidStroke  color.Color = colornames.Cyan
	HoleStroke   color.Color = colornames.Orange
	PieceStroke  color.Color = colornames.Yellow
	PointColor   color.Color = colornames.Magenta
	CastColor    color.Color = colornames.Red
	NormalColor  color.Color = colornames.White
	ColliderFill color.Color = color.RGBA{70, 50, 255, 128}
)

// A Drawing collects shapes and renders them onto a black canvas with the
// origin at the bottom left. Nothing is rendered until Image, SavePNG or Show.
type Drawing struct {
	// Pixels per world unit
	Scale float64

	items []drawItem
}

type drawItem struct {
	shapes []geom.Shape
	fill   color.Color
	stroke color.Color
	// Fill every shape of the item as one path, so holes come out
	evenOdd bool
}

func NewDrawing(scale float64) *Drawing {
	if scale <= 0 {
		scale = 1
	}
	return &Drawing{Scale: scale}
}

// Add queues shapes with the given colors. A nil color skips filling or
// stroking.
func (d *Drawing) Add(fill, stroke color.Color, shapes ...geom.Shape) *Drawing {
	if len(shapes) > 0 {
		d.items = append(d.items, drawItem{shapes: shapes, fill: fill, stroke: stroke})
	}
	return d
}

// AddPolygons fills polygons with the even-odd rule, so clockwise holes are
// left empty, and outlines holes in their own color.
func (d *Drawing) AddPolygons(polygons geom.Polygons) *Drawing {
	if len(polygons) == 0 {
		return d
	}
	shapes := make([]geom.Shape, len(polygons))
	for i, p := range polygons {
		shapes[i] = p
	}
	d.items = append(d.items, drawItem{shapes: shapes, fill: SolidFill, stroke: SolidStroke, evenOdd: true})
	for _, hole := range polygons.Holes() {
		d.Add(nil, HoleStroke, hole)
	}
	return d
}

func (d *Drawing) AddTriangulation(triangles geom.Triangulation) *Drawing {
	for _, t := range triangles {
		d.Add(nil, PieceStroke, t)
	}
	return d
}

func (d *Drawing) AddPoints(points ...geom.Vector2) *Drawing {
	for _, p := range points {
		d.Add(PointColor, nil, geom.NewCircle(p, 0))
	}
	return d
}

// AddCollider draws a collider's world shape.
func (d *Drawing) AddCollider(c *collision.Collider) *Drawing {
	return d.Add(ColliderFill, SolidStroke, c.WorldShape())
}

// AddCast draws the path of self for a cast, the contact point and the
// contact normal.
func (d *Drawing) AddCast(self *collision.Collider, info collision.CastInfo) *Drawing {
	if !info.Collided {
		return d
	}
	start := self.Pos
	if c, ok := self.Shape.(geom.Circle); ok {
		start = start.Add(c.Center)
	}
	d.Add(nil, CastColor, geom.NewSegment(start, info.IntersectionPoint))
	if ball, ok := self.Shape.(geom.Circle); ok && ball.Radius > 0 {
		d.Add(nil, CastColor, geom.NewCircle(info.IntersectionPoint, ball.Radius))
	}
	d.Add(nil, NormalColor, geom.NewSegment(info.CollisionPoint, info.CollisionPoint.Add(info.Normal.Scale(20/d.Scale))))
	return d.AddPoints(info.CollisionPoint)
}

// Bounds of everything queued. ok is false for an empty drawing.
func (d *Drawing) Bounds() (bounds geom.Rect, ok bool) {
	for _, item := range d.items {
		for _, s := range item.shapes {
			b := s.BoundingBox()
			if !ok {
				bounds, ok = b, true
				continue
			}
			bounds = bounds.Union(b)
		}
	}
	return bounds, ok
}

// Image renders the drawing.
func (d *Drawing) Image() image.Image {
	return d.render().Image()
}

func (d *Drawing) render() *gg.Context {
	bounds, _ := d.Bounds()

	// Set up the context
	width := int(math.Ceil(d.Scale*bounds.Width)) + DrawPadding*2
	height := int(math.Ceil(d.Scale*bounds.Height)) + DrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(DrawPadding, DrawPadding)
	c.Scale(d.Scale, d.Scale)
	c.Translate(-bounds.X, -bounds.Y)

	c.SetLineWidth(2)
	for _, item := range d.items {
		item.draw(c)
	}
	return c
}

func (item drawItem) draw(c *gg.Context) {
	if item.evenOdd {
		c.SetFillRuleEvenOdd()
	} else {
		c.SetFillRuleWinding()
	}
	if item.evenOdd {
		for _, s := range item.shapes {
			tracePath(c, s)
		}
		item.paint(c, true)
		return
	}
	for _, s := range item.shapes {
		tracePath(c, s)
		item.paint(c, isClosed(s))
	}
}

func (item drawItem) paint(c *gg.Context, closed bool) {
	if closed && item.fill != nil {
		c.SetColor(item.fill)
		if item.stroke != nil {
			c.FillPreserve()
		} else {
			c.Fill()
		}
	}
	if item.stroke != nil {
		c.SetColor(item.stroke)
		c.Stroke()
	}
	c.ClearPath()
}

func isClosed(s geom.Shape) bool {
	switch s.Kind() {
	case geom.KindSegment, geom.KindPolyline:
		return false
	}
	return true
}

func tracePath(c *gg.Context, s geom.Shape) {
	if circle, ok := s.(geom.Circle); ok {
		if circle.IsPoint() {
			c.DrawPoint(circle.Center.X, circle.Center.Y, 3)
		} else {
			c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		}
		return
	}
	points := s.Vertices()
	if len(points) == 0 {
		return
	}
	c.NewSubPath()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	if isClosed(s) {
		c.ClosePath()
	}
}

func (d *Drawing) SavePNG(path string) error {
	return d.render().SavePNG(path)
}

// Show saves the drawing to path and prints it to w with the iTerm inline
// image protocol.
func (d *Drawing) Show(path string, w io.Writer) error {
	if err := d.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
