// Package scene loads colliders from YAML scene files and runs the broad and
// narrow phase over them.
package scene

import (
	"io"
	"os"
	"strings"

	"github.com/osuushi/shapes/collision"
	"github.com/osuushi/shapes/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of a scene.
type Config struct {
	Name      string           `yaml:"name"`
	Dt        float64          `yaml:"dt"`
	CellSize  float64          `yaml:"cellSize"`
	Buckets   int              `yaml:"buckets"`
	Colliders []ColliderConfig `yaml:"colliders"`
}

// ColliderConfig describes one collider. Which shape fields are read depends
// on Shape.
type ColliderConfig struct {
	Name    string `yaml:"name"`
	Shape   string `yaml:"shape"`
	Pos     Vec    `yaml:"pos"`
	Vel     Vec    `yaml:"vel"`
	Layer   uint32 `yaml:"layer"`
	Mask    uint32 `yaml:"mask"`
	Enabled *bool  `yaml:"enabled"`

	// circle
	Radius float64 `yaml:"radius"`
	// segment
	Start Vec `yaml:"start"`
	End   Vec `yaml:"end"`
	// rect, quad
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Angle  float64 `yaml:"angle"`
	// triangle, polygon, polyline
	Points []Vec `yaml:"points"`
}

// Vec reads a vector as either [x, y] or {x: .., y: ..}.
type Vec geom.Vector2

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return errors.Errorf("line %d: vector needs 2 components, got %d", node.Line, len(xy))
		}
		*v = Vec{X: xy[0], Y: xy[1]}
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := node.Decode(&xy); err != nil {
			return err
		}
		*v = Vec{X: xy.X, Y: xy.Y}
		return nil
	}
	return errors.Errorf("line %d: expected a vector", node.Line)
}

// LoadYAML reads a scene config.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &c, nil
}

// LoadFile reads and builds the scene at path. The scene is named after the
// file unless it names itself.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scene %s", path)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	if c.Name == "" {
		c.Name = path
	}
	s, err := c.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", path)
	}
	return s, nil
}

// Build creates the colliders of the scene.
func (c *Config) Build() (*Scene, error) {
	if c.Dt < 0 {
		return nil, errors.Errorf("negative dt %v", c.Dt)
	}
	s := &Scene{
		Name:  c.Name,
		Dt:    c.Dt,
		Hash:  collision.NewSpatialHash(c.CellSize, c.Buckets),
		names: make(map[*collision.Collider]string),
	}
	if s.Dt == 0 {
		s.Dt = DefaultDt
	}
	for i, cc := range c.Colliders {
		shape, err := cc.shape()
		if err != nil {
			return nil, errors.Wrapf(err, "collider %d (%s)", i, cc.Name)
		}
		collider := collision.NewCollider(shape, geom.Vector2(cc.Pos))
		collider.Vel = geom.Vector2(cc.Vel)
		if cc.Layer != 0 {
			collider.Layer = cc.Layer
		}
		collider.Mask = cc.Mask
		if cc.Enabled != nil {
			collider.Enabled = *cc.Enabled
		}
		s.Colliders = append(s.Colliders, collider)
		s.names[collider] = cc.Name
	}
	return s, nil
}

func (cc ColliderConfig) shape() (geom.Shape, error) {
	points := make(geom.Polygon, len(cc.Points))
	for i, p := range cc.Points {
		points[i] = geom.Vector2(p)
	}

	switch strings.ToLower(cc.Shape) {
	case "circle":
		if cc.Radius < 0 {
			return nil, errors.Errorf("negative radius %v", cc.Radius)
		}
		return geom.Circle{Radius: cc.Radius}, nil
	case "point":
		return geom.Circle{}, nil
	case "segment":
		return geom.Segment{Start: geom.Vector2(cc.Start), End: geom.Vector2(cc.End)}, nil
	case "rect":
		if cc.Width < 0 || cc.Height < 0 {
			return nil, errors.Errorf("negative size %vx%v", cc.Width, cc.Height)
		}
		return geom.Rect{X: -cc.Width / 2, Y: -cc.Height / 2, Width: cc.Width, Height: cc.Height}, nil
	case "quad":
		return geom.NewRotatedQuad(geom.Vector2{}, geom.Vector2{X: cc.Width, Y: cc.Height}, cc.Angle), nil
	case "triangle":
		if len(points) != 3 {
			return nil, errors.Errorf("triangle needs 3 points, got %d", len(points))
		}
		return geom.Triangle{A: points[0], B: points[1], C: points[2]}, nil
	case "polygon":
		if len(points) < 3 {
			return nil, errors.Errorf("polygon needs at least 3 points, got %d", len(points))
		}
		return points, nil
	case "polyline":
		if len(points) < 2 {
			return nil, errors.Errorf("polyline needs at least 2 points, got %d", len(points))
		}
		return geom.Polyline(points), nil
	case "":
		return nil, errors.New("missing shape")
	}
	return nil, errors.Errorf("unknown shape %q", cc.Shape)
}
