package scene

import (
	"github.com/osuushi/shapes/collision"
	"github.com/osuushi/shapes/dbg"
	"github.com/osuushi/shapes/internal/logging"
	"go.uber.org/zap"
)

// Step length used when a scene does not set dt.
const DefaultDt = 1.0 / 60

type Scene struct {
	Name      string
	Dt        float64
	Colliders []*collision.Collider
	Hash      *collision.SpatialHash

	names map[*collision.Collider]string
}

// The configured name of c. Unnamed colliders get a generated name that stays
// the same for the life of the process.
func (s *Scene) NameOf(c *collision.Collider) string {
	if name := s.names[c]; name != "" {
		return name
	}
	return dbg.Name(c)
}

// Report is the outcome of one step.
type Report struct {
	Scene      string
	Overlaps   []collision.Pair
	Collisions []collision.Collision
}

// Step runs the broad phase over every collider swept across one dt, then
// reports the pairs overlapping now and the pairs colliding during the step.
func (s *Scene) Step() Report {
	s.Hash.Clear()
	for _, c := range s.Colliders {
		s.Hash.InsertSwept(c, s.Dt)
	}
	report := Report{
		Scene:      s.Name,
		Overlaps:   s.Hash.Pairs(),
		Collisions: s.Hash.Collisions(s.Dt),
	}
	logging.L().Debug("scene step",
		zap.String("scene", s.Name),
		zap.Int("colliders", len(s.Colliders)),
		zap.Int("overlaps", len(report.Overlaps)),
		zap.Int("collisions", len(report.Collisions)),
	)
	return report
}

// Advance moves every enabled collider by its velocity over one dt.
func (s *Scene) Advance() {
	for _, c := range s.Colliders {
		if c.Enabled {
			c.Pos = c.Pos.Add(c.Vel.Scale(s.Dt))
		}
	}
}
