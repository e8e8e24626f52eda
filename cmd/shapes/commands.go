package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/shapes"
	"github.com/osuushi/shapes/clip"
	"github.com/osuushi/shapes/dbg"
	"github.com/osuushi/shapes/geom"
	"github.com/osuushi/shapes/internal/throw"
	"github.com/osuushi/shapes/scene"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func au() aurora.Aurora {
	return aurora.NewAurora(!*noColor)
}

// Render to the --png path, if one was given.
func show(d *dbg.Drawing) error {
	if *pngPath == "" {
		return nil
	}
	d.Scale = *scale
	return errors.Wrap(d.Show(*pngPath, os.Stdout), "rendering")
}

func writePolygon(out io.Writer, points geom.Points) {
	for _, p := range points {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintln(out)
}

func runHull(in io.Reader, out io.Writer) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	var points geom.Points
	for _, p := range polygons {
		points = append(points, p...)
	}
	hull := shapes.ConvexHull(points)
	if len(hull) < 3 {
		return errors.Errorf("no hull for %d points", len(points))
	}
	writePolygon(out, hull.Vertices())
	fmt.Fprintf(out, "# %d of %d points, area %g\n", len(hull), len(points), hull.Area())

	return show(dbg.NewDrawing(*scale).
		AddPolygons(geom.Polygons{hull}).
		AddPoints(points...))
}

func runTriangulate(in io.Reader, out io.Writer) error {
	polygons, err := readPolygons(in)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(*triangulateSeed))
	drawing := dbg.NewDrawing(*scale)
	if *holes {
		triangles, err := shapes.TriangulateHoles(polygons, rng)
		if err != nil {
			return err
		}
		for _, t := range triangles {
			writePolygon(out, t.Vertices())
		}
		fmt.Fprintf(out, "# %d contours: %d triangles, area %g\n", len(polygons), len(triangles), triangles.Area())
		return show(drawing.AddPolygons(polygons).AddTriangulation(triangles))
	}
	for i, polygon := range polygons {
		var triangles geom.Triangulation
		switch {
		case *delaunay:
			triangles = shapes.TriangulateDelaunay(polygon.Vertices())
		case *monotone:
			triangles, err = shapes.TriangulateMonotone(polygon)
		default:
			triangles, err = shapes.Triangulate(polygon, rng)
		}
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		for _, t := range triangles {
			writePolygon(out, t.Vertices())
		}
		fmt.Fprintf(out, "# polygon %d: %d triangles, area %g of %g\n",
			i, len(triangles), triangles.Area(), polygon.Area())
		drawing.AddTriangulation(triangles)
	}
	return show(drawing)
}

type sceneRun struct {
	scene   *scene.Scene
	reports []scene.Report
}

func runScenes(out io.Writer, files []string, steps int) error {
	if *pngPath != "" && len(files) != 1 {
		return errors.New("--png needs exactly one scene")
	}

	runs := make([]sceneRun, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := shapes.LoadScene(file)
			if err != nil {
				return err
			}
			run := sceneRun{scene: s}
			for step := 0; step < steps; step++ {
				run.reports = append(run.reports, s.Step())
				s.Advance()
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, run := range runs {
		writeReports(out, run)
	}

	if len(runs) == 1 {
		return show(drawScene(runs[0].scene))
	}
	return nil
}

func writeReports(out io.Writer, run sceneRun) {
	a := au()
	s := run.scene
	fmt.Fprintf(out, "%s (%d colliders, dt %g)\n", a.Bold(s.Name), len(s.Colliders), s.Dt)
	for step, report := range run.reports {
		fmt.Fprintf(out, "  step %d\n", step)
		for _, p := range report.Overlaps {
			fmt.Fprintf(out, "    %s %s %s\n", a.Red("overlap"), s.NameOf(p.A), s.NameOf(p.B))
		}
		for _, c := range report.Collisions {
			if c.Info.Overlapping {
				continue
			}
			fmt.Fprintf(out, "    %s -> %s: %s\n", s.NameOf(c.A), s.NameOf(c.B), dbg.DescribeCast(c.Info))
		}
		if len(report.Overlaps) == 0 && len(report.Collisions) == 0 {
			fmt.Fprintf(out, "    %s\n", a.Green("nothing"))
		}
	}
}

// The scene where it stopped, with the casts of its next step.
func drawScene(s *scene.Scene) *dbg.Drawing {
	d := dbg.NewDrawing(*scale)
	for _, c := range s.Colliders {
		if c.Enabled {
			d.AddCollider(c)
		}
	}
	for _, pair := range s.Hash.Candidates() {
		d.AddCast(pair.A, shapes.Cast(pair.A, pair.B, s.Dt))
	}
	return d
}

func runFracture(out io.Writer) error {
	rng := rand.New(rand.NewSource(*fractureSeed))
	source := geom.GeneratePolygon(rng, geom.Vector2{}, 24, 150, 200)
	cut := geom.GeneratePolygon(rng, geom.V(150, 0), 10, 60, 100)

	helper := clip.NewFractureHelper(rng)
	helper.MinArea = *fractureMinArea
	helper.MaxArea = *fractureMaxArea
	helper.KeepChance = *fractureKeep

	var info clip.FractureInfo
	if err := throw.Catch(func() { info = helper.Fracture(source, cut) }); err != nil {
		return errors.Wrap(err, "fracturing")
	}

	a := au()
	fmt.Fprintf(out, "source  area %g\n", source.Area())
	fmt.Fprintf(out, "cut     area %g\n", cut.Area())
	fmt.Fprintf(out, "%s %d solids, %d holes, area %g\n",
		a.Green("shapes "), len(info.NewShapes.Solids()), len(info.NewShapes.Holes()), info.NewShapes.Area())
	fmt.Fprintf(out, "%s %d contours, area %g\n", a.Yellow("cutouts"), len(info.Cutouts), info.Cutouts.Area())
	fmt.Fprintf(out, "%s %d triangles, area %g\n", a.Cyan("pieces "), len(info.Pieces), info.Pieces.Area())

	return show(dbg.NewDrawing(*scale).
		AddPolygons(info.NewShapes).
		Add(nil, dbg.HoleStroke, cut).
		AddTriangulation(info.Pieces))
}
