// Command shapes exercises the geometry kernel from the command line.
//
// Point input on stdin is newline separated points in the form "x y", with
// each polygon separated by an extra newline. Solid polygons wind
// counterclockwise.
package main

import (
	"fmt"
	"os"

	"github.com/osuushi/shapes"
	"github.com/osuushi/shapes/dbg"
	"github.com/osuushi/shapes/internal/logging"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("shapes", "2D geometry and collision toolkit.")
	debug   = app.Flag("debug", "Log debug events to stderr.").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()
	pngPath = app.Flag("png", "Render the result to this PNG file and print it to the terminal.").String()
	scale   = app.Flag("scale", "Pixels per unit when rendering.").Default("4").Float64()

	hullCmd = app.Command("hull", "Print the convex hull of the points on stdin.")

	triangulateCmd  = app.Command("triangulate", "Triangulate the polygons on stdin.")
	delaunay        = triangulateCmd.Flag("delaunay", "Delaunay triangulate the polygon vertices instead of ear clipping.").Bool()
	monotone        = triangulateCmd.Flag("monotone", "Use the monotone sweep. Fails on polygons that are not y-monotone.").Bool()
	holes           = triangulateCmd.Flag("holes", "Read all polygons as one even-odd shape and leave its holes open.").Bool()
	triangulateSeed = triangulateCmd.Flag("seed", "Seed for ear selection.").Default("1").Int64()

	sceneCmd   = app.Command("scene", "Step YAML scenes and report overlaps and collisions.")
	sceneFiles = sceneCmd.Arg("file", "Scene files.").Required().ExistingFiles()
	sceneSteps = sceneCmd.Flag("steps", "Number of steps to run.").Default("1").Int()

	fractureCmd     = app.Command("fracture", "Fracture a generated polygon with a generated cut shape.")
	fractureSeed    = fractureCmd.Flag("seed", "Seed for generation and debris.").Default("1").Int64()
	fractureMinArea = fractureCmd.Flag("min-area", "Smallest piece kept.").Default("250").Float64()
	fractureMaxArea = fractureCmd.Flag("max-area", "Pieces larger than this are split.").Default("1500").Float64()
	fractureKeep    = fractureCmd.Flag("keep", "Chance of keeping each piece.").Default("0.75").Float64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*debug)
	app.FatalIfError(err, "building logger")
	shapes.SetLogger(logger)
	defer logger.Sync()

	dbg.SetColors(!*noColor)

	switch command {
	case hullCmd.FullCommand():
		err = runHull(os.Stdin, os.Stdout)
	case triangulateCmd.FullCommand():
		err = runTriangulate(os.Stdin, os.Stdout)
	case sceneCmd.FullCommand():
		err = runScenes(os.Stdout, *sceneFiles, *sceneSteps)
	case fractureCmd.FullCommand():
		err = runFracture(os.Stdout)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "shapes: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
