// Command polybool computes a Boolean set operation on two polygon
// files and prints the resulting polylines.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	polybool "github.com/1943055307/Polygon-Boolean-Operations"
	"github.com/1943055307/Polygon-Boolean-Operations/config"
	"github.com/1943055307/Polygon-Boolean-Operations/geoio"
	"github.com/1943055307/Polygon-Boolean-Operations/loader"
)

var (
	configPath string
	format     string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polybool",
		Short: "Compute Boolean set operations on polygons with holes",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML file overriding the tolerance defaults")
	root.PersistentFlags().StringVar(&format, "format", "segments", `output format: "segments" or "orb-geojson"`)

	root.AddCommand(
		newOpCmd("union", "Compute A ∪ B", runUnion),
		newOpCmd("intersect", "Compute A ∩ B", runIntersection),
		newOpCmd("subtract-ab", "Compute A − B", runSubtractAB),
		newOpCmd("subtract-ba", "Compute B − A", runSubtractBA),
	)
	return root
}

type opFunc func(ctx polybool.PrepContext, a, b polybool.InputPolygon, tol polybool.Tolerances) []polybool.Polyline

func newOpCmd(use, short string, op opFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <polygon-a> <polygon-b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(use, args[0], args[1], op)
		},
	}
}

func runOp(name, pathA, pathB string, op opFunc) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Error("failed to load tolerance config")
		return err
	}
	tol := cfg.ToCore()

	a, err := loader.LoadWithTolerance(pathA, tol.EpsClose)
	if err != nil {
		logrus.WithError(err).WithField("file", pathA).Error("failed to load polygon A")
		return err
	}
	b, err := loader.LoadWithTolerance(pathB, tol.EpsClose)
	if err != nil {
		logrus.WithError(err).WithField("file", pathB).Error("failed to load polygon B")
		return err
	}

	ctx := polybool.Prepare(a, b, tol)
	kept := op(ctx, a, b, tol)

	logrus.WithFields(logrus.Fields{
		"operation":      name,
		"atomicSegments": len(ctx.Atoms),
		"keptSegments":   len(kept),
	}).Info("polybool: operation complete")

	return writeResult(kept)
}

func writeResult(kept []polybool.Polyline) error {
	switch format {
	case "", "segments":
		for _, l := range kept {
			fmt.Printf("%g,%g %g,%g\n", l[0].X, l[0].Y, l[1].X, l[1].Y)
		}
		return nil
	case "orb-geojson":
		return geoio.WriteGeoJSON(os.Stdout, geoio.ToOrbMultiLineString(kept))
	default:
		return fmt.Errorf("unknown --format %q (want \"segments\" or \"orb-geojson\")", format)
	}
}

func runUnion(ctx polybool.PrepContext, a, b polybool.InputPolygon, tol polybool.Tolerances) []polybool.Polyline {
	return polybool.Union(ctx, a, b, tol)
}

func runIntersection(ctx polybool.PrepContext, a, b polybool.InputPolygon, tol polybool.Tolerances) []polybool.Polyline {
	return polybool.Intersection(ctx, a, b, tol)
}

func runSubtractAB(ctx polybool.PrepContext, a, b polybool.InputPolygon, tol polybool.Tolerances) []polybool.Polyline {
	return polybool.SubtractAB(ctx, a, b, tol)
}

func runSubtractBA(ctx polybool.PrepContext, a, b polybool.InputPolygon, tol polybool.Tolerances) []polybool.Polyline {
	return polybool.SubtractBA(ctx, a, b, tol)
}
