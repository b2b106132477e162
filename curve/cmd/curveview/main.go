// Package main renders a sample circle and arc, along with the arc's
// endpoint frames, to an image file.
package main

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
	"gonum.org/v1/plot/vg"

	"go.viam.com/curves/curve"
	"go.viam.com/curves/render"
	"go.viam.com/curves/spatialmath"
	"go.viam.com/curves/utils"
)

var logger = golog.NewDevelopmentLogger("curveview")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Radius   float64 `flag:"radius,default=2,usage=circle and arc radius"`
	SweepDeg float64 `flag:"sweep,default=90,usage=arc sweep angle in degrees"`
	Count    int     `flag:"count,default=50,usage=samples per curve"`
	Out      string  `flag:"out,default=curves.png,usage=output image path"`
}

func mainWithArgs(_ context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	return renderCurves(argsParsed, logger)
}

func renderCurves(args Arguments, logger golog.Logger) error {
	circle, err := curve.NewCircle(args.Radius, r3.Vector{}, r3.Vector{Z: 1})
	if err != nil {
		return err
	}
	arc, err := curve.NewArc(
		r3.Vector{},
		r3.Vector{X: args.Radius},
		r3.Vector{Y: 1},
		utils.DegToRad(args.SweepDeg),
	)
	if err != nil {
		return err
	}
	logger.Infof("arc radius %f sweeps %f rad about binormal %v, ending at %v",
		arc.Radius(), arc.Theta(), arc.Binormal(), arc.EndPoint())

	renderer := render.NewRenderer(render.Config{AxisLength: args.Radius / 4}, logger)
	if err := multierr.Combine(
		renderer.AddPoints(circle.Interpolate(args.Count)),
		renderer.AddPoints(arc.Interpolate(args.Count)),
		renderer.AddFrames([]spatialmath.Frame{arc.StartFrame(), arc.EndFrame()}),
	); err != nil {
		return err
	}
	if err := renderer.Save(6*vg.Inch, 6*vg.Inch, args.Out); err != nil {
		return err
	}
	logger.Infof("wrote %s", args.Out)
	return nil
}
