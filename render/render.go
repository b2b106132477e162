// Package render draws sampled curve geometry and reference frames onto a 2D
// plot. It is a pure sink: it accepts ordered point sequences and frames,
// projects them onto a coordinate plane, and writes an image; it performs no
// geometry computation of its own.
package render

import (
	"image/color"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/curves/spatialmath"
)

// Plane selects the coordinate plane that 3D geometry is projected onto.
type Plane int

// The three coordinate planes.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) project(v r3.Vector) (float64, float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Config holds rendering options. Zero values are replaced with defaults at
// renderer construction.
type Config struct {
	// Plane is the projection plane, XY if unset.
	Plane Plane
	// AxisLength is the drawn length of each frame axis.
	AxisLength float64
	// Axis and curve colors, following the usual x=red, y=blue, z=green
	// convention for frame axes.
	XColor     color.Color
	YColor     color.Color
	ZColor     color.Color
	CurveColor color.Color
}

func (cfg *Config) fillDefaults() {
	if cfg.AxisLength == 0 {
		cfg.AxisLength = 1
	}
	if cfg.XColor == nil {
		cfg.XColor = color.RGBA{R: 255, A: 255}
	}
	if cfg.YColor == nil {
		cfg.YColor = color.RGBA{B: 255, A: 255}
	}
	if cfg.ZColor == nil {
		cfg.ZColor = color.RGBA{G: 128, A: 255}
	}
	if cfg.CurveColor == nil {
		cfg.CurveColor = color.Black
	}
}

// Renderer accumulates point sequences and frames onto a single plot.
type Renderer struct {
	cfg    Config
	plot   *plot.Plot
	logger golog.Logger
}

// NewRenderer returns a renderer that projects geometry onto the configured
// plane.
func NewRenderer(cfg Config, logger golog.Logger) *Renderer {
	cfg.fillDefaults()
	return &Renderer{cfg: cfg, plot: plot.New(), logger: logger}
}

// AddPoints draws an ordered point sequence as a connected polyline.
func (r *Renderer) AddPoints(points []r3.Vector) error {
	line, err := plotter.NewLine(r.projected(points))
	if err != nil {
		return err
	}
	line.Color = r.cfg.CurveColor
	r.plot.Add(line)
	r.logger.Debugf("added %d curve points", len(points))
	return nil
}

// AddFrames draws each frame as three axis segments rooted at its origin,
// plus a marker at the origin itself.
func (r *Renderer) AddFrames(frames []spatialmath.Frame) error {
	var err error
	origins := make([]r3.Vector, 0, len(frames))
	for _, frame := range frames {
		origins = append(origins, frame.Origin)
		err = multierr.Combine(
			err,
			r.addAxis(frame.Origin, frame.X, r.cfg.XColor),
			r.addAxis(frame.Origin, frame.Y, r.cfg.YColor),
			r.addAxis(frame.Origin, frame.Z, r.cfg.ZColor),
		)
	}
	scatter, scatterErr := plotter.NewScatter(r.projected(origins))
	if scatterErr != nil {
		return multierr.Combine(err, scatterErr)
	}
	scatter.Color = color.Black
	r.plot.Add(scatter)
	r.logger.Debugf("added %d frames", len(frames))
	return err
}

func (r *Renderer) addAxis(origin, direction r3.Vector, axisColor color.Color) error {
	tip := origin.Add(direction.Mul(r.cfg.AxisLength))
	line, err := plotter.NewLine(r.projected([]r3.Vector{origin, tip}))
	if err != nil {
		return err
	}
	line.Color = axisColor
	r.plot.Add(line)
	return nil
}

func (r *Renderer) projected(points []r3.Vector) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, point := range points {
		x, y := r.cfg.Plane.project(point)
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

// Save writes the accumulated plot to the given path; the format follows the
// file extension.
func (r *Renderer) Save(width, height vg.Length, path string) error {
	return r.plot.Save(width, height, path)
}
