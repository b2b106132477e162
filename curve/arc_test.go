package curve

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/curves/spatialmath"
)

func TestNewArcPreconditions(t *testing.T) {
	center := r3.Vector{}
	start := r3.Vector{X: 1}

	// start point coincides with the center
	_, err := NewArc(center, center, r3.Vector{Z: 1}, math.Pi)
	test.That(t, err, test.ShouldNotBeNil)

	// zero start direction
	_, err = NewArc(center, start, r3.Vector{}, math.Pi)
	test.That(t, err, test.ShouldNotBeNil)

	// start direction parallel to the radius vector, not orthogonal
	_, err = NewArc(center, start, r3.Vector{X: 1}, math.Pi)
	test.That(t, err, test.ShouldNotBeNil)

	// orthogonality violation just past the tolerance
	_, err = NewArc(center, start, r3.Vector{X: 1e-5, Z: 1}, math.Pi)
	test.That(t, err, test.ShouldNotBeNil)

	// small deviations inside the tolerance are accepted
	_, err = NewArc(center, start, r3.Vector{X: 5e-7, Z: 1}, math.Pi)
	test.That(t, err, test.ShouldBeNil)
}

func TestNewArcDerivedState(t *testing.T) {
	arc, err := NewArc(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Z: 1}, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, arc.Radius(), test.ShouldAlmostEqual, 1)
	test.That(t, arc.Theta(), test.ShouldEqual, math.Pi/2)
	test.That(t, arc.StartTangent().Sub(r3.Vector{Z: 1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, arc.StartNormal().Sub(r3.Vector{X: -1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, arc.Binormal().Sub(r3.Vector{Y: -1}).Norm(), test.ShouldAlmostEqual, 0)

	// the start circles up through the xz-plane to the top of the circle
	test.That(t, arc.EndPoint().Sub(r3.Vector{Z: 1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, arc.EndNormal().Sub(r3.Vector{Z: -1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, arc.EndTangent().Sub(r3.Vector{X: -1}).Norm(), test.ShouldAlmostEqual, 0)
}

func TestNewArcFrames(t *testing.T) {
	arc, err := NewArc(r3.Vector{X: 2}, r3.Vector{X: 5}, r3.Vector{Y: 3}, 1.1)
	test.That(t, err, test.ShouldBeNil)

	for _, frame := range []spatialmath.Frame{arc.StartFrame(), arc.EndFrame()} {
		test.That(t, frame.X.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, frame.Y.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, frame.Z.Norm(), test.ShouldAlmostEqual, 1)
		test.That(t, frame.X.Dot(frame.Y), test.ShouldAlmostEqual, 0)
		test.That(t, frame.Y.Dot(frame.Z), test.ShouldAlmostEqual, 0)
		test.That(t, frame.X.Dot(frame.Z), test.ShouldAlmostEqual, 0)
		// right-handed
		test.That(t, frame.X.Cross(frame.Y).Sub(frame.Z).Norm(), test.ShouldAlmostEqual, 0)
	}
	test.That(t, arc.StartFrame().Origin, test.ShouldResemble, arc.StartPoint())
	test.That(t,
		spatialmath.FrameAlmostEqual(arc.EndFrame(), arc.StartFrame(), 1e-10),
		test.ShouldBeFalse)
}

func TestArcSweepDirections(t *testing.T) {
	center := r3.Vector{}
	start := r3.Vector{X: 1}
	dir := r3.Vector{Z: 1}

	backward, err := NewArc(center, start, dir, -math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, backward.EndPoint().Sub(r3.Vector{Z: -1}).Norm(), test.ShouldAlmostEqual, 0)

	// sweeps past a full turn keep winding
	overwound, err := NewArc(center, start, dir, 2*math.Pi+math.Pi/2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, overwound.EndPoint().Sub(r3.Vector{Z: 1}).Norm(), test.ShouldAlmostEqual, 0)

	halfTurn, err := NewArc(center, start, dir, math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, halfTurn.EndPoint().Sub(r3.Vector{X: -1}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, halfTurn.EndTangent().Sub(r3.Vector{Z: -1}).Norm(), test.ShouldAlmostEqual, 0)
}

func TestArcInterpolate(t *testing.T) {
	arc, err := NewArc(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Z: 1}, math.Pi/2)
	test.That(t, err, test.ShouldBeNil)

	points := arc.Interpolate(3)
	test.That(t, points, test.ShouldHaveLength, 3)
	test.That(t, points[0].Sub(arc.StartPoint()).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, points[1].Sub(r3.Vector{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}).Norm(), test.ShouldAlmostEqual, 0)
	test.That(t, points[2].Sub(arc.EndPoint()).Norm(), test.ShouldAlmostEqual, 0)

	// every sample stays on the circle and in its plane
	for _, point := range arc.Interpolate(25) {
		radial := point.Sub(arc.Center())
		test.That(t, radial.Norm(), test.ShouldAlmostEqual, arc.Radius())
		test.That(t, radial.Dot(arc.Binormal()), test.ShouldAlmostEqual, 0)
	}
}

func TestArcInterpolateDegenerateCounts(t *testing.T) {
	arc, err := NewArc(r3.Vector{Y: -1}, r3.Vector{Y: -1, Z: 2}, r3.Vector{X: 1}, 1.5)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, arc.Interpolate(0), test.ShouldHaveLength, 0)

	points := arc.Interpolate(1)
	test.That(t, points, test.ShouldHaveLength, 1)
	test.That(t, points[0].Sub(arc.StartPoint()).Norm(), test.ShouldAlmostEqual, 0)
}
