package curve

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/curves/spatialmath"
)

// orthogonalityTolerance bounds how far the start direction may deviate from
// orthogonality with the radius vector before construction is rejected.
const orthogonalityTolerance = 1e-6

// Arc is a partial circle in 3D space, parameterized by the circle center, a
// start point on the circle, the tangent direction at the start point, and a
// signed sweep angle. This is the parameterization a path builder has on
// hand: a start pose and a desired turn, rather than an explicit plane
// normal. The sweep may be negative or exceed a full turn.
//
// All derived state is computed once at construction and Arc is immutable
// afterwards, so instances may be shared freely across goroutines.
type Arc struct {
	center     r3.Vector
	startPoint r3.Vector
	theta      float64

	radius       float64
	startTangent r3.Vector
	startNormal  r3.Vector
	binormal     r3.Vector
	endPoint     r3.Vector
	endNormal    r3.Vector
	endTangent   r3.Vector
}

// NewArc instantiates a new Arc. The start point must differ from the circle
// center, and startDir must be orthogonal to the radius vector within
// numerical tolerance, since a circle tangent is always perpendicular to its
// radius. The end of the arc is derived by rotating the radius vector about
// the binormal axis by theta, following the right-hand rule; the tangent and
// normal at the end are then fixed by the same right-handed
// (tangent, normal, binormal) relationship that holds at the start.
func NewArc(center, startPoint, startDir r3.Vector, theta float64) (*Arc, error) {
	centerToStart := startPoint.Sub(center)
	radius := centerToStart.Norm()
	if radius == 0 {
		return nil, errors.New("arc start point must differ from the circle center")
	}
	if startDir.Norm() == 0 {
		return nil, errors.New("arc start direction must have nonzero length")
	}
	if math.Abs(startDir.Dot(centerToStart)) >= orthogonalityTolerance {
		return nil, errors.Errorf(
			"arc start direction must be orthogonal to the radius vector, got dot product %g",
			startDir.Dot(centerToStart),
		)
	}

	startTangent := startDir.Normalize()
	startNormal := centerToStart.Mul(-1 / radius)
	binormal := startTangent.Cross(startNormal)
	centerToEnd := spatialmath.RotateVectorAboutAxis(centerToStart, binormal, theta)
	endNormal := centerToEnd.Mul(-1 / radius)
	return &Arc{
		center:       center,
		startPoint:   startPoint,
		theta:        theta,
		radius:       radius,
		startTangent: startTangent,
		startNormal:  startNormal,
		binormal:     binormal,
		endPoint:     center.Add(centerToEnd),
		endNormal:    endNormal,
		endTangent:   endNormal.Cross(binormal),
	}, nil
}

// Center returns the center of the arc's circle.
func (a *Arc) Center() r3.Vector {
	return a.center
}

// StartPoint returns the point where the arc begins.
func (a *Arc) StartPoint() r3.Vector {
	return a.startPoint
}

// Theta returns the signed sweep angle in radians.
func (a *Arc) Theta() float64 {
	return a.theta
}

// Radius returns the radius of the arc's circle.
func (a *Arc) Radius() float64 {
	return a.radius
}

// StartTangent returns the unit tangent direction at the start point.
func (a *Arc) StartTangent() r3.Vector {
	return a.startTangent
}

// StartNormal returns the unit normal at the start point, pointing inward
// from the start point toward the center.
func (a *Arc) StartNormal() r3.Vector {
	return a.startNormal
}

// Binormal returns the unit rotation axis of the arc, orthogonal to both the
// start tangent and the start normal.
func (a *Arc) Binormal() r3.Vector {
	return a.binormal
}

// EndPoint returns the point where the arc ends.
func (a *Arc) EndPoint() r3.Vector {
	return a.endPoint
}

// EndNormal returns the unit inward normal at the end point.
func (a *Arc) EndNormal() r3.Vector {
	return a.endNormal
}

// EndTangent returns the unit tangent direction at the end point.
func (a *Arc) EndTangent() r3.Vector {
	return a.endTangent
}

// StartFrame returns the right-handed (tangent, normal, binormal) frame at
// the arc's start point.
func (a *Arc) StartFrame() spatialmath.Frame {
	return spatialmath.Frame{Origin: a.startPoint, X: a.startTangent, Y: a.startNormal, Z: a.binormal}
}

// EndFrame returns the right-handed (tangent, normal, binormal) frame at the
// arc's end point. A path builder chains the next segment off this frame.
func (a *Arc) EndFrame() spatialmath.Frame {
	return spatialmath.Frame{Origin: a.endPoint, X: a.endTangent, Y: a.endNormal, Z: a.binormal}
}

// Interpolate samples count points at equal angular steps over [0, theta],
// inclusive of both endpoints, so the first sample is the start point and the
// last is the end point.
func (a *Arc) Interpolate(count int) []r3.Vector {
	uHat := a.startNormal.Mul(-1)
	vHat := a.binormal.Cross(uHat)
	return samplePlanarCircle(a.center, a.radius, uHat, vHat, 0, a.theta, count)
}
