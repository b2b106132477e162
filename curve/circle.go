package curve

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/curves/spatialmath"
)

// Circle is a full circle in 3D space, defined by a radius, a center point,
// and the unit normal of its plane. Immutable once constructed.
type Circle struct {
	radius float64
	center r3.Vector
	normal r3.Vector
}

// NewCircle instantiates a new Circle. The radius must be positive and the
// normal must have nonzero length, since a circle needs a defined plane; the
// stored normal is unit length.
func NewCircle(radius float64, center, normal r3.Vector) (*Circle, error) {
	if radius <= 0 {
		return nil, errors.Errorf("circle radius must be positive, got %f", radius)
	}
	if normal.Norm() == 0 {
		return nil, errors.New("circle normal must have nonzero length")
	}
	return &Circle{radius: radius, center: center, normal: normal.Normalize()}, nil
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Center returns the circle's center point.
func (c *Circle) Center() r3.Vector {
	return c.center
}

// Normal returns the unit normal of the circle's plane.
func (c *Circle) Normal() r3.Vector {
	return c.normal
}

// Interpolate samples count points at equal angular steps over [0, 2pi],
// inclusive of both endpoints, so the first and last points coincide and the
// loop closes when rendered.
func (c *Circle) Interpolate(count int) []r3.Vector {
	// Passing the normal against itself forces the null-space branch of
	// OrthogonalUnitVector, deterministically picking an in-plane direction.
	uHat := spatialmath.OrthogonalUnitVector(c.normal, c.normal)
	vHat := c.normal.Cross(uHat)
	return samplePlanarCircle(c.center, c.radius, uHat, vHat, 0, 2*math.Pi, count)
}
