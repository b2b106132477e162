// Package curve implements immutable parametric curve primitives in 3D space,
// meant for building curved path segments from minimal geometric inputs and
// sampling them for export or rendering.
package curve

import (
	"math"

	"github.com/golang/geo/r3"
)

// samplePlanarCircle samples count points of the planar locus
// center + r*cos(angle)*uHat + r*sin(angle)*vHat at equal angular steps over
// [from, to], inclusive of both endpoints. count 0 and 1 are degenerate but
// valid, returning an empty and a single-point slice respectively.
func samplePlanarCircle(center r3.Vector, r float64, uHat, vHat r3.Vector, from, to float64, count int) []r3.Vector {
	if count <= 0 {
		return []r3.Vector{}
	}
	points := make([]r3.Vector, 0, count)
	if count == 1 {
		return append(points, planarCirclePoint(center, r, uHat, vHat, from))
	}
	step := (to - from) / float64(count-1)
	for i := 0; i < count; i++ {
		points = append(points, planarCirclePoint(center, r, uHat, vHat, from+float64(i)*step))
	}
	return points
}

func planarCirclePoint(center r3.Vector, r float64, uHat, vHat r3.Vector, angle float64) r3.Vector {
	return center.Add(uHat.Mul(r * math.Cos(angle))).Add(vHat.Mul(r * math.Sin(angle)))
}
