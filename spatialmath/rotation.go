package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// RotateVectorAboutAxis rotates v about the given axis by theta radians,
// following the right-hand rule. The axis need not be unit length, but must
// be nonzero; a zero axis returns v unchanged.
func RotateVectorAboutAxis(v, axis r3.Vector, theta float64) r3.Vector {
	if axis.Norm() == 0 {
		return v
	}
	axis = axis.Normalize()
	sinHalf := math.Sin(theta / 2)
	q := quat.Number{
		Real: math.Cos(theta / 2),
		Imag: axis.X * sinHalf,
		Jmag: axis.Y * sinHalf,
		Kmag: axis.Z * sinHalf,
	}
	qv := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q, qv), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}
