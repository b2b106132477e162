// Package spatialmath defines primitives for working with vectors, rotations,
// and orthonormal frames in 3D Euclidean space.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// OrthogonalUnitVector returns a unit vector orthogonal to both u and v.
// When u and v are independent the result is the normalized cross product,
// oriented by the right-hand rule. When the cross product vanishes (colinear
// or zero inputs) the orientation is undefined by the inputs, and a basis
// vector of the null space of the 2x3 matrix [u; v] is returned instead. If
// both inputs are zero any unit vector is a valid answer; callers must not
// rely on a particular direction in that case.
func OrthogonalUnitVector(u, v r3.Vector) r3.Vector {
	if cp := u.Cross(v); cp.Norm() > 0 {
		return cp.Normalize()
	}
	return nullSpaceBasisVector(u, v)
}

// nullSpaceBasisVector returns the first basis vector of the orthogonal
// complement of the rows u and v. The right-singular vectors beyond the
// numerical rank of [u; v] span its null space, so the column of V at index
// rank is the first such basis vector. The SVD makes this deterministic for a
// given input.
func nullSpaceBasisVector(u, v r3.Vector) r3.Vector {
	a := mat.NewDense(2, 3, []float64{
		u.X, u.Y, u.Z,
		v.X, v.Y, v.Z,
	})
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFullV); !ok {
		// a 2x3 factorization does not fail in practice, but stay total
		return r3.Vector{X: 0, Y: 0, Z: 1}
	}

	values := svd.Values(nil)
	tol := values[0] * 1e-12
	rank := 0
	for _, sv := range values {
		if sv > tol {
			rank++
		}
	}

	var rightVectors mat.Dense
	svd.VTo(&rightVectors)
	basis := rightVectors.ColView(rank)
	return r3.Vector{X: basis.AtVec(0), Y: basis.AtVec(1), Z: basis.AtVec(2)}.Normalize()
}

// SignedAngle returns the signed angle in (-pi, pi], in radians, from a to b,
// measured as a right-handed rotation about the reference axis n. a and b
// must be nonzero. A zero n is passed through un-normalized, which collapses
// the sign information of the cross-product term; callers own that edge case.
func SignedAngle(a, b, n r3.Vector) float64 {
	a = a.Normalize()
	b = b.Normalize()
	if n.Norm() > 0 {
		n = n.Normalize()
	}
	return math.Atan2(a.Cross(b).Dot(n), a.Dot(b))
}
