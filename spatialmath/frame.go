package spatialmath

import "github.com/golang/geo/r3"

// Frame is a right-handed orthonormal reference frame attached to a point in
// space. Curve types export frames at their endpoints so that path builders
// can chain the next segment off a known pose.
type Frame struct {
	Origin r3.Vector
	X      r3.Vector
	Y      r3.Vector
	Z      r3.Vector
}

// FrameAlmostEqual reports whether two frames have approximately the same
// origin and axes, within the given tolerance per component.
func FrameAlmostEqual(f1, f2 Frame, tolerance float64) bool {
	return vectorAlmostEqual(f1.Origin, f2.Origin, tolerance) &&
		vectorAlmostEqual(f1.X, f2.X, tolerance) &&
		vectorAlmostEqual(f1.Y, f2.Y, tolerance) &&
		vectorAlmostEqual(f1.Z, f2.Z, tolerance)
}

func vectorAlmostEqual(v1, v2 r3.Vector, tolerance float64) bool {
	return v1.Sub(v2).Norm() <= tolerance
}
