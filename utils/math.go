// Package utils contains shared scalar helpers.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// WrapAngle maps any angle in radians to the equivalent value in [0, 2pi).
// Negative inputs wrap forward, i.e. true mathematical modulo rather than the
// truncating remainder.
func WrapAngle(angle float64) float64 {
	twoPi := 2 * math.Pi
	return math.Mod(math.Mod(angle, twoPi)+twoPi, twoPi)
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual reports whether two floats are within epsilon of each
// other.
func Float64AlmostEqual(v1, v2, epsilon float64) bool {
	return math.Abs(v1-v2) <= epsilon
}
