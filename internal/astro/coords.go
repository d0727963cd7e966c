package astro

import "math"

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle maps any angle into [0,2π).
func WrapAngle(a float64) float64 {
	return math.Mod(math.Mod(a, TwoPi)+TwoPi, TwoPi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PlaneLongitude returns the in-plane longitude of v in degrees, [0,360).
// It matches the counterclockwise angle seen in the top-down projection.
func PlaneLongitude(v Vec3) float64 {
	lon := RadToDeg(math.Atan2(-v.Z, v.X))
	if lon < 0 {
		lon += 360
	}
	return lon
}

// PlaneLatitude returns the elevation of v above the reference plane in degrees.
func PlaneLatitude(v Vec3) float64 {
	r := v.Norm()
	if r == 0 {
		return 0
	}
	return RadToDeg(math.Asin(v.Y / r))
}
