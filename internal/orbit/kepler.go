// Package orbit propagates planets along Keplerian ellipses.
//
// Positions are expressed with the focus (the star) at the origin. The
// in-plane ellipse lies in XZ with periapsis on +X; Orientation then rotates
// it into place.
package orbit

import (
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

const (
	// MaxEccentricity bounds e before solving so the initial-guess branch and
	// the fixed Newton iteration stay well behaved.
	MaxEccentricity = 0.95

	// KeplerIterations is the fixed Newton-Raphson step count. There is no
	// convergence check. Residuals stay below 1e-7 rad for e <= 0.9 and reach
	// roughly 1.2e-4 rad near e = 0.95 at small mean anomalies.
	KeplerIterations = 6

	// highEccentricity switches the initial guess from M to π.
	highEccentricity = 0.8
)

// ClampEccentricity limits e to [0, MaxEccentricity].
func ClampEccentricity(e float64) float64 {
	if e < 0 {
		return 0
	}
	if e > MaxEccentricity {
		return MaxEccentricity
	}
	return e
}

// SolveKepler returns the eccentric anomaly E satisfying M = E - e·sin(E).
func SolveKepler(meanAnomaly, e float64) float64 {
	e = ClampEccentricity(e)

	E := meanAnomaly
	if e >= highEccentricity {
		E = math.Pi
	}

	for i := 0; i < KeplerIterations; i++ {
		E -= (E - e*math.Sin(E) - meanAnomaly) / (1 - e*math.Cos(E))
	}
	return E
}

// KeplerResidual returns |E - e·sin(E) - M|.
func KeplerResidual(E, e, meanAnomaly float64) float64 {
	return math.Abs(E - e*math.Sin(E) - meanAnomaly)
}

// SemiMinorAxis returns b = a·sqrt(1-e²), treating a negative radicand as 0.
func SemiMinorAxis(a, e float64) float64 {
	return a * math.Sqrt(math.Max(0, 1-e*e))
}

// PlanePosition returns the in-plane position for eccentric anomaly E.
func PlanePosition(a, e, E float64) astro.Vec3 {
	e = ClampEccentricity(e)
	b := SemiMinorAxis(a, e)
	return astro.Vec3{
		X: a * (math.Cos(E) - e),
		Y: 0,
		Z: b * math.Sin(E),
	}
}

// TrueAnomaly converts eccentric anomaly to true anomaly in [0,2π).
func TrueAnomaly(E, e float64) float64 {
	e = ClampEccentricity(e)
	nu := 2 * math.Atan2(math.Sqrt(1+e)*math.Sin(E/2), math.Sqrt(1-e)*math.Cos(E/2))
	return astro.WrapAngle(nu)
}

// Radius returns the focal distance a(1 - e·cos E).
func Radius(a, e, E float64) float64 {
	e = ClampEccentricity(e)
	return a * (1 - e*math.Cos(E))
}
