package orbit

import (
	"math"

	"github.com/litescript/ls-orrery/internal/astro"
)

// Elements describe one planet's orbit and spin.
type Elements struct {
	SemiMajorAxis float64 // a, scene units
	Eccentricity  float64 // e
	Inclination   float64 // i, radians
	AscendingNode float64 // Ω, radians
	ArgPeriapsis  float64 // ω, radians
	MeanMotion    float64 // n, radians per sim second
	RotationSpeed float64 // spin rate, radians per sim second
}

// Orientation returns the node → inclination → periapsis chain.
// The order is part of the orbit contract; swapping entries changes the shape
// of inclined orbits.
func (el Elements) Orientation() astro.Rotations {
	return astro.Rotations{
		{Axis: astro.AxisY, Angle: el.AscendingNode},
		{Axis: astro.AxisX, Angle: el.Inclination},
		{Axis: astro.AxisY, Angle: el.ArgPeriapsis},
	}
}

// Period returns the orbital period in sim seconds, or +Inf for n == 0.
func (el Elements) Period() float64 {
	if el.MeanMotion == 0 {
		return math.Inf(1)
	}
	return astro.TwoPi / math.Abs(el.MeanMotion)
}

// Apoapsis returns the farthest focal distance a(1+e).
func (el Elements) Apoapsis() float64 {
	return el.SemiMajorAxis * (1 + ClampEccentricity(el.Eccentricity))
}

// Periapsis returns the nearest focal distance a(1-e).
func (el Elements) Periapsis() float64 {
	return el.SemiMajorAxis * (1 - ClampEccentricity(el.Eccentricity))
}

// State is the mutable per-planet propagation state.
type State struct {
	MeanAnomaly      float64 // radians, [0,2π)
	EccentricAnomaly float64 // radians, from the last solve
	SpinAngle        float64 // radians, [0,2π)
	Orbits           int     // completed periapsis passages
}

// NewState starts a planet at the given mean anomaly.
func NewState(meanAnomaly float64) State {
	return State{MeanAnomaly: astro.WrapAngle(meanAnomaly)}
}

// Advance moves st forward by dt and returns the in-plane position.
// Orientation is left to the caller; see Propagate.
func Advance(st *State, el Elements, dt float64) astro.Vec3 {
	raw := st.MeanAnomaly + el.MeanMotion*dt
	st.Orbits += int(math.Floor(raw / astro.TwoPi))
	st.MeanAnomaly = astro.WrapAngle(raw)

	st.SpinAngle = astro.WrapAngle(st.SpinAngle + el.RotationSpeed*dt)

	st.EccentricAnomaly = SolveKepler(st.MeanAnomaly, el.Eccentricity)
	return PlanePosition(el.SemiMajorAxis, el.Eccentricity, st.EccentricAnomaly)
}

// Propagate advances st and returns the oriented scene position.
func Propagate(st *State, el Elements, dt float64) astro.Vec3 {
	p := Advance(st, el, dt)
	return el.Orientation().Apply(p)
}

// PositionAt returns the oriented position for mean anomaly m without
// touching any state.
func PositionAt(el Elements, m float64) astro.Vec3 {
	E := SolveKepler(astro.WrapAngle(m), el.Eccentricity)
	return el.Orientation().Apply(PlanePosition(el.SemiMajorAxis, el.Eccentricity, E))
}

// Path samples the full ellipse at evenly spaced eccentric anomalies.
func Path(el Elements, samples int) []astro.Vec3 {
	if samples < 3 {
		samples = 3
	}
	rot := el.Orientation()
	pts := make([]astro.Vec3, samples)
	for i := range pts {
		E := astro.TwoPi * float64(i) / float64(samples)
		pts[i] = rot.Apply(PlanePosition(el.SemiMajorAxis, el.Eccentricity, E))
	}
	return pts
}
