// Package system generates reproducible star systems from a seed.
package system

import (
	"math"

	"github.com/litescript/ls-orrery/internal/orbit"
)

// PlanetType is the visual and compositional category of a planet.
type PlanetType string

const (
	PlanetRocky PlanetType = "rocky"
	PlanetIce   PlanetType = "ice"
	PlanetGas   PlanetType = "gas"
)

func (t PlanetType) String() string {
	return string(t)
}

// Star is the single body at the focus of every orbit.
type Star struct {
	Name           string
	Class          StarClass
	Radius         float64 // scene units, [7,16]
	Color          HSL
	LightColor     HSL
	LightIntensity float64 // radius² / 64
}

// Ring describes a planetary ring. Radii are multiples of the planet radius.
type Ring struct {
	InnerMultiplier float64
	OuterMultiplier float64
	Color           HSL
	Opacity         float64
}

// InnerRadius returns the ring's inner edge for a planet of radius r.
func (r Ring) InnerRadius(planetRadius float64) float64 {
	return r.InnerMultiplier * planetRadius
}

// OuterRadius returns the ring's outer edge for a planet of radius r.
func (r Ring) OuterRadius(planetRadius float64) float64 {
	return r.OuterMultiplier * planetRadius
}

// Atmosphere describes a glow shell around a planet.
type Atmosphere struct {
	Thickness float64 // fraction of planet radius
	Color     HSL
	Intensity float64
	Fresnel   float64 // falloff exponent
}

// Planet is one generated body. Ring and Atmosphere are nil when absent.
type Planet struct {
	Index int
	Name  string
	Type  PlanetType

	Radius float64
	Color  HSL

	// Orbit
	OrbitRadius    float64 // semi-major axis
	OrbitSpeed     float64 // mean motion, rad per sim second
	Eccentricity   float64
	Inclination    float64 // radians
	AscendingNode  float64 // radians
	ArgPeriapsis   float64 // radians
	InitialAnomaly float64 // mean anomaly at t=0

	// Spin
	RotationSpeed float64 // rad per sim second
	AxialTilt     float64 // radians

	Ring       *Ring
	Atmosphere *Atmosphere
}

// Elements returns the propagator view of the planet's orbit.
func (p Planet) Elements() orbit.Elements {
	return orbit.Elements{
		SemiMajorAxis: p.OrbitRadius,
		Eccentricity:  p.Eccentricity,
		Inclination:   p.Inclination,
		AscendingNode: p.AscendingNode,
		ArgPeriapsis:  p.ArgPeriapsis,
		MeanMotion:    p.OrbitSpeed,
		RotationSpeed: p.RotationSpeed,
	}
}

// HasRing reports whether the planet carries a ring.
func (p Planet) HasRing() bool {
	return p.Ring != nil
}

// HasAtmosphere reports whether the planet carries an atmosphere.
func (p Planet) HasAtmosphere() bool {
	return p.Atmosphere != nil
}

// Description is a complete generated system. Treat it as read-only.
type Description struct {
	Seed    uint32
	Star    Star
	Planets []Planet

	// MaxOrbit is the largest orbit radius plus that planet's radius.
	MaxOrbit float64
}

// Extent returns the farthest any planet edge reaches from the star,
// using apoapsis rather than semi-major axis.
func (d Description) Extent() float64 {
	ext := d.Star.Radius
	for _, p := range d.Planets {
		ext = math.Max(ext, p.Elements().Apoapsis()+p.Radius)
	}
	return ext
}

// Designation returns the catalog name of planet i, such as "Vekor III".
func (d Description) Designation(i int) string {
	return designation(d.Star.Name, i)
}

// CountByType tallies planets per type.
func (d Description) CountByType() map[PlanetType]int {
	counts := make(map[PlanetType]int, 3)
	for _, p := range d.Planets {
		counts[p.Type]++
	}
	return counts
}
