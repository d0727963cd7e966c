package system

import (
	"math"

	"github.com/litescript/ls-orrery/internal/rng"
)

// Generation constants.
const (
	MinPlanets = 4
	MaxPlanets = 10

	MaxEccentricity = 0.35
	MaxInclination  = 0.22 // radians, symmetric about the plane

	orbitStartFactor = 2.5 // cursor starts at starRadius * factor + gap
	gapMin, gapMax   = 6.0, 12.0
	gapRadiusFactor  = 1.5

	meanMotionScale = 1.6 // n = scale / sqrt(a)

	ringChanceGas   = 0.40
	ringChanceOther = 0.15
	ringGasRadius   = 1.2

	atmosphereChanceRocky = 0.30
)

// Generate builds the system for seed. The same seed always yields a
// deep-equal Description.
//
// Draw order on the single stream:
//
//	star:   class, radius, hue, saturation, lightness, name
//	count:  planet count
//	cursor: first gap
//	planet: type, radius, hue, saturation, lightness, eccentricity,
//	        inclination, node, periapsis, anomaly, rotation, tilt, name,
//	        ring roll (+ inner, outer, opacity), atmosphere roll
//	        (+ hue, thickness, intensity, fresnel), next gap
//
// Rolls with probability 0 or 1 consume no draw.
func Generate(seed uint32) Description {
	s := rng.New(seed)

	star := generateStar(s)

	count := s.IntRange(MinPlanets, MaxPlanets)
	cursor := star.Radius*orbitStartFactor + s.Range(gapMin, gapMax)

	planets := make([]Planet, count)
	maxOrbit := 0.0
	for i := range planets {
		p := generatePlanet(s, i, cursor)
		planets[i] = p
		maxOrbit = math.Max(maxOrbit, p.OrbitRadius+p.Radius)
		cursor += s.Range(gapMin, gapMax) + p.Radius*gapRadiusFactor
	}

	return Description{
		Seed:     seed,
		Star:     star,
		Planets:  planets,
		MaxOrbit: maxOrbit,
	}
}

// GenerateString hashes text and generates from the result.
func GenerateString(text string) Description {
	return Generate(rng.SeedFromString(text))
}

func generateStar(s *rng.Stream) Star {
	info := classSampler.Sample(s)

	radius := s.Range(info.Radius[0], info.Radius[1])
	color := HSL{
		H: s.Range(info.Hue[0], info.Hue[1]),
		S: s.Range(info.Saturation[0], info.Saturation[1]),
		L: s.Range(0.5, 0.62),
	}
	name := makeName(s, starSyllables)

	return Star{
		Name:           name,
		Class:          info.Class,
		Radius:         radius,
		Color:          color,
		LightColor:     starLight(color),
		LightIntensity: radius * radius / 64,
	}
}

func generatePlanet(s *rng.Stream, index int, orbitRadius float64) Planet {
	typ := bandFor(index).Sample(s)
	rg := planetRanges[typ]

	p := Planet{
		Index:       index,
		Type:        typ,
		OrbitRadius: orbitRadius,
		OrbitSpeed:  meanMotionScale / math.Sqrt(orbitRadius),
	}

	p.Radius = s.Range(rg.Radius[0], rg.Radius[1])
	p.Color = HSL{
		H: s.Range(rg.Hue[0], rg.Hue[1]),
		S: s.Range(rg.Saturation[0], rg.Saturation[1]),
		L: s.Range(rg.Lightness[0], rg.Lightness[1]),
	}

	p.Eccentricity = s.Range(0, MaxEccentricity)
	p.Inclination = s.Range(-MaxInclination, MaxInclination)
	p.AscendingNode = s.Angle()
	p.ArgPeriapsis = s.Angle()
	p.InitialAnomaly = s.Angle()

	p.RotationSpeed = s.Range(0.3, 1.5)
	p.AxialTilt = s.Range(0, 0.45)

	p.Name = makeName(s, planetSyllables)

	if s.Chance(ringChance(typ, p.Radius)) {
		p.Ring = &Ring{
			InnerMultiplier: s.Range(1.3, 1.6),
			OuterMultiplier: s.Range(2.0, 2.8),
			Color:           p.Color.Lighter(0.15),
			Opacity:         s.Range(0.35, 0.7),
		}
	}

	if rollAtmosphere(s, typ) {
		hue := p.Color.H
		if typ == PlanetRocky {
			hue = s.Range(180, 220)
		} else {
			hue = math.Mod(hue+s.Range(-10, 10)+360, 360)
		}
		p.Atmosphere = &Atmosphere{
			Thickness: s.Range(0.03, 0.08),
			Color:     HSL{H: hue, S: 0.55, L: 0.7},
			Intensity: s.Range(0.6, 1.2),
			Fresnel:   s.Range(2, 4),
		}
	}

	return p
}

func ringChance(typ PlanetType, radius float64) float64 {
	if typ == PlanetGas && radius > ringGasRadius {
		return ringChanceGas
	}
	return ringChanceOther
}

// rollAtmosphere draws only for rocky planets.
func rollAtmosphere(s *rng.Stream, typ PlanetType) bool {
	switch typ {
	case PlanetGas:
		return true
	case PlanetRocky:
		return s.Chance(atmosphereChanceRocky)
	default:
		return false
	}
}
