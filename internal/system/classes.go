package system

import "github.com/litescript/ls-orrery/internal/rng"

// StarClass is a spectral class letter.
type StarClass string

const (
	ClassM StarClass = "M"
	ClassK StarClass = "K"
	ClassG StarClass = "G"
	ClassF StarClass = "F"
	ClassA StarClass = "A"
	ClassB StarClass = "B"
	ClassO StarClass = "O"
)

// ClassInfo narrows the star ranges for one class. All ranges sit inside
// radius [7,16] and hue [20,65].
type ClassInfo struct {
	Class      StarClass
	Label      string
	Weight     float64
	Radius     [2]float64
	Hue        [2]float64 // degrees
	Saturation [2]float64
}

// StarClasses lists classes from most common and dimmest to rarest and
// hottest. Order matters to the sampler.
var StarClasses = []ClassInfo{
	{Class: ClassM, Label: "red dwarf", Weight: 0.45, Radius: [2]float64{7, 9}, Hue: [2]float64{20, 30}, Saturation: [2]float64{0.9, 1.0}},
	{Class: ClassK, Label: "orange dwarf", Weight: 0.25, Radius: [2]float64{8, 10.5}, Hue: [2]float64{26, 38}, Saturation: [2]float64{0.88, 0.98}},
	{Class: ClassG, Label: "yellow dwarf", Weight: 0.15, Radius: [2]float64{9.5, 12}, Hue: [2]float64{34, 46}, Saturation: [2]float64{0.85, 0.95}},
	{Class: ClassF, Label: "yellow-white", Weight: 0.08, Radius: [2]float64{11, 13}, Hue: [2]float64{42, 52}, Saturation: [2]float64{0.8, 0.92}},
	{Class: ClassA, Label: "white", Weight: 0.05, Radius: [2]float64{12, 14}, Hue: [2]float64{48, 58}, Saturation: [2]float64{0.75, 0.88}},
	{Class: ClassB, Label: "blue-white giant", Weight: 0.015, Radius: [2]float64{13, 15}, Hue: [2]float64{54, 62}, Saturation: [2]float64{0.72, 0.85}},
	{Class: ClassO, Label: "hot giant", Weight: 0.005, Radius: [2]float64{14, 16}, Hue: [2]float64{58, 65}, Saturation: [2]float64{0.7, 0.82}},
}

var classSampler = func() rng.Sampler[ClassInfo] {
	cats := make([]rng.Weighted[ClassInfo], len(StarClasses))
	for i, c := range StarClasses {
		cats[i] = rng.Weighted[ClassInfo]{Value: c, Weight: c.Weight}
	}
	return rng.NewSampler(cats...)
}()

// Info returns the table entry for c, or the M entry if c is unknown.
func (c StarClass) Info() ClassInfo {
	for _, info := range StarClasses {
		if info.Class == c {
			return info
		}
	}
	return StarClasses[0]
}

func (c StarClass) String() string {
	return string(c)
}

// Planet type bands by orbital index.
var (
	innerBand = rng.NewSampler(
		rng.Weighted[PlanetType]{Value: PlanetRocky, Weight: 1},
	)
	middleBand = rng.NewSampler(
		rng.Weighted[PlanetType]{Value: PlanetIce, Weight: 0.7},
		rng.Weighted[PlanetType]{Value: PlanetRocky, Weight: 0.3},
	)
	outerBand = rng.NewSampler(
		rng.Weighted[PlanetType]{Value: PlanetGas, Weight: 0.6},
		rng.Weighted[PlanetType]{Value: PlanetIce, Weight: 0.4},
	)
)

// bandFor returns the type sampler for orbital index i.
func bandFor(i int) rng.Sampler[PlanetType] {
	switch {
	case i < 2:
		return innerBand
	case i < 4:
		return middleBand
	default:
		return outerBand
	}
}

// typeRanges holds per-type radius and HSL ranges.
type typeRanges struct {
	Radius     [2]float64
	Hue        [2]float64
	Saturation [2]float64
	Lightness  [2]float64
}

var planetRanges = map[PlanetType]typeRanges{
	PlanetRocky: {Radius: [2]float64{0.4, 1.1}, Hue: [2]float64{0, 360}, Saturation: [2]float64{0.2, 0.5}, Lightness: [2]float64{0.35, 0.55}},
	PlanetIce:   {Radius: [2]float64{0.7, 1.6}, Hue: [2]float64{180, 240}, Saturation: [2]float64{0.4, 0.7}, Lightness: [2]float64{0.65, 0.8}},
	PlanetGas:   {Radius: [2]float64{1.0, 3.0}, Hue: [2]float64{20, 60}, Saturation: [2]float64{0.5, 0.8}, Lightness: [2]float64{0.45, 0.6}},
}
