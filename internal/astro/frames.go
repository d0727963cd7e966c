// Package astro provides vector math, frame rotations and the top-down
// projection shared by the orbit propagator and the renderers.
//
// Scene frame: the reference (orbital) plane is XZ and Y is the normal, so an
// orbit with zero inclination has Y == 0 everywhere.
package astro

import (
	"math"
	"strings"
)

// Vec3 represents a 3D vector in scene units.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Axis names a rotation axis.
type Axis int

const (
	AxisX Axis = iota // Reference axis, used for inclination
	AxisY             // Plane normal, used for node and periapsis
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Rotation is a right-handed rotation by Angle radians about Axis.
type Rotation struct {
	Axis  Axis
	Angle float64
}

// Apply rotates v.
func (r Rotation) Apply(v Vec3) Vec3 {
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	switch r.Axis {
	case AxisX:
		return Vec3{X: v.X, Y: v.Y*c - v.Z*s, Z: v.Y*s + v.Z*c}
	case AxisY:
		return Vec3{X: v.X*c + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*c}
	case AxisZ:
		return Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
	default:
		return v
	}
}

// Rotations is an ordered chain of transforms, outermost (parent) first.
// Applying it to a vector is equivalent to nesting each rotation inside the
// previous one: the last element touches the vector first.
type Rotations []Rotation

// Apply transforms v through the chain.
func (rs Rotations) Apply(v Vec3) Vec3 {
	for i := len(rs) - 1; i >= 0; i-- {
		v = rs[i].Apply(v)
	}
	return v
}

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Screen X (scaled display units)
	Y float64 // Screen Y (scaled display units, up is positive)
	R float64 // True 3D distance from the origin
	H float64 // Height above the reference plane
}

// ScaleMode defines how radial distances are mapped to screen space.
type ScaleMode int

const (
	// ScaleLinear keeps distances proportional.
	ScaleLinear ScaleMode = iota

	// ScaleSqrt compresses the outer system: r_display = sqrt(r * extent).
	ScaleSqrt

	// ScaleLog uses r_display = extent * log10(1 + 9r/extent).
	ScaleLog
)

// String returns a short label for the HUD.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLinear:
		return "Linear"
	case ScaleSqrt:
		return "Sqrt"
	case ScaleLog:
		return "Log"
	default:
		return "?"
	}
}

// ParseScaleMode maps "linear", "sqrt" or "log" to a mode. The boolean is
// false for anything else.
func ParseScaleMode(s string) (ScaleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return ScaleLinear, true
	case "sqrt":
		return ScaleSqrt, true
	case "log":
		return ScaleLog, true
	default:
		return ScaleLinear, false
	}
}

// Next cycles to the following mode.
func (m ScaleMode) Next() ScaleMode {
	return (m + 1) % 3
}

// ProjectionConfig configures the top-down projection.
type ProjectionConfig struct {
	Scale  float64   // Zoom factor
	Mode   ScaleMode // Radial mapping
	Extent float64   // Radius that maps to itself in non-linear modes
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig(extent float64) ProjectionConfig {
	if extent <= 0 {
		extent = 1
	}
	return ProjectionConfig{
		Scale:  1.0,
		Mode:   ScaleLinear,
		Extent: extent,
	}
}

// ProjectTopDown looks down the plane normal, like a camera above the star.
// Screen X follows scene X and screen Y follows scene -Z.
func ProjectTopDown(v Vec3, cfg ProjectionConfig) ProjectedPoint {
	r := math.Hypot(v.X, v.Z)
	rDisplay := scaleRadius(r, cfg)

	angle := math.Atan2(-v.Z, v.X)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angle) * cfg.Scale,
		Y: rDisplay * math.Sin(angle) * cfg.Scale,
		R: v.Norm(),
		H: v.Y,
	}
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(r float64, cfg ProjectionConfig) float64 {
	extent := cfg.Extent
	if extent <= 0 {
		extent = 1
	}
	switch cfg.Mode {
	case ScaleSqrt:
		return math.Sqrt(r * extent)
	case ScaleLog:
		return extent * math.Log10(1+9*r/extent)
	default:
		return r
	}
}
