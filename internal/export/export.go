// Package export renders generated systems and simulation snapshots for
// headless output.
package export

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"lukechampine.com/blake3"

	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
)

// SystemExport is the JSON-serializable representation of a system.
type SystemExport struct {
	Seed     uint32         `json:"seed"`
	Star     StarExport     `json:"star"`
	Planets  []PlanetExport `json:"planets"`
	MaxOrbit float64        `json:"max_orbit"`
	Extent   float64        `json:"extent"`
}

// StarExport is a JSON-friendly star representation.
type StarExport struct {
	Name           string  `json:"name"`
	Class          string  `json:"class"`
	Radius         float64 `json:"radius"`
	Color          string  `json:"color"`
	LightColor     string  `json:"light_color"`
	LightIntensity float64 `json:"light_intensity"`
}

// PlanetExport is a JSON-friendly planet with its orbital elements.
type PlanetExport struct {
	Index          int               `json:"index"`
	Name           string            `json:"name"`
	Designation    string            `json:"designation"`
	Type           string            `json:"type"`
	Radius         float64           `json:"radius"`
	Color          string            `json:"color"`
	SemiMajorAxis  float64           `json:"semi_major_axis"`
	Eccentricity   float64           `json:"eccentricity"`
	Inclination    float64           `json:"inclination_rad"`
	AscendingNode  float64           `json:"ascending_node_rad"`
	ArgPeriapsis   float64           `json:"arg_periapsis_rad"`
	InitialAnomaly float64           `json:"initial_anomaly_rad"`
	MeanMotion     float64           `json:"mean_motion"`
	Period         float64           `json:"period"`
	RotationSpeed  float64           `json:"rotation_speed"`
	AxialTilt      float64           `json:"axial_tilt_rad"`
	Ring           *RingExport       `json:"ring,omitempty"`
	Atmosphere     *AtmosphereExport `json:"atmosphere,omitempty"`
}

// RingExport is a JSON-friendly ring.
type RingExport struct {
	InnerMultiplier float64 `json:"inner_multiplier"`
	OuterMultiplier float64 `json:"outer_multiplier"`
	Color           string  `json:"color"`
	Opacity         float64 `json:"opacity"`
}

// AtmosphereExport is a JSON-friendly atmosphere.
type AtmosphereExport struct {
	Thickness float64 `json:"thickness"`
	Color     string  `json:"color"`
	Intensity float64 `json:"intensity"`
	Fresnel   float64 `json:"fresnel"`
}

// ExportSystem converts a Description to an exportable format.
func ExportSystem(desc system.Description) *SystemExport {
	export := &SystemExport{
		Seed: desc.Seed,
		Star: StarExport{
			Name:           desc.Star.Name,
			Class:          desc.Star.Class.String(),
			Radius:         desc.Star.Radius,
			Color:          desc.Star.Color.Hex(),
			LightColor:     desc.Star.LightColor.Hex(),
			LightIntensity: desc.Star.LightIntensity,
		},
		Planets:  make([]PlanetExport, 0, len(desc.Planets)),
		MaxOrbit: desc.MaxOrbit,
		Extent:   desc.Extent(),
	}

	for i, p := range desc.Planets {
		pe := PlanetExport{
			Index:          p.Index,
			Name:           p.Name,
			Designation:    desc.Designation(i),
			Type:           p.Type.String(),
			Radius:         p.Radius,
			Color:          p.Color.Hex(),
			SemiMajorAxis:  p.OrbitRadius,
			Eccentricity:   p.Eccentricity,
			Inclination:    p.Inclination,
			AscendingNode:  p.AscendingNode,
			ArgPeriapsis:   p.ArgPeriapsis,
			InitialAnomaly: p.InitialAnomaly,
			MeanMotion:     p.OrbitSpeed,
			Period:         p.Elements().Period(),
			RotationSpeed:  p.RotationSpeed,
			AxialTilt:      p.AxialTilt,
		}
		if r := p.Ring; r != nil {
			pe.Ring = &RingExport{
				InnerMultiplier: r.InnerMultiplier,
				OuterMultiplier: r.OuterMultiplier,
				Color:           r.Color.Hex(),
				Opacity:         r.Opacity,
			}
		}
		if a := p.Atmosphere; a != nil {
			pe.Atmosphere = &AtmosphereExport{
				Thickness: a.Thickness,
				Color:     a.Color.Hex(),
				Intensity: a.Intensity,
				Fresnel:   a.Fresnel,
			}
		}
		export.Planets = append(export.Planets, pe)
	}

	return export
}

// WriteJSON writes the system as indented JSON.
func (s *SystemExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// SnapshotExport is a system plus propagated positions at one sim time.
type SnapshotExport struct {
	System    *SystemExport `json:"system"`
	SimTime   float64       `json:"sim_time"`
	TimeScale float64       `json:"time_scale"`
	Paused    bool          `json:"paused"`
	Bodies    []BodyExport  `json:"bodies"`
	Events    []sim.Event   `json:"events,omitempty"`
}

// BodyExport is one planet's propagated state.
type BodyExport struct {
	Index       int        `json:"index"`
	Name        string     `json:"name"`
	Position    [3]float64 `json:"position"`
	MeanAnomaly float64    `json:"mean_anomaly"`
	TrueAnomaly float64    `json:"true_anomaly"`
	Distance    float64    `json:"distance"`
	SpinAngle   float64    `json:"spin_angle"`
	Orbits      int        `json:"orbits"`
}

// ExportSnapshot converts a sim snapshot to an exportable format.
func ExportSnapshot(snap sim.Snapshot) *SnapshotExport {
	export := &SnapshotExport{
		System:    ExportSystem(snap.System),
		SimTime:   snap.SimTime,
		TimeScale: snap.TimeScale,
		Paused:    snap.Paused,
		Bodies:    make([]BodyExport, 0, len(snap.Bodies)),
		Events:    snap.Events,
	}
	for _, b := range snap.Bodies {
		export.Bodies = append(export.Bodies, BodyExport{
			Index:       b.Index,
			Name:        b.Name,
			Position:    [3]float64{b.World.X, b.World.Y, b.World.Z},
			MeanAnomaly: b.MeanAnomaly,
			TrueAnomaly: b.TrueAnomaly,
			Distance:    b.Distance,
			SpinAngle:   b.SpinAngle,
			Orbits:      b.Orbits,
		})
	}
	return export
}

// WriteJSON writes the snapshot as indented JSON.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// FrameExport is one compact line of a propagation stream.
type FrameExport struct {
	Frame   int          `json:"frame"`
	SimTime float64      `json:"sim_time"`
	Bodies  []BodyExport `json:"bodies"`
}

// WriteFrame writes snap as a single-line JSON frame.
func WriteFrame(w io.Writer, frame int, snap sim.Snapshot) error {
	full := ExportSnapshot(snap)
	return json.NewEncoder(w).Encode(FrameExport{
		Frame:   frame,
		SimTime: full.SimTime,
		Bodies:  full.Bodies,
	})
}

// CanonicalJSON returns the compact JSON encoding used for fingerprints.
func CanonicalJSON(desc system.Description) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(ExportSystem(desc)); err != nil {
		return nil, fmt.Errorf("encode system: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint returns the hex BLAKE3-256 digest of the canonical JSON.
// Two systems with the same fingerprint are identical in every exported
// field.
func Fingerprint(desc system.Description) (string, error) {
	data, err := CanonicalJSON(desc)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ShortFingerprint returns the first 12 hex digits of the fingerprint.
func ShortFingerprint(desc system.Description) string {
	fp, err := Fingerprint(desc)
	if err != nil || len(fp) < 12 {
		return ""
	}
	return fp[:12]
}
