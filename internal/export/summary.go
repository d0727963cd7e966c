package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
)

// SummaryRow represents one row in the summary table.
type SummaryRow struct {
	Index       int
	Name        string
	Type        system.PlanetType
	Radius      float64
	Orbit       float64
	Ecc         float64
	IncDeg      float64
	Period      float64
	Features    string
	Color       string
	TrueAnomDeg float64
	Orbits      int
}

// GenerateSummaryRows creates summary rows from a snapshot.
func GenerateSummaryRows(snap sim.Snapshot) []SummaryRow {
	desc := snap.System
	rows := make([]SummaryRow, 0, len(desc.Planets))
	for i, p := range desc.Planets {
		row := SummaryRow{
			Index:    i,
			Name:     p.Name,
			Type:     p.Type,
			Radius:   p.Radius,
			Orbit:    p.OrbitRadius,
			Ecc:      p.Eccentricity,
			IncDeg:   astro.RadToDeg(p.Inclination),
			Period:   p.Elements().Period(),
			Features: Features(p),
			Color:    p.Color.Hex(),
		}
		if i < len(snap.Bodies) {
			row.TrueAnomDeg = astro.RadToDeg(snap.Bodies[i].TrueAnomaly)
			row.Orbits = snap.Bodies[i].Orbits
		}
		rows = append(rows, row)
	}
	return rows
}

// Features returns a compact ring/atmosphere tag such as "R+A".
func Features(p system.Planet) string {
	var tags []string
	if p.HasRing() {
		tags = append(tags, "R")
	}
	if p.HasAtmosphere() {
		tags = append(tags, "A")
	}
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, "+")
}

// WriteSummaryTable writes a text table to the given writer.
func WriteSummaryTable(w io.Writer, snap sim.Snapshot) {
	desc := snap.System
	star := desc.Star
	rows := GenerateSummaryRows(snap)

	fmt.Fprintf(w, "System %s @ seed %d  (t=%.1f, x%g)\n", star.Name, desc.Seed, snap.SimTime, snap.TimeScale)
	fmt.Fprintf(w, "Star: class %s %s, radius %.2f, color %s, light %.2f\n",
		star.Class, star.Class.Info().Label, star.Radius, star.Color.Hex(), star.LightIntensity)
	fmt.Fprintln(w, strings.Repeat("─", 92))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No planets")
		return
	}

	// Header
	fmt.Fprintf(w, "%-3s %-12s %-6s %6s %8s %6s %7s %9s %7s %-5s %-8s\n",
		"#", "Name", "Type", "Radius", "Orbit", "Ecc", "Inc°", "Period", "ν°", "Feat", "Color")
	fmt.Fprintln(w, strings.Repeat("─", 92))

	// Rows
	for _, r := range rows {
		fmt.Fprintf(w, "%-3d %s %-6s %6.2f %8.2f %6.3f %7.2f %9s %7.1f %-5s %-8s\n",
			r.Index+1,
			FitCell(r.Name, 12),
			r.Type,
			r.Radius,
			r.Orbit,
			r.Ecc,
			r.IncDeg,
			FormatPeriod(r.Period),
			r.TrueAnomDeg,
			r.Features,
			r.Color,
		)
	}

	counts := desc.CountByType()
	fmt.Fprintf(w, "\nTotal: %d planets (%d rocky, %d ice, %d gas), max orbit %.2f\n",
		len(rows), counts[system.PlanetRocky], counts[system.PlanetIce], counts[system.PlanetGas], desc.MaxOrbit)
}

// WriteEvents writes the last n events, newest last.
func WriteEvents(w io.Writer, events []sim.Event, n int) {
	fmt.Fprintln(w, "Events")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}
	if len(events) > n {
		events = events[len(events)-n:]
	}
	for _, e := range events {
		switch e.Type {
		case sim.EventPeriapsis:
			fmt.Fprintf(w, "t=%9.1f  %-11s %s (orbit %d)\n", e.SimTime, e.Type, e.Planet, e.Orbits)
		case sim.EventRegenerated:
			fmt.Fprintf(w, "t=%9.1f  %-11s seed %d\n", e.SimTime, e.Type, e.Seed)
		default:
			fmt.Fprintf(w, "t=%9.1f  %s\n", e.SimTime, e.Type)
		}
	}
}

// FitCell truncates or pads s to exactly width display columns.
func FitCell(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "..")
	}
	return runewidth.FillRight(s, width)
}

// FormatPeriod renders a period for narrow columns.
func FormatPeriod(p float64) string {
	switch {
	case math.IsInf(p, 0):
		return "∞"
	case p >= 1e4:
		return fmt.Sprintf("%.1fk", p/1000)
	default:
		return fmt.Sprintf("%.1f", p)
	}
}
