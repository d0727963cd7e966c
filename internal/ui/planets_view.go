package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/export"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
)

// Styles for the planets table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// OpenPlanetMsg requests the orrery view focused on a planet.
type OpenPlanetMsg struct {
	Index int
}

// PlanetsModel lists every planet with its elements and live state.
type PlanetsModel struct {
	width    int
	height   int
	cursor   int
	snapshot sim.Snapshot
}

// NewPlanetsModel creates a new planets table model.
func NewPlanetsModel() PlanetsModel {
	return PlanetsModel{}
}

// SetSize updates the viewport size.
func (m PlanetsModel) SetSize(width, height int) PlanetsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m PlanetsModel) UpdateData(snap sim.Snapshot) PlanetsModel {
	m.snapshot = snap
	if n := len(snap.System.Planets); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m
}

// Cursor returns the selected row.
func (m PlanetsModel) Cursor() int {
	return m.cursor
}

// Update handles messages.
func (m PlanetsModel) Update(msg tea.Msg) (PlanetsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.snapshot.System.Planets)

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < n-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			if n > 0 {
				idx := m.cursor
				return m, func() tea.Msg { return OpenPlanetMsg{Index: idx} }
			}
		}
	}
	return m, nil
}

// View renders the planets table.
func (m PlanetsModel) View() string {
	desc := m.snapshot.System
	if len(desc.Planets) == 0 {
		return "Generating system...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderStar())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderEvents())
	return b.String()
}

func (m PlanetsModel) renderStar() string {
	star := m.snapshot.System.Star
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(star.Color.Hex())).Render("██")

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s · class %s", star.Name, star.Class)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s  radius %.2f  light %s ×%.2f  seed %d",
		swatch, star.Color.Hex(), star.Radius, star.LightColor.Hex(), star.LightIntensity, m.snapshot.System.Seed)
	return b.String()
}

func (m PlanetsModel) renderTable() string {
	var b strings.Builder

	counts := m.snapshot.System.CountByType()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Planets (%d rocky, %d ice, %d gas)",
		counts[system.PlanetRocky], counts[system.PlanetIce], counts[system.PlanetGas])))
	b.WriteString("\n")

	header := fmt.Sprintf("%-3s %-12s %-5s %6s %7s %5s %6s %7s %7s %6s %4s %-3s",
		"#", "Name", "Type", "Radius", "a", "e", "i°", "Period", "Dist", "ν°", "Orb", "F")
	b.WriteString(headerStyle.Render(header) + "  Color")
	b.WriteString("\n")

	rows := export.GenerateSummaryRows(m.snapshot)

	// Leave room for the star block, event log and scroll hint
	maxRows := m.height - 12
	if maxRows < 4 {
		maxRows = 4
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := min(start+maxRows, len(rows))

	for i := start; i < end; i++ {
		r := rows[i]
		dist := 0.0
		if i < len(m.snapshot.Bodies) {
			dist = m.snapshot.Bodies[i].Distance
		}
		row := fmt.Sprintf("%-3d %s %-5s %6.2f %7.2f %5.3f %6.1f %7s %7.2f %6.1f %4d %-3s",
			r.Index+1,
			export.FitCell(r.Name, 12),
			r.Type,
			r.Radius,
			r.Orbit,
			r.Ecc,
			r.IncDeg,
			export.FormatPeriod(r.Period),
			dist,
			r.TrueAnomDeg,
			r.Orbits,
			r.Features,
		)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render("██")
		b.WriteString("  " + swatch + " " + r.Color)
		b.WriteString("\n")
	}

	if len(rows) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d planets\n", start+1, end, len(rows)))
	}

	return b.String()
}

func (m PlanetsModel) renderEvents() string {
	events := m.snapshot.Events
	if len(events) > 3 {
		events = events[len(events)-3:]
	}
	if len(events) == 0 {
		return eventStyle.Render("  No events yet")
	}

	var lines []string
	for _, e := range events {
		lines = append(lines, "  "+eventLine(e))
	}
	return eventStyle.Render(strings.Join(lines, "\n"))
}

// eventLine renders an event for the compact log.
func eventLine(e sim.Event) string {
	switch e.Type {
	case sim.EventPeriapsis:
		return fmt.Sprintf("t=%.1fs  %s passed periapsis (orbit %d)", e.SimTime, e.Planet, e.Orbits)
	case sim.EventRegenerated:
		return fmt.Sprintf("t=%.1fs  regenerated from seed %d", e.SimTime, e.Seed)
	default:
		return fmt.Sprintf("t=%.1fs  %s", e.SimTime, strings.ToLower(string(e.Type)))
	}
}
