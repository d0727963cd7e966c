// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/export"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/seed"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewPlanets
)

const viewCount = 2

// maxStep caps the wall time folded into one tick, so a stalled terminal
// does not fling planets forward.
const maxStep = 250 * time.Millisecond

// Msg types for Bubble Tea
type (
	// TickMsg advances the simulation.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time
)

// Options configures the root model.
type Options struct {
	ShareBase string          // base URL for share links
	ScaleMode astro.ScaleMode // initial radial scale of the orrery view
	Logger    *logging.Logger
	Now       func() time.Time // clock for randomize; defaults to time.Now
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	sim       *sim.Manager
	logger    *logging.Logger
	shareBase string
	now       func() time.Time

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int
	lastTick  time.Time
	prompt    seedPrompt

	// Derived from the current system
	fingerprint string
	shareLink   string

	// Sub-models
	orrery  OrreryModel
	planets PlanetsModel

	snapshot sim.Snapshot
}

// New creates a new root UI model.
func New(mgr *sim.Manager, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		sim:       mgr,
		logger:    opts.Logger.With("ui"),
		shareBase: opts.ShareBase,
		now:       opts.Now,
		viewMode:  ViewOrrery,
		orrery:    NewOrreryModel(opts.ScaleMode),
		planets:   NewPlanetsModel(),
	}
	m.refresh()
	m.systemChanged()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		animTickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.prompt.active {
			m.handlePrompt(msg)
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "P":
			m.viewMode = ViewPlanets
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		case "r":
			m.regenerate(seed.FromTime(m.now()), "random")
		case "/":
			m.prompt = m.prompt.open("")
		case " ":
			if m.sim.TogglePause() {
				m.statusMsg = "Paused"
			} else {
				m.statusMsg = "Resumed"
			}
			m.refresh()
		case ">", ".":
			m.statusMsg = fmt.Sprintf("Time scale ×%g", m.sim.Faster())
			m.refresh()
		case "<", ",":
			m.statusMsg = fmt.Sprintf("Time scale ×%g", m.sim.Slower())
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo block ~11 lines, footer ~3 lines
		contentHeight := msg.Height - 15
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.planets = m.planets.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, m.tickCmd())
		m.step(time.Time(msg))

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case OpenPlanetMsg:
		m.viewMode = ViewOrrery
		m.orrery = m.orrery.SetFocus(msg.Index)
		m.refresh()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
		// Focus may have moved; pick up the new trail.
		m.refresh()
	case ViewPlanets:
		m.planets, cmd = m.planets.Update(msg)
	}
	return cmd
}

// step advances the simulation by the wall time since the previous tick.
func (m *Model) step(t time.Time) {
	dt := m.sim.TickInterval()
	if !m.lastTick.IsZero() {
		dt = t.Sub(m.lastTick)
	}
	m.lastTick = t
	if dt > maxStep {
		dt = maxStep
	}
	m.sim.Step(dt.Seconds())
	m.refresh()
}

// refresh pulls a fresh snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.sim.Snapshot()
	var trail []astro.Vec3
	if i := m.orrery.FocusIndex(); i >= 0 {
		trail = m.sim.Trail(i)
	}
	m.orrery = m.orrery.UpdateData(m.snapshot, trail)
	m.planets = m.planets.UpdateData(m.snapshot)
}

func (m *Model) handlePrompt(msg tea.KeyMsg) {
	var res promptResult
	m.prompt, res = m.prompt.update(msg)
	switch res {
	case promptCancel:
		m.prompt = m.prompt.close()
	case promptSubmit:
		in := seed.Parse(m.prompt.Value())
		m.prompt = m.prompt.close()
		s := seed.Resolve(in, m.now())
		var label string
		switch in.Kind {
		case seed.KindText:
			label = fmt.Sprintf("%q", in.Text)
		case seed.KindNone:
			label = "clock"
		default:
			label = "typed"
		}
		m.regenerate(s, label)
	}
}

// regenerate replaces the running system with the one grown from s.
func (m *Model) regenerate(s uint32, source string) {
	desc := system.Generate(s)
	m.sim.Regenerate(desc)
	m.logger.Info("regenerated system from %s seed %d (%s, %d planets)",
		source, s, desc.Star.Name, len(desc.Planets))
	m.statusMsg = fmt.Sprintf("Generated %s from seed %d", desc.Star.Name, s)
	m.refresh()
	m.systemChanged()
}

// systemChanged recomputes values derived from the description.
func (m *Model) systemChanged() {
	desc := m.snapshot.System
	m.fingerprint = export.ShortFingerprint(desc)

	m.shareLink = ""
	if m.shareBase == "" {
		return
	}
	link, err := seed.ShareURL(m.shareBase, desc.Seed)
	if err != nil {
		m.logger.Warn("share link: %v", err)
		return
	}
	m.shareLink = link
}

// Seed returns the seed of the displayed system.
func (m Model) Seed() uint32 {
	return m.snapshot.System.Seed
}

// ShareLink returns the link that reproduces the displayed system.
func (m Model) ShareLink() string {
	return m.shareLink
}

// ViewMode returns the active view.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewPlanets:
		content = m.planets.View()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	header := m.renderHeader()
	footer := m.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ██╗     ███████╗       ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		`  ██║     ██╔════╝      ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		`  ██║     ███████╗█████╗██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝`,
		`  ██║     ╚════██║╚════╝██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝`,
		`  ███████╗███████║      ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║`,
		`  ╚══════╝╚══════╝       ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	// Horizontal gradient from the current star's light toward violet,
	// dimming toward the bottom row.
	light := m.snapshot.System.Star.LightColor
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(light, col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Procedural Star Systems · Keplerian Orrery"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2025 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

var logoEnd = system.HSL{H: 275, S: 0.75, L: 0.6}

// gradientColor returns a hex color for a position in the logo gradient.
func gradientColor(start system.HSL, col, row, width, height int) string {
	if start.L == 0 {
		start = system.HSL{H: 217, S: 0.9, L: 0.6}
	}
	x := float64(col) / float64(max(width, 1))
	y := float64(row) / float64(max(height, 1))

	c := start
	c.L *= 1 - y*0.4
	end := logoEnd
	end.L *= 1 - y*0.4
	return system.Blend(c, end, x)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Planets"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	if m.prompt.active {
		return "  " + m.prompt.view()
	}

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	var status string
	if m.snapshot.Paused {
		status = pausedStyle.Render("⏸ paused")
	} else {
		spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText(fmt.Sprintf("seed %d", m.snapshot.System.Seed))
	}
	status += dimStyle.Render(fmt.Sprintf(" · fp %s", m.fingerprint))

	var help string
	switch m.viewMode {
	case ViewPlanets:
		help = dimStyle.Render("↑↓: select | enter: show in orrery | r: random | /: seed | space: pause | </>: speed")
	default:
		help = dimStyle.Render("j/k: focus | +/-: zoom | arrows: pan | f: follow | z: scale | l: labels | t: stars | p: trail | r: random | /: seed | space: pause | </>: speed")
	}

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	if m.shareLink != "" {
		footer += "\n  " + dimStyle.Render("share: ") + accentStyle.Render(m.shareLink)
	}
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.sim.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	textLen := len(runes)
	if textLen == 0 {
		return ""
	}

	pos := m.animTick % (textLen + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var r8, g8, b8 int
		switch {
		case dist <= 1:
			r8, g8, b8 = 180, 160, 220
		case dist <= 3:
			r8, g8, b8 = 140, 120, 180
		case dist <= 5:
			r8, g8, b8 = 110, 90, 150
		default:
			r8, g8, b8 = 80, 70, 120
		}

		hexColor := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
