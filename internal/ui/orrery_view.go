package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/export"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/rng"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
)

// LabelMode controls how planet labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the focused body
	LabelAll                      // Every body
)

func (l LabelMode) String() string {
	switch l {
	case LabelNone:
		return "off"
	case LabelFocused:
		return "focus"
	default:
		return "all"
	}
}

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0, 5.0, 10.0}

const (
	defaultZoom = 3 // index of 1.0

	// panStep is the fraction of the system extent moved per key press.
	panStep = 0.1

	// cellAspect is the height/width ratio of a terminal cell.
	cellAspect = 2.0

	trackSamples   = 180
	starfieldSize  = 140
	starfieldSalt  = 0x9e3779b9
	hudLines       = 3
	minCanvasLines = 5
)

const (
	glyphStar  = '✶'
	glyphTrack = '·'
	glyphTrail = '∙'
	glyphRing  = '─'
	glyphFocus = '◄'
)

// backgroundStar is one point of the decorative starfield, placed in
// canvas fractions so it stays put while the system pans and zooms.
type backgroundStar struct {
	x, y float64
	mag  float64
}

// starfield derives background stars from a stream salted away from the
// generation stream, so toggling it never changes the system.
func starfield(seed uint32, n int) []backgroundStar {
	s := rng.New(seed ^ starfieldSalt)
	stars := make([]backgroundStar, n)
	for i := range stars {
		stars[i] = backgroundStar{
			x:   s.Next(),
			y:   s.Next(),
			mag: s.Range(0, 5),
		}
	}
	return stars
}

// OrreryModel renders a top-down view of the generated system.
type OrreryModel struct {
	width    int
	height   int
	snapshot sim.Snapshot
	trail    []astro.Vec3 // recent positions of the focused planet

	// Cached per system
	tracks     [][]astro.Vec3
	stars      []backgroundStar
	cachedSeed uint32

	// View state
	focusIdx   int // Index into planets (-1 = star)
	zoomLevel  int
	panX       float64 // Pan offset in display units
	panY       float64
	scaleMode  astro.ScaleMode
	labelMode  LabelMode
	userPanned bool // disables auto-center on zoom
	showStars  bool
	showTrail  bool
}

// NewOrreryModel creates a new orrery view model.
func NewOrreryModel(mode astro.ScaleMode) OrreryModel {
	return OrreryModel{
		focusIdx:  -1,
		zoomLevel: defaultZoom,
		scaleMode: mode,
		labelMode: LabelFocused,
		showStars: true,
		showTrail: true,
	}
}

// scale returns the current zoom scale.
func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot and the focused
// planet's trail.
func (m OrreryModel) UpdateData(snap sim.Snapshot, trail []astro.Vec3) OrreryModel {
	planets := snap.System.Planets
	if m.tracks == nil || snap.System.Seed != m.cachedSeed || len(m.tracks) != len(planets) {
		m.tracks = make([][]astro.Vec3, len(planets))
		for i, p := range planets {
			m.tracks[i] = orbit.Path(p.Elements(), trackSamples)
		}
		m.stars = starfield(snap.System.Seed, starfieldSize)
		m.cachedSeed = snap.System.Seed
		if m.focusIdx >= len(planets) {
			m.focusIdx = -1
			m.panX, m.panY = 0, 0
		}
	}
	m.snapshot = snap
	m.trail = trail
	if !m.userPanned {
		m.centerOnFocused()
	}
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := panStep * m.extent()
		switch msg.String() {
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()

		case "up":
			m.panY -= step
			m.userPanned = true
		case "down":
			m.panY += step
			m.userPanned = true
		case "left":
			m.panX += step
			m.userPanned = true
		case "right":
			m.panX -= step
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0
			m.userPanned = true
		case "f":
			m.userPanned = false
			m.centerOnFocused()

		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				m.recenter()
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				m.recenter()
			}
		case "0":
			m.zoomLevel = defaultZoom
			m.recenter()

		case "z":
			m.scaleMode = m.scaleMode.Next()
			m.recenter()
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		case "t":
			m.showStars = !m.showStars
		case "p":
			m.showTrail = !m.showTrail
		}
	}
	return m, nil
}

// recenter follows the focused body unless the user has panned away.
func (m *OrreryModel) recenter() {
	if !m.userPanned {
		m.centerOnFocused()
	}
}

func (m *OrreryModel) focusNext() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= n {
		m.focusIdx = -1
	}
	m.userPanned = false
	m.centerOnFocused()
}

func (m *OrreryModel) focusPrev() {
	n := len(m.snapshot.Bodies)
	if n == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = n - 1
	}
	m.userPanned = false
	m.centerOnFocused()
}

// SetFocus focuses planet i, or the star for any index out of range.
func (m OrreryModel) SetFocus(i int) OrreryModel {
	if i < 0 || i >= len(m.snapshot.Bodies) {
		i = -1
	}
	m.focusIdx = i
	m.userPanned = false
	m.centerOnFocused()
	return m
}

// FocusIndex returns the focused planet index, or -1 for the star.
func (m OrreryModel) FocusIndex() int {
	return m.focusIdx
}

// FocusedBody returns the focused planet, or nil for the star.
func (m OrreryModel) FocusedBody() *sim.Body {
	if m.focusIdx >= 0 && m.focusIdx < len(m.snapshot.Bodies) {
		return &m.snapshot.Bodies[m.focusIdx]
	}
	return nil
}

// ShowStars returns whether the starfield is visible.
func (m OrreryModel) ShowStars() bool {
	return m.showStars
}

// centerOnFocused pans the view so the focused body sits at screen center.
func (m *OrreryModel) centerOnFocused() {
	b := m.FocusedBody()
	if b == nil {
		m.panX, m.panY = 0, 0
		return
	}
	pt := astro.ProjectTopDown(b.World, m.projection())
	m.panX = -pt.X
	m.panY = -pt.Y
}

func (m OrreryModel) extent() float64 {
	if ext := m.snapshot.System.Extent(); ext > 0 {
		return ext
	}
	return 1
}

func (m OrreryModel) projection() astro.ProjectionConfig {
	cfg := astro.DefaultProjectionConfig(m.extent())
	cfg.Scale = m.scale()
	cfg.Mode = m.scaleMode
	return cfg
}

// View renders the orrery view.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}
	if len(m.snapshot.System.Planets) == 0 {
		return "Generating system..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas(), m.renderHUD())
}

// cell is one character of the canvas with its foreground color.
type cell struct {
	r    rune
	fg   string
	bold bool
}

// canvas is a character grid with a projection fitted to it.
type canvas struct {
	cells [][]cell
	w, h  int

	originX, originY float64
	unit             float64
	proj             astro.ProjectionConfig
}

func (m OrreryModel) newCanvas() *canvas {
	h := m.height - hudLines
	if h < minCanvasLines {
		h = minCanvasLines
	}
	w := m.width

	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x].r = ' '
		}
	}

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	proj := m.projection()
	unit := math.Min(cx/cellAspect, cy) * 0.95 / proj.Extent

	return &canvas{
		cells:   cells,
		w:       w,
		h:       h,
		originX: cx + m.panX*unit*cellAspect,
		originY: cy - m.panY*unit,
		unit:    unit,
		proj:    proj,
	}
}

// toScreen maps a scene position to a cell. ok is false off-canvas.
func (c *canvas) toScreen(v astro.Vec3) (x, y int, ok bool) {
	pt := astro.ProjectTopDown(v, c.proj)
	x = int(math.Round(c.originX + pt.X*c.unit*cellAspect))
	y = int(math.Round(c.originY - pt.Y*c.unit))
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0, 0, false
	}
	return x, y, true
}

func (c *canvas) set(x, y int, r rune, fg string, bold bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, fg: fg, bold: bold}
}

// blank reports whether x,y holds nothing more than background detail.
func (c *canvas) blank(x, y int) bool {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return false
	}
	switch c.cells[y][x].r {
	case ' ', glyphTrack, '˙', '∗':
		return true
	}
	return false
}

// bodyPos tracks a body's screen position for label rendering.
type bodyPos struct {
	x, y      int
	name      string
	isFocused bool
}

// buildCanvas renders the system to a colored string.
func (m OrreryModel) buildCanvas() string {
	c := m.newCanvas()
	desc := m.snapshot.System

	if m.showStars {
		m.drawStarfield(c)
	}

	m.drawTracks(c)

	if m.showTrail && m.focusIdx >= 0 && m.focusIdx < len(desc.Planets) {
		col := desc.Planets[m.focusIdx].Color.Hex()
		for _, v := range m.trail {
			if x, y, ok := c.toScreen(v); ok && c.blank(x, y) {
				c.set(x, y, glyphTrail, col, false)
			}
		}
	}

	var positions []bodyPos
	for i, b := range m.snapshot.Bodies {
		if i >= len(desc.Planets) {
			break
		}
		p := desc.Planets[i]
		x, y, ok := c.toScreen(b.World)
		if !ok {
			continue
		}
		focused := i == m.focusIdx
		if p.HasRing() {
			ringCol := p.Ring.Color.Hex()
			for _, dx := range []int{-1, 1} {
				if c.blank(x+dx, y) {
					c.set(x+dx, y, glyphRing, ringCol, false)
				}
			}
		}
		c.set(x, y, planetGlyph(p.Type, focused), p.Color.Hex(), focused)
		positions = append(positions, bodyPos{x: x, y: y, name: p.Name, isFocused: focused})
	}

	// Star last so it is never hidden.
	if x, y, ok := c.toScreen(astro.Vec3{}); ok {
		c.set(x, y, glyphStar, desc.Star.Color.Hex(), true)
		positions = append(positions, bodyPos{x: x, y: y, name: desc.Star.Name, isFocused: m.focusIdx == -1})
	}

	m.renderLabels(c, positions)

	return c.render()
}

func (m OrreryModel) drawStarfield(c *canvas) {
	for _, s := range m.stars {
		g := starGlyph(s.mag)
		if g == ' ' {
			continue
		}
		x := int(s.x * float64(c.w))
		y := int(s.y * float64(c.h))
		if c.cells[y][x].r == ' ' {
			c.set(x, y, g, "236", false)
		}
	}
}

// starGlyph returns a subtle glyph based on star magnitude.
func starGlyph(mag float64) rune {
	switch {
	case mag <= 0.6:
		return '∗'
	case mag <= 2.0:
		return '·'
	case mag <= 3.2:
		return '˙'
	default:
		return ' '
	}
}

var trackShade = system.HSL{H: 230, S: 0.15, L: 0.12}

func (m OrreryModel) drawTracks(c *canvas) {
	for i, track := range m.tracks {
		p := m.snapshot.System.Planets[i]
		t := 0.7
		if i == m.focusIdx {
			t = 0.25
		}
		col := system.Blend(p.Color, trackShade, t)
		for _, v := range track {
			if x, y, ok := c.toScreen(v); ok && c.cells[y][x].r == ' ' {
				c.set(x, y, glyphTrack, col, false)
			}
		}
	}
}

// planetGlyph picks a symbol by planet type. Focused bodies get the
// filled variant.
func planetGlyph(t system.PlanetType, focused bool) rune {
	switch t {
	case system.PlanetGas:
		if focused {
			return '◉'
		}
		return '○'
	case system.PlanetIce:
		if focused {
			return '◈'
		}
		return '◇'
	default:
		if focused {
			return '●'
		}
		return '•'
	}
}

// renderLabels draws body labels on the canvas based on label mode.
func (m OrreryModel) renderLabels(c *canvas, positions []bodyPos) {
	if m.labelMode == LabelNone {
		return
	}
	for _, pos := range positions {
		if m.labelMode == LabelFocused && !pos.isFocused {
			continue
		}

		text := pos.name
		col := "249"
		if pos.isFocused {
			text = string(glyphFocus) + " " + pos.name
			col = "229"
		}

		// One cell gap after the glyph, two if a ring marker sits there.
		x := pos.x + 2
		if x < c.w && c.cells[pos.y][pos.x+1].r == glyphRing {
			x++
		}

		for i, r := range []rune(text) {
			if !c.blank(x+i, pos.y) {
				break
			}
			c.set(x+i, pos.y, r, col, pos.isFocused)
		}
	}
}

func (c *canvas) render() string {
	var b strings.Builder
	styles := make(map[string]lipgloss.Style)

	for _, row := range c.cells {
		for _, ch := range row {
			if ch.r == ' ' {
				b.WriteRune(' ')
				continue
			}
			key := ch.fg
			if ch.bold {
				key += "!"
			}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(ch.fg)).Bold(ch.bold)
				styles[key] = style
			}
			b.WriteString(style.Render(string(ch.r)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	field := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label + " "))
		b.WriteString(valueStyle.Render(value))
	}

	desc := m.snapshot.System
	if body := m.FocusedBody(); body != nil {
		p := desc.Planets[body.Index]
		el := p.Elements()
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", desc.Designation(body.Index))))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%s, %s)", p.Name, p.Type)))
		field("Distance:", fmt.Sprintf("%.2f", body.Distance))
		field("True anom:", fmt.Sprintf("%.1f°", astro.RadToDeg(body.TrueAnomaly)))
		field("Period:", export.FormatPeriod(el.Period())+"s")
		field("Orbits:", fmt.Sprintf("%d", body.Orbits))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("a "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", el.SemiMajorAxis)))
		field("e", fmt.Sprintf("%.3f", el.Eccentricity))
		field("i", fmt.Sprintf("%.1f°", astro.RadToDeg(el.Inclination)))
		field("Features:", export.Features(p))
	} else {
		star := desc.Star
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c %s", glyphStar, star.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (class %s)", star.Class)))
		field("Radius:", fmt.Sprintf("%.2f", star.Radius))
		field("Light:", fmt.Sprintf("%s ×%.2f", star.LightColor.Hex(), star.LightIntensity))
		field("Planets:", fmt.Sprintf("%d", len(desc.Planets)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Max orbit %.1f · extent %.1f", desc.MaxOrbit, desc.Extent())))
	}
	b.WriteString("\n")

	starsName := "off"
	if m.showStars {
		starsName = "on"
	}
	b.WriteString(dimStyle.Render("Mode:"))
	b.WriteString(valueStyle.Render(m.scaleMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(m.labelMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(starsName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("T:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fs ×%g", m.snapshot.SimTime, m.snapshot.TimeScale)))
	if m.snapshot.Paused {
		b.WriteString("  ")
		b.WriteString(pausedStyle.Render("PAUSED"))
	}

	return b.String()
}
