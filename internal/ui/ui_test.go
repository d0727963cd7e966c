package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/export"
	"github.com/litescript/ls-orrery/internal/seed"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestModel(t *testing.T, s uint32) (Model, *sim.Manager) {
	t.Helper()
	mgr := sim.NewManager(system.Generate(s), sim.DefaultConfig())
	m := New(mgr, Options{
		ShareBase: "https://orrery.example/",
		ScaleMode: astro.ScaleSqrt,
		Now:       func() time.Time { return fixedNow },
	})
	return m, mgr
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runeKey(string(r)))
	}
	return msgs
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, 42)

	if m.Seed() != 42 {
		t.Errorf("Seed = %d, want 42", m.Seed())
	}
	if m.ShareLink() != "https://orrery.example/?seed=42" {
		t.Errorf("ShareLink = %q", m.ShareLink())
	}
	if want := export.ShortFingerprint(system.Generate(42)); m.fingerprint != want {
		t.Errorf("fingerprint = %q, want %q", m.fingerprint, want)
	}
	if m.ViewMode() != ViewOrrery {
		t.Errorf("initial view = %d, want orrery", m.ViewMode())
	}
}

func TestNewModelWithoutShareBase(t *testing.T) {
	mgr := sim.NewManager(system.Generate(1), sim.DefaultConfig())
	if link := New(mgr, Options{}).ShareLink(); link != "" {
		t.Errorf("ShareLink = %q, want empty", link)
	}
}

func TestViewSwitching(t *testing.T) {
	m, _ := newTestModel(t, 42)

	m = send(t, m, runeKey("2"))
	if m.ViewMode() != ViewPlanets {
		t.Errorf("2 should open planets, got %d", m.ViewMode())
	}
	m = send(t, m, runeKey("1"))
	if m.ViewMode() != ViewOrrery {
		t.Errorf("1 should open orrery, got %d", m.ViewMode())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ViewMode() != ViewPlanets {
		t.Errorf("tab should advance, got %d", m.ViewMode())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ViewMode() != ViewOrrery {
		t.Errorf("tab should wrap, got %d", m.ViewMode())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 42)

	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s returned %T, want tea.QuitMsg", k, cmd())
		}
	}
}

func TestRandomize(t *testing.T) {
	m, mgr := newTestModel(t, 42)
	m = send(t, m, runeKey("r"))

	want := seed.FromTime(fixedNow)
	if m.Seed() != want || mgr.Seed() != want {
		t.Errorf("seed = %d (manager %d), want %d", m.Seed(), mgr.Seed(), want)
	}
	if !strings.Contains(m.ShareLink(), "seed=") || strings.Contains(m.ShareLink(), "seed=42") {
		t.Errorf("share link not updated: %q", m.ShareLink())
	}
}

func TestSeedPromptText(t *testing.T) {
	m, _ := newTestModel(t, 42)

	m = send(t, m, runeKey("/"))
	if !m.prompt.active {
		t.Fatal("/ should open the seed prompt")
	}
	m = send(t, m, typeText("abc")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.prompt.active {
		t.Error("enter should close the prompt")
	}
	if m.Seed() != 440920331 {
		t.Errorf("Seed = %d, want 440920331", m.Seed())
	}
	if !strings.Contains(m.ShareLink(), "seed=440920331") {
		t.Errorf("ShareLink = %q", m.ShareLink())
	}
}

func TestSeedPromptNumber(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("/"))
	m = send(t, m, typeText("17")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Seed() != 17 {
		t.Errorf("Seed = %d, want 17", m.Seed())
	}
}

func TestSeedPromptEditing(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("/"))
	m = send(t, m, typeText("q2x")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if m.prompt.Value() != "q2" {
		t.Errorf("prompt = %q, want q2", m.prompt.Value())
	}
	if m.ViewMode() != ViewOrrery {
		t.Error("keys typed into the prompt must not switch views")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runeKey("z"))
	if m.prompt.Value() != "q2 z" {
		t.Errorf("prompt = %q, want %q", m.prompt.Value(), "q2 z")
	}
}

func TestSeedPromptCancel(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("/"))
	m = send(t, m, typeText("99")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.prompt.active {
		t.Error("esc should close the prompt")
	}
	if m.Seed() != 42 {
		t.Errorf("cancel should keep seed 42, got %d", m.Seed())
	}
}

func TestSeedPromptEmptyUsesClock(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("/"), tea.KeyMsg{Type: tea.KeyEnter})

	if want := seed.FromTime(fixedNow); m.Seed() != want {
		t.Errorf("Seed = %d, want clock seed %d", m.Seed(), want)
	}
}

func TestSeedPromptLengthLimit(t *testing.T) {
	p := seedPrompt{}.open("")
	for i := 0; i < maxSeedInput+10; i++ {
		p, _ = p.update(runeKey("a"))
	}
	if len(p.Value()) != maxSeedInput {
		t.Errorf("prompt length = %d, want %d", len(p.Value()), maxSeedInput)
	}
}

func TestPauseKey(t *testing.T) {
	m, mgr := newTestModel(t, 42)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m = send(t, m, space)
	if !mgr.Paused() || !m.snapshot.Paused {
		t.Error("space should pause")
	}

	before := m.snapshot.SimTime
	m = send(t, m, TickMsg(fixedNow))
	if m.snapshot.SimTime != before {
		t.Error("ticks must not advance a paused simulation")
	}

	m = send(t, m, space)
	if mgr.Paused() {
		t.Error("second space should resume")
	}
}

func TestTimeScaleKeys(t *testing.T) {
	m, mgr := newTestModel(t, 42)

	m = send(t, m, runeKey(">"))
	if mgr.TimeScale() != 2 {
		t.Errorf("TimeScale = %v, want 2", mgr.TimeScale())
	}
	m = send(t, m, runeKey("<"), runeKey("<"))
	if mgr.TimeScale() != 0.5 {
		t.Errorf("TimeScale = %v, want 0.5", mgr.TimeScale())
	}
	if m.snapshot.TimeScale != 0.5 {
		t.Errorf("snapshot TimeScale = %v, want 0.5", m.snapshot.TimeScale)
	}
}

func TestTickAdvancesSimulation(t *testing.T) {
	m, mgr := newTestModel(t, 42)
	interval := mgr.TickInterval()

	// First tick has no reference point and uses the tick interval.
	m = send(t, m, TickMsg(fixedNow))
	if got, want := m.snapshot.SimTime, interval.Seconds(); math.Abs(got-want) > 1e-9 {
		t.Errorf("SimTime = %v, want %v", got, want)
	}

	m = send(t, m, TickMsg(fixedNow.Add(100*time.Millisecond)))
	if got, want := m.snapshot.SimTime, interval.Seconds()+0.1; math.Abs(got-want) > 1e-9 {
		t.Errorf("SimTime = %v, want %v", got, want)
	}

	// A long stall is capped.
	m = send(t, m, TickMsg(fixedNow.Add(time.Minute)))
	if got, want := m.snapshot.SimTime, interval.Seconds()+0.1+maxStep.Seconds(); math.Abs(got-want) > 1e-9 {
		t.Errorf("SimTime = %v, want %v", got, want)
	}
}

func TestOpenPlanetMsg(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("2"), OpenPlanetMsg{Index: 2})

	if m.ViewMode() != ViewOrrery {
		t.Error("OpenPlanetMsg should switch to the orrery")
	}
	if m.orrery.FocusIndex() != 2 {
		t.Errorf("focus = %d, want 2", m.orrery.FocusIndex())
	}
}

func TestFocusedTrail(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = send(t, m, runeKey("k"))
	for i := 1; i <= 5; i++ {
		m = send(t, m, TickMsg(fixedNow.Add(time.Duration(i)*50*time.Millisecond)))
	}
	if len(m.orrery.trail) == 0 {
		t.Error("focused planet should carry a trail")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, 42)
	if m.View() != "Initializing..." {
		t.Error("view before sizing should be a placeholder")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	view := m.View()
	for _, want := range []string{"[1] Orrery", "[2] Planets", "seed 42", "fp " + m.fingerprint, m.ShareLink()} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(t, m, runeKey("/"))
	if !strings.Contains(m.View(), "Seed: ") {
		t.Error("footer should show the open prompt")
	}
}

func TestGradientColor(t *testing.T) {
	start := system.HSL{H: 40, S: 0.9, L: 0.6}
	left := gradientColor(start, 0, 0, 10, 6)
	right := gradientColor(start, 9, 0, 10, 6)
	if left == right {
		t.Error("gradient should vary across the logo")
	}
	if len(left) != 7 || left[0] != '#' {
		t.Errorf("gradientColor = %q, want #RRGGBB", left)
	}
	if gradientColor(system.HSL{}, 0, 0, 10, 6) == "#000000" {
		t.Error("missing star light should fall back to a visible color")
	}
}
