// Package sim provides thread-safe simulation state for a generated system.
package sim

import (
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/system"
)

// EventType represents the type of simulation event.
type EventType string

const (
	EventPeriapsis   EventType = "PERIAPSIS"
	EventRegenerated EventType = "REGENERATED"
	EventPaused      EventType = "PAUSED"
	EventResumed     EventType = "RESUMED"
)

// Event is a notable moment in the simulation.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SimTime   float64   `json:"sim_time"`
	Planet    string    `json:"planet,omitempty"`
	Index     int       `json:"index"`
	Orbits    int       `json:"orbits,omitempty"`
	Seed      uint32    `json:"seed,omitempty"`
}

// Body is the propagated view of one planet at the current sim time.
type Body struct {
	Index int
	Name  string
	Type  system.PlanetType

	World astro.Vec3 // oriented scene position
	Plane astro.Vec3 // in-plane position before orientation

	MeanAnomaly      float64
	EccentricAnomaly float64
	TrueAnomaly      float64
	Distance         float64 // focal distance
	SpinAngle        float64
	Orbits           int
}

// Config holds configuration for the simulation manager.
type Config struct {
	TimeScale    float64
	MinTimeScale float64
	MaxTimeScale float64
	MaxEvents    int
	TrailLen     int
	TickInterval time.Duration
	Logger       *logging.Logger
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		TimeScale:    1,
		MinTimeScale: 0.125,
		MaxTimeScale: 256,
		MaxEvents:    50,
		TrailLen:     24,
		TickInterval: 50 * time.Millisecond, // 20 fps
	}
}

// Manager owns the per-planet orbital state and steps it each tick.
type Manager struct {
	mu sync.RWMutex

	desc     system.Description
	elements []orbit.Elements
	states   []orbit.State
	bodies   []Body

	// Per-planet trail of recent world positions (ring buffers)
	trails   [][]astro.Vec3
	trailAt  []int
	maxTrail int

	simTime   float64
	timeScale float64
	minScale  float64
	maxScale  float64
	paused    bool

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	tickInterval time.Duration
	logger       *logging.Logger
}

// NewManager creates a manager for desc with every planet at its initial
// mean anomaly.
func NewManager(desc system.Description, cfg Config) *Manager {
	def := DefaultConfig()
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = def.MaxEvents
	}
	if cfg.MinTimeScale <= 0 {
		cfg.MinTimeScale = def.MinTimeScale
	}
	if cfg.MaxTimeScale < cfg.MinTimeScale {
		cfg.MaxTimeScale = math.Max(def.MaxTimeScale, cfg.MinTimeScale)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	m := &Manager{
		maxTrail:     cfg.TrailLen,
		minScale:     cfg.MinTimeScale,
		maxScale:     cfg.MaxTimeScale,
		maxEvents:    cfg.MaxEvents,
		events:       make([]Event, 0, cfg.MaxEvents),
		tickInterval: cfg.TickInterval,
		logger:       cfg.Logger,
	}
	m.timeScale = m.clampScale(cfg.TimeScale)
	m.load(desc)
	return m
}

// load resets all per-planet state for desc. Caller holds the write lock
// or has exclusive access.
func (m *Manager) load(desc system.Description) {
	n := len(desc.Planets)
	m.desc = desc
	m.elements = make([]orbit.Elements, n)
	m.states = make([]orbit.State, n)
	m.bodies = make([]Body, n)
	m.trails = make([][]astro.Vec3, n)
	m.trailAt = make([]int, n)
	m.simTime = 0

	for i, p := range desc.Planets {
		m.elements[i] = p.Elements()
		m.states[i] = orbit.NewState(p.InitialAnomaly)
		m.trails[i] = make([]astro.Vec3, 0, m.maxTrail)
		m.advanceBody(i, 0)
	}

	m.logger.Debug("loaded seed %d: %s star %s, %d planets",
		desc.Seed, desc.Star.Class, desc.Star.Name, n)
}

// advanceBody propagates planet i by dt sim seconds and refreshes its Body.
// It returns the number of periapsis passages crossed.
func (m *Manager) advanceBody(i int, dt float64) int {
	st := &m.states[i]
	el := m.elements[i]
	before := st.Orbits

	plane := orbit.Advance(st, el, dt)
	world := el.Orientation().Apply(plane)

	p := m.desc.Planets[i]
	m.bodies[i] = Body{
		Index:            i,
		Name:             p.Name,
		Type:             p.Type,
		World:            world,
		Plane:            plane,
		MeanAnomaly:      st.MeanAnomaly,
		EccentricAnomaly: st.EccentricAnomaly,
		TrueAnomaly:      orbit.TrueAnomaly(st.EccentricAnomaly, el.Eccentricity),
		Distance:         orbit.Radius(el.SemiMajorAxis, el.Eccentricity, st.EccentricAnomaly),
		SpinAngle:        st.SpinAngle,
		Orbits:           st.Orbits,
	}
	return st.Orbits - before
}

// Step advances the simulation by dt wall-clock seconds scaled by the time
// scale. It does nothing while paused.
func (m *Manager) Step(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.paused || dt <= 0 {
		return
	}

	simDt := dt * m.timeScale
	m.simTime += simDt
	now := time.Now()

	for i := range m.states {
		if passed := m.advanceBody(i, simDt); passed > 0 {
			m.addEvent(Event{
				Type:      EventPeriapsis,
				Timestamp: now,
				SimTime:   m.simTime,
				Planet:    m.desc.Planets[i].Name,
				Index:     i,
				Orbits:    m.states[i].Orbits,
			})
			m.logger.Debug("%s passed periapsis (orbit %d)", m.desc.Planets[i].Name, m.states[i].Orbits)
		}
	}

	m.recordTrails()
}

// recordTrails appends current positions to each trail.
func (m *Manager) recordTrails() {
	if m.maxTrail <= 0 {
		return
	}
	for i, b := range m.bodies {
		if len(m.trails[i]) < m.maxTrail {
			m.trails[i] = append(m.trails[i], b.World)
			continue
		}
		m.trails[i][m.trailAt[i]] = b.World
		m.trailAt[i] = (m.trailAt[i] + 1) % m.maxTrail
	}
}

// Regenerate swaps in a new system and resets sim time. Pause and time scale
// are kept.
func (m *Manager) Regenerate(desc system.Description) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(desc)
	m.addEvent(Event{
		Type:      EventRegenerated,
		Timestamp: time.Now(),
		Seed:      desc.Seed,
		Index:     -1,
	})
	m.logger.Info("regenerated system from seed %d", desc.Seed)
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	System    system.Description
	Bodies    []Body
	SimTime   float64
	TimeScale float64
	Paused    bool
	Events    []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bodies := make([]Body, len(m.bodies))
	copy(bodies, m.bodies)

	return Snapshot{
		System:    m.desc,
		Bodies:    bodies,
		SimTime:   m.simTime,
		TimeScale: m.timeScale,
		Paused:    m.paused,
		Events:    m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Trail returns planet i's recent world positions, oldest first.
func (m *Manager) Trail(i int) []astro.Vec3 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.trails) {
		return nil
	}
	tr := m.trails[i]
	out := make([]astro.Vec3, len(tr))
	if len(tr) < m.maxTrail {
		copy(out, tr)
		return out
	}
	for k := range out {
		out[k] = tr[(m.trailAt[i]+k)%m.maxTrail]
	}
	return out
}

// Seed returns the current system seed.
func (m *Manager) Seed() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.desc.Seed
}

// Paused reports whether stepping is suspended.
func (m *Manager) Paused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// SetPaused suspends or resumes stepping.
func (m *Manager) SetPaused(p bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.paused == p {
		return
	}
	m.paused = p
	typ := EventResumed
	if p {
		typ = EventPaused
	}
	m.addEvent(Event{Type: typ, Timestamp: time.Now(), SimTime: m.simTime, Index: -1})
}

// TogglePause flips the paused flag and returns the new value.
func (m *Manager) TogglePause() bool {
	p := !m.Paused()
	m.SetPaused(p)
	return p
}

// TimeScale returns the sim seconds advanced per wall second.
func (m *Manager) TimeScale() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timeScale
}

// SetTimeScale sets the time scale, clamped to the configured bounds.
func (m *Manager) SetTimeScale(s float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeScale = m.clampScale(s)
	return m.timeScale
}

// Faster doubles the time scale.
func (m *Manager) Faster() float64 {
	return m.SetTimeScale(m.TimeScale() * 2)
}

// Slower halves the time scale.
func (m *Manager) Slower() float64 {
	return m.SetTimeScale(m.TimeScale() / 2)
}

func (m *Manager) clampScale(s float64) float64 {
	if s <= 0 || math.IsNaN(s) {
		return 1
	}
	return math.Max(m.minScale, math.Min(m.maxScale, s))
}

// TickInterval returns the configured tick interval.
func (m *Manager) TickInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tickInterval
}
