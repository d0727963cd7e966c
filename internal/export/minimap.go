package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/sim"
)

// MiniMapConfig configures the ASCII mini-map.
type MiniMapConfig struct {
	Width  int
	Height int
	Mode   astro.ScaleMode
	Tracks bool // draw orbit tracks
	Legend bool
}

// DefaultMiniMapConfig returns a reasonable default configuration.
func DefaultMiniMapConfig() MiniMapConfig {
	return MiniMapConfig{
		Width:  61,
		Height: 25,
		Mode:   astro.ScaleSqrt,
		Tracks: true,
		Legend: true,
	}
}

const (
	glyphStar  = '✶'
	glyphTrack = '·'
	trackSteps = 120

	// cellAspect is the height/width ratio of a terminal cell.
	cellAspect = 2.0
)

// PlanetGlyph returns the map symbol for the planet at index i: its
// one-based index, wrapping after 9.
func PlanetGlyph(i int) rune {
	return rune('1' + i%9)
}

// WriteMiniMap draws a top-down map of the snapshot inside a box.
func WriteMiniMap(w io.Writer, snap sim.Snapshot, cfg MiniMapConfig) {
	desc := snap.System
	if len(desc.Planets) == 0 {
		fmt.Fprintln(w, "No planets")
		return
	}
	if cfg.Width < 11 {
		cfg.Width = 11
	}
	if cfg.Height < 5 {
		cfg.Height = 5
	}

	grid := make([][]rune, cfg.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cfg.Width))
	}

	proj := astro.DefaultProjectionConfig(desc.Extent())
	proj.Mode = cfg.Mode
	plot := mapPlotter(cfg, proj)

	set := func(v astro.Vec3, r rune) {
		if x, y, ok := plot(v); ok {
			grid[y][x] = r
		}
	}

	if cfg.Tracks {
		for _, p := range desc.Planets {
			for _, v := range orbit.Path(p.Elements(), trackSteps) {
				set(v, glyphTrack)
			}
		}
	}

	set(astro.Vec3{}, glyphStar)

	for _, b := range snap.Bodies {
		set(b.World, PlanetGlyph(b.Index))
	}

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", cfg.Width))
	for _, row := range grid {
		fmt.Fprintf(w, "│%s│\n", string(row))
	}
	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", cfg.Width))

	if !cfg.Legend {
		return
	}
	fmt.Fprintf(w, "%c %s (%s)  scale: %s\n", glyphStar, desc.Star.Name, desc.Star.Class, cfg.Mode)
	for _, b := range snap.Bodies {
		fmt.Fprintf(w, "%c %-12s %-5s r=%6.2f\n", PlanetGlyph(b.Index), FitCell(b.Name, 12), b.Type, b.Distance)
	}
}

// mapPlotter returns a function mapping scene positions to grid cells.
func mapPlotter(cfg MiniMapConfig, proj astro.ProjectionConfig) func(astro.Vec3) (int, int, bool) {
	cx := float64(cfg.Width-1) / 2
	cy := float64(cfg.Height-1) / 2

	// Fit the extent to the tighter of the two half-axes.
	unit := math.Min(cx/cellAspect, cy) / proj.Extent

	return func(v astro.Vec3) (int, int, bool) {
		pt := astro.ProjectTopDown(v, proj)
		x := int(math.Round(cx + pt.X*unit*cellAspect))
		y := int(math.Round(cy - pt.Y*unit))
		if x < 0 || x >= cfg.Width || y < 0 || y >= cfg.Height {
			return 0, 0, false
		}
		return x, y, true
	}
}
