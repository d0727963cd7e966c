// Command ls-orrery is a terminal orrery for procedurally generated star systems.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/litescript/ls-orrery/internal/astro"
	"github.com/litescript/ls-orrery/internal/config"
	"github.com/litescript/ls-orrery/internal/export"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/seed"
	"github.com/litescript/ls-orrery/internal/sim"
	"github.com/litescript/ls-orrery/internal/system"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode     bool
	jsonPath        string
	mapMode         bool
	fingerprintMode bool
	eventsMode      bool
	frameCount      int
	framesPerSec    float64
	advance         time.Duration
)

const (
	minFPS = 1
	maxFPS = 120
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Environment values become the flag defaults.
	seedFlag := flag.String("seed", cfg.Seed, "Seed: a number, or any text to hash (empty uses the clock)")
	linkFlag := flag.String("link", "", "Share link or ?seed= query to reproduce a system")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	timeScale := flag.Float64("time-scale", cfg.TimeScale, "Sim seconds per wall second")
	scaleName := flag.String("scale", cfg.ScaleMode, "Radial scale for maps (linear, sqrt, log)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&mapMode, "map", false, "Show ASCII mini map")
	flag.BoolVar(&fingerprintMode, "fingerprint", false, "Print the BLAKE3 fingerprint of the system")
	flag.BoolVar(&eventsMode, "events", false, "Show event log")
	flag.IntVar(&frameCount, "frames", 0, "Stream N propagated frames as JSON lines")
	flag.Float64Var(&framesPerSec, "fps", 20, "Frame rate for --frames")
	flag.DurationVar(&advance, "advance", 0, "Advance the simulation before headless output (e.g. 30s)")
	flag.Parse()

	mode, ok := astro.ParseScaleMode(*scaleName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown scale mode %q\n", *scaleName)
		os.Exit(1)
	}
	if *timeScale <= 0 {
		fmt.Fprintf(os.Stderr, "Error: time scale must be positive, got %v\n", *timeScale)
		os.Exit(1)
	}
	if framesPerSec < minFPS {
		framesPerSec = minFPS
	} else if framesPerSec > maxFPS {
		framesPerSec = maxFPS
	}

	headless := summaryMode || jsonPath != "" || mapMode || fingerprintMode || eventsMode || frameCount > 0

	// Set up logging. The TUI owns the terminal, so it logs to a file or
	// nowhere.
	logger := logging.New(logging.ParseLevel(*logLevel))
	if !headless {
		if cfg.LogFile == "" {
			logger = logging.Discard()
		} else {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			logger.SetOutput(f)
		}
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	in, err := resolveInput(*seedFlag, *linkFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s := seed.Resolve(in, time.Now())
	desc := system.Generate(s)
	logger.Info("generated %s (class %s, %d planets) from %s seed %d",
		desc.Star.Name, desc.Star.Class, len(desc.Planets), in.Kind, s)

	simCfg := sim.DefaultConfig()
	simCfg.TimeScale = *timeScale
	simCfg.TickInterval = cfg.TickInterval
	simCfg.Logger = logger.With("sim")
	mgr := sim.NewManager(desc, simCfg)

	if headless {
		if err := runHeadless(ctx, mgr, mode, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(mgr, ui.Options{
		ShareBase: cfg.ShareURL,
		ScaleMode: mode,
		Logger:    logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Quit cleanly on SIGTERM
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveInput picks the seed source. A link wins over -seed.
func resolveInput(seedText, link string) (seed.Input, error) {
	if link == "" {
		return seed.Parse(seedText), nil
	}
	in, err := seed.FromLink(link)
	if err != nil {
		return seed.None(), fmt.Errorf("read share link: %w", err)
	}
	return in, nil
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, mgr *sim.Manager, mode astro.ScaleMode, logger *logging.Logger) error {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if advance > 0 {
		// Step takes wall seconds; the manager applies the time scale.
		mgr.Step(advance.Seconds())
		logger.Debug("advanced to t=%.2f", mgr.Snapshot().SimTime)
	}
	snap := mgr.Snapshot()

	if fingerprintMode {
		fp, err := export.Fingerprint(snap.System)
		if err != nil {
			return fmt.Errorf("fingerprint: %w", err)
		}
		fmt.Println(fp)
	}

	// Export JSON if requested
	if jsonPath != "" {
		out := export.ExportSnapshot(snap)
		if jsonPath == "-" {
			if err := out.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			if err := writeJSONFile(jsonPath, out); err != nil {
				return err
			}
			logger.Info("wrote snapshot to %s", jsonPath)
		}
	}

	// Print summary table if requested
	if summaryMode {
		export.WriteSummaryTable(os.Stdout, snap)
	}

	if mapMode {
		fmt.Println()
		mapCfg := export.DefaultMiniMapConfig()
		mapCfg.Mode = mode
		if isTTY {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w-2 < mapCfg.Width {
				mapCfg.Width = w - 2
			}
		}
		export.WriteMiniMap(os.Stdout, snap, mapCfg)
	}

	if eventsMode {
		fmt.Println()
		export.WriteEvents(os.Stdout, mgr.RecentEvents(10), 10)
	}

	if frameCount > 0 {
		return streamFrames(ctx, mgr, logger)
	}
	return nil
}

func writeJSONFile(path string, out *export.SnapshotExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()
	if err := out.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	return nil
}

// streamFrames writes one JSON line per frame, paced by a token bucket.
func streamFrames(ctx context.Context, mgr *sim.Manager, logger *logging.Logger) error {
	limiter := rate.NewLimiter(rate.Limit(framesPerSec), 1)
	dt := 1 / framesPerSec

	for i := 0; i < frameCount; i++ {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				logger.Debug("frame stream stopped after %d frames", i)
				return nil
			}
			return fmt.Errorf("pace frames: %w", err)
		}
		if i > 0 {
			mgr.Step(dt)
		}
		if err := export.WriteFrame(os.Stdout, i, mgr.Snapshot()); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}
	return nil
}
