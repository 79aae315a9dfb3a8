package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtbby/PickEm/internal/route"
	"github.com/jtbby/PickEm/internal/schedule"
	"github.com/jtbby/PickEm/internal/telemetry"
	"github.com/jtbby/PickEm/internal/ui"
)

// config holds the parsed CLI configuration.
type config struct {
	schedulePath string
	startRoute   string
	debug        bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.schedulePath, "schedule", "", "YAML schedule file (default: built-in slate)")
	flag.StringVar(&cfg.startRoute, "route", "/", "route to open at, e.g. /team/cowboys")
	flag.BoolVar(&cfg.debug, "debug", false, "write bubbletea debug log to pickem.log")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pickem [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Pickem browses an NFL-style schedule week by week, runs a\n")
		fmt.Fprintf(os.Stderr, "head-to-head vote on any matchup, and looks up teams by name.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.debug {
		f, err := tea.LogToFile("pickem.log", "pickem")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	store, err := loadSchedule(cfg.schedulePath)
	if err != nil {
		return err
	}

	// Bad deep links fall back to home rather than failing startup.
	start, err := route.Parse(cfg.startRoute)
	if err != nil {
		start = route.Home()
	}

	ctx := context.Background()
	rec, err := telemetry.NewRecorder(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer rec.Shutdown(ctx)

	model := ui.NewAppModel(store, rec, start).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func loadSchedule(path string) (*schedule.Store, error) {
	if path == "" {
		return schedule.Default()
	}
	return schedule.Load(path)
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pickem: %v\n", err)
		os.Exit(1)
	}
}
