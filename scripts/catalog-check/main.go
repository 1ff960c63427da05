package main

import (
	"context"
	"fmt"
	"os"

	"completion-planner/internal/catalog"
	"completion-planner/internal/checklist"
	"completion-planner/pkg/log"
)

// Usage:
//
//	go run scripts/catalog-check/main.go                  # embedded catalogs
//	go run scripts/catalog-check/main.go path/to/game.yaml  # plus extra catalog files
func main() {
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	catalogs, err := catalog.All()
	if err != nil {
		logger.Fatalf(ctx, "Failed to load embedded catalogs: %v", err)
	}
	var targets []*catalog.Catalog
	for _, game := range catalog.Games() {
		targets = append(targets, catalogs[game])
	}

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Fatalf(ctx, "Failed to read %s: %v", path, err)
		}
		c, err := catalog.Parse(data)
		if err != nil {
			logger.Fatalf(ctx, "Invalid catalog %s: %v", path, err)
		}
		targets = append(targets, c)
	}

	failed := 0
	for _, c := range targets {
		if err := check(ctx, logger, c); err != nil {
			logger.Errorf(ctx, "%s: %v", c.Game, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		logger.Errorf(ctx, "%d/%d catalogs failed", failed, len(targets))
		os.Exit(1)
	}
	logger.Infof(ctx, "All %d catalogs passed", len(targets))
}

// check dry-runs a full completion: every requirement must format, a full
// checklist must have no violations, and a reset must restore the initial state.
func check(ctx context.Context, l log.Logger, c *catalog.Catalog) error {
	for _, sec := range c.Sections {
		for _, chk := range sec.Checks {
			if len(chk.Requires) == 0 {
				continue
			}
			if _, err := checklist.FormatViolation(c, chk.Name, chk.Requires); err != nil {
				return fmt.Errorf("%s/%s: %w", sec.Name, chk.Name, err)
			}
		}
	}

	e := checklist.New(c)
	changed, err := e.CheckAll("")
	if err != nil {
		return fmt.Errorf("check all: %w", err)
	}
	if changed != c.Size() {
		return fmt.Errorf("check all changed %d of %d checks", changed, c.Size())
	}

	violations, err := e.ValidateChecks()
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	for secName, checks := range violations {
		for name, req := range checks {
			msg, _ := checklist.FormatViolation(c, name, req)
			l.Warnf(ctx, "%s: %s/%s unmet: %s", c.Game, secName, name, msg)
		}
	}
	if n := violations.Len(); n > 0 {
		return fmt.Errorf("%d violations with every check done", n)
	}

	for _, b := range e.Balances() {
		l.Infof(ctx, "%s: %s collected=%v required=%v available=%v", c.Game, b.Label, b.Collected, b.Required, b.Available)
	}
	for _, sec := range c.Sections {
		l.Infof(ctx, "%s: section %s has %d checks", c.Game, sec.Name, len(sec.Checks))
	}
	l.Infof(ctx, "%s: %d checks, maximum %v%%", c.Game, c.Size(), e.Percent())

	if err := e.Reset(""); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	got, want := e.State(), checklist.NewState(c)
	if !got.Counters.Equal(want.Counters) {
		return fmt.Errorf("reset left counters %v, want %v", got.Counters.Any(), want.Counters.Any())
	}
	if p, err := e.Progress(); err != nil || p.Checked != 0 {
		return fmt.Errorf("reset left %d checks done (err %v)", p.Checked, err)
	}
	return nil
}
