package orchestrator

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"vocatest/internal/config"
	"vocatest/internal/console"
	"vocatest/internal/envcheck"
	"vocatest/internal/runner"
	"vocatest/pkg/logging"
)

// ErrEnvironmentNotReady is returned when the readiness gate fails; no
// category is executed in that case.
var ErrEnvironmentNotReady = errors.New("environment check failed")

// ErrInterrupted is returned when the run context is canceled mid-run.
var ErrInterrupted = errors.New("test execution interrupted")

// ReadinessGate is the precondition check consulted exactly once per run.
type ReadinessGate interface {
	Check(ctx context.Context) envcheck.Result
}

// GateFunc adapts a function to the ReadinessGate interface.
type GateFunc func(ctx context.Context) envcheck.Result

func (f GateFunc) Check(ctx context.Context) envcheck.Result { return f(ctx) }

// RunOutcome is the frozen result set of a completed run. The orchestrator
// hands it to the report aggregator and never mutates it afterwards.
type RunOutcome struct {
	// Results holds exactly one result per executed category, keyed by
	// category name.
	Results map[string]runner.Result
	// StartTime is when category execution began.
	StartTime time.Time
	// EndTime is when the last category completed.
	EndTime time.Time
}

// Orchestrator sequences category execution: gate first, then every
// selected category strictly in order. Categories exercise shared remote
// state, so they are never run concurrently.
type Orchestrator struct {
	cfg      *config.RunConfiguration
	gate     ReadinessGate
	runner   runner.CategoryRunner
	observer ProgressObserver
	out      console.Console
}

// New creates an Orchestrator.
func New(cfg *config.RunConfiguration, gate ReadinessGate, catRunner runner.CategoryRunner, observer ProgressObserver, out console.Console) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		gate:     gate,
		runner:   catRunner,
		observer: observer,
		out:      out,
	}
}

// SelectCategories resolves the categories for a run: the explicit list if
// given, otherwise every enabled category from the configuration in sorted
// order for determinism.
func (o *Orchestrator) SelectCategories(explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	categories := o.cfg.EnabledCategories()
	sort.Strings(categories)
	return categories
}

// Run executes the selected categories sequentially and returns the frozen
// result set. The readiness gate is consulted exactly once before any
// category; a failing gate aborts with ErrEnvironmentNotReady and zero
// executor invocations. Cancellation of ctx aborts with ErrInterrupted and
// no partial-result guarantee.
func (o *Orchestrator) Run(ctx context.Context, explicit []string) (*RunOutcome, error) {
	if gateResult := o.gate.Check(ctx); !gateResult.Overall {
		return nil, ErrEnvironmentNotReady
	}

	categories := o.SelectCategories(explicit)
	outcome := &RunOutcome{
		Results:   make(map[string]runner.Result, len(categories)),
		StartTime: time.Now(),
	}

	o.out.Success("\n🚀 Starting Test Execution")
	o.out.Info("Test Categories: %s", strings.Join(categories, ", "))

	o.observer.RunStart(categories)
	defer o.observer.RunDone()

	for i, category := range categories {
		if ctx.Err() != nil {
			logging.Warn("Orchestrator", "Run interrupted before category %s", category)
			return nil, ErrInterrupted
		}

		o.observer.CategoryStart(category)
		result := o.runner.Run(ctx, category)
		outcome.Results[category] = result
		o.observer.CategoryDone(category, result, i+1, len(categories))

		logging.Debug("Orchestrator", "Category %s finished: exit=%d duration=%v",
			category, result.ExitCode, result.Duration)
	}

	if ctx.Err() != nil {
		return nil, ErrInterrupted
	}

	outcome.EndTime = time.Now()
	return outcome, nil
}
