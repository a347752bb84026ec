package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"vocatest/internal/benchmark"
	"vocatest/internal/cleanup"
	"vocatest/internal/config"
	"vocatest/internal/console"
	"vocatest/internal/envcheck"
	"vocatest/internal/orchestrator"
	"vocatest/internal/report"
	"vocatest/internal/runner"
	"vocatest/internal/vocab"
	"vocatest/pkg/logging"
)

// errReported marks errors whose message was already rendered on the
// console; Execute exits non-zero without printing them again.
var errReported = errors.New("reported")

func reported(msg string) error {
	return fmt.Errorf("%s: %w", msg, errReported)
}

// runRoot drives one vocatest invocation: environment check, optional
// benchmarks, category execution with reporting, optional cleanup.
func runRoot(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	out := console.New(cmd.OutOrStdout())

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			out.Warn("\nTest execution interrupted by user")
			cancel()
		case <-ctx.Done():
		}
	}()

	if flagVerbose {
		logging.Init(logging.LevelDebug, cmd.ErrOrStderr())
	}

	cfg := config.Load(flagConfig)
	if !cfg.Reporting.ConsoleOutput {
		out = console.NewSilent()
	}

	out.Panel("Vocabulary Learning App Test Suite",
		"Comprehensive testing framework with API, performance, and security testing", true)
	if flagVerbose {
		echoConfig(out, cfg)
	}

	client := vocab.NewClient(cfg.APIBaseURL)
	checker := envcheck.New(cfg, client, out)

	if flagCheckEnv {
		if !checker.Check(ctx).Overall {
			return reported("environment check failed")
		}
		return nil
	}

	gateResult := checker.Check(ctx)
	if !gateResult.Overall {
		out.Error("Environment check failed. Aborting test execution.")
		return reported("environment check failed")
	}

	if flagBenchmark {
		benchmark.NewEngine(cfg, client, out).Run(ctx)
	}

	var runReport *report.RunReport
	if !flagBenchmark || len(flagCategories) > 0 {
		// The gate already ran above; hand its verdict to the orchestrator
		// instead of probing the environment a second time.
		gate := orchestrator.GateFunc(func(context.Context) envcheck.Result {
			return gateResult
		})

		orch := orchestrator.New(cfg, gate,
			runner.NewPytestRunner(cfg, flagVerbose),
			orchestrator.NewConsoleObserver(out), out)

		outcome, err := orch.Run(ctx, flagCategories)
		if err != nil {
			if errors.Is(err, orchestrator.ErrInterrupted) {
				return reported("test execution interrupted")
			}
			return err
		}

		runReport = report.New(cfg, outcome.Results, outcome.EndTime.Sub(outcome.StartTime))
		aggregator := report.NewAggregator(out)
		aggregator.Render(runReport)
		aggregator.Save(runReport, checker.ReportsDir())
	}

	if flagCleanup {
		cleanup.NewReconciler(client, out).Run(ctx)
	}

	if runReport != nil && !runReport.AllPassed() {
		return reported(fmt.Sprintf("%d test categories failed", runReport.Summary.FailedCategories))
	}
	return nil
}

// echoConfig prints the effective configuration in verbose mode.
func echoConfig(out console.Console, cfg *config.RunConfiguration) {
	out.Info("Configuration:")
	out.Info("  API Base URL: %s", cfg.APIBaseURL)
	out.Info("  Frontend URL: %s", cfg.FrontendURL)
	out.Info("  Test Timeout: %.0fs", cfg.TestTimeout)

	enabled := cfg.EnabledCategories()
	sort.Strings(enabled)
	out.Info("  Enabled Categories: %s", strings.Join(enabled, ", "))
}
