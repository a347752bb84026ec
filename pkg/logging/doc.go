// Package logging provides structured logging for vocatest with unified
// log handling and level filtering.
//
// This package wraps Go's standard slog package. All entries carry a
// subsystem identifier so output can be filtered by component:
//
//   - **Config**: configuration loading and defaulting
//   - **EnvCheck**: environment readiness checks
//   - **Runner**: category subprocess execution
//   - **Orchestrator**: run sequencing and progress
//   - **Benchmark**: latency and memory sampling
//   - **Report**: summary aggregation and persistence
//   - **Cleanup**: residual test-data reconciliation
//
// # Usage
//
//	import "vocatest/pkg/logging"
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Config", "Loaded configuration from %s", path)
//	logging.Error("Report", err, "Failed to persist report")
//
// User-facing output (tables, summaries, progress) does not go through
// this package; it goes through the console sink in internal/console so
// components stay testable without global state.
package logging
