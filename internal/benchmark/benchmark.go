package benchmark

import (
	"context"
	"fmt"
	"time"

	"vocatest/internal/config"
	"vocatest/internal/console"
	"vocatest/internal/vocab"
	"vocatest/pkg/logging"
)

// Metric names used as keys in Results.
const (
	MetricAPIResponseTime = "api_response_time"
	MetricMemoryUsage     = "memory_usage"
)

const (
	responseTimeSamples      = 10
	responseTimeProbeTimeout = 10 * time.Second

	memoryLoadRequests = 100
	memoryProbeTimeout = 5 * time.Second
)

// ResponseTimeStats aggregates the latency of successful vocabulary reads.
// All values are in seconds.
type ResponseTimeStats struct {
	Avg     float64 `json:"avg"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Samples int     `json:"samples"`
}

// MemoryStats captures resident set size of this process around a burst of
// API load, in megabytes.
type MemoryStats struct {
	InitialMB  float64 `json:"initial_mb"`
	FinalMB    float64 `json:"final_mb"`
	IncreaseMB float64 `json:"increase_mb"`
}

// Results holds the outcome of a benchmark run. Each metric either has its
// stats entry set or an entry in Errors, never both. A failed metric never
// prevents the other metrics from running.
type Results struct {
	ResponseTime *ResponseTimeStats `json:"api_response_time,omitempty"`
	Memory       *MemoryStats       `json:"memory_usage,omitempty"`
	Errors       map[string]string  `json:"errors,omitempty"`
}

// Engine runs performance benchmarks against the vocabulary API.
type Engine struct {
	cfg    *config.RunConfiguration
	client *vocab.Client
	out    console.Console

	// memorySample reports the current RSS of this process in MB. Swapped
	// out in tests.
	memorySample func() (float64, error)
}

// NewEngine creates a benchmark engine for the configured API.
func NewEngine(cfg *config.RunConfiguration, client *vocab.Client, out console.Console) *Engine {
	return &Engine{
		cfg:          cfg,
		client:       client,
		out:          out,
		memorySample: residentSetMB,
	}
}

// Run executes all benchmarks and renders their results. It never fails the
// overall invocation; individual metric failures are recorded in
// Results.Errors.
func (e *Engine) Run(ctx context.Context) *Results {
	e.out.Warn("\n⚡ Running Performance Benchmarks")

	results := &Results{Errors: make(map[string]string)}

	if stats, err := e.benchmarkResponseTime(ctx); err != nil {
		results.Errors[MetricAPIResponseTime] = err.Error()
	} else {
		results.ResponseTime = stats
	}

	if stats, err := e.benchmarkMemoryUsage(ctx); err != nil {
		results.Errors[MetricMemoryUsage] = err.Error()
	} else {
		results.Memory = stats
	}

	e.render(results)
	return results
}

// benchmarkResponseTime samples the latency of sequential vocabulary reads.
// Only requests answered with 200 contribute samples.
func (e *Engine) benchmarkResponseTime(ctx context.Context) (*ResponseTimeStats, error) {
	e.out.Info("Testing API response times...")

	var times []float64
	for i := 0; i < responseTimeSamples; i++ {
		start := time.Now()
		status, err := e.client.GetVocabulary(ctx, responseTimeProbeTimeout)
		elapsed := time.Since(start).Seconds()
		if err != nil {
			return nil, err
		}
		if status == 200 {
			times = append(times, elapsed)
		}
	}

	if len(times) == 0 {
		return nil, fmt.Errorf("no successful responses out of %d requests", responseTimeSamples)
	}

	stats := &ResponseTimeStats{
		Max:     times[0],
		Min:     times[0],
		Samples: len(times),
	}
	var sum float64
	for _, t := range times {
		sum += t
		if t > stats.Max {
			stats.Max = t
		}
		if t < stats.Min {
			stats.Min = t
		}
	}
	stats.Avg = sum / float64(len(times))
	return stats, nil
}

// benchmarkMemoryUsage samples this process's RSS before and after a burst
// of vocabulary reads. Request failures during the burst are ignored; the
// metric is about memory growth, not availability.
func (e *Engine) benchmarkMemoryUsage(ctx context.Context) (*MemoryStats, error) {
	before, err := e.memorySample()
	if err != nil {
		return nil, err
	}

	for i := 0; i < memoryLoadRequests; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if _, err := e.client.GetVocabulary(ctx, memoryProbeTimeout); err != nil {
			logging.Debug("Benchmark", "Load request %d failed: %v", i, err)
		}
	}

	after, err := e.memorySample()
	if err != nil {
		return nil, err
	}

	return &MemoryStats{
		InitialMB:  before,
		FinalMB:    after,
		IncreaseMB: after - before,
	}, nil
}

func (e *Engine) render(results *Results) {
	e.out.Info("\nBenchmark Results:")

	if results.ResponseTime != nil {
		e.out.Success("✓ %s: avg=%.3fs max=%.3fs min=%.3fs samples=%d",
			MetricAPIResponseTime,
			results.ResponseTime.Avg, results.ResponseTime.Max,
			results.ResponseTime.Min, results.ResponseTime.Samples)
	}
	if results.Memory != nil {
		e.out.Success("✓ %s: initial=%.1fMB final=%.1fMB increase=%.1fMB",
			MetricMemoryUsage,
			results.Memory.InitialMB, results.Memory.FinalMB,
			results.Memory.IncreaseMB)
	}
	for metric, msg := range results.Errors {
		e.out.Error("✗ %s: %s", metric, msg)
	}
}
