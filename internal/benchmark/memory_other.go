//go:build !linux

package benchmark

import (
	"runtime"
)

// residentSetMB approximates resident memory from the Go runtime's own
// accounting on platforms without a /proc filesystem.
func residentSetMB() (float64, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return float64(stats.Sys) / 1024 / 1024, nil
}
