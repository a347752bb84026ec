//go:build linux

package benchmark

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// residentSetMB reads this process's resident set size from
// /proc/self/status (VmRSS, reported in kB).
func residentSetMB() (float64, error) {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0, fmt.Errorf("failed to read process status: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse VmRSS value %q: %w", fields[1], err)
		}
		return kb / 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read process status: %w", err)
	}
	return 0, fmt.Errorf("VmRSS not found in process status")
}
