package cleanup

import (
	"context"
	"strings"
	"time"

	"vocatest/internal/console"
	"vocatest/internal/vocab"
	"vocatest/pkg/logging"
)

const requestTimeout = 10 * time.Second

// testWordMarker identifies vocabulary entries created by test runs.
const testWordMarker = "test"

// Reconciler removes test-created vocabulary entries from the target
// service. It is strictly best-effort: every failure is reported as a
// warning and the reconciler never fails the invocation that ran it.
type Reconciler struct {
	client *vocab.Client
	out    console.Console
}

// NewReconciler creates a Reconciler using client for API access.
func NewReconciler(client *vocab.Client, out console.Console) *Reconciler {
	return &Reconciler{client: client, out: out}
}

// Run lists the vocabulary, deletes every entry whose word contains the
// test marker (case-insensitive), and reports how many were matched.
// Entries without an id are skipped. Returns the number of matched entries.
func (r *Reconciler) Run(ctx context.Context) int {
	r.out.Info("\n🧹 Cleaning up test environment")

	entries, err := r.client.ListEntries(ctx, requestTimeout)
	if err != nil {
		r.out.Warn("Warning: Could not clean up test data: %v", err)
		return 0
	}

	var matched int
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.Word), testWordMarker) {
			continue
		}
		matched++
		if entry.ID == nil {
			logging.Debug("Cleanup", "Skipping test entry without id: %q", entry.Word)
			continue
		}
		if err := r.client.DeleteEntry(ctx, *entry.ID, requestTimeout); err != nil {
			r.out.Warn("Warning: Could not clean up test data: %v", err)
		}
	}

	if matched > 0 {
		r.out.Success("✓ Cleaned up %d test vocabulary items", matched)
	}
	return matched
}
