package cleanup

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"vocatest/internal/console"
	"vocatest/internal/vocab"
)

func newTestReconciler(t *testing.T, handler http.Handler, out console.Console) *Reconciler {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	if out == nil {
		out = console.NewSilent()
	}
	return NewReconciler(vocab.NewClient(srv.URL+"/api"), out)
}

func TestRunDeletesOnlyTestEntries(t *testing.T) {
	var deleted []string
	r := newTestReconciler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			w.Write([]byte(`[
				{"id": 1, "word": "testword"},
				{"id": 2, "word": "hello"},
				{"id": 3, "word": "Testing123"}
			]`))
		case http.MethodDelete:
			deleted = append(deleted, req.URL.Path)
		}
	}), nil)

	matched := r.Run(context.Background())

	assert.Equal(t, 2, matched)
	assert.Equal(t, []string{"/api/vocabulary/1", "/api/vocabulary/3"}, deleted)
}

func TestRunSkipsEntriesWithoutID(t *testing.T) {
	var deletes int
	r := newTestReconciler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"word": "test-orphan"}, {"id": 7, "word": "test-real"}]`))
		case http.MethodDelete:
			deletes++
		}
	}), nil)

	matched := r.Run(context.Background())

	assert.Equal(t, 2, matched)
	assert.Equal(t, 1, deletes)
}

func TestRunListFailureIsWarningOnly(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReconciler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), console.New(&buf))

	matched := r.Run(context.Background())

	assert.Equal(t, 0, matched)
	assert.Contains(t, buf.String(), "Could not clean up test data")
}

func TestRunDeleteFailureContinues(t *testing.T) {
	var deletes int
	var buf bytes.Buffer
	r := newTestReconciler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id": 1, "word": "test-a"}, {"id": 2, "word": "test-b"}]`))
		case http.MethodDelete:
			deletes++
			if req.URL.Path == "/api/vocabulary/1" {
				w.WriteHeader(http.StatusConflict)
			}
		}
	}), console.New(&buf))

	matched := r.Run(context.Background())

	// The failed delete is warned about; the next entry is still attempted.
	assert.Equal(t, 2, matched)
	assert.Equal(t, 2, deletes)
	assert.Contains(t, buf.String(), "Could not clean up test data")
}

func TestRunNoTestEntriesStaysQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := newTestReconciler(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodDelete {
			t.Errorf("unexpected DELETE %s", req.URL.Path)
		}
		w.Write([]byte(`[{"id": 1, "word": "hello"}]`))
	}), console.New(&buf))

	matched := r.Run(context.Background())

	assert.Equal(t, 0, matched)
	assert.NotContains(t, buf.String(), "Cleaned up")
}
