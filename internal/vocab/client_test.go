package vocab

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRootURLStripsAPISuffix(t *testing.T) {
	c := NewClient("http://localhost:3000/api")
	assert.Equal(t, "http://localhost:3000", c.ServerRootURL())

	c = NewClient("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", c.ServerRootURL())
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	status, err := c.Ping(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestPingUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/api")
	_, err := c.Ping(context.Background(), 500*time.Millisecond)
	assert.Error(t, err)
}

func TestListEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vocabulary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "word": "testword"}, {"word": "orphan"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	entries, err := c.ListEntries(context.Background(), 5*time.Second)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].ID)
	assert.Equal(t, int64(1), *entries[0].ID)
	assert.Equal(t, "testword", entries[0].Word)
	assert.Nil(t, entries[1].ID)
}

func TestListEntriesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	_, err := c.ListEntries(context.Background(), 5*time.Second)
	assert.Error(t, err)
}

func TestDeleteEntry(t *testing.T) {
	var deleted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = append(deleted, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	require.NoError(t, c.DeleteEntry(context.Background(), 42, 5*time.Second))
	assert.Equal(t, []string{"/api/vocabulary/42"}, deleted)
}

func TestDeleteEntryBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	assert.Error(t, c.DeleteEntry(context.Background(), 42, 5*time.Second))
}
