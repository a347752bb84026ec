package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Entry is a single vocabulary item as returned by the listing endpoint.
// Only the fields the orchestration layer needs are decoded; the rest of
// the wire format is opaque. ID is a pointer so entries without an id can
// be told apart from id 0.
type Entry struct {
	ID   *int64 `json:"id"`
	Word string `json:"word"`
}

// Client is a thin HTTP client for the vocabulary service. It is shared by
// the readiness gate, the benchmark engine and the cleanup reconciler so
// they present one transport surface to the target.
type Client struct {
	apiBaseURL string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL
// (e.g. "http://localhost:3000/api").
func NewClient(apiBaseURL string) *Client {
	return &Client{
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
		httpClient: &http.Client{},
	}
}

// VocabularyURL returns the vocabulary collection endpoint.
func (c *Client) VocabularyURL() string {
	return c.apiBaseURL + "/vocabulary"
}

// ServerRootURL returns the server root, with a trailing "/api" path
// removed. The readiness gate probes the root rather than the API prefix.
func (c *Client) ServerRootURL() string {
	return strings.TrimSuffix(c.apiBaseURL, "/api")
}

// Ping issues a GET against the server root and returns the status code.
// The request is bounded by timeout.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) (int, error) {
	return c.get(ctx, c.ServerRootURL(), timeout)
}

// GetVocabulary issues a GET against the vocabulary endpoint and returns
// the status code, discarding the body. Used by the benchmark engine where
// only latency and status matter.
func (c *Client) GetVocabulary(ctx context.Context, timeout time.Duration) (int, error) {
	return c.get(ctx, c.VocabularyURL(), timeout)
}

// ListEntries fetches and decodes the full vocabulary listing.
func (c *Client) ListEntries(ctx context.Context, timeout time.Duration) ([]Entry, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.VocabularyURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing vocabulary: unexpected status %d", resp.StatusCode)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding vocabulary listing: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes a vocabulary entry by id.
func (c *Client) DeleteEntry(ctx context.Context, id int64, timeout time.Duration) error {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%d", c.VocabularyURL(), id)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("deleting entry %d: unexpected status %d", id, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string, timeout time.Duration) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
