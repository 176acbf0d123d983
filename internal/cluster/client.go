// Package cluster talks to the search cluster's HTTP API and decodes the
// handful of read-only endpoints the dashboard browses.
package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"spyglass/internal/browse"
	"spyglass/internal/scope"
)

// API is the fetch surface the refresh layer consumes. Implemented by
// *Client and by fakes in tests.
type API interface {
	FetchHealth(ctx context.Context) (Health, error)
	FetchScope(ctx context.Context, kind scope.Kind) ([]scope.Entry, error)
	Search(ctx context.Context, scopeName string, from, size int64, query string) ([]browse.Document, browse.Summary, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client issues requests against a single cluster base URL.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the well-known local address used when nothing is
	// configured.
	DefaultBaseURL = "http://localhost:9200"

	defaultUserAgent = "spyglass/0.1"
	defaultTimeout   = 3 * time.Second
)

// NewClient builds a Client for the given base URL. An empty URL falls back
// to the local default; a zero timeout falls back to the default timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// HasUserinfo reports whether the base URL embeds credentials. The header
// shows this as the auth label; the credentials themselves are only ever
// passed through.
func (c *Client) HasUserinfo() bool {
	return c != nil && c.baseURL.User != nil
}

// FetchHealth retrieves the cluster name and status.
func (c *Client) FetchHealth(ctx context.Context) (Health, error) {
	if c == nil {
		return Health{}, fmt.Errorf("client is nil")
	}
	var payload Health
	if err := c.get(ctx, &url.URL{Path: "/_cluster/health"}, &payload); err != nil {
		return Health{}, err
	}
	return payload, nil
}

// FetchScope lists the browsable entries of one kind.
func (c *Client) FetchScope(ctx context.Context, kind scope.Kind) ([]scope.Entry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	switch kind {
	case scope.KindAliases:
		return c.fetchAliases(ctx)
	case scope.KindDataStreams:
		return c.fetchDataStreams(ctx)
	default:
		return c.fetchIndices(ctx)
	}
}

func (c *Client) fetchIndices(ctx context.Context) ([]scope.Entry, error) {
	var rows []catIndexRow
	rel := &url.URL{Path: "/_cat/indices", RawQuery: "format=json"}
	if err := c.get(ctx, rel, &rows); err != nil {
		return nil, err
	}
	entries := make([]scope.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, scope.Index{
			Name:      row.Index,
			Health:    row.Health,
			DocsCount: row.DocsCount,
		})
	}
	return entries, nil
}

func (c *Client) fetchAliases(ctx context.Context) ([]scope.Entry, error) {
	var rows []catAliasRow
	rel := &url.URL{Path: "/_cat/aliases", RawQuery: "format=json"}
	if err := c.get(ctx, rel, &rows); err != nil {
		return nil, err
	}
	entries := make([]scope.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, scope.Alias{Name: row.Alias, Target: row.Index})
	}
	return entries, nil
}

func (c *Client) fetchDataStreams(ctx context.Context) ([]scope.Entry, error) {
	var payload dataStreamResponse
	if err := c.get(ctx, &url.URL{Path: "/_data_stream"}, &payload); err != nil {
		return nil, err
	}
	entries := make([]scope.Entry, 0, len(payload.DataStreams))
	for _, ds := range payload.DataStreams {
		entries = append(entries, scope.DataStream{
			Name:           ds.Name,
			Status:         ds.Status,
			Generation:     ds.Generation,
			BackingIndices: len(ds.Indices),
		})
	}
	return entries, nil
}

// Search runs a paged document search against one scope entry. A blank
// query matches everything; anything else is passed through as a
// query-string expression with AND as the default operator. Changing either
// mapping changes result semantics, so both are fixed here.
func (c *Client) Search(ctx context.Context, scopeName string, from, size int64, query string) ([]browse.Document, browse.Summary, error) {
	if c == nil {
		return nil, browse.Summary{}, fmt.Errorf("client is nil")
	}
	body := searchBody(query)
	rel := &url.URL{
		Path:     "/" + scopeName + "/_search",
		RawQuery: fmt.Sprintf("from=%d&size=%d", from, size),
	}
	var payload searchResponse
	if err := c.do(ctx, http.MethodPost, rel, body, &payload); err != nil {
		return nil, browse.Summary{}, err
	}

	summary := browse.Summary{
		TookMS:   payload.Took,
		TimedOut: payload.TimedOut,
	}
	if payload.Hits.Total != nil {
		total := payload.Hits.Total.Value
		summary.Total = &total
	}
	if payload.Shards != nil {
		failed := payload.Shards.Failed
		summary.ShardsFailed = &failed
	}

	docs := make([]browse.Document, 0, len(payload.Hits.Hits))
	for _, hit := range payload.Hits.Hits {
		docs = append(docs, browse.Document{ID: hit.ID, Source: hit.Source})
	}
	return docs, summary, nil
}

func searchBody(query string) map[string]any {
	query = strings.TrimSpace(query)
	if query == "" {
		return map[string]any{
			"query": map[string]any{"match_all": map[string]any{}},
		}
	}
	return map[string]any{
		"query": map[string]any{
			"query_string": map[string]any{
				"query":            query,
				"default_operator": "AND",
			},
		},
	}
}

func (c *Client) get(ctx context.Context, rel *url.URL, dest any) error {
	return c.do(ctx, http.MethodGet, rel, nil, dest)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, body any, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	}
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &ProtocolError{Status: resp.StatusCode, Path: rel.Path}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// parseBaseURL normalizes the configured URL: scheme defaulted to http,
// path/query/fragment stripped so endpoint paths resolve cleanly.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse cluster url %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
