package cluster

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"spyglass/internal/scope"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:9200")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:9200" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	u, err = parseBaseURL("https://example.com:9200/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotSearchQuery url.Values
	var gotSearchBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/_cluster/health":
			_ = json.NewEncoder(w).Encode(Health{ClusterName: "dev", Status: "yellow"})
		case "/_cat/indices":
			_, _ = io.WriteString(w, `[{"health":"green","index":"logs-1","docs.count":"42"}]`)
		case "/_cat/aliases":
			_, _ = io.WriteString(w, `[{"alias":"logs","index":"logs-1"}]`)
		case "/_data_stream":
			_, _ = io.WriteString(w, `{"data_streams":[{"name":"metrics","status":"GREEN","generation":3,"indices":[{"index_name":".ds-metrics-01"}]}]}`)
		case "/logs-1/_search":
			gotSearchQuery = r.URL.Query()
			_ = json.NewDecoder(r.Body).Decode(&gotSearchBody)
			_, _ = io.WriteString(w, `{"took":7,"timed_out":false,"_shards":{"failed":1},"hits":{"total":{"value":2},"hits":[{"_id":"a","_source":{"k":"v"}}]}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	health, err := c.FetchHealth(ctx)
	if err != nil {
		t.Fatalf("FetchHealth returned error: %v", err)
	}
	if health.ClusterName != "dev" || health.Status != "yellow" {
		t.Fatalf("health = %#v", health)
	}

	indices, err := c.FetchScope(ctx, scope.KindIndices)
	if err != nil {
		t.Fatalf("FetchScope(indices) returned error: %v", err)
	}
	if len(indices) != 1 {
		t.Fatalf("indices = %d entries, want 1", len(indices))
	}
	idx, ok := indices[0].(scope.Index)
	if !ok || idx.Name != "logs-1" || idx.Health != "green" || idx.DocsCount != "42" {
		t.Fatalf("index entry = %#v", indices[0])
	}

	aliases, err := c.FetchScope(ctx, scope.KindAliases)
	if err != nil {
		t.Fatalf("FetchScope(aliases) returned error: %v", err)
	}
	alias, ok := aliases[0].(scope.Alias)
	if !ok || alias.Name != "logs" || alias.Target != "logs-1" {
		t.Fatalf("alias entry = %#v", aliases[0])
	}

	streams, err := c.FetchScope(ctx, scope.KindDataStreams)
	if err != nil {
		t.Fatalf("FetchScope(datastreams) returned error: %v", err)
	}
	ds, ok := streams[0].(scope.DataStream)
	if !ok || ds.Name != "metrics" || ds.Generation != 3 || ds.BackingIndices != 1 {
		t.Fatalf("datastream entry = %#v", streams[0])
	}

	docs, summary, err := c.Search(ctx, "logs-1", 10, 5, "status:active")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotSearchQuery.Get("from") != "10" || gotSearchQuery.Get("size") != "5" {
		t.Fatalf("search query params = %v", gotSearchQuery)
	}
	if len(docs) != 1 || docs[0].ID != "a" {
		t.Fatalf("docs = %#v", docs)
	}
	if summary.Total == nil || *summary.Total != 2 {
		t.Fatalf("summary total = %v", summary.Total)
	}
	if summary.ShardsFailed == nil || *summary.ShardsFailed != 1 {
		t.Fatalf("summary shards failed = %v", summary.ShardsFailed)
	}
	if summary.TookMS == nil || *summary.TookMS != 7 {
		t.Fatalf("summary took = %v", summary.TookMS)
	}
}

func TestSearchBody(t *testing.T) {
	body := searchBody("  ")
	if _, ok := body["query"].(map[string]any)["match_all"]; !ok {
		t.Fatalf("blank query body = %#v, want match_all", body)
	}

	body = searchBody("a b")
	qs, ok := body["query"].(map[string]any)["query_string"].(map[string]any)
	if !ok {
		t.Fatalf("body = %#v, want query_string", body)
	}
	if qs["query"] != "a b" || qs["default_operator"] != "AND" {
		t.Fatalf("query_string = %#v", qs)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/_cluster/health":
			http.Error(w, "nope", http.StatusServiceUnavailable)
		case "/_cat/indices":
			_, _ = io.WriteString(w, `{not json`)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchHealth(ctx)
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) || protoErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("health error = %v, want ProtocolError 503", err)
	}

	_, err = c.FetchScope(ctx, scope.KindIndices)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("indices error = %v, want DecodeError", err)
	}

	// Unreachable port: transport failure.
	dead, err := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = dead.FetchHealth(ctx)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("dead host error = %v, want TransportError", err)
	}
}
