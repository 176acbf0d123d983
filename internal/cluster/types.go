package cluster

// Health mirrors the interesting part of /_cluster/health.
type Health struct {
	ClusterName string `json:"cluster_name"`
	Status      string `json:"status"`
}

// catIndexRow mirrors one element of /_cat/indices?format=json.
type catIndexRow struct {
	Health    string `json:"health"`
	Index     string `json:"index"`
	DocsCount string `json:"docs.count"`
}

// catAliasRow mirrors one element of /_cat/aliases?format=json.
type catAliasRow struct {
	Alias string `json:"alias"`
	Index string `json:"index"`
}

// dataStreamResponse mirrors /_data_stream.
type dataStreamResponse struct {
	DataStreams []dataStreamEntry `json:"data_streams"`
}

type dataStreamEntry struct {
	Name       string            `json:"name"`
	Status     string            `json:"status"`
	Generation int64             `json:"generation"`
	Indices    []dataStreamIndex `json:"indices"`
}

type dataStreamIndex struct {
	IndexName string `json:"index_name"`
}

// searchResponse mirrors the subset of a search reply the browser uses.
type searchResponse struct {
	Took     *int64        `json:"took"`
	TimedOut *bool         `json:"timed_out"`
	Shards   *searchShards `json:"_shards"`
	Hits     searchHits    `json:"hits"`
}

type searchShards struct {
	Failed int64 `json:"failed"`
}

type searchHits struct {
	Total *searchTotal `json:"total"`
	Hits  []searchHit  `json:"hits"`
}

type searchTotal struct {
	Value int64 `json:"value"`
}

type searchHit struct {
	ID     string `json:"_id"`
	Source any    `json:"_source"`
}
