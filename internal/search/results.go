/*
Package search implements keyword search across the fleet's tool
installations and per-node overrides.

This package maintains an in-memory Bleve index and answers BM25-ranked
queries from the CLI.
*/
package search

// Result represents a single search result with relevance score.
type Result struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Home  string  `json:"home"`
	Node  string  `json:"node,omitempty"`
	Kind  string  `json:"kind"`
	Score float64 `json:"score"`
}

// Document represents an installation or override as stored in the index.
type Document struct {
	ID   string
	Key  string
	Name string
	Type string
	Home string
	// Node is empty for shared installations.
	Node string
	// Kind is "installation" or "override".
	Kind string
}

// fields returns the document in the shape the index mapping expects.
// Shared installations carry no node field at all.
func (d Document) fields() map[string]interface{} {
	m := map[string]interface{}{
		"key":  d.Key,
		"name": d.Name,
		"type": d.Type,
		"home": d.Home,
		"kind": d.Kind,
	}
	if d.Node != "" {
		m["node"] = d.Node
	}
	return m
}
