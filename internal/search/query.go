package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// searchFields are the stored fields returned with every hit.
var searchFields = []string{"key", "name", "type", "home", "node", "kind"}

// Search performs a BM25 keyword search across the whole fleet.
func (i *Indexer) Search(queryText string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	searchQuery := bleve.NewMatchQuery(queryText)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	searchRequest.Fields = searchFields

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertResults(results), nil
}

// SearchNode performs a BM25 search scoped to a single node's overrides.
func (i *Indexer) SearchNode(queryText, nodeName string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	// Conjunction query: (match query) AND (exact node filter). The node
	// field is keyword-indexed, so the term query matches the full name.
	matchQuery := bleve.NewMatchQuery(queryText)
	nodeQuery := bleve.NewTermQuery(nodeName)
	nodeQuery.SetField("node")

	conjunctionQuery := bleve.NewConjunctionQuery(matchQuery, nodeQuery)

	searchRequest := bleve.NewSearchRequestOptions(conjunctionQuery, limit, 0, false)
	searchRequest.Fields = searchFields

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertResults(results), nil
}

// convertResults converts Bleve search results to our Result format.
func convertResults(results *bleve.SearchResult) []Result {
	out := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		key, _ := hit.Fields["key"].(string)
		name, _ := hit.Fields["name"].(string)
		typeName, _ := hit.Fields["type"].(string)
		home, _ := hit.Fields["home"].(string)
		nodeName, _ := hit.Fields["node"].(string)
		kind, _ := hit.Fields["kind"].(string)

		out = append(out, Result{
			Key:   key,
			Name:  name,
			Type:  typeName,
			Home:  home,
			Node:  nodeName,
			Kind:  kind,
			Score: hit.Score,
		})
	}

	return out
}
