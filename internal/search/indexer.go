package search

import (
	"fmt"
	"log"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/hvmk/tool-locator/internal/node"
	"github.com/hvmk/tool-locator/internal/registry"
	"github.com/hvmk/tool-locator/internal/tools"
)

// Indexer manages the search index over installations and overrides.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates a new search indexer with in-memory Bleve index.
func NewIndexer() (*Indexer, error) {
	indexMapping := buildIndexMapping()

	// In-memory index: the fleet is small and rebuilt from config on
	// every invocation
	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{
		bleveIndex: index,
	}, nil
}

// buildIndexMapping creates the Bleve index mapping.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	for _, field := range []string{"key", "name", "type", "home"} {
		docMapping.AddFieldMappingsAt(field, bleve.NewTextFieldMapping())
	}

	// node and kind are identifiers, not prose: index them verbatim so a
	// term filter on "agent-1" matches exactly that node and no other.
	for _, field := range []string{"node", "kind"} {
		fieldMapping := bleve.NewTextFieldMapping()
		fieldMapping.Analyzer = keyword.Name
		docMapping.AddFieldMappingsAt(field, fieldMapping)
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

// IndexFleet indexes the shared installations plus every node's overrides.
func (i *Indexer) IndexFleet(installs []tools.Installation, fleet map[string]*node.Node, reg *registry.Registry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, inst := range installs {
		doc := Document{
			ID:   "installation/" + inst.Key(),
			Key:  inst.Key(),
			Name: inst.Name(),
			Type: inst.Descriptor().DisplayName,
			Home: inst.Home(),
			Kind: "installation",
		}
		if err := batch.Index(doc.ID, doc.fields()); err != nil {
			log.Printf("Warning: failed to index installation %s: %v", inst.Key(), err)
		}
	}

	for name, n := range fleet {
		overrides := n.ToolOverrides()
		if overrides == nil {
			continue
		}
		for _, loc := range overrides.Locations() {
			typeName := loc.TypeID()
			if resolved, err := loc.ResolveType(reg); err == nil {
				typeName = resolved.Type().DisplayName
			}
			doc := Document{
				ID:   fmt.Sprintf("override/%s/%s", name, loc.Key()),
				Key:  loc.Key(),
				Name: loc.Name(),
				Type: typeName,
				Home: loc.Home(),
				Node: name,
				Kind: "override",
			}
			if err := batch.Index(doc.ID, doc.fields()); err != nil {
				log.Printf("Warning: failed to index override %s: %v", doc.ID, err)
			}
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index fleet: %w", err)
	}

	return nil
}

// Count returns the total number of indexed documents.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
