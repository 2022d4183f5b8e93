package service

import (
	"context"
	"fmt"

	"github.com/oindrieel/purulia/internal/catalog"
	"github.com/oindrieel/purulia/internal/embedding"
	"github.com/oindrieel/purulia/internal/model"
	"github.com/oindrieel/purulia/internal/vectorindex"
)

// Retriever answers descriptive queries by nearest-neighbour search over
// the embedded catalog corpus.
type Retriever struct {
	provider embedding.Provider
	index    vectorindex.Index
	catalog  *catalog.Catalog
}

// RetrievedLocation is a similarity-search match. Distance ascends with
// dissimilarity, so the first result is the best one.
type RetrievedLocation struct {
	Location model.Location
	Distance float32
}

// NewRetriever creates a retriever over the given collaborators
func NewRetriever(provider embedding.Provider, index vectorindex.Index, cat *catalog.Catalog) *Retriever {
	return &Retriever{provider: provider, index: index, catalog: cat}
}

// BuildIndex embeds the catalog corpus and loads it into the similarity
// index. Must run once at startup before Search is called.
func (r *Retriever) BuildIndex(ctx context.Context) error {
	corpus := r.catalog.TextCorpus()
	vectors := make([][]float32, len(corpus))
	for i, text := range corpus {
		vec, err := r.provider.Embed(text)
		if err != nil {
			return fmt.Errorf("failed to embed corpus entry %d: %w", i, err)
		}
		vectors[i] = vec
	}
	if err := r.index.Build(ctx, vectors); err != nil {
		return fmt.Errorf("failed to build vector index: %w", err)
	}
	return nil
}

// Search embeds the query and returns up to topK catalog locations
// nearest to it, best match first.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]RetrievedLocation, error) {
	queryVec, err := r.provider.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := r.index.Search(ctx, queryVec, topK)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	results := make([]RetrievedLocation, 0, len(hits))
	for _, hit := range hits {
		loc, ok := r.catalog.Location(hit.ID)
		if !ok {
			continue
		}
		results = append(results, RetrievedLocation{Location: loc, Distance: hit.Distance})
	}
	return results, nil
}
