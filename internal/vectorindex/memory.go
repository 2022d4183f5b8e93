package vectorindex

import (
	"context"
	"fmt"
	"sort"
)

// MemoryIndex is a brute-force flat index using squared L2 distance.
// Built once at startup, read-only afterwards, so concurrent searches
// need no locking.
type MemoryIndex struct {
	vectors   [][]float32
	dimension int
}

// NewMemoryIndex creates an empty in-memory index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// Build stores the corpus vectors. All vectors must share one dimension.
func (m *MemoryIndex) Build(_ context.Context, vectors [][]float32) error {
	if len(vectors) == 0 {
		m.vectors = nil
		m.dimension = 0
		return nil
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
	}
	m.vectors = vectors
	m.dimension = dim
	return nil
}

// Search returns up to topK corpus entries nearest to the query vector,
// ascending by squared L2 distance. Equal distances keep corpus order.
func (m *MemoryIndex) Search(_ context.Context, query []float32, topK int) ([]Hit, error) {
	if topK <= 0 || len(m.vectors) == 0 {
		return nil, nil
	}
	if len(query) != m.dimension {
		return nil, fmt.Errorf("query has dimension %d, want %d", len(query), m.dimension)
	}

	hits := make([]Hit, len(m.vectors))
	for i, v := range m.vectors {
		hits[i] = Hit{ID: i, Distance: squaredL2(v, query)}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if topK > len(hits) {
		topK = len(hits)
	}
	return hits[:topK], nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
