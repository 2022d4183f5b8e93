package vectorindex

import "context"

// Hit is a single nearest-neighbour match. ID indexes into the same
// catalog ordering the index was built from.
type Hit struct {
	ID       int
	Distance float32
}

// Index is a nearest-neighbour search structure over a fixed corpus of
// vectors. Search results ascend by distance and may contain fewer than
// topK entries when the corpus is smaller.
type Index interface {
	Build(ctx context.Context, vectors [][]float32) error
	Search(ctx context.Context, query []float32, topK int) ([]Hit, error)
}
