package service

import "github.com/oindrieel/purulia/internal/catalog"

// Recommender returns catalog locations matching extracted interests
type Recommender struct {
	catalog *catalog.Catalog
}

// NewRecommender creates a recommender over the given catalog
func NewRecommender(cat *catalog.Catalog) *Recommender {
	return &Recommender{catalog: cat}
}

// Recommend returns the names of locations matching any of the given
// interest tags. Results are deduplicated first-occurrence-wins over the
// interest order, so the same interest set always yields the same list.
// An empty result means no matches, not failure.
func (r *Recommender) Recommend(interests []string) []string {
	places := []string{}
	seen := make(map[string]struct{})
	for _, interest := range interests {
		for _, name := range r.catalog.FilterByTag(interest) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			places = append(places, name)
		}
	}
	return places
}
