package service

import (
	"fmt"

	"github.com/oindrieel/purulia/internal/embedding"
	"github.com/oindrieel/purulia/internal/model"
)

// intentDefs is the closed intent set with the canonical description
// each intent's embedding is computed from. Declaration order is the
// tie-break order: the first intent wins an exact score tie.
var intentDefs = []struct {
	Intent      model.Intent
	Description string
}{
	{model.IntentHistoryCulture, "Tell me about history, culture, stories, or details of a place."},
	{model.IntentRecommendation, "Suggest places to visit, things to do, or attractions based on interest."},
	{model.IntentTripPlanner, "Plan a trip, itinerary, schedule, or route for multiple days."},
}

// IntentDescriptions returns the canonical intent descriptions in
// declaration order. Callers add these to the corpus used to prepare
// local embedding providers, so queries and intents share one space.
func IntentDescriptions() []string {
	descriptions := make([]string, len(intentDefs))
	for i, def := range intentDefs {
		descriptions[i] = def.Description
	}
	return descriptions
}

// IntentClassifier decides what the user wants by comparing the query
// embedding against the precomputed intent embeddings.
type IntentClassifier struct {
	provider embedding.Provider
	vectors  [][]float32
}

// NewIntentClassifier embeds every intent description once. The provider
// must already be prepared.
func NewIntentClassifier(provider embedding.Provider) (*IntentClassifier, error) {
	vectors := make([][]float32, len(intentDefs))
	for i, def := range intentDefs {
		vec, err := provider.Embed(def.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to embed intent %q: %w", def.Intent, err)
		}
		vectors[i] = vec
	}
	return &IntentClassifier{provider: provider, vectors: vectors}, nil
}

// Classify returns the intent whose embedding has the highest dot
// product with the query embedding, along with that raw score. The
// score is an internal ranking signal, not a probability: it is only
// comparable between intents for the same query.
func (c *IntentClassifier) Classify(query string) (model.Intent, float32, error) {
	queryVec, err := c.provider.Embed(query)
	if err != nil {
		return "", 0, fmt.Errorf("failed to embed query: %w", err)
	}

	best := 0
	bestScore := dot(queryVec, c.vectors[0])
	for i := 1; i < len(c.vectors); i++ {
		if score := dot(queryVec, c.vectors[i]); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return intentDefs[best].Intent, bestScore, nil
}

func dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
