package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/oindrieel/purulia/internal/catalog"
	"github.com/oindrieel/purulia/internal/model"
	"github.com/oindrieel/purulia/internal/vectorindex"
)

func routerFixture() []model.Location {
	return []model.Location{
		{Name: "Charida Village", Description: "The village of the Chhau mask makers.", Tags: []string{"Culture", "Art"}, Zone: "South-West"},
		{Name: "Bamni Falls", Description: "A waterfall on the Ayodhya plateau.", Tags: []string{"Nature", "Waterfall"}, Zone: "South-West"},
		{Name: "Garh Panchakot", Description: "The ruined fort of the Panchakot kings.", Tags: []string{"History", "Ruins"}, Zone: "North-East"},
	}
}

// newTestRouter wires a router over an in-memory index and a stub
// provider whose query vectors steer both classification and retrieval.
func newTestRouter(t *testing.T, locations []model.Location, queries map[string][]float32) *Router {
	t.Helper()

	cat := catalog.New(locations)
	provider := intentStub(queries)
	for i, loc := range locations {
		// Corpus entries embed near the history axis so the first
		// location is always the retrieval winner unless overridden
		vec := []float32{1, 0, float32(i)}
		provider.vectors[fmt.Sprintf("%s: %s", loc.Name, loc.Description)] = vec
	}

	classifier, err := NewIntentClassifier(provider)
	if err != nil {
		t.Fatalf("failed to build classifier: %v", err)
	}

	index := vectorindex.NewMemoryIndex()
	retriever := NewRetriever(provider, index, cat)
	if err := retriever.BuildIndex(context.Background()); err != nil {
		t.Fatalf("failed to build index: %v", err)
	}

	return NewRouter(classifier, retriever, NewRecommender(cat), NewTripPlanner(cat.Locations()), 1)
}

func TestRouter_HistoryCulture(t *testing.T) {
	router := newTestRouter(t, routerFixture(), map[string][]float32{
		"tell me the story of the mask makers": {1, 0, 0},
	})

	response, err := router.ProcessQuery(context.Background(), "tell me the story of the mask makers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Type != model.ResponseTypeInfo {
		t.Fatalf("response type = %q, want info", response.Type)
	}
	if response.Subject != "Charida Village" {
		t.Errorf("subject = %q, want Charida Village", response.Subject)
	}
	if response.Text == "" {
		t.Error("expected a description in the info response")
	}
}

func TestRouter_Recommendation(t *testing.T) {
	router := newTestRouter(t, routerFixture(), map[string][]float32{
		"suggest some waterfall spots": {0, 1, 0},
	})

	response, err := router.ProcessQuery(context.Background(), "suggest some waterfall spots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Type != model.ResponseTypeRecommendation {
		t.Fatalf("response type = %q, want recommendation", response.Type)
	}
	// "waterfall" extracts the Nature interest, which only Bamni carries
	if !reflect.DeepEqual(response.Places, []string{"Bamni Falls"}) {
		t.Errorf("places = %v, want [Bamni Falls]", response.Places)
	}
}

func TestRouter_TripPlanner(t *testing.T) {
	router := newTestRouter(t, routerFixture(), map[string][]float32{
		"plan a 2 day trip around history": {0, 0, 1},
	})

	response, err := router.ProcessQuery(context.Background(), "plan a 2 day trip around history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Type != model.ResponseTypePlan {
		t.Fatalf("response type = %q, want plan", response.Type)
	}
	if len(response.Itinerary) != 2 {
		t.Fatalf("itinerary has %d days, want 2", len(response.Itinerary))
	}
	// South-West holds two locations against North-East's one
	if response.Itinerary[0].Zone != "South-West" {
		t.Errorf("day 1 zone = %q, want South-West", response.Itinerary[0].Zone)
	}
}

func TestRouter_HistoryNoMatches(t *testing.T) {
	router := newTestRouter(t, nil, map[string][]float32{
		"tell me about the old kings": {1, 0, 0},
	})

	// An empty corpus is a valid business outcome, not a failure
	response, err := router.ProcessQuery(context.Background(), "tell me about the old kings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Error != ErrNoHistoryFound {
		t.Errorf("error message = %q, want %q", response.Error, ErrNoHistoryFound)
	}
}

func TestRouter_ProviderFailurePropagates(t *testing.T) {
	router := newTestRouter(t, routerFixture(), nil)
	router.classifier.provider = &stubProvider{err: errors.New("provider down"), dim: 3}

	if _, err := router.ProcessQuery(context.Background(), "anything at all"); err == nil {
		t.Error("expected collaborator failure to propagate as an error")
	}
}

func TestRecommender_OrderIndependentSet(t *testing.T) {
	cat := catalog.New(routerFixture())
	recommender := NewRecommender(cat)

	forward := recommender.Recommend([]string{"Culture", "History"})
	backward := recommender.Recommend([]string{"History", "Culture"})

	if len(forward) != len(backward) {
		t.Fatalf("result sizes differ: %v vs %v", forward, backward)
	}
	seen := make(map[string]struct{}, len(forward))
	for _, name := range forward {
		seen[name] = struct{}{}
	}
	for _, name := range backward {
		if _, ok := seen[name]; !ok {
			t.Errorf("result sets differ: %v vs %v", forward, backward)
		}
	}
}

func TestRecommender_NoMatchesIsEmptyNotNil(t *testing.T) {
	recommender := NewRecommender(catalog.New(routerFixture()))
	places := recommender.Recommend([]string{"Beach"})
	if places == nil || len(places) != 0 {
		t.Errorf("expected empty slice for no matches, got %v", places)
	}
}
