package service

import (
	"context"
	"fmt"
	"log"

	"github.com/oindrieel/purulia/internal/model"
)

// ErrNoHistoryFound is the business-level message returned when a
// history lookup has no hits. It is a normal response, not an error.
const ErrNoHistoryFound = "No relevant history found."

// Router classifies a query and dispatches it to the matching engine
type Router struct {
	classifier  *IntentClassifier
	retriever   *Retriever
	recommender *Recommender
	planner     *TripPlanner
	topK        int
}

// NewRouter creates a query router. topK bounds how many candidates the
// history lookup retrieves; only the best one is answered.
func NewRouter(classifier *IntentClassifier, retriever *Retriever, recommender *Recommender, planner *TripPlanner, topK int) *Router {
	if topK <= 0 {
		topK = 1
	}
	return &Router{
		classifier:  classifier,
		retriever:   retriever,
		recommender: recommender,
		planner:     planner,
		topK:        topK,
	}
}

// ProcessQuery handles one user query end to end. Collaborator failures
// are returned as errors for the caller to wrap; every expected "no
// result" outcome comes back as a normal response.
func (r *Router) ProcessQuery(ctx context.Context, text string) (*model.ChatResponse, error) {
	intent, confidence, err := r.classifier.Classify(text)
	if err != nil {
		return nil, fmt.Errorf("intent classification failed: %w", err)
	}
	log.Printf("🤔 Detected intent: %s (confidence: %.2f)", intent, confidence)

	switch intent {
	case model.IntentHistoryCulture:
		results, err := r.retriever.Search(ctx, text, r.topK)
		if err != nil {
			return nil, fmt.Errorf("history lookup failed: %w", err)
		}
		if len(results) == 0 {
			return model.NewErrorResponse(ErrNoHistoryFound), nil
		}
		best := results[0].Location
		return model.NewInfoResponse(best.Name, best.Description), nil

	case model.IntentRecommendation:
		interests := ExtractInterests(text)
		return model.NewRecommendationResponse(r.recommender.Recommend(interests)), nil

	default: // model.IntentTripPlanner
		days := ExtractDays(text)
		interests := ExtractInterests(text)
		log.Printf("🗺️  Planning %d day(s) for interests: %v", days, interests)
		return model.NewPlanResponse(r.planner.PlanTrip(days, interests)), nil
	}
}
