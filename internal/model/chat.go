package model

import "encoding/json"

// Intent represents a recognized user goal category
type Intent string

// The closed set of intents the assistant understands
const (
	IntentHistoryCulture Intent = "history_culture"
	IntentRecommendation Intent = "recommendation"
	IntentTripPlanner    Intent = "trip_planner"
)

// Response type discriminators
const (
	ResponseTypeInfo           = "info"
	ResponseTypeRecommendation = "recommendation"
	ResponseTypePlan           = "plan"
	ResponseTypeError          = "error"
)

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID string `json:"user_id"`
}

// ChatResponse is the tagged response payload returned for a chat query.
// Type discriminates which of the variant fields are populated; the
// constructors below are the only intended way to build one.
type ChatResponse struct {
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
	Places    []string  `json:"places"`
	Itinerary Itinerary `json:"itinerary"`
	Error     string    `json:"error"`
	UserID    string    `json:"user_id"`
	RequestID string    `json:"request_id"`
}

// MarshalJSON emits only the fields the active variant populates. Nil
// slices mark "not this variant" and are dropped, while empty non-nil
// slices encode as [] so a no-matches result keeps its field.
func (r ChatResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 8)
	if r.Type != "" {
		out["type"] = r.Type
	}
	if r.Subject != "" {
		out["subject"] = r.Subject
	}
	if r.Text != "" {
		out["text"] = r.Text
	}
	if r.Places != nil {
		out["places"] = r.Places
	}
	if r.Itinerary != nil {
		out["itinerary"] = r.Itinerary
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	if r.UserID != "" {
		out["user_id"] = r.UserID
	}
	if r.RequestID != "" {
		out["request_id"] = r.RequestID
	}
	return json.Marshal(out)
}

// NewInfoResponse builds a history/culture answer for a single location
func NewInfoResponse(subject, text string) *ChatResponse {
	return &ChatResponse{Type: ResponseTypeInfo, Subject: subject, Text: text}
}

// NewRecommendationResponse builds a list of recommended place names
func NewRecommendationResponse(places []string) *ChatResponse {
	if places == nil {
		places = []string{}
	}
	return &ChatResponse{Type: ResponseTypeRecommendation, Places: places}
}

// NewPlanResponse builds a trip plan answer
func NewPlanResponse(itinerary Itinerary) *ChatResponse {
	if itinerary == nil {
		itinerary = Itinerary{}
	}
	return &ChatResponse{Type: ResponseTypePlan, Itinerary: itinerary}
}

// NewErrorResponse builds a business-level "no result" answer
func NewErrorResponse(message string) *ChatResponse {
	return &ChatResponse{Type: ResponseTypeError, Error: message}
}

// Itinerary is an ordered day-by-day schedule, Day 1 first
type Itinerary []DayPlan

// DayPlan assigns a zone and its top locations to one day's slots.
// A slot holds a filler activity when the zone has no location left for it.
type DayPlan struct {
	Day       string `json:"day"`
	Zone      string `json:"zone"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}
