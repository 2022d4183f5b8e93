package service

import (
	"errors"
	"testing"

	"github.com/oindrieel/purulia/internal/model"
)

// stubProvider returns canned vectors per text, and the zero vector for
// anything unknown.
type stubProvider struct {
	vectors map[string][]float32
	dim     int
	err     error
	calls   int
}

func (s *stubProvider) Name() string                  { return "stub" }
func (s *stubProvider) Prepare(corpus []string) error { return nil }
func (s *stubProvider) Dimension() int                { return s.dim }

func (s *stubProvider) Embed(text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return make([]float32, s.dim), nil
}

// intentStub maps each canonical intent description to a basis vector,
// plus the given query vectors.
func intentStub(queries map[string][]float32) *stubProvider {
	vectors := map[string][]float32{}
	for i, desc := range IntentDescriptions() {
		vec := make([]float32, 3)
		vec[i] = 1
		vectors[desc] = vec
	}
	for text, vec := range queries {
		vectors[text] = vec
	}
	return &stubProvider{vectors: vectors, dim: 3}
}

func TestIntentClassifier_Classify(t *testing.T) {
	provider := intentStub(map[string][]float32{
		"tell me about the mask dance":  {0.9, 0.2, 0.1},
		"suggest something to do":       {0.1, 0.8, 0.2},
		"plan a weekend trip":           {0.0, 0.3, 0.9},
	})
	classifier, err := NewIntentClassifier(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		query string
		want  model.Intent
	}{
		{"tell me about the mask dance", model.IntentHistoryCulture},
		{"suggest something to do", model.IntentRecommendation},
		{"plan a weekend trip", model.IntentTripPlanner},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			intent, confidence, err := classifier.Classify(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, intent, tt.want)
			}
			if confidence <= 0 {
				t.Errorf("expected positive confidence, got %f", confidence)
			}

			// Same query, same process: result must not change
			again, _, err := classifier.Classify(tt.query)
			if err != nil || again != intent {
				t.Errorf("repeated Classify(%q) = %s (%v), want %s", tt.query, again, err, intent)
			}
		})
	}
}

func TestIntentClassifier_TieBreakFirstIntent(t *testing.T) {
	provider := intentStub(map[string][]float32{
		"ambiguous": {0.5, 0.5, 0.5},
	})
	classifier, err := NewIntentClassifier(provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All three intents score identically; the first declared wins
	intent, _, err := classifier.Classify("ambiguous")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent != model.IntentHistoryCulture {
		t.Errorf("tie broke to %s, want %s", intent, model.IntentHistoryCulture)
	}
}

func TestIntentClassifier_ProviderFailure(t *testing.T) {
	classifier, err := NewIntentClassifier(intentStub(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Provider failure must propagate, never turn into a wrong answer
	failing := &stubProvider{err: errors.New("provider down"), dim: 3}
	classifier.provider = failing
	if _, _, err := classifier.Classify("anything"); err == nil {
		t.Error("expected error from failing provider")
	}
}

func TestIntentClassifier_ConstructionFailure(t *testing.T) {
	failing := &stubProvider{err: errors.New("provider down"), dim: 3}
	if _, err := NewIntentClassifier(failing); err == nil {
		t.Error("expected construction to fail when intents cannot be embedded")
	}
}
