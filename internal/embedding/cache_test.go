package embedding

import (
	"errors"
	"testing"
	"time"
)

type countingProvider struct {
	calls int
	err   error
}

func (c *countingProvider) Name() string                  { return "counting" }
func (c *countingProvider) Prepare(corpus []string) error { return nil }
func (c *countingProvider) Dimension() int                { return 2 }

func (c *countingProvider) Embed(text string) ([]float32, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []float32{float32(len(text)), 1}, nil
}

func TestCached_DeduplicatesEmbeds(t *testing.T) {
	inner := &countingProvider{}
	provider := Cached(inner, 8, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := provider.Embed("same text"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner provider called %d times, want 1", inner.calls)
	}

	if _, err := provider.Embed("different text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner provider called %d times, want 2", inner.calls)
	}
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("down")}
	provider := Cached(inner, 8, time.Minute)

	if _, err := provider.Embed("text"); err == nil {
		t.Fatal("expected an error")
	}
	inner.err = nil
	if _, err := provider.Embed("text"); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner provider called %d times, want 2", inner.calls)
	}
}
