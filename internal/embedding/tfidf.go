package embedding

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// TFIDF is a local, deterministic TF-IDF vectorizer. The vocabulary and
// IDF weights are built once from the corpus; afterwards every call to
// Embed with the same text produces the same vector.
type TFIDF struct {
	vocabulary map[string]int
	idf        []float32
	dimension  int
	prepared   bool
}

// NewTFIDF creates an unprepared TF-IDF provider
func NewTFIDF() *TFIDF {
	return &TFIDF{vocabulary: make(map[string]int)}
}

// Name returns the identifier of this provider
func (t *TFIDF) Name() string { return "tfidf" }

// Prepare builds the vocabulary and IDF weights from the corpus.
// The vector space is fixed for the process lifetime after this call.
func (t *TFIDF) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for tfidf prepare")
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return errors.New("no tokens found in corpus")
	}

	// Sorted terms give the vocabulary a stable index order
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	t.vocabulary = make(map[string]int, len(terms))
	t.idf = make([]float32, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		t.vocabulary[term] = i
		// Smoothed IDF so corpus-wide terms keep a non-zero weight
		t.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1.0)
	}
	t.dimension = len(terms)
	t.prepared = true
	return nil
}

// Dimension returns the size of the produced vectors
func (t *TFIDF) Dimension() int { return t.dimension }

// Embed computes the L2-normalized TF-IDF vector for the given text.
// Tokens outside the prepared vocabulary are ignored, so fully unknown
// text embeds to the zero vector.
func (t *TFIDF) Embed(text string) ([]float32, error) {
	if !t.prepared {
		return nil, errors.New("tfidf provider not prepared")
	}

	vec := make([]float32, t.dimension)
	counts := make(map[int]int)
	total := 0
	for _, tok := range tokenize(text) {
		if idx, ok := t.vocabulary[tok]; ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	for idx, count := range counts {
		tf := float32(count) / float32(total)
		vec[idx] = tf * t.idf[idx]
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
