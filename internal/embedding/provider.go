package embedding

// Provider converts free text into a fixed-length numeric vector.
// Implementations must be deterministic for a pinned configuration;
// some require a preparation pass over the corpus before embedding.
type Provider interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float32, error)
}
