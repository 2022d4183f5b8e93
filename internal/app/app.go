package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/oindrieel/purulia/internal/catalog"
	"github.com/oindrieel/purulia/internal/config"
	"github.com/oindrieel/purulia/internal/embedding"
	"github.com/oindrieel/purulia/internal/service"
	"github.com/oindrieel/purulia/internal/vectorindex"
)

// App holds the process-wide, read-only state built once at startup:
// the loaded catalog, the prepared embedding provider, the built
// similarity index and the services on top of them. Safe for concurrent
// requests after Build returns.
type App struct {
	Catalog *catalog.Catalog
	Router  *service.Router

	pg *vectorindex.PGVectorIndex
}

// Build assembles the full query pipeline from configuration
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("✅ Loaded %d locations from %s", cat.Len(), cfg.Catalog.Path)

	provider, err := buildProvider(cfg, cat)
	if err != nil {
		return nil, err
	}
	classifier, err := service.NewIntentClassifier(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to calibrate intent classifier: %w", err)
	}
	log.Printf("✅ Embedding provider ready: %s (dimension %d)", provider.Name(), provider.Dimension())

	a := &App{Catalog: cat}

	var index vectorindex.Index
	switch cfg.Index.Backend {
	case "memory", "":
		index = vectorindex.NewMemoryIndex()
	case "pgvector":
		pg, err := vectorindex.NewPGVectorIndex(
			cfg.GetPostgreSQLDSN(),
			cfg.Index.PostgreSQL.MaxConnections,
			cfg.Index.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to pgvector backend: %w", err)
		}
		a.pg = pg
		index = pg
	default:
		return nil, fmt.Errorf("unknown vector backend: %s", cfg.Index.Backend)
	}

	retriever := service.NewRetriever(provider, index, cat)
	if err := retriever.BuildIndex(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build similarity index: %w", err)
	}
	log.Printf("✅ Vector index built (%s backend)", cfg.Index.Backend)

	recommender := service.NewRecommender(cat)
	planner := service.NewTripPlanner(cat.Locations())
	a.Router = service.NewRouter(classifier, retriever, recommender, planner, cfg.Retriever.TopK)

	return a, nil
}

// Close releases backend connections, if any
func (a *App) Close() error {
	if a.pg != nil {
		return a.pg.Close()
	}
	return nil
}

func buildProvider(cfg *config.Config, cat *catalog.Catalog) (embedding.Provider, error) {
	var provider embedding.Provider
	switch cfg.Embedding.Provider {
	case "tfidf", "":
		provider = embedding.NewTFIDF()
	case "openai":
		client, err := embedding.NewOpenAIClient(embedding.OpenAIConfig{
			APIKey:  cfg.Embedding.OpenAI.APIKey,
			APIBase: cfg.Embedding.OpenAI.APIBase,
			Model:   cfg.Embedding.OpenAI.Model,
			Timeout: time.Duration(cfg.Embedding.OpenAI.Timeout) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI embedding client: %w", err)
		}
		provider = client
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}

	// Local providers learn their vocabulary from the catalog corpus plus
	// the intent descriptions, so queries and intents share one space.
	corpus := append(cat.TextCorpus(), service.IntentDescriptions()...)
	if err := provider.Prepare(corpus); err != nil {
		return nil, fmt.Errorf("failed to prepare embedding provider: %w", err)
	}

	if cfg.Embedding.CacheSize > 0 {
		ttl := time.Duration(cfg.Embedding.CacheTTLSecs) * time.Second
		provider = embedding.Cached(provider, cfg.Embedding.CacheSize, ttl)
	}
	return provider, nil
}
