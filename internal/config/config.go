package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Embedding EmbeddingConfig
	Index     IndexConfig
	Retriever RetrieverConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// CatalogConfig holds the location catalog source
type CatalogConfig struct {
	Path string
}

// EmbeddingConfig selects and configures the embedding provider
type EmbeddingConfig struct {
	Provider     string // tfidf or openai
	CacheSize    int    // 0 disables the embedding cache
	CacheTTLSecs int
	OpenAI       OpenAIConfig
}

// OpenAIConfig holds the OpenAI-compatible embeddings endpoint settings
type OpenAIConfig struct {
	APIKey  string
	APIBase string
	Model   string
	Timeout int
}

// IndexConfig selects and configures the similarity index backend
type IndexConfig struct {
	Backend    string // memory or pgvector
	PostgreSQL PostgreSQLConfig
}

// PostgreSQLConfig holds PostgreSQL connection settings for the
// pgvector index backend
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// RetrieverConfig holds history-lookup settings
type RetrieverConfig struct {
	TopK int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "data/locations.json"),
		},
		Embedding: EmbeddingConfig{
			Provider:     getEnv("EMBEDDING_PROVIDER", "tfidf"),
			CacheSize:    getEnvAsInt("EMBEDDING_CACHE_SIZE", 512),
			CacheTTLSecs: getEnvAsInt("EMBEDDING_CACHE_TTL", 600),
			OpenAI: OpenAIConfig{
				APIKey:  getEnv("OPENAI_API_KEY", ""),
				APIBase: getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
				Model:   getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
				Timeout: getEnvAsInt("OPENAI_TIMEOUT", 30),
			},
		},
		Index: IndexConfig{
			Backend: getEnv("VECTOR_BACKEND", "memory"),
			PostgreSQL: PostgreSQLConfig{
				DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
				Host:               getEnv("PG_HOST", "localhost"),
				Port:               getEnvAsInt("PG_PORT", 5432),
				User:               getEnv("PG_USER", "postgres"),
				Password:           getEnv("PG_PASSWORD", ""),
				Database:           getEnv("PG_DATABASE", "purulia"),
				SSLMode:            getEnv("PG_SSLMODE", "disable"),
				MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
				MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			},
		},
		Retriever: RetrieverConfig{
			TopK: getEnvAsInt("RETRIEVER_TOP_K", 1),
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns the PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.Index.PostgreSQL.DSN != "" {
		return c.Index.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Index.PostgreSQL.Host,
		c.Index.PostgreSQL.Port,
		c.Index.PostgreSQL.User,
		c.Index.PostgreSQL.Password,
		c.Index.PostgreSQL.Database,
		c.Index.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
