package vectorindex

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PGVectorIndex keeps the corpus vectors in a Postgres table and
// searches them with the pgvector `<->` L2 distance operator. Build
// recreates the table, so the index always mirrors the loaded catalog.
type PGVectorIndex struct {
	db *sqlx.DB
}

// NewPGVectorIndex connects to Postgres and verifies the connection
func NewPGVectorIndex(dsn string, maxConn, maxIdleConn int) (*PGVectorIndex, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PGVectorIndex{db: db}, nil
}

// Close closes the database connection
func (p *PGVectorIndex) Close() error {
	return p.db.Close()
}

// Build recreates the vector table and inserts one row per corpus entry,
// keyed by its catalog index.
func (p *PGVectorIndex) Build(ctx context.Context, vectors [][]float32) error {
	if _, err := p.db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, `DROP TABLE IF EXISTS location_vectors`); err != nil {
		return fmt.Errorf("failed to drop vector table: %w", err)
	}
	if len(vectors) == 0 {
		return nil
	}

	dim := len(vectors[0])
	createStmt := fmt.Sprintf(
		`CREATE TABLE location_vectors (id INTEGER PRIMARY KEY, embedding vector(%d) NOT NULL)`, dim)
	if _, err := p.db.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("failed to create vector table: %w", err)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO location_vectors (id, embedding) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), dim)
		}
		if _, err := stmt.ExecContext(ctx, i, pgvector.NewVector(v)); err != nil {
			return fmt.Errorf("failed to insert vector %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vectors: %w", err)
	}
	return nil
}

// Search returns up to topK rows nearest to the query vector, ascending
// by L2 distance.
func (p *PGVectorIndex) Search(ctx context.Context, query []float32, topK int) ([]Hit, error) {
	if topK <= 0 {
		return nil, nil
	}

	rows := []struct {
		ID       int     `db:"id"`
		Distance float32 `db:"distance"`
	}{}
	searchQuery := `
		SELECT id, embedding <-> $1 AS distance
		FROM location_vectors
		ORDER BY embedding <-> $1, id
		LIMIT $2
	`
	if err := p.db.SelectContext(ctx, &rows, searchQuery, pgvector.NewVector(query), topK); err != nil {
		return nil, fmt.Errorf("failed to search vectors: %w", err)
	}

	hits := make([]Hit, len(rows))
	for i, r := range rows {
		hits[i] = Hit{ID: r.ID, Distance: r.Distance}
	}
	return hits, nil
}
