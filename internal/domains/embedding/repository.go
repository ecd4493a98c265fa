package embedding

import (
	"context"
	"errors"
	"time"

	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
)

var ErrEmbeddingNotFound = errors.New("embedding not found")

// StoneEmbedding pairs a gemstone with the vector representation of its
// descriptive text. At most one exists per gemstone.
type StoneEmbedding struct {
	ID              string         `json:"id"`
	StoneID         string         `json:"stoneId"`
	StoneName       string         `json:"stoneName"`
	EmbeddingText   string         `json:"embeddingText"`
	EmbeddingVector dbtypes.Vector `json:"embeddingVector"`
	SourceModel     string         `json:"sourceModel"`
	Timestamp       time.Time      `json:"timestamp"`
}

// Stats is the tally of one bulk generation run.
type Stats struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Errors    int `json:"errors"`
	Skipped   int `json:"skipped"`
}

// UpdateResult reports the outcome of a single-stone embedding refresh.
type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmbeddingStore defines persistence for stone embeddings.
type EmbeddingStore interface {
	// FindByStoneID returns the embedding for a gemstone, or
	// ErrEmbeddingNotFound
	FindByStoneID(ctx context.Context, stoneID string) (*StoneEmbedding, error)

	// Create persists a new embedding record
	Create(ctx context.Context, rec *StoneEmbedding) error

	// Save overwrites an existing embedding record in place
	Save(ctx context.Context, rec *StoneEmbedding) error
}
