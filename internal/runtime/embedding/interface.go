package embedding

import (
	"context"

	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
)

// Embedder turns text into a fixed-dimension vector. Implementations must be
// safe for concurrent use.
type Embedder interface {
	// Embed creates an embedding for a single text
	Embed(ctx context.Context, text string) (dbtypes.Vector, error)
	// Model returns the provider model tag recorded alongside each vector
	Model() string
}
