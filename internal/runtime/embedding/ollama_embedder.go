package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// OllamaEmbedder talks to a local ollama instance. Useful in development
// when no hosted API key is available.
type OllamaEmbedder struct {
	client    *api.Client
	logger    *Logger.Logger
	modelName string
}

func NewOllamaEmbedder(cfg config.OllamaConfig, logger *Logger.Logger) (*OllamaEmbedder, error) {
	host := cfg.Host
	if host == "" {
		host = "http://localhost:11434"
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	modelName := cfg.EmbeddingModel
	if modelName == "" {
		modelName = "nomic-embed-text"
	}

	return &OllamaEmbedder{
		client:    api.NewClient(base, http.DefaultClient),
		logger:    logger,
		modelName: modelName,
	}, nil
}

// Embed implements Embedder interface
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) (dbtypes.Vector, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := e.client.Embeddings(ctx, &api.EmbeddingRequest{
		Model:  e.modelName,
		Prompt: text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding from ollama: %w", err)
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding response from ollama")
	}

	vec := make(dbtypes.Vector, len(resp.Embedding))
	for i, v := range resp.Embedding {
		vec[i] = float32(v)
	}

	e.logger.Debugf("generated embedding with %d dimensions using %s", len(vec), e.modelName)
	return vec, nil
}

// Model implements Embedder interface
func (e *OllamaEmbedder) Model() string {
	return e.modelName
}
