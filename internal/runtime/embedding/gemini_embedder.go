package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
	"google.golang.org/api/option"
)

type GeminiEmbedder struct {
	client    *genai.Client
	logger    *Logger.Logger
	modelName string
}

// NewGeminiEmbedder creates a new Gemini embedder
func NewGeminiEmbedder(cfg config.GeminiConfig, logger *Logger.Logger) (*GeminiEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.EmbeddingModel
	if modelName == "" {
		modelName = "text-embedding-004"
	}

	return &GeminiEmbedder{
		client:    client,
		logger:    logger,
		modelName: modelName,
	}, nil
}

// Embed implements Embedder interface
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) (dbtypes.Vector, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	em := e.client.EmbeddingModel(e.modelName)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding from Gemini: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding response from Gemini")
	}

	e.logger.Debugf("generated embedding with %d dimensions using %s",
		len(res.Embedding.Values), e.modelName)
	return dbtypes.Vector(res.Embedding.Values), nil
}

// Model implements Embedder interface
func (e *GeminiEmbedder) Model() string {
	return e.modelName
}
