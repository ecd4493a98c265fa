package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/database/dbtypes"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type OpenAIEmbedder struct {
	client    openai.Client
	logger    *Logger.Logger
	modelName string
}

// NewOpenAIEmbedder creates an embedder backed by the OpenAI embeddings API.
func NewOpenAIEmbedder(cfg config.OpenAIConfig, logger *Logger.Logger) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}

	modelName := cfg.EmbeddingModel
	if modelName == "" {
		modelName = string(openai.EmbeddingModelTextEmbedding3Small)
	}

	return &OpenAIEmbedder{
		client:    openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		logger:    logger,
		modelName: modelName,
	}, nil
}

// Embed implements Embedder interface
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) (dbtypes.Vector, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.EmbeddingModel(e.modelName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get embedding from OpenAI: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding response from OpenAI")
	}

	vec := make(dbtypes.Vector, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vec[i] = float32(v)
	}

	e.logger.Debugf("generated embedding with %d dimensions using %s", len(vec), e.modelName)
	return vec, nil
}

// Model implements Embedder interface
func (e *OpenAIEmbedder) Model() string {
	return e.modelName
}
