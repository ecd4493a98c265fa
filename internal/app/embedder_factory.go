package app

import (
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/config"
	embedderrt "github.com/softmindsol/stone-identifier-be/internal/runtime/embedding"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// NewEmbedderFromConfig selects the embedding provider named in config.
// Gemini is the default since the vision pipeline already requires its key.
func NewEmbedderFromConfig(cfg *config.Settings, logger *Logger.Logger) (embedderrt.Embedder, error) {
	provider := cfg.Embedding.Provider
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return embedderrt.NewGeminiEmbedder(cfg.Gemini, logger)
	case "openai":
		return embedderrt.NewOpenAIEmbedder(cfg.OpenAI, logger)
	case "ollama":
		return embedderrt.NewOllamaEmbedder(cfg.Ollama, logger)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}
