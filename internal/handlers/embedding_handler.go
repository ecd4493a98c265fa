package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// EmbeddingHandler handles embedding generation HTTP requests
type EmbeddingHandler struct {
	embeddingService embedding.EmbeddingService
	logger           *Logger.Logger
}

// NewEmbeddingHandler creates a new embedding handler
func NewEmbeddingHandler(embeddingService embedding.EmbeddingService, logger *Logger.Logger) *EmbeddingHandler {
	return &EmbeddingHandler{
		embeddingService: embeddingService,
		logger:           logger,
	}
}

// GenerateAll runs the bulk embedding pipeline
// @Summary Generate embeddings for all stones
// @Description Walk the gemstone table and create embeddings for stones that have none. Only one run executes at a time; a concurrent call returns zero stats.
// @Tags Embeddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BulkEmbeddingResponse "Run statistics"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /ai-stone/embeddings/generate [post]
func (h *EmbeddingHandler) GenerateAll(c *gin.Context) {
	stats, err := h.embeddingService.RunBulkGeneration(c.Request.Context())
	if err != nil {
		h.logger.Errorf("bulk embedding error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Embedding generation failed",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, BulkEmbeddingResponse{
		Message: "Embedding generation completed",
		Stats:   stats,
	})
}

// UpdateOne regenerates the embedding for a single stone
// @Summary Update a single stone's embedding
// @Description Rebuild the searchable text and embedding for one gemstone, creating the record if it does not exist
// @Tags Embeddings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gemstone ID"
// @Success 200 {object} UpdateEmbeddingResponse "Update result"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Router /ai-stone/embeddings/gems/{id} [post]
func (h *EmbeddingHandler) UpdateOne(c *gin.Context) {
	result := h.embeddingService.UpdateEmbedding(c.Request.Context(), c.Param("id"))

	c.JSON(http.StatusOK, UpdateEmbeddingResponse{
		Success: result.Success,
		Message: result.Message,
	})
}
