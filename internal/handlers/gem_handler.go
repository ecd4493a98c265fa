package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/internal/runtime/vision"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// maxImageSize caps uploaded identification photos at 10MB.
const maxImageSize = 10 << 20

// GemHandler handles gemstone reference and identification requests
type GemHandler struct {
	gemService gem.GemService
	logger     *Logger.Logger
}

// NewGemHandler creates a new gem handler
func NewGemHandler(gemService gem.GemService, logger *Logger.Logger) *GemHandler {
	return &GemHandler{
		gemService: gemService,
		logger:     logger,
	}
}

// GetGemstone returns the full detail document for a stone
// @Summary Get gemstone details
// @Description Get the full reference entry for a gemstone by ID
// @Tags Gemstones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gemstone ID"
// @Success 200 {object} GemDetailResponse "Gemstone details"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "Gemstone not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /gems/{id} [get]
func (h *GemHandler) GetGemstone(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.gemService.GetDetails(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, gem.ErrGemstoneNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Gemstone not found"})
		default:
			h.logger.Errorf("get gemstone error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, GemDetailResponse{Gemstone: *detail})
}

// Identify runs AI identification on an uploaded photo
// @Summary Identify a gemstone from a photo
// @Description Upload a stone photo and get the most likely identification with alternatives
// @Tags Gemstones
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Stone photo (jpeg, png, webp, heic; max 10MB)"
// @Success 200 {object} IdentifyResponse "Identification result"
// @Failure 400 {object} ErrorResponse "Missing or unsupported image"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 413 {object} ErrorResponse "Image too large"
// @Failure 502 {object} ErrorResponse "Identification provider error"
// @Router /gems/identify [post]
func (h *GemHandler) Identify(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Image file required",
			Details: err.Error(),
		})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Image exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorf("failed to open uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		h.logger.Errorf("failed to read uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}
	if len(image) > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Image exceeds 10MB limit"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	result, err := h.gemService.IdentifyFromImage(c.Request.Context(), image, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrUnsupportedImage):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported image type"})
		default:
			h.logger.Errorf("identification error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Identification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, IdentifyResponse{Result: *result})
}
