package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// SuggestionHandler handles user feedback HTTP requests
type SuggestionHandler struct {
	suggestionService suggestion.SuggestionService
	logger            *Logger.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService suggestion.SuggestionService, logger *Logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// SubmitStoneFeedback submits feedback about a stone's content
// @Summary Submit stone feedback
// @Description Submit feedback about a specific gemstone's content or identification
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body suggestion.StoneFeedbackRequest true "Feedback data"
// @Success 201 {object} CreateSuggestionResponse "Feedback submitted"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "Gemstone not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions/stone [post]
func (h *SuggestionHandler) SubmitStoneFeedback(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var req suggestion.StoneFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	created, err := h.suggestionService.SubmitStoneFeedback(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, gem.ErrGemstoneNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Gemstone not found"})
		default:
			h.logger.Errorf("stone feedback error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateSuggestionResponse{
		Message:    "Feedback submitted",
		Suggestion: *created,
	})
}

// SubmitAppFeedback submits general app feedback
// @Summary Submit app feedback
// @Description Submit feedback about the app with optional contact email and photos
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body suggestion.AppFeedbackRequest true "Feedback data"
// @Success 201 {object} CreateSuggestionResponse "Feedback submitted"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions/app [post]
func (h *SuggestionHandler) SubmitAppFeedback(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var req suggestion.AppFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	created, err := h.suggestionService.SubmitAppFeedback(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Errorf("app feedback error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, CreateSuggestionResponse{
		Message:    "Feedback submitted",
		Suggestion: *created,
	})
}

// ListMine lists the authenticated user's feedback
// @Summary List own feedback
// @Description List the authenticated user's submitted feedback, newest first
// @Tags Suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Row offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} ListSuggestionsResponse "Feedback list"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /suggestions/mine [get]
func (h *SuggestionHandler) ListMine(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	offset, limit := ParsePagination(c)
	suggestions, total, err := h.suggestionService.ListMine(c.Request.Context(), userID, offset, limit)
	if err != nil {
		h.logger.Errorf("list suggestions error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListSuggestionsResponse{
		Suggestions: suggestions,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}
