package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	collectionService collection.CollectionService
	logger            *Logger.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService collection.CollectionService, logger *Logger.Logger) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		logger:            logger,
	}
}

// SaveGemstone saves a reference stone into the user's collection
// @Summary Save a gemstone to the collection
// @Description Add a reference gemstone to the authenticated user's collection
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gemstoneId path string true "Gemstone ID"
// @Param request body collection.CreateEntryRequest true "Collection entry data"
// @Success 201 {object} CreateEntryResponse "Entry created"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "Gemstone not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/gemstone/{gemstoneId} [post]
func (h *CollectionHandler) SaveGemstone(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var req collection.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	entry, err := h.collectionService.SaveGemstone(c.Request.Context(), userID, c.Param("gemstoneId"), req)
	if err != nil {
		switch {
		case errors.Is(err, gem.ErrGemstoneNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Gemstone not found"})
		default:
			h.logger.Errorf("save gemstone error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateEntryResponse{
		Message: "Gemstone saved to collection",
		Entry:   *entry,
	})
}

// List returns the user's collection
// @Summary List collection entries
// @Description List the authenticated user's collection with pagination and sorting
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key" Enums(recently-added, date-time, name, localities, stone-type)
// @Param sortDesc query bool false "Sort descending"
// @Success 200 {object} ListEntriesResponse "Collection entries"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	h.list(c, false)
}

// ListWishlist returns the user's wishlisted entries
// @Summary List wishlist entries
// @Description List the authenticated user's wishlisted stones
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Param sortBy query string false "Sort key" Enums(recently-added, date-time, name, localities, stone-type)
// @Param sortDesc query bool false "Sort descending"
// @Success 200 {object} ListEntriesResponse "Wishlist entries"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/wishlist [get]
func (h *CollectionHandler) ListWishlist(c *gin.Context) {
	h.list(c, true)
}

func (h *CollectionHandler) list(c *gin.Context, wishlist bool) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var query collection.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	var (
		entries []collection.Entry
		total   int64
		err     error
	)
	if wishlist {
		entries, total, err = h.collectionService.ListWishlist(c.Request.Context(), userID, query)
	} else {
		entries, total, err = h.collectionService.List(c.Request.Context(), userID, query)
	}
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrInvalidSort):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid sort key"})
		default:
			h.logger.Errorf("list collection error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ListEntriesResponse{
		Entries: entries,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: query.Offset(),
			Limit:  query.Limit,
		},
	})
}

// Get returns a single collection entry
// @Summary Get a collection entry
// @Description Get one of the authenticated user's collection entries by ID
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} CollectionEntryResponse "Collection entry"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 403 {object} ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	entry, err := h.collectionService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondEntryError(c, err, "get entry")
		return
	}

	c.JSON(http.StatusOK, CollectionEntryResponse{Entry: *entry})
}

// Update modifies a collection entry
// @Summary Update a collection entry
// @Description Update fields on one of the authenticated user's entries
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body collection.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} UpdateEntryResponse "Entry updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 403 {object} ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/{id} [put]
func (h *CollectionHandler) Update(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var req collection.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	entry, err := h.collectionService.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.respondEntryError(c, err, "update entry")
		return
	}

	c.JSON(http.StatusOK, UpdateEntryResponse{
		Message: "Collection entry updated",
		Entry:   *entry,
	})
}

// ToggleWishlist flips the wishlist flag on an entry
// @Summary Toggle wishlist flag
// @Description Toggle whether an entry is on the user's wishlist
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} WishlistToggleResponse "New wishlist state"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 403 {object} ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/{id}/wishlist [post]
func (h *CollectionHandler) ToggleWishlist(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	wishlisted, err := h.collectionService.ToggleWishlist(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondEntryError(c, err, "toggle wishlist")
		return
	}

	c.JSON(http.StatusOK, WishlistToggleResponse{
		Message:    "Wishlist updated",
		IsWishlist: wishlisted,
	})
}

// Delete soft-deletes a collection entry
// @Summary Delete a collection entry
// @Description Soft-delete one of the authenticated user's entries
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} SuccessResponse "Entry deleted"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 403 {object} ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	if err := h.collectionService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondEntryError(c, err, "delete entry")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Collection entry deleted"})
}

// GetStats returns aggregate statistics for the user's collection
// @Summary Get collection statistics
// @Description Totals, rarity breakdown and wishlist count for the user's collection
// @Tags Collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CollectionStatsResponse "Collection statistics"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /collections/stats [get]
func (h *CollectionHandler) GetStats(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	stats, err := h.collectionService.GetStats(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("collection stats error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, CollectionStatsResponse{Stats: *stats})
}

func (h *CollectionHandler) respondEntryError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, collection.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Collection entry not found"})
	case errors.Is(err, collection.ErrNotOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Entry belongs to another user"})
	default:
		h.logger.Errorf("%s error: %v", op, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
