package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUserID returns the authenticated user ID or writes a 401.
func ExtractUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID") // From JWT middleware
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not authenticated"})
		return "", false
	}
	return userID, true
}

// ParsePagination reads offset/limit query params with sane defaults.
func ParsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
