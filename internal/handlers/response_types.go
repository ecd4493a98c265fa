package handlers

import (
	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"github.com/softmindsol/stone-identifier-be/internal/domains/user"
)

// Response wrapper types for Swagger documentation

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// PaginationInfo represents pagination information
type PaginationInfo struct {
	Total  int64 `json:"total" example:"150"`
	Offset int   `json:"offset" example:"0"`
	Limit  int   `json:"limit" example:"20"`
}

// Auth responses

// RegisterResponse represents the response for user registration
type RegisterResponse struct {
	Message string            `json:"message" example:"User registered successfully"`
	User    user.UserResponse `json:"user"`
}

// LoginResponse represents the response for user login
type LoginResponse struct {
	Message string            `json:"message" example:"Login successful"`
	User    user.UserResponse `json:"user"`
	Tokens  user.AuthTokens   `json:"tokens"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"jwt-refresh-token-here"`
}

// RefreshTokenResponse represents the response for token refresh
type RefreshTokenResponse struct {
	Message string          `json:"message" example:"Token refreshed successfully"`
	Tokens  user.AuthTokens `json:"tokens"`
}

// ProfileResponse represents the response for getting user profile
type ProfileResponse struct {
	User user.UserResponse `json:"user"`
}

// UpdateProfileResponse represents the response for updating user profile
type UpdateProfileResponse struct {
	Message string            `json:"message" example:"Profile updated successfully"`
	User    user.UserResponse `json:"user"`
}

// Gem responses

// GemDetailResponse represents the response for a gemstone detail lookup
type GemDetailResponse struct {
	Gemstone gem.IdentificationResponse `json:"gemstone"`
}

// IdentifyResponse represents the response for an image identification
type IdentifyResponse struct {
	Result gem.IdentificationResponse `json:"result"`
}

// Collection responses

// CollectionEntryResponse represents the response for a single entry
type CollectionEntryResponse struct {
	Entry collection.Entry `json:"entry"`
}

// CreateEntryResponse represents the response for saving a stone
type CreateEntryResponse struct {
	Message string           `json:"message" example:"Gemstone saved to collection"`
	Entry   collection.Entry `json:"entry"`
}

// UpdateEntryResponse represents the response for updating an entry
type UpdateEntryResponse struct {
	Message string           `json:"message" example:"Collection entry updated"`
	Entry   collection.Entry `json:"entry"`
}

// ListEntriesResponse represents the response for listing entries
type ListEntriesResponse struct {
	Entries    []collection.Entry `json:"entries"`
	Pagination PaginationInfo     `json:"pagination"`
}

// WishlistToggleResponse represents the response for a wishlist toggle
type WishlistToggleResponse struct {
	Message    string `json:"message" example:"Wishlist updated"`
	IsWishlist bool   `json:"isWishlist"`
}

// CollectionStatsResponse represents the response for collection stats
type CollectionStatsResponse struct {
	Stats collection.Stats `json:"stats"`
}

// Suggestion responses

// CreateSuggestionResponse represents the response for submitting feedback
type CreateSuggestionResponse struct {
	Message    string                `json:"message" example:"Feedback submitted"`
	Suggestion suggestion.Suggestion `json:"suggestion"`
}

// ListSuggestionsResponse represents the response for listing feedback
type ListSuggestionsResponse struct {
	Suggestions []suggestion.Suggestion `json:"suggestions"`
	Pagination  PaginationInfo          `json:"pagination"`
}

// Embedding responses

// BulkEmbeddingResponse represents the response for a bulk embedding run
type BulkEmbeddingResponse struct {
	Message string          `json:"message" example:"Embedding generation completed"`
	Stats   embedding.Stats `json:"stats"`
}

// UpdateEmbeddingResponse represents the response for a single-stone update
type UpdateEmbeddingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Updated embedding for Amethyst with 768 dimensions"`
}
