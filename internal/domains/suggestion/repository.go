package suggestion

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Feedback types for stone content
const (
	TypeLikeContent             = "like_content"
	TypeErrorInContent          = "error_in_content"
	TypeSuggestions             = "suggestions"
	TypeIncorrectIdentification = "incorrect_identification"
	TypeAppSuggestion           = "app_suggestion"
)

// Status lifecycle
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// Suggestion represents a piece of user feedback (pure domain model)
// @Description User feedback about a stone's content or the app itself
type Suggestion struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     string    `json:"userId"`
	GemstoneID string    `json:"gemstoneId,omitempty"`
	Type       string    `json:"type" example:"error_in_content"`
	Message    string    `json:"message"`
	Email      string    `json:"email,omitempty"`
	Photos     []string  `json:"photos,omitempty"`
	Status     string    `json:"status" example:"pending"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// StoneFeedbackRequest is feedback tied to a specific gemstone
// @Description Request body for submitting feedback about a stone
type StoneFeedbackRequest struct {
	GemstoneID string `json:"gemstoneId" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=like_content error_in_content suggestions incorrect_identification"`
	Message    string `json:"message" binding:"required,min=1,max=2000"`
}

// AppFeedbackRequest is general feedback about the application
// @Description Request body for submitting app feedback
type AppFeedbackRequest struct {
	Message string   `json:"message" binding:"required,min=1,max=2000"`
	Email   string   `json:"email,omitempty" binding:"omitempty,email"`
	Photos  []string `json:"photos,omitempty"`
}

// NewStoneSuggestion builds a pending stone feedback record.
func NewStoneSuggestion(userID string, req StoneFeedbackRequest) *Suggestion {
	now := time.Now()
	return &Suggestion{
		ID:         uuid.New().String(),
		UserID:     userID,
		GemstoneID: req.GemstoneID,
		Type:       req.Type,
		Message:    req.Message,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewAppSuggestion builds a pending app feedback record.
func NewAppSuggestion(userID string, req AppFeedbackRequest) *Suggestion {
	now := time.Now()
	return &Suggestion{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      TypeAppSuggestion,
		Message:   req.Message,
		Email:     req.Email,
		Photos:    req.Photos,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SuggestionRepository defines the interface for suggestion data operations
type SuggestionRepository interface {
	// Create a new suggestion
	Create(ctx context.Context, s *Suggestion) error

	// Get suggestion by ID
	GetByID(ctx context.Context, id string) (*Suggestion, error)

	// List a user's suggestions, newest first
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]Suggestion, int64, error)

	// List all suggestions, newest first
	ListAll(ctx context.Context, offset, limit int) ([]Suggestion, int64, error)

	// List suggestions by status, newest first
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Suggestion, int64, error)

	// Update the status of a suggestion
	UpdateStatus(ctx context.Context, id, status string) (*Suggestion, error)
}
