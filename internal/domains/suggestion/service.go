package suggestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// Common errors
var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrInvalidStatus      = errors.New("invalid suggestion status")
)

var validStatuses = map[string]bool{
	StatusPending:  true,
	StatusReviewed: true,
	StatusResolved: true,
	StatusRejected: true,
}

// SuggestionService defines the interface for suggestion business logic
type SuggestionService interface {
	SubmitStoneFeedback(ctx context.Context, userID string, req StoneFeedbackRequest) (*Suggestion, error)
	SubmitAppFeedback(ctx context.Context, userID string, req AppFeedbackRequest) (*Suggestion, error)
	ListMine(ctx context.Context, userID string, offset, limit int) ([]Suggestion, int64, error)

	// Admin operations
	ListAll(ctx context.Context, offset, limit int) ([]Suggestion, int64, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]Suggestion, int64, error)
	SetStatus(ctx context.Context, id, status string) (*Suggestion, error)
}

type suggestionService struct {
	repository SuggestionRepository
	gems       gem.GemstoneRepository
	logger     *Logger.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(repository SuggestionRepository, gems gem.GemstoneRepository, logger *Logger.Logger) SuggestionService {
	return &suggestionService{
		repository: repository,
		gems:       gems,
		logger:     logger,
	}
}

// SubmitStoneFeedback implements SuggestionService
func (s *suggestionService) SubmitStoneFeedback(ctx context.Context, userID string, req StoneFeedbackRequest) (*Suggestion, error) {
	if _, err := s.gems.GetByID(ctx, req.GemstoneID); err != nil {
		if errors.Is(err, gem.ErrGemstoneNotFound) {
			return nil, gem.ErrGemstoneNotFound
		}
		return nil, fmt.Errorf("failed to load gemstone: %w", err)
	}

	suggestion := NewStoneSuggestion(userID, req)
	if err := s.repository.Create(ctx, suggestion); err != nil {
		s.logger.Errorf("error creating stone feedback: %v", err)
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	s.logger.Infof("stone feedback submitted: %s (type %s, stone %s)", suggestion.ID, req.Type, req.GemstoneID)
	return suggestion, nil
}

// SubmitAppFeedback implements SuggestionService
func (s *suggestionService) SubmitAppFeedback(ctx context.Context, userID string, req AppFeedbackRequest) (*Suggestion, error) {
	suggestion := NewAppSuggestion(userID, req)
	if err := s.repository.Create(ctx, suggestion); err != nil {
		s.logger.Errorf("error creating app feedback: %v", err)
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	s.logger.Infof("app feedback submitted: %s", suggestion.ID)
	return suggestion, nil
}

// ListMine implements SuggestionService
func (s *suggestionService) ListMine(ctx context.Context, userID string, offset, limit int) ([]Suggestion, int64, error) {
	return s.repository.ListByUser(ctx, userID, offset, clampLimit(limit))
}

// ListAll implements SuggestionService
func (s *suggestionService) ListAll(ctx context.Context, offset, limit int) ([]Suggestion, int64, error) {
	return s.repository.ListAll(ctx, offset, clampLimit(limit))
}

// ListByStatus implements SuggestionService
func (s *suggestionService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]Suggestion, int64, error) {
	if !validStatuses[status] {
		return nil, 0, ErrInvalidStatus
	}
	return s.repository.ListByStatus(ctx, status, offset, clampLimit(limit))
}

// SetStatus implements SuggestionService
func (s *suggestionService) SetStatus(ctx context.Context, id, status string) (*Suggestion, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Errorf("error updating suggestion %s status: %v", id, err)
		return nil, err
	}

	s.logger.Infof("suggestion %s moved to status %s", id, status)
	return updated, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
