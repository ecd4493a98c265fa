package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// Common errors
var (
	ErrEntryNotFound = errors.New("collection entry not found")
	ErrNotOwner      = errors.New("entry does not belong to user")
	ErrInvalidSort   = errors.New("invalid sort key")
)

var validSortKeys = map[string]bool{
	SortRecentlyAdded: true,
	SortDateTime:      true,
	SortName:          true,
	SortLocalities:    true,
	SortStoneType:     true,
}

// CollectionService defines the interface for collection business logic
type CollectionService interface {
	SaveGemstone(ctx context.Context, userID, gemstoneID string, req CreateEntryRequest) (*Entry, error)
	List(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error)
	ListWishlist(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error)
	Get(ctx context.Context, userID, entryID string) (*Entry, error)
	Update(ctx context.Context, userID, entryID string, req UpdateEntryRequest) (*Entry, error)
	ToggleWishlist(ctx context.Context, userID, entryID string) (bool, error)
	Delete(ctx context.Context, userID, entryID string) error
	GetStats(ctx context.Context, userID string) (*Stats, error)
}

type collectionService struct {
	repository CollectionRepository
	gems       gem.GemstoneRepository
	logger     *Logger.Logger
}

// NewCollectionService creates a new collection service
func NewCollectionService(repository CollectionRepository, gems gem.GemstoneRepository, logger *Logger.Logger) CollectionService {
	return &collectionService{
		repository: repository,
		gems:       gems,
		logger:     logger,
	}
}

// SaveGemstone implements CollectionService
func (s *collectionService) SaveGemstone(ctx context.Context, userID, gemstoneID string, req CreateEntryRequest) (*Entry, error) {
	stone, err := s.gems.GetByID(ctx, gemstoneID)
	if err != nil {
		if errors.Is(err, gem.ErrGemstoneNotFound) {
			return nil, gem.ErrGemstoneNotFound
		}
		s.logger.Errorf("error loading gemstone %s: %v", gemstoneID, err)
		return nil, fmt.Errorf("failed to load gemstone: %w", err)
	}

	entry := NewEntry(userID, gemstoneID, stone.StoneName, req)
	if err := s.repository.Create(ctx, entry); err != nil {
		s.logger.Errorf("error saving collection entry: %v", err)
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.logger.Infof("collection entry created: %s (user %s, stone %s)", entry.ID, userID, stone.StoneName)
	return entry, nil
}

// List implements CollectionService
func (s *collectionService) List(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error) {
	if err := normalizeQuery(&query); err != nil {
		return nil, 0, err
	}
	return s.repository.List(ctx, userID, query)
}

// ListWishlist implements CollectionService
func (s *collectionService) ListWishlist(ctx context.Context, userID string, query ListQuery) ([]Entry, int64, error) {
	if err := normalizeQuery(&query); err != nil {
		return nil, 0, err
	}
	query.Wishlist = true
	return s.repository.List(ctx, userID, query)
}

// Get implements CollectionService
func (s *collectionService) Get(ctx context.Context, userID, entryID string) (*Entry, error) {
	return s.getOwned(ctx, userID, entryID)
}

// Update implements CollectionService
func (s *collectionService) Update(ctx context.Context, userID, entryID string, req UpdateEntryRequest) (*Entry, error) {
	if _, err := s.getOwned(ctx, userID, entryID); err != nil {
		return nil, err
	}

	updated, err := s.repository.Update(ctx, entryID, req)
	if err != nil {
		s.logger.Errorf("error updating collection entry %s: %v", entryID, err)
		return nil, err
	}

	s.logger.Infof("collection entry updated: %s", entryID)
	return updated, nil
}

// ToggleWishlist implements CollectionService
func (s *collectionService) ToggleWishlist(ctx context.Context, userID, entryID string) (bool, error) {
	if _, err := s.getOwned(ctx, userID, entryID); err != nil {
		return false, err
	}

	wishlisted, err := s.repository.ToggleWishlist(ctx, entryID)
	if err != nil {
		s.logger.Errorf("error toggling wishlist on entry %s: %v", entryID, err)
		return false, err
	}
	return wishlisted, nil
}

// Delete implements CollectionService
func (s *collectionService) Delete(ctx context.Context, userID, entryID string) error {
	if _, err := s.getOwned(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, entryID); err != nil {
		s.logger.Errorf("error deleting collection entry %s: %v", entryID, err)
		return err
	}

	s.logger.Infof("collection entry deleted: %s", entryID)
	return nil
}

// GetStats implements CollectionService
func (s *collectionService) GetStats(ctx context.Context, userID string) (*Stats, error) {
	stats, err := s.repository.GetStats(ctx, userID)
	if err != nil {
		s.logger.Errorf("error computing collection stats for %s: %v", userID, err)
		return nil, err
	}
	return stats, nil
}

func (s *collectionService) getOwned(ctx context.Context, userID, entryID string) (*Entry, error) {
	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrNotOwner
	}
	return entry, nil
}

func normalizeQuery(q *ListQuery) error {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.SortBy == "" {
		q.SortBy = SortRecentlyAdded
	}
	if !validSortKeys[q.SortBy] {
		return ErrInvalidSort
	}
	return nil
}
