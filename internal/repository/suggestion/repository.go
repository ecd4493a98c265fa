package suggestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"gorm.io/gorm"
)

type GormSuggestionRepo struct {
	db *gorm.DB
}

// Create implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) Create(ctx context.Context, s *suggestion.Suggestion) error {
	entity := NewSuggestionEntityFromDomain(s)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}

	*s = *entity.ToDomain()
	return nil
}

// GetByID implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) GetByID(ctx context.Context, id string) (*suggestion.Suggestion, error) {
	var entity SuggestionEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, suggestion.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return entity.ToDomain(), nil
}

// ListByUser implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]suggestion.Suggestion, int64, error) {
	return g.list(ctx, g.db.WithContext(ctx).Model(&SuggestionEntity{}).Where("user_id = ?", userID), offset, limit)
}

// ListAll implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) ListAll(ctx context.Context, offset, limit int) ([]suggestion.Suggestion, int64, error) {
	return g.list(ctx, g.db.WithContext(ctx).Model(&SuggestionEntity{}), offset, limit)
}

// ListByStatus implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) ListByStatus(ctx context.Context, status string, offset, limit int) ([]suggestion.Suggestion, int64, error) {
	return g.list(ctx, g.db.WithContext(ctx).Model(&SuggestionEntity{}).Where("status = ?", status), offset, limit)
}

// UpdateStatus implements suggestion.SuggestionRepository
func (g *GormSuggestionRepo) UpdateStatus(ctx context.Context, id, status string) (*suggestion.Suggestion, error) {
	result := g.db.WithContext(ctx).Model(&SuggestionEntity{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, suggestion.ErrSuggestionNotFound
	}
	return g.GetByID(ctx, id)
}

func (g *GormSuggestionRepo) list(ctx context.Context, query *gorm.DB, offset, limit int) ([]suggestion.Suggestion, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count suggestions: %w", err)
	}

	var entities []SuggestionEntity
	if err := query.Order("created_at DESC, id").Offset(offset).Limit(limit).Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list suggestions: %w", err)
	}

	suggestions := make([]suggestion.Suggestion, len(entities))
	for i, entity := range entities {
		suggestions[i] = *entity.ToDomain()
	}
	return suggestions, total, nil
}

// NewGormSuggestionRepo creates a new GORM-based suggestion repository
func NewGormSuggestionRepo(db *gorm.DB) suggestion.SuggestionRepository {
	return &GormSuggestionRepo{db: db}
}
