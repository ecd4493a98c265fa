package aistone

import (
	"context"
	"errors"
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"gorm.io/gorm"
)

type GormEmbeddingStore struct {
	db *gorm.DB
}

// FindByStoneID implements embedding.EmbeddingStore
func (g *GormEmbeddingStore) FindByStoneID(ctx context.Context, stoneID string) (*embedding.StoneEmbedding, error) {
	var entity StoneEmbeddingEntity
	if err := g.db.WithContext(ctx).Where("stone_id = ?", stoneID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, embedding.ErrEmbeddingNotFound
		}
		return nil, fmt.Errorf("failed to get embedding by stone ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// Create implements embedding.EmbeddingStore
func (g *GormEmbeddingStore) Create(ctx context.Context, e *embedding.StoneEmbedding) error {
	entity := NewStoneEmbeddingEntityFromDomain(e)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create embedding: %w", err)
	}

	*e = *entity.ToDomain()
	return nil
}

// Save implements embedding.EmbeddingStore, persisting changes to an
// existing record.
func (g *GormEmbeddingStore) Save(ctx context.Context, e *embedding.StoneEmbedding) error {
	entity := NewStoneEmbeddingEntityFromDomain(e)
	result := g.db.WithContext(ctx).Model(&StoneEmbeddingEntity{}).Where("id = ?", entity.ID).Updates(map[string]interface{}{
		"stone_name":       entity.StoneName,
		"embedding_text":   entity.EmbeddingText,
		"embedding_vector": entity.EmbeddingVector,
		"source_model":     entity.SourceModel,
		"timestamp":        entity.Timestamp,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to save embedding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return embedding.ErrEmbeddingNotFound
	}
	return nil
}

// NewGormEmbeddingStore creates a new GORM-based embedding store
func NewGormEmbeddingStore(db *gorm.DB) embedding.EmbeddingStore {
	return &GormEmbeddingStore{db: db}
}
