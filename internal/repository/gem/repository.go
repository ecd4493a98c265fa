package gem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"gorm.io/gorm"
)

type GormGemRepo struct {
	db *gorm.DB
}

// GetByID implements gem.GemstoneRepository
func (g *GormGemRepo) GetByID(ctx context.Context, id string) (*gem.Gemstone, error) {
	var entity GemstoneEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gem.ErrGemstoneNotFound
		}
		return nil, fmt.Errorf("failed to get gemstone by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// FindByName implements gem.GemstoneRepository. It matches stone_name first
// and falls back to the known_as aliases.
func (g *GormGemRepo) FindByName(ctx context.Context, name string) (*gem.Gemstone, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, gem.ErrGemstoneNotFound
	}

	var entity GemstoneEntity
	err := g.db.WithContext(ctx).Where("LOWER(stone_name) = ?", needle).First(&entity).Error
	if err == nil {
		return entity.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find gemstone by name: %w", err)
	}

	// Alias lookup. known_as is a JSON array of strings.
	err = g.db.WithContext(ctx).
		Where("known_as IS NOT NULL AND JSON_SEARCH(LOWER(CAST(known_as AS CHAR)), 'one', ?) IS NOT NULL", needle).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gem.ErrGemstoneNotFound
		}
		return nil, fmt.Errorf("failed to find gemstone by alias: %w", err)
	}
	return entity.ToDomain(), nil
}

// FindManyByNames implements gem.GemstoneRepository. Names without a match
// are simply absent from the result.
func (g *GormGemRepo) FindManyByNames(ctx context.Context, names []string) ([]gem.Gemstone, error) {
	out := make([]gem.Gemstone, 0, len(names))
	for _, name := range names {
		stone, err := g.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, gem.ErrGemstoneNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *stone)
	}
	return out, nil
}

// ListPage implements gem.GemstoneRepository
func (g *GormGemRepo) ListPage(ctx context.Context, offset, limit int) ([]gem.Gemstone, error) {
	var entities []GemstoneEntity
	if err := g.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list gemstones: %w", err)
	}

	stones := make([]gem.Gemstone, len(entities))
	for i, entity := range entities {
		stones[i] = *entity.ToDomain()
	}
	return stones, nil
}

// NewGormGemRepo creates a new GORM-based gemstone repository
func NewGormGemRepo(db *gorm.DB) gem.GemstoneRepository {
	return &GormGemRepo{db: db}
}
