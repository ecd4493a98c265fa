package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"gorm.io/gorm"
)

type GormCollectionRepo struct {
	db *gorm.DB
}

var sortColumns = map[string]string{
	collection.SortRecentlyAdded: "created_at",
	collection.SortDateTime:      "acquisition_date",
	collection.SortName:          "name",
	collection.SortLocalities:    "locality",
	collection.SortStoneType:     "stone_type",
}

// Create implements collection.CollectionRepository
func (g *GormCollectionRepo) Create(ctx context.Context, entry *collection.Entry) error {
	entity := NewEntryEntityFromDomain(entry)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create collection entry: %w", err)
	}

	*entry = *entity.ToDomain()
	return nil
}

// GetByID implements collection.CollectionRepository
func (g *GormCollectionRepo) GetByID(ctx context.Context, id string) (*collection.Entry, error) {
	var entity EntryEntity
	if err := g.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collection.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get collection entry: %w", err)
	}
	return entity.ToDomain(), nil
}

// List implements collection.CollectionRepository
func (g *GormCollectionRepo) List(ctx context.Context, userID string, query collection.ListQuery) ([]collection.Entry, int64, error) {
	base := g.db.WithContext(ctx).Model(&EntryEntity{}).
		Where("user_id = ? AND is_active = ?", userID, true)
	if query.Wishlist {
		base = base.Where("is_wishlist = ?", true)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collection entries: %w", err)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if query.SortDesc {
		direction = "DESC"
	}

	var entities []EntryEntity
	if err := base.Session(&gorm.Session{}).Order(fmt.Sprintf("%s %s, id", column, direction)).
		Offset(query.Offset()).Limit(query.Limit).
		Find(&entities).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list collection entries: %w", err)
	}

	entries := make([]collection.Entry, len(entities))
	for i, entity := range entities {
		entries[i] = *entity.ToDomain()
	}
	return entries, total, nil
}

// Update implements collection.CollectionRepository
func (g *GormCollectionRepo) Update(ctx context.Context, id string, updates collection.UpdateEntryRequest) (*collection.Entry, error) {
	var entity EntryEntity
	if err := g.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, collection.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry for update: %w", err)
	}

	// Apply updates only for non-nil fields
	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.SerialNumber != nil {
		updateMap["serial_number"] = *updates.SerialNumber
	}
	if updates.Photos != nil {
		updateMap["photos"] = *updates.Photos
	}
	if updates.AcquisitionDate != nil {
		updateMap["acquisition_date"] = *updates.AcquisitionDate
	}
	if updates.AcquisitionCost != nil {
		updateMap["acquisition_cost"] = *updates.AcquisitionCost
	}
	if updates.Currency != nil {
		updateMap["currency"] = *updates.Currency
	}
	if updates.Locality != nil {
		updateMap["locality"] = *updates.Locality
	}
	if updates.StoneType != nil {
		updateMap["stone_type"] = *updates.StoneType
	}
	if updates.StoneSize != nil {
		updateMap["stone_size"] = *updates.StoneSize
	}
	if updates.Notes != nil {
		updateMap["notes"] = *updates.Notes
	}
	if updates.Tags != nil {
		updateMap["tags"] = *updates.Tags
	}

	if len(updateMap) > 0 {
		if err := g.db.WithContext(ctx).Model(&entity).Updates(updateMap).Error; err != nil {
			return nil, fmt.Errorf("failed to update collection entry: %w", err)
		}
	}

	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, fmt.Errorf("failed to get updated entry: %w", err)
	}
	return entity.ToDomain(), nil
}

// ToggleWishlist implements collection.CollectionRepository
func (g *GormCollectionRepo) ToggleWishlist(ctx context.Context, id string) (bool, error) {
	result := g.db.WithContext(ctx).Model(&EntryEntity{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_wishlist", gorm.Expr("NOT is_wishlist"))
	if result.Error != nil {
		return false, fmt.Errorf("failed to toggle wishlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, collection.ErrEntryNotFound
	}

	var entity EntryEntity
	if err := g.db.WithContext(ctx).Select("is_wishlist").Where("id = ?", id).First(&entity).Error; err != nil {
		return false, fmt.Errorf("failed to read wishlist flag: %w", err)
	}
	return entity.IsWishlist, nil
}

// Delete implements collection.CollectionRepository (soft delete via is_active)
func (g *GormCollectionRepo) Delete(ctx context.Context, id string) error {
	result := g.db.WithContext(ctx).Model(&EntryEntity{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete collection entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return collection.ErrEntryNotFound
	}
	return nil
}

// GetStats implements collection.CollectionRepository. The rarity breakdown
// joins the referenced gemstone and reads the grade out of its sections
// document; entries whose stone has no grade count as unknown.
func (g *GormCollectionRepo) GetStats(ctx context.Context, userID string) (*collection.Stats, error) {
	stats := &collection.Stats{
		RarityCounts: map[string]int64{"S": 0, "A": 0, "B": 0, "C": 0, "unknown": 0},
	}

	base := g.db.WithContext(ctx).Model(&EntryEntity{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalStones).Error; err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("is_wishlist = ?", true).Count(&stats.WishlistCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count wishlist: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Distinct("gemstone_id").Count(&stats.UniqueStones).Error; err != nil {
		return nil, fmt.Errorf("failed to count unique stones: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("locality <> ''").Distinct("locality").Count(&stats.LocalitiesSeen).Error; err != nil {
		return nil, fmt.Errorf("failed to count localities: %w", err)
	}

	var totalSpent struct{ Total float64 }
	if err := base.Session(&gorm.Session{}).Select("COALESCE(SUM(acquisition_cost), 0) AS total").Scan(&totalSpent).Error; err != nil {
		return nil, fmt.Errorf("failed to sum acquisition costs: %w", err)
	}
	stats.TotalSpent = totalSpent.Total

	type rarityRow struct {
		Grade string
		Count int64
	}
	var rows []rarityRow
	err := g.db.WithContext(ctx).
		Table("collection_entries ce").
		Select("COALESCE(JSON_UNQUOTE(JSON_EXTRACT(g.sections, '$.overview.rarity.grade')), '') AS grade, COUNT(*) AS count").
		Joins("LEFT JOIN gemstones g ON g.id = ce.gemstone_id").
		Where("ce.user_id = ? AND ce.is_active = ? AND ce.deleted_at IS NULL", userID, true).
		Group("grade").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute rarity breakdown: %w", err)
	}

	for _, row := range rows {
		switch row.Grade {
		case "S", "A", "B", "C":
			stats.RarityCounts[row.Grade] += row.Count
		default:
			stats.RarityCounts["unknown"] += row.Count
		}
	}

	return stats, nil
}

// NewGormCollectionRepo creates a new GORM-based collection repository
func NewGormCollectionRepo(db *gorm.DB) collection.CollectionRepository {
	return &GormCollectionRepo{db: db}
}
