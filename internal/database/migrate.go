package database

import (
	"fmt"

	"gorm.io/gorm"

	aistonerepo "github.com/softmindsol/stone-identifier-be/internal/repository/aistone"
	collectionrepo "github.com/softmindsol/stone-identifier-be/internal/repository/collection"
	gemrepo "github.com/softmindsol/stone-identifier-be/internal/repository/gem"
	suggestionrepo "github.com/softmindsol/stone-identifier-be/internal/repository/suggestion"
	userrepo "github.com/softmindsol/stone-identifier-be/internal/repository/user"
)

// Migrate runs GORM auto-migration for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserEntity{},
		&gemrepo.GemstoneEntity{},
		&collectionrepo.EntryEntity{},
		&suggestionrepo.SuggestionEntity{},
		&aistonerepo.StoneEmbeddingEntity{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
