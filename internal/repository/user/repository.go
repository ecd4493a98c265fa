package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/softmindsol/stone-identifier-be/internal/domains/user"
	"gorm.io/gorm"
)

type GormUserRepo struct {
	db *gorm.DB
}

// Create implements user.UserRepository
func (g *GormUserRepo) Create(ctx context.Context, u *user.User) error {
	entity := NewUserEntityFromDomain(u)
	if err := g.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	*u = *entity.ToDomain()
	return nil
}

// GetByID implements user.UserRepository
func (g *GormUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	var entity UserEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// GetByEmail implements user.UserRepository
func (g *GormUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var entity UserEntity
	if err := g.db.WithContext(ctx).Where("email = ?", email).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return entity.ToDomain(), nil
}

// Update implements user.UserRepository
func (g *GormUserRepo) Update(ctx context.Context, id string, updates user.UpdateUserRequest) (*user.User, error) {
	var entity UserEntity
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user for update: %w", err)
	}

	// Apply updates only for non-nil fields
	updateMap := make(map[string]interface{})
	if updates.FullName != nil {
		updateMap["full_name"] = *updates.FullName
	}
	if updates.Email != nil {
		updateMap["email"] = *updates.Email
	}

	if len(updateMap) > 0 {
		if err := g.db.WithContext(ctx).Model(&entity).Updates(updateMap).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, fmt.Errorf("failed to get updated user: %w", err)
	}

	return entity.ToDomain(), nil
}

// SetResetCode implements user.UserRepository
func (g *GormUserRepo) SetResetCode(ctx context.Context, id, code string, validUntil time.Time) error {
	result := g.db.WithContext(ctx).Model(&UserEntity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_code":       code,
		"reset_code_valid": validUntil,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to set reset code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository
func (g *GormUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	result := g.db.WithContext(ctx).Model(&UserEntity{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":    hashedPassword,
		"reset_code":       "",
		"reset_code_valid": time.Time{},
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository (soft delete)
func (g *GormUserRepo) Delete(ctx context.Context, id string) error {
	result := g.db.WithContext(ctx).Where("id = ?", id).Delete(&UserEntity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// EmailExists implements user.UserRepository
func (g *GormUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Model(&UserEntity{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// NewGormUserRepo creates a new GORM-based user repository
func NewGormUserRepo(db *gorm.DB) user.UserRepository {
	return &GormUserRepo{db: db}
}
