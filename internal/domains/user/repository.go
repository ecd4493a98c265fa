package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system (pure domain model)
// @Description User account information
type User struct {
	ID             string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	FullName       string    `json:"fullName" example:"Jane Doe"`
	Email          string    `json:"email" example:"jane@example.com"`
	Password       string    `json:"-"` // Never expose in JSON
	ResetCode      string    `json:"-"`
	ResetCodeValid time.Time `json:"-"`
	CreatedAt      time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" example:"2023-01-01T12:00:00Z"`
}

// CreateUserRequest represents the data needed to register a new account
// @Description Request body for user registration
type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"securePassword123"`
}

// UpdateUserRequest represents the fields a user may change on their profile
// @Description Request body for updating user profile
type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty" binding:"omitempty,min=2,max=100" example:"Jane Smith"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email" example:"jane.smith@example.com"`
}

// LoginRequest represents login credentials
// @Description Request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"securePassword123"`
}

// ForgotPasswordRequest starts the password reset flow
// @Description Request body for requesting a password reset code
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
}

// VerifyResetCodeRequest checks a reset code before allowing a new password
// @Description Request body for verifying a password reset code
type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
	Code  string `json:"code" binding:"required,len=4" example:"4829"`
}

// ResetPasswordRequest completes the password reset flow
// @Description Request body for setting a new password with a verified code
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email" example:"jane@example.com"`
	Code        string `json:"code" binding:"required,len=4" example:"4829"`
	NewPassword string `json:"newPassword" binding:"required,min=8" example:"newSecurePassword456"`
}

// UserResponse represents a user without sensitive information
// @Description User information returned in API responses (no sensitive data)
type UserResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	FullName  string    `json:"fullName" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2023-01-01T12:00:00Z"`
}

// ToResponse converts a User to UserResponse (removes sensitive data)
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUser creates a new user with a generated ID
func NewUser(req CreateUserRequest, hashedPassword string) *User {
	return &User{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create a new user
	Create(ctx context.Context, user *User) error

	// Get user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// Get user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update user profile fields
	Update(ctx context.Context, id string, updates UpdateUserRequest) (*User, error)

	// Store a password reset code with its expiry
	SetResetCode(ctx context.Context, id, code string, validUntil time.Time) error

	// Replace the password hash and clear any reset code
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// Delete user (soft delete)
	Delete(ctx context.Context, id string) error

	// Check if email exists
	EmailExists(ctx context.Context, email string) (bool, error)
}
