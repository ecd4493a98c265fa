package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
	"golang.org/x/crypto/bcrypt"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
)

const resetCodeTTL = time.Hour

// AuthTokens represents JWT tokens for authentication
// @Description JWT authentication tokens
type AuthTokens struct {
	AccessToken  string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refreshToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expiresAt" example:"2023-01-02T12:00:00Z"`
}

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Mailer delivers account emails. The default implementation only logs,
// actual SMTP delivery is handled outside this service.
type Mailer interface {
	SendResetCode(ctx context.Context, email, code string) error
}

type logMailer struct {
	logger *Logger.Logger
}

func (m *logMailer) SendResetCode(ctx context.Context, email, code string) error {
	m.logger.Infof("password reset code for %s: %s", email, code)
	return nil
}

// NewLogMailer returns a Mailer that writes codes to the application log.
func NewLogMailer(logger *Logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

// UserService defines the interface for user business logic
type UserService interface {
	// Authentication
	Register(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*UserResponse, *AuthTokens, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error)

	// Password reset
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	VerifyResetCode(ctx context.Context, req VerifyResetCodeRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	// Profile management
	GetProfile(ctx context.Context, userID string) (*UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateUserRequest) (*UserResponse, error)
	DeleteAccount(ctx context.Context, userID string) error

	// Token validation
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

type userService struct {
	repository UserRepository
	mailer     Mailer
	logger     *Logger.Logger
	jwtSecret  string
	tokenTTL   time.Duration
}

// Register implements UserService
func (s *userService) Register(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	// Check if email already exists
	exists, err := s.repository.EmailExists(ctx, req.Email)
	if err != nil {
		s.logger.Errorf("error checking email existence: %v", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorf("error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := NewUser(req, string(hashedPassword))
	if err := s.repository.Create(ctx, user); err != nil {
		s.logger.Errorf("error creating user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Infof("user registered successfully: %s (%s)", user.ID, user.Email)
	response := user.ToResponse()
	return &response, nil
}

// Login implements UserService
func (s *userService) Login(ctx context.Context, req LoginRequest) (*UserResponse, *AuthTokens, error) {
	user, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Errorf("error getting user by email: %v", err)
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user.ID, user.Email)
	if err != nil {
		s.logger.Errorf("error generating tokens: %v", err)
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Infof("user logged in successfully: %s (%s)", user.ID, user.Email)
	response := user.ToResponse()
	return &response, tokens, nil
}

// RefreshToken implements UserService
func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.parseClaims(refreshToken)
	if err != nil {
		return nil, err
	}

	// Verify user still exists
	user, err := s.repository.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	newTokens, err := s.generateTokens(user.ID, user.Email)
	if err != nil {
		s.logger.Errorf("error generating new tokens: %v", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return newTokens, nil
}

// ForgotPassword implements UserService. It succeeds silently for unknown
// emails so the endpoint cannot be used to probe for accounts.
func (s *userService) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	user, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logger.Infof("password reset requested for unknown email: %s", req.Email)
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	if err := s.repository.SetResetCode(ctx, user.ID, code, time.Now().Add(resetCodeTTL)); err != nil {
		s.logger.Errorf("error storing reset code: %v", err)
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, user.Email, code); err != nil {
		s.logger.Errorf("error sending reset code: %v", err)
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	s.logger.Infof("password reset code issued for user %s", user.ID)
	return nil
}

// VerifyResetCode implements UserService
func (s *userService) VerifyResetCode(ctx context.Context, req VerifyResetCodeRequest) error {
	user, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !resetCodeMatches(user, req.Code) {
		return ErrInvalidResetCode
	}
	return nil
}

// ResetPassword implements UserService
func (s *userService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	user, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidResetCode
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !resetCodeMatches(user, req.Code) {
		return ErrInvalidResetCode
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repository.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		s.logger.Errorf("error updating password: %v", err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Infof("password reset completed for user %s", user.ID)
	return nil
}

// GetProfile implements UserService
func (s *userService) GetProfile(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := user.ToResponse()
	return &response, nil
}

// UpdateProfile implements UserService
func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateUserRequest) (*UserResponse, error) {
	if req.Email != nil {
		exists, err := s.repository.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			current, err := s.repository.GetByID(ctx, userID)
			if err != nil {
				return nil, err
			}
			if current.Email != *req.Email {
				return nil, ErrEmailAlreadyExists
			}
		}
	}

	updatedUser, err := s.repository.Update(ctx, userID, req)
	if err != nil {
		s.logger.Errorf("error updating user profile: %v", err)
		return nil, err
	}

	s.logger.Infof("user profile updated: %s", userID)
	response := updatedUser.ToResponse()
	return &response, nil
}

// DeleteAccount implements UserService
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.repository.Delete(ctx, userID); err != nil {
		s.logger.Errorf("error deleting user account: %v", err)
		return err
	}

	s.logger.Infof("user account deleted: %s", userID)
	return nil
}

// ValidateToken implements UserService
func (s *userService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parseClaims(tokenString)
}

func (s *userService) parseClaims(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Helper function to generate JWT tokens
func (s *userService) generateTokens(userID, email string) (*AuthTokens, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	accessClaims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	// Refresh token lives 24x longer than the access token
	refreshExpiresAt := time.Now().Add(s.tokenTTL * 24)
	refreshClaims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &AuthTokens{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresAt:    expiresAt,
	}, nil
}

func resetCodeMatches(user *User, code string) bool {
	if user.ResetCode == "" || user.ResetCode != code {
		return false
	}
	return time.Now().Before(user.ResetCodeValid)
}

func generateResetCode() (string, error) {
	// 4-digit code, 1000-9999
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}

// NewUserService creates a new user service
func NewUserService(repository UserRepository, mailer Mailer, logger *Logger.Logger, jwtSecret string, tokenTTL time.Duration) UserService {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	if mailer == nil {
		mailer = NewLogMailer(logger)
	}

	return &userService{
		repository: repository,
		mailer:     mailer,
		logger:     logger,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}
