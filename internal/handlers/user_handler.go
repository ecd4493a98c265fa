package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softmindsol/stone-identifier-be/internal/domains/user"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService user.UserService
	logger      *Logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService user.UserService, logger *Logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Register a new user account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body user.CreateUserRequest true "User registration data"
// @Success 201 {object} RegisterResponse "User registered successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	userResponse, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case user.ErrEmailAlreadyExists:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already exists"})
		default:
			h.logger.Errorf("registration error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    *userResponse,
	})
}

// Login handles user login
// @Summary User login
// @Description Authenticate user with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body user.LoginRequest true "User login credentials"
// @Success 200 {object} LoginResponse "Login successful with user data and tokens"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	userResponse, tokens, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case user.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		default:
			h.logger.Errorf("login error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    *userResponse,
		Tokens:  *tokens,
	})
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Refresh an expired access token using refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token data"
// @Success 200 {object} RefreshTokenResponse "Token refreshed successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Invalid refresh token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	tokens, err := h.userService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case user.ErrInvalidToken, user.ErrUserNotFound:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		default:
			h.logger.Errorf("token refresh error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, RefreshTokenResponse{
		Message: "Token refreshed successfully",
		Tokens:  *tokens,
	})
}

// ForgotPassword starts the password reset flow
// @Summary Request a password reset code
// @Description Send a one-time reset code to the given email if an account exists
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body user.ForgotPasswordRequest true "Account email"
// @Success 200 {object} SuccessResponse "Reset code sent if account exists"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/forgot-password [post]
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req user.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	if err := h.userService.ForgotPassword(c.Request.Context(), req); err != nil {
		h.logger.Errorf("forgot password error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "If the account exists, a reset code has been sent"})
}

// VerifyResetCode checks a password reset code
// @Summary Verify a password reset code
// @Description Verify that a reset code is valid before setting a new password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body user.VerifyResetCodeRequest true "Email and reset code"
// @Success 200 {object} SuccessResponse "Code verified"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/verify-reset-code [post]
func (h *UserHandler) VerifyResetCode(c *gin.Context) {
	var req user.VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	if err := h.userService.VerifyResetCode(c.Request.Context(), req); err != nil {
		switch err {
		case user.ErrInvalidResetCode:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired reset code"})
		default:
			h.logger.Errorf("verify reset code error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Reset code verified"})
}

// ResetPassword completes the password reset flow
// @Summary Reset password with a verified code
// @Description Set a new password using a valid reset code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body user.ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} SuccessResponse "Password reset"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req user.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), req); err != nil {
		switch err {
		case user.ErrInvalidResetCode:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired reset code"})
		default:
			h.logger.Errorf("reset password error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Password reset successfully"})
}

// GetProfile handles getting user profile
// @Summary Get user profile
// @Description Get the current authenticated user's profile
// @Tags User Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse "User profile data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	userResponse, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			h.logger.Errorf("get profile error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{User: *userResponse})
}

// UpdateProfile handles updating user profile
// @Summary Update user profile
// @Description Update the current authenticated user's profile
// @Tags User Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body user.UpdateUserRequest true "Profile update data"
// @Success 200 {object} UpdateProfileResponse "Profile updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	userResponse, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		case user.ErrEmailAlreadyExists:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already exists"})
		default:
			h.logger.Errorf("update profile error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    *userResponse,
	})
}

// DeleteAccount handles account deletion
// @Summary Delete user account
// @Description Delete the current authenticated user's account
// @Tags User Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "Account deleted successfully"
// @Failure 401 {object} ErrorResponse "User not authenticated"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user/account [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := ExtractUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		switch err {
		case user.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			h.logger.Errorf("delete account error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Account deleted successfully"})
}
