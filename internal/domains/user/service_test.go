package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

type memUserRepo struct {
	users map[string]*User // by ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*User)}
}

func (m *memUserRepo) Create(ctx context.Context, u *User) error {
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, ErrUserNotFound
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memUserRepo) Update(ctx context.Context, id string, updates UpdateUserRequest) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	if updates.FullName != nil {
		u.FullName = *updates.FullName
	}
	if updates.Email != nil {
		u.Email = *updates.Email
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) SetResetCode(ctx context.Context, id, code string, validUntil time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.ResetCode = code
	u.ResetCodeValid = validUntil
	return nil
}

func (m *memUserRepo) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	u, ok := m.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = hashedPassword
	u.ResetCode = ""
	u.ResetCodeValid = time.Time{}
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

type captureMailer struct {
	email string
	code  string
}

func (c *captureMailer) SendResetCode(ctx context.Context, email, code string) error {
	c.email = email
	c.code = code
	return nil
}

func newTestUserService(repo UserRepository, mailer Mailer) UserService {
	return NewUserService(repo, mailer, Logger.Nop(), "test-secret", time.Hour)
}

func registerTestUser(t *testing.T, svc UserService) *UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), CreateUserRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Password: "securePassword123",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestUserService(repo, nil)

	created := registerTestUser(t, svc)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.NotEmpty(t, created.ID)

	// stored password must be hashed
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "securePassword123", stored.Password)

	user, tokens, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "securePassword123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), nil)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), CreateUserRequest{
		FullName: "Other Jane",
		Email:    "jane@example.com",
		Password: "anotherPassword1",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), nil)
	registerTestUser(t, svc)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "wrongPassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown emails look like bad credentials")
}

func TestRefreshToken(t *testing.T) {
	svc := newTestUserService(newMemUserRepo(), nil)
	registerTestUser(t, svc)

	_, tokens, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "securePassword123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), "garbage-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordResetFlow(t *testing.T) {
	repo := newMemUserRepo()
	mailer := &captureMailer{}
	svc := newTestUserService(repo, mailer)
	registerTestUser(t, svc)

	require.NoError(t, svc.ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "jane@example.com"}))
	require.Len(t, mailer.code, 4)
	assert.Equal(t, "jane@example.com", mailer.email)

	// wrong code is rejected
	err := svc.VerifyResetCode(context.Background(), VerifyResetCodeRequest{
		Email: "jane@example.com",
		Code:  "0000",
	})
	assert.ErrorIs(t, err, ErrInvalidResetCode)

	require.NoError(t, svc.VerifyResetCode(context.Background(), VerifyResetCodeRequest{
		Email: "jane@example.com",
		Code:  mailer.code,
	}))

	require.NoError(t, svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:       "jane@example.com",
		Code:        mailer.code,
		NewPassword: "brandNewPassword9",
	}))

	// old password stops working, new one logs in
	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "securePassword123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "brandNewPassword9",
	})
	assert.NoError(t, err)

	// the code is single-use
	err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Email:       "jane@example.com",
		Code:        mailer.code,
		NewPassword: "anotherPassword2",
	})
	assert.ErrorIs(t, err, ErrInvalidResetCode)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	mailer := &captureMailer{}
	svc := newTestUserService(newMemUserRepo(), mailer)

	err := svc.ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "ghost@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, mailer.code, "no code may be issued for unknown accounts")
}
