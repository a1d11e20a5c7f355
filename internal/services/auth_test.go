package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/pkg/config"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) (AuthServiceInterface, *fakeCache) {
	t.Helper()

	hash, err := utils.HashPassword("workshop123")
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*entities.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash, Role: entities.RoleManager, FullName: "Workshop Manager"},
	}}
	cache := newFakeCache()
	jwtService := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	authConfig := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}

	return NewAuthService(users, cache, jwtService, authConfig, zap.NewNop()), cache
}

func TestLogin_Success(t *testing.T) {
	svc, cache := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "workshop123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, entities.RoleManager, resp.User.Role)
	assert.Empty(t, cache.store["login_attempts:admin"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "ghost", Password: "anything"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_LockoutAfterRepeatedFailures(t *testing.T) {
	svc, _ := newTestAuthService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the correct password is refused while locked out.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "workshop123"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestLogin_SuccessClearsFailureCount(t *testing.T) {
	svc, cache := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, "1", cache.store["login_attempts:admin"])

	_, err = svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "workshop123"})
	require.NoError(t, err)
	assert.Empty(t, cache.store["login_attempts:admin"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Username: "admin",
		Password: "another123",
		Role:     entities.RoleMechanic,
		FullName: "Second Admin",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{Username: "admin", Password: "workshop123"})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	rotated, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
}
