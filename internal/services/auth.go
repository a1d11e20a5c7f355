package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"workshop-system/internal/dto"
	"workshop-system/internal/entities"
	"workshop-system/internal/repositories"
	"workshop-system/pkg/config"
	apperrors "workshop-system/pkg/errors"
	"workshop-system/pkg/service"
	"workshop-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	jwtService service.JWTService
	authConfig config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cache:      cache,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger,
	}
}

func loginAttemptsKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// checkLockout refuses the login attempt once the account has burned
// through its allowance of failed passwords.
func (s *AuthService) checkLockout(ctx context.Context, username string) error {
	value, err := s.cache.Get(ctx, loginAttemptsKey(username))
	if err != nil || value == "" {
		return nil
	}
	attempts, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	if attempts >= s.authConfig.MaxLoginAttempts {
		return apperrors.NewHttpError(http.StatusTooManyRequests,
			"too many failed login attempts, try again later", nil,
			map[string]interface{}{"username": username})
	}
	return nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, username string) {
	key := loginAttemptsKey(username)
	attempts, err := s.cache.Incr(ctx, key)
	if err != nil {
		s.logger.Warn("failed to record login attempt", zap.Error(err), zap.String("username", username))
		return
	}
	if attempts == 1 {
		if _, err := s.cache.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("failed to set lockout window", zap.Error(err), zap.String("username", username))
		}
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	if err := s.checkLockout(ctx, payload.Username); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.recordFailedAttempt(ctx, payload.Username)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		s.recordFailedAttempt(ctx, payload.Username)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.cache.Del(ctx, loginAttemptsKey(payload.Username)); err != nil {
		s.logger.Warn("failed to clear login attempts", zap.Error(err), zap.String("username", payload.Username))
	}

	return s.issueTokens(user)
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.CreateUser(ctx, &entities.User{
		Username:     payload.Username,
		PasswordHash: hash,
		Role:         payload.Role,
		FullName:     payload.FullName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewHttpError(http.StatusConflict, "username already taken", nil, nil)
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", created.Username), zap.String("role", created.Role))
	return userToDTO(created), nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.LoginResponseDTO, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		User:         *userToDTO(user),
	}, nil
}

func userToDTO(user *entities.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		FullName: user.FullName,
	}
}
