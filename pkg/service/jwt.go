package service

import (
	"time"

	apperrors "workshop-system/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

type JwtCustomClaim struct {
	UserID         uint64 `json:"userId"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	IsRefreshToken bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateTokens(userID uint64, username, role string) (access string, refresh string, err error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration) JWTService {
	return &jwtService{
		SecretKey:       secretKey,
		AccessTokenExp:  accessTokenExp,
		RefreshTokenExp: refreshTokenExp,
	}
}

func (s *jwtService) GenerateTokens(userID uint64, username, role string) (string, string, error) {
	now := time.Now()

	accessTokenClaims := &JwtCustomClaim{
		UserID:         userID,
		Username:       username,
		Role:           role,
		IsRefreshToken: false,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTokenExp)),
		},
	}

	refreshTokenClaims := &JwtCustomClaim{
		UserID:         userID,
		Username:       username,
		Role:           role,
		IsRefreshToken: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.RefreshTokenExp)),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS512, accessTokenClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.SecretKey))
	if err != nil {
		return "", "", err
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS512, refreshTokenClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.SecretKey))
	if err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.AccessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.RefreshTokenExp
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.SecretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Time.After(time.Now()) {
		return nil, apperrors.ErrTokenNotYetValid
	}

	return claims, nil
}
