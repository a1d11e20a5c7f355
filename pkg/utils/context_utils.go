package utils

import (
	"context"

	"workshop-system/pkg/contextkeys"
	apperrors "workshop-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

func GetUsernameFromCtx(ctx context.Context) (string, error) {
	username, ok := ctx.Value(contextkeys.UsernameKey).(string)
	if !ok || username == "" {
		return "", apperrors.ErrUnauthorized
	}
	return username, nil
}

func GetRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok || role == "" {
		return "", apperrors.ErrUnauthorized
	}
	return role, nil
}
