package errors

import "fmt"

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not yet valid")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token cannot be used for access")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("incorrect username or password")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("access denied")
	ErrManagerOnly        = fmt.Errorf("manager access required")

	// Request context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Common
	ErrNotFound        = fmt.Errorf("record not found")
	ErrBadRequest      = fmt.Errorf("invalid request")
	ErrConflict        = fmt.Errorf("record already exists")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrJobNotFound     = fmt.Errorf("job not found")
	ErrUnknownMechanic = fmt.Errorf("assigned mechanic does not exist")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
