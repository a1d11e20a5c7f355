package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "workshop-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// JobFilter is what list/export endpoints accept from the query string:
// an exact status match ("All Status" or empty means no filter), a free-text
// search and plain limit/offset pagination.
type JobFilter struct {
	Status string
	Search string
	Limit  uint64
	Offset uint64
}

func ParseJobFilterFromQuery(values url.Values) JobFilter {
	filter := JobFilter{Limit: DefaultLimit}

	if status := values.Get("status"); status != "" && status != "All Status" {
		filter.Status = status
	}
	filter.Search = strings.TrimSpace(values.Get("search"))

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				filter.Limit = MaxLimit
			} else {
				filter.Limit = l
			}
		}
	}
	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			filter.Offset = o
		}
	}

	return filter
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	if len(total) > 0 {
		response.Body = map[string]interface{}{"list": body, "total_count": total[0]}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

var sentinelStatuses = map[error]int{
	apperrors.ErrNotFound:             http.StatusNotFound,
	apperrors.ErrJobNotFound:          http.StatusNotFound,
	apperrors.ErrUserNotFound:         http.StatusNotFound,
	apperrors.ErrBadRequest:           http.StatusBadRequest,
	apperrors.ErrUnknownMechanic:      http.StatusBadRequest,
	apperrors.ErrConflict:             http.StatusBadRequest,
	apperrors.ErrInvalidCredentials:   http.StatusUnauthorized,
	apperrors.ErrUnauthorized:         http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:      http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:    http.StatusUnauthorized,
	apperrors.ErrInvalidToken:         http.StatusUnauthorized,
	apperrors.ErrTokenExpired:         http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:    http.StatusUnauthorized,
	apperrors.ErrForbidden:            http.StatusForbidden,
	apperrors.ErrManagerOnly:          http.StatusForbidden,
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed validation '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation error: " + strings.Join(msgs, "; "),
		})
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": inputErr.Message,
		})
	}

	for sentinel, code := range sentinelStatuses {
		if errors.Is(err, sentinel) {
			return c.JSON(code, map[string]interface{}{
				"status":  false,
				"message": sentinel.Error(),
			})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "internal server error",
	})
}
