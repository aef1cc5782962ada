package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "facility-console/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		t := total[0]
		response.Total = &t
	}
	return ctx.JSON(code, response)
}

// errorStatuses maps domain sentinels onto HTTP statuses.
var errorStatuses = []struct {
	err  error
	code int
}{
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrBadRequest, http.StatusBadRequest},
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrInvalidCode, http.StatusBadRequest},
	{apperrors.ErrDuplicateCode, http.StatusConflict},
	{apperrors.ErrDuplicateEquipment, http.StatusConflict},
	{apperrors.ErrWorkResultRequired, http.StatusUnprocessableEntity},
	{apperrors.ErrEmptyAuthHeader, http.StatusUnauthorized},
	{apperrors.ErrInvalidAuthHeader, http.StatusUnauthorized},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized},
	{apperrors.ErrInvalidSigningMethod, http.StatusUnauthorized},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "서버 내부 오류가 발생했습니다"
	var body interface{} = struct{}{}

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Details != nil {
			body = httpErr.Details
		}
		// the wrapped cause may be more specific than the handler's fallback
		if httpErr.Err != nil && code == http.StatusInternalServerError {
			if c, ok := statusFor(httpErr.Err); ok {
				code = c
				message = httpErr.Err.Error()
			}
		}
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = apperrors.ErrValidation.Error()
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = fe.Tag()
		}
		body = map[string]interface{}{"fields": fields}
	default:
		if c, ok := statusFor(err); ok {
			code = c
			message = err.Error()
		}
	}

	if code >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    body,
		Message: message,
	})
}

func statusFor(err error) (int, bool) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, true
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			return m.code, true
		}
	}
	return 0, false
}
