package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "facility-console/pkg/errors"
)

// ParseIntParam reads a positive integer path parameter.
func ParseIntParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"ID 형식이 올바르지 않습니다",
			apperrors.ErrBadRequest,
			map[string]interface{}{"param": raw},
		)
	}
	return id, nil
}
