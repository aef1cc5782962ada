package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/services"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/utils"
)

// RecordController serves plain CRUD for a flat record type T whose create and
// replace payload is D.
type RecordController[T any, D dto.RecordInput[T]] struct {
	service services.RecordServiceInterface[T]
	label   string
	logger  *zap.Logger
}

// NewRecordController builds the handlers; label names the record in messages ("인원", "공지").
func NewRecordController[T any, D dto.RecordInput[T]](service services.RecordServiceInterface[T], label string, logger *zap.Logger) *RecordController[T, D] {
	return &RecordController[T, D]{service: service, label: label, logger: logger}
}

func (c *RecordController[T, D]) List(ctx echo.Context) error {
	params := utils.ParseQuery(ctx.Request().URL.Query())
	items := c.service.List(ctx.Request().Context())
	total := uint64(len(items))
	return utils.SuccessResponse(ctx, utils.Paginate(items, params.Limit, params.Offset), c.label+" 목록을 조회했습니다", http.StatusOK, total)
}

func (c *RecordController[T, D]) Find(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.service.Find(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, c.label+" 정보를 조회하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.label+" 정보를 조회했습니다", http.StatusOK)
}

func (c *RecordController[T, D]) Create(ctx echo.Context) error {
	payload, err := c.bind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, c.label+" 정보를 등록하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.label+" 정보가 등록되었습니다", http.StatusCreated)
}

func (c *RecordController[T, D]) Update(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	payload, err := c.bind(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.service.Update(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, c.label+" 정보를 수정하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.label+" 정보가 수정되었습니다", http.StatusOK)
}

func (c *RecordController[T, D]) Delete(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, c.label+" 정보를 삭제하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, c.label+" 정보가 삭제되었습니다", http.StatusOK)
}

func (c *RecordController[T, D]) bind(ctx echo.Context) (D, error) {
	var payload D
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("record bind failed", zap.String("record", c.label), zap.Error(err))
		return payload, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil)
	}
	if err := ctx.Validate(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
