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

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
	logger          *zap.Logger
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService, logger: logger}
}

func (c *ScheduleController) GetSchedules(ctx echo.Context) error {
	filter := dto.ScheduleFilter{
		From:      ctx.QueryParam("from"),
		To:        ctx.QueryParam("to"),
		Equipment: ctx.QueryParam("equipment"),
	}
	res := c.scheduleService.GetSchedules(ctx.Request().Context(), filter)
	return utils.SuccessResponse(ctx, res, "일정 목록을 조회했습니다", http.StatusOK, uint64(len(res)))
}

func (c *ScheduleController) FindSchedule(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.scheduleService.FindSchedule(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "일정을 조회하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "일정을 조회했습니다", http.StatusOK)
}

func (c *ScheduleController) CreateSchedule(ctx echo.Context) error {
	var payload dto.CreateScheduleDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateSchedule: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.scheduleService.CreateSchedule(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "일정을 등록하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "일정이 등록되었습니다", http.StatusCreated)
}

func (c *ScheduleController) UpdateSchedule(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateScheduleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.scheduleService.UpdateSchedule(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "일정을 수정하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "일정이 수정되었습니다", http.StatusOK)
}

func (c *ScheduleController) DeleteSchedule(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.scheduleService.DeleteSchedule(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "일정을 삭제하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "일정이 삭제되었습니다", http.StatusOK)
}
