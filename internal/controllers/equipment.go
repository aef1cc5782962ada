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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	params := utils.ParseQuery(ctx.Request().URL.Query())
	res := c.equipmentService.GetEquipment(ctx.Request().Context(), params.Filters["status"], params.Search)
	total := uint64(len(res))
	return utils.SuccessResponse(ctx, utils.Paginate(res, params.Limit, params.Offset), "설비 목록을 조회했습니다", http.StatusOK, total)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "설비를 조회하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "설비를 조회했습니다", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipment: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "설비를 등록하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "설비가 등록되었습니다", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "설비를 수정하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "설비가 수정되었습니다", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "설비를 삭제하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "설비가 삭제되었습니다", http.StatusOK)
}

// GetMaintenance returns the unit's history with its last and next maintenance dates.
func (c *EquipmentController) GetMaintenance(ctx echo.Context) error {
	id, err := utils.ParseIntParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.equipmentService.Maintenance(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "정비 이력을 조회하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "정비 이력을 조회했습니다", http.StatusOK)
}

func (c *EquipmentController) GetMaintenanceOverview(ctx echo.Context) error {
	res := c.equipmentService.Overview(ctx.Request().Context())
	return utils.SuccessResponse(ctx, res, "설비별 정비 현황을 조회했습니다", http.StatusOK, uint64(len(res)))
}
