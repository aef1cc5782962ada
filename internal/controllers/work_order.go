package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/services"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/utils"
)

type WorkOrderController struct {
	workOrderService services.WorkOrderServiceInterface
	exportService    services.ExportServiceInterface
	logger           *zap.Logger
}

func NewWorkOrderController(
	workOrderService services.WorkOrderServiceInterface,
	exportService services.ExportServiceInterface,
	logger *zap.Logger,
) *WorkOrderController {
	return &WorkOrderController{
		workOrderService: workOrderService,
		exportService:    exportService,
		logger:           logger,
	}
}

func workOrderFilter(ctx echo.Context) (dto.WorkOrderFilter, utils.QueryParams) {
	params := utils.ParseQuery(ctx.Request().URL.Query())
	return dto.WorkOrderFilter{
		Status:    params.Filters["status"],
		Equipment: params.Filters["equipment"],
		Assignee:  params.Filters["assignee"],
		Type:      params.Filters["type"],
		Search:    params.Search,
	}, params
}

func (c *WorkOrderController) GetWorkOrders(ctx echo.Context) error {
	filter, params := workOrderFilter(ctx)

	orders := c.workOrderService.GetWorkOrders(ctx.Request().Context(), filter)
	total := uint64(len(orders))

	return utils.SuccessResponse(ctx, utils.Paginate(orders, params.Limit, params.Offset), "작업지시 목록을 조회했습니다", http.StatusOK, total)
}

func (c *WorkOrderController) FindWorkOrder(ctx echo.Context) error {
	id := ctx.Param("id")
	res, err := c.workOrderService.FindWorkOrder(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "작업지시를 조회하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "작업지시를 조회했습니다", http.StatusOK)
}

func (c *WorkOrderController) NextCode(ctx echo.Context) error {
	code := c.workOrderService.NextCode(ctx.Request().Context())
	return utils.SuccessResponse(ctx, dto.NextCodeDTO{Code: code}, "다음 작업지시 번호입니다", http.StatusOK)
}

func (c *WorkOrderController) CreateWorkOrder(ctx echo.Context) error {
	var payload dto.CreateWorkOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateWorkOrder: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workOrderService.CreateWorkOrder(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateWorkOrder: service failed", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "작업지시를 등록하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "작업지시가 등록되었습니다", http.StatusCreated)
}

func (c *WorkOrderController) UpdateWorkOrder(ctx echo.Context) error {
	id := ctx.Param("id")
	var payload dto.UpdateWorkOrderDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateWorkOrder: bind failed", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workOrderService.UpdateWorkOrder(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "작업지시를 수정하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "작업지시가 수정되었습니다", http.StatusOK)
}

func (c *WorkOrderController) ChangeStatus(ctx echo.Context) error {
	id := ctx.Param("id")
	var payload dto.ChangeStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 본문 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.workOrderService.ChangeStatus(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "상태를 변경하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "상태가 변경되었습니다", http.StatusOK)
}

func (c *WorkOrderController) DeleteWorkOrder(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := c.workOrderService.DeleteWorkOrder(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "작업지시를 삭제하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "작업지시가 삭제되었습니다", http.StatusOK)
}

func (c *WorkOrderController) UploadAttachment(ctx echo.Context) error {
	id := ctx.Param("id")
	file, err := readUpload(ctx, "file", "work_order_attachment")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	res, err := c.workOrderService.AttachFile(ctx.Request().Context(), id, file.UploadedFile)
	if err != nil {
		c.logger.Error("UploadAttachment: service failed", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "첨부파일을 저장하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "첨부파일이 저장되었습니다", http.StatusCreated)
}

// Export streams the filtered work orders as xlsx (default) or csv.
func (c *WorkOrderController) Export(ctx echo.Context) error {
	filter, _ := workOrderFilter(ctx)
	format := strings.ToLower(ctx.QueryParam("format"))
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("format", "지원하지 않는 형식입니다: %s", format), c.logger)
	}

	reqCtx := ctx.Request().Context()
	fileName := c.exportService.FileName(format)
	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)

	if format == "csv" {
		resp.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
		resp.WriteHeader(http.StatusOK)
		return c.exportService.WriteWorkOrdersCSV(reqCtx, filter, resp.Writer)
	}
	resp.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	resp.WriteHeader(http.StatusOK)
	return c.exportService.WriteWorkOrdersXLSX(reqCtx, filter, resp.Writer)
}
