package controllers

import (
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/services"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/middleware"
	"facility-console/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
	logger          *zap.Logger
}

func NewDocumentController(documentService services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{documentService: documentService, logger: logger}
}

func (c *DocumentController) GetDocuments(ctx echo.Context) error {
	res := c.documentService.ListDocuments(ctx.Request().Context(), ctx.QueryParam("category"))
	return utils.SuccessResponse(ctx, res, "문서 목록을 조회했습니다", http.StatusOK, uint64(len(res)))
}

func (c *DocumentController) UploadDocument(ctx echo.Context) error {
	var payload dto.UploadDocumentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "요청 형식이 올바르지 않습니다", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if payload.UploadedBy == "" {
		payload.UploadedBy = middleware.UserEmail(ctx.Request().Context())
	}

	file, err := readUpload(ctx, "file", "document")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	res, err := c.documentService.UploadDocument(ctx.Request().Context(), payload, file.UploadedFile)
	if err != nil {
		c.logger.Error("UploadDocument: service failed", zap.String("file", file.Name), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "문서를 저장하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "문서가 등록되었습니다", http.StatusCreated)
}

func (c *DocumentController) DownloadDocument(ctx echo.Context) error {
	doc, rc, err := c.documentService.OpenDocument(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "문서를 열지 못했습니다", err, nil), c.logger)
	}
	defer rc.Close()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, doc.ContentType)
	resp.Header().Set(echo.HeaderContentDisposition, "attachment; filename*=UTF-8''"+url.PathEscape(doc.FileName))
	resp.WriteHeader(http.StatusOK)
	_, err = io.Copy(resp.Writer, rc)
	return err
}

func (c *DocumentController) DeleteDocument(ctx echo.Context) error {
	if err := c.documentService.DeleteDocument(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "문서를 삭제하지 못했습니다", err, nil), c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "문서가 삭제되었습니다", http.StatusOK)
}
