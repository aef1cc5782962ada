package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"facility-console/internal/services"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/utils"
)

type upload struct {
	services.UploadedFile
	src multipart.File
}

func (u *upload) Close() error { return u.src.Close() }

// readUpload opens the multipart field and checks it against the rules of
// uploadContext. The caller closes the returned upload.
func readUpload(ctx echo.Context, field, uploadContext string) (*upload, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "업로드할 파일이 없습니다", apperrors.ErrBadRequest, map[string]interface{}{"field": field})
	}
	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "파일을 읽을 수 없습니다", err, nil)
	}
	mimeType, err := utils.ValidateFile(fh, src, uploadContext)
	if err != nil {
		src.Close()
		return nil, err
	}
	return &upload{
		UploadedFile: services.UploadedFile{
			Name:        fh.Filename,
			ContentType: mimeType,
			Size:        fh.Size,
			Body:        src,
		},
		src: src,
	}, nil
}
