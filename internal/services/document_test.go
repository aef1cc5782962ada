package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/filestorage"
)

func TestDocumentService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	tick := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)
	now := func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	svc := NewDocumentService(newRepos(t), storage, now, zap.NewNop())

	manual, err := svc.UploadDocument(ctx, dto.UploadDocumentDTO{Title: "터빈 매뉴얼", Category: "manual", UploadedBy: "김철수"},
		UploadedFile{Name: "turbine.pdf", ContentType: "application/pdf", Size: 4, Body: strings.NewReader("%PDF")})
	require.NoError(t, err)
	assert.NotEmpty(t, manual.ID)
	assert.True(t, strings.HasPrefix(manual.Path, "documents/"))

	_, err = svc.UploadDocument(ctx, dto.UploadDocumentDTO{Title: "점검표", Category: "form"},
		UploadedFile{Name: "check.txt", ContentType: "text/plain; charset=utf-8", Size: 2, Body: strings.NewReader("ok")})
	require.NoError(t, err)

	all := svc.ListDocuments(ctx, "")
	require.Len(t, all, 2)
	assert.Equal(t, "점검표", all[0].Title, "newest first")
	assert.Len(t, svc.ListDocuments(ctx, "manual"), 1)

	doc, rc, err := svc.OpenDocument(ctx, manual.ID)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = io.Copy(&buf, rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", buf.String())
	assert.Equal(t, "turbine.pdf", doc.FileName)

	require.NoError(t, svc.DeleteDocument(ctx, manual.ID))
	_, _, err = svc.OpenDocument(ctx, manual.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteDocument(ctx, manual.ID), apperrors.ErrNotFound)
}

func TestWorkOrderService_AttachFile(t *testing.T) {
	ctx := context.Background()
	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)
	repos := newRepos(t)
	svc := NewWorkOrderService(repos, fixedClock(), nil, nil, storage, zap.NewNop())

	wo, err := svc.CreateWorkOrder(ctx, turbineOrder("점검", "2025-06-20"))
	require.NoError(t, err)
	schedulesBefore := repos.Schedules.All()

	updated, err := svc.AttachFile(ctx, wo.ID, UploadedFile{Name: "photo.png", ContentType: "image/png", Body: strings.NewReader("png")})
	require.NoError(t, err)
	require.Len(t, updated.Attachments, 1)
	assert.True(t, strings.HasPrefix(updated.Attachments[0], "work-orders/"+wo.ID+"/"))
	assert.Equal(t, schedulesBefore, repos.Schedules.All())

	_, err = svc.AttachFile(ctx, "25-99", UploadedFile{Name: "x.png", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWorkOrderService_DeleteRemovesAttachments(t *testing.T) {
	ctx := context.Background()
	storage, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewWorkOrderService(newRepos(t), fixedClock(), nil, nil, storage, zap.NewNop())

	wo, err := svc.CreateWorkOrder(ctx, turbineOrder("점검", "2025-06-20"))
	require.NoError(t, err)
	updated, err := svc.AttachFile(ctx, wo.ID, UploadedFile{Name: "photo.png", ContentType: "image/png", Body: strings.NewReader("png")})
	require.NoError(t, err)
	path := updated.Attachments[0]

	rc, err := storage.Open(ctx, path)
	require.NoError(t, err)
	rc.Close()

	require.NoError(t, svc.DeleteWorkOrder(ctx, wo.ID))
	_, err = storage.Open(ctx, path)
	assert.ErrorIs(t, err, filestorage.ErrNotFound)
}
