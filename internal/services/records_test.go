package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/repositories"
	"facility-console/internal/store"
	"facility-console/pkg/clock"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/metrics"
)

func newRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	return repositories.NewRepositories(context.Background(), store.NewMemoryStore(), zap.NewNop(), metrics.New())
}

func TestPersonnelService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewPersonnelService(newRepos(t), zap.NewNop())

	kim, err := svc.Create(ctx, dto.PersonnelDTO{Name: "김철수", Field: "mechanical"})
	require.NoError(t, err)
	assert.Equal(t, 1, kim.ID)
	assert.True(t, kim.Active)

	inactive := false
	lee, err := svc.Create(ctx, dto.PersonnelDTO{Name: "이영희", Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 2, lee.ID)
	assert.False(t, lee.Active)

	updated, err := svc.Update(ctx, kim.ID, dto.PersonnelDTO{Name: "김철수", Position: "반장"})
	require.NoError(t, err)
	assert.Equal(t, kim.ID, updated.ID)
	assert.Equal(t, "반장", updated.Position)

	require.NoError(t, svc.Delete(ctx, kim.ID))
	_, err = svc.Find(ctx, kim.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// ids are never reused while a higher one exists
	park, err := svc.Create(ctx, dto.PersonnelDTO{Name: "박민수"})
	require.NoError(t, err)
	assert.Equal(t, 3, park.ID)

	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "박민수", list[0].Name)
}

func TestRecordService_UpdateDeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewDailyReportService(newRepos(t), zap.NewNop())

	_, err := svc.Update(ctx, 5, dto.DailyReportDTO{Date: "2025-06-10", Shift: "day", Author: "김철수", Content: "이상 없음"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 5), apperrors.ErrNotFound)
}

func TestAnnouncementService_DefaultsAndOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewAnnouncementService(newRepos(t), clock.OnDate("2025-06-10"), zap.NewNop())

	plain, err := svc.Create(ctx, dto.AnnouncementDTO{Title: "식당 휴무", Content: "금요일 휴무", Date: "2025-06-09"})
	require.NoError(t, err)
	important, err := svc.Create(ctx, dto.AnnouncementDTO{Title: "정전 예정", Content: "토요일 정전", Important: true})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", important.Date)

	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, important.ID, list[0].ID)
	assert.Equal(t, plain.ID, list[1].ID)
}

func TestAttendanceService_Validation(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	people := NewPersonnelService(repos, zap.NewNop())
	svc := NewAttendanceService(repos, zap.NewNop())

	_, err := svc.Create(ctx, dto.AttendanceDTO{PersonnelID: 1, Date: "2025-06-10", Status: "present"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	kim, err := people.Create(ctx, dto.PersonnelDTO{Name: "김철수"})
	require.NoError(t, err)

	rec, err := svc.Create(ctx, dto.AttendanceDTO{
		PersonnelID: kim.ID,
		Date:        "2025-06-10",
		Status:      "present",
		CheckIn:     null.StringFrom("08:55"),
	})
	require.NoError(t, err)
	assert.False(t, rec.CheckOut.Valid, "check-out stays empty until the shift ends")

	_, err = svc.Update(ctx, rec.ID, dto.AttendanceDTO{
		PersonnelID: kim.ID,
		Date:        "2025-06-10",
		Status:      "present",
		CheckIn:     null.StringFrom("08:55"),
		CheckOut:    null.StringFrom("07:00"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	done, err := svc.Update(ctx, rec.ID, dto.AttendanceDTO{
		PersonnelID: kim.ID,
		Date:        "2025-06-10",
		Status:      "present",
		CheckIn:     null.StringFrom("08:55"),
		CheckOut:    null.StringFrom("18:05"),
	})
	require.NoError(t, err)
	assert.Equal(t, "18:05", done.CheckOut.String)
}

func TestDailyReportService_WorkersNeverNil(t *testing.T) {
	ctx := context.Background()
	svc := NewDailyReportService(newRepos(t), zap.NewNop())

	r, err := svc.Create(ctx, dto.DailyReportDTO{Date: "2025-06-10", Shift: "night", Author: "김철수", Content: "순찰 완료"})
	require.NoError(t, err)
	assert.NotNil(t, r.Workers)
}
