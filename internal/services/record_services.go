package services

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/repositories"
	"facility-console/pkg/clock"
	apperrors "facility-console/pkg/errors"
)

type (
	PersonnelService    = RecordService[entities.Personnel, *entities.Personnel]
	AnnouncementService = RecordService[entities.Announcement, *entities.Announcement]
	AttendanceService   = RecordService[entities.Attendance, *entities.Attendance]
	DailyReportService  = RecordService[entities.DailyReport, *entities.DailyReport]
)

func NewPersonnelService(repos *repositories.Repositories, logger *zap.Logger) *PersonnelService {
	return NewRecordService(repos.Personnel, logger,
		WithOrder[entities.Personnel, *entities.Personnel](func(a, b entities.Personnel) bool {
			return a.Name < b.Name
		}),
	)
}

// Announcements default to today's date and list important ones first, newest first.
func NewAnnouncementService(repos *repositories.Repositories, clk clock.Clock, logger *zap.Logger) *AnnouncementService {
	return NewRecordService(repos.Announcements, logger,
		WithDefaults[entities.Announcement](func(a *entities.Announcement) {
			if a.Date == "" {
				a.Date = clk.Today()
			}
		}),
		WithOrder[entities.Announcement, *entities.Announcement](func(a, b entities.Announcement) bool {
			if a.Important != b.Important {
				return a.Important
			}
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.ID > b.ID
		}),
	)
}

// Attendance must reference a known person; a check-out, when present, cannot
// precede the check-in.
func NewAttendanceService(repos *repositories.Repositories, logger *zap.Logger) *AttendanceService {
	return NewRecordService(repos.Attendances, logger,
		WithValidation[entities.Attendance, *entities.Attendance](func(_ context.Context, a entities.Attendance) error {
			known := slices.ContainsFunc(repos.Personnel.All(), func(p entities.Personnel) bool {
				return p.ID == a.PersonnelID
			})
			if !known {
				return apperrors.NewValidationError("personnel_id", "등록되지 않은 인원입니다: %d", a.PersonnelID)
			}
			if a.CheckIn.Valid && a.CheckOut.Valid && a.CheckOut.String < a.CheckIn.String {
				return apperrors.NewValidationError("check_out", "퇴근 시간은 출근 시간보다 빠를 수 없습니다")
			}
			return nil
		}),
		WithOrder[entities.Attendance, *entities.Attendance](func(a, b entities.Attendance) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.PersonnelID < b.PersonnelID
		}),
	)
}

func NewDailyReportService(repos *repositories.Repositories, logger *zap.Logger) *DailyReportService {
	return NewRecordService(repos.DailyReports, logger,
		WithDefaults[entities.DailyReport](func(r *entities.DailyReport) {
			if r.Workers == nil {
				r.Workers = []string{}
			}
		}),
		WithOrder[entities.DailyReport, *entities.DailyReport](func(a, b entities.DailyReport) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.Shift < b.Shift
		}),
	)
}
