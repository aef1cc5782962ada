package services

import (
	"strconv"

	"github.com/stretchr/testify/require"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	apperrors "facility-console/pkg/errors"
)

func manualSchedule(code, date string) dto.CreateScheduleDTO {
	return dto.CreateScheduleDTO{
		ScheduleNumber: code,
		Title:          "분기 안전 점검",
		Date:           date,
		Equipment:      "보일러",
		Types:          []string{entities.WorkTypeControl},
	}
}

func (s *WorkOrderServiceSuite) TestCreateSchedule_Standalone() {
	sch, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-01"))
	s.Require().NoError(err)
	s.Equal(1, sch.ID)
	s.Equal("25-10", sch.ScheduleNumber)
	s.NotNil(sch.Assignees)
	s.Equal(0, s.repos.WorkOrders.Len())

	// The manual code raises the high-water mark, so generated codes skip past it.
	s.Equal("25-11", s.svc.NextCode(s.ctx))
}

func (s *WorkOrderServiceSuite) TestCreateSchedule_RejectsMalformedCode() {
	for _, code := range []string{"2025-1", "25-", "ab-1", "25-1a", " 25-1"} {
		_, err := s.svc.CreateSchedule(s.ctx, manualSchedule(code, "2025-07-01"))
		s.ErrorIs(err, apperrors.ErrInvalidCode, code)
	}
	s.Equal(0, s.repos.Schedules.Len())
}

func (s *WorkOrderServiceSuite) TestCreateSchedule_RejectsDuplicateCode() {
	_, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-01"))
	s.Require().NoError(err)

	_, err = s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-02"))
	s.ErrorIs(err, apperrors.ErrDuplicateCode)
	s.Equal(1, s.repos.Schedules.Len())
}

func (s *WorkOrderServiceSuite) TestCreateSchedule_RejectsWorkOrderCode() {
	wo := s.create("정기 점검", "2025-06-20")
	s.Require().NoError(s.svc.DeleteSchedule(s.ctx, s.mirrorsOf(wo.ID)[0].ID))

	_, err := s.svc.CreateSchedule(s.ctx, manualSchedule(wo.ID, "2025-07-02"))
	s.ErrorIs(err, apperrors.ErrDuplicateCode)
}

func (s *WorkOrderServiceSuite) TestDeleteStandaloneSchedule_LeavesWorkOrders() {
	wo := s.create("정기 점검", "2025-06-20")
	sch, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-01"))
	s.Require().NoError(err)
	ordersBefore := s.repos.WorkOrders.All()

	s.Require().NoError(s.svc.DeleteSchedule(s.ctx, sch.ID))

	s.Equal(ordersBefore, s.repos.WorkOrders.All())
	s.Len(s.mirrorsOf(wo.ID), 1)
}

func (s *WorkOrderServiceSuite) TestDeleteMirror_LeavesWorkOrder() {
	wo := s.create("정기 점검", "2025-06-20")

	s.Require().NoError(s.svc.DeleteSchedule(s.ctx, s.mirrorsOf(wo.ID)[0].ID))

	_, err := s.svc.FindWorkOrder(s.ctx, wo.ID)
	s.NoError(err)
}

func (s *WorkOrderServiceSuite) TestUpdateSchedule() {
	sch, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-01"))
	s.Require().NoError(err)

	updated, err := s.svc.UpdateSchedule(s.ctx, sch.ID, dto.UpdateScheduleDTO{
		ScheduleNumber: strPtr("25-12"),
		Date:           strPtr("2025-07-03"),
		Assignees:      []string{"박민수"},
	})
	s.Require().NoError(err)
	s.Equal("25-12", updated.ScheduleNumber)
	s.Equal("2025-07-03", updated.Date)
	s.Equal([]string{"박민수"}, updated.Assignees)
	s.Equal("분기 안전 점검", updated.Title)

	// keeping its own code is not a collision
	_, err = s.svc.UpdateSchedule(s.ctx, sch.ID, dto.UpdateScheduleDTO{ScheduleNumber: strPtr("25-12")})
	s.NoError(err)
}

func (s *WorkOrderServiceSuite) TestUpdateSchedule_MirrorCodeIsFixed() {
	wo := s.create("정기 점검", "2025-06-20")
	mirror := s.mirrorsOf(wo.ID)[0]

	_, err := s.svc.UpdateSchedule(s.ctx, mirror.ID, dto.UpdateScheduleDTO{ScheduleNumber: strPtr("25-50")})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Len(s.mirrorsOf(wo.ID), 1)
}

func (s *WorkOrderServiceSuite) TestUpdateSchedule_DuplicateCode() {
	a, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-10", "2025-07-01"))
	s.Require().NoError(err)
	_, err = s.svc.CreateSchedule(s.ctx, manualSchedule("25-11", "2025-07-02"))
	s.Require().NoError(err)

	_, err = s.svc.UpdateSchedule(s.ctx, a.ID, dto.UpdateScheduleDTO{ScheduleNumber: strPtr("25-11")})
	s.ErrorIs(err, apperrors.ErrDuplicateCode)
}

func (s *WorkOrderServiceSuite) TestGetSchedules_DateRange() {
	for i, date := range []string{"2025-07-05", "2025-06-01", "2025-07-20"} {
		_, err := s.svc.CreateSchedule(s.ctx, manualSchedule("25-"+strconv.Itoa(i+1), date))
		s.Require().NoError(err)
	}

	all := s.svc.GetSchedules(s.ctx, dto.ScheduleFilter{})
	s.Require().Len(all, 3)
	s.Equal("2025-06-01", all[0].Date)

	july := s.svc.GetSchedules(s.ctx, dto.ScheduleFilter{From: "2025-07-01", To: "2025-07-10"})
	require.Len(s.T(), july, 1)
	s.Equal("2025-07-05", july[0].Date)
}

func (s *WorkOrderServiceSuite) TestFindSchedule_NotFound() {
	_, err := s.svc.FindSchedule(s.ctx, 42)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.DeleteSchedule(s.ctx, 42), apperrors.ErrNotFound)
}
