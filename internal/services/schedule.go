package services

import (
	"context"
	"slices"
	"sort"

	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/maintenance"
	apperrors "facility-console/pkg/errors"
)

type ScheduleServiceInterface interface {
	GetSchedules(ctx context.Context, filter dto.ScheduleFilter) []entities.Schedule
	FindSchedule(ctx context.Context, id int) (*entities.Schedule, error)
	CreateSchedule(ctx context.Context, d dto.CreateScheduleDTO) (*entities.Schedule, error)
	UpdateSchedule(ctx context.Context, id int, d dto.UpdateScheduleDTO) (*entities.Schedule, error)
	DeleteSchedule(ctx context.Context, id int) error
}

// Schedules share the work order lock, see WorkOrderService.

func (s *WorkOrderService) GetSchedules(_ context.Context, filter dto.ScheduleFilter) []entities.Schedule {
	out := make([]entities.Schedule, 0)
	for _, sch := range s.repos.Schedules.All() {
		if filter.From != "" && sch.Date < filter.From {
			continue
		}
		if filter.To != "" && sch.Date > filter.To {
			continue
		}
		if filter.Equipment != "" && sch.Equipment != filter.Equipment && sch.EquipmentName != filter.Equipment {
			continue
		}
		out = append(out, sch)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *WorkOrderService) FindSchedule(_ context.Context, id int) (*entities.Schedule, error) {
	schedules := s.repos.Schedules.All()
	idx := indexOfSchedule(schedules, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	return &schedules[idx], nil
}

// CreateSchedule stores a standalone schedule under a user supplied code.
func (s *WorkOrderService) CreateSchedule(ctx context.Context, d dto.CreateScheduleDTO) (*entities.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedules := s.repos.Schedules.All()
	if err := s.checkManualCode(d.ScheduleNumber, schedules, -1); err != nil {
		return nil, err
	}

	sch := entities.Schedule{
		ID:             nextScheduleID(schedules),
		ScheduleNumber: d.ScheduleNumber,
		Title:          d.Title,
		Date:           d.Date,
		Types:          nonNil(d.Types),
		Equipment:      d.Equipment,
		EquipmentName:  d.EquipmentName,
		Assignees:      nonNil(d.Assignees),
		Description:    d.Description,
	}
	_ = s.repos.Schedules.Replace(ctx, append(schedules, sch))
	s.recordManualCode(ctx, sch.ScheduleNumber)
	s.cache.Invalidate(ctx)

	s.logger.Info("schedule created", zap.Int("id", sch.ID), zap.String("schedule_number", sch.ScheduleNumber))
	return &sch, nil
}

// UpdateSchedule edits a schedule in place. The code of a schedule that mirrors a
// work order is fixed for the life of the pair.
func (s *WorkOrderService) UpdateSchedule(ctx context.Context, id int, d dto.UpdateScheduleDTO) (*entities.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedules := s.repos.Schedules.All()
	idx := indexOfSchedule(schedules, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	sch := schedules[idx]

	if d.ScheduleNumber != nil && *d.ScheduleNumber != sch.ScheduleNumber {
		if s.isMirror(sch) {
			return nil, apperrors.NewValidationError("schedule_number", "작업지시와 연결된 일정의 번호는 변경할 수 없습니다")
		}
		if err := s.checkManualCode(*d.ScheduleNumber, schedules, id); err != nil {
			return nil, err
		}
		sch.ScheduleNumber = *d.ScheduleNumber
	}
	if d.Title != nil {
		sch.Title = *d.Title
	}
	if d.Date != nil {
		sch.Date = *d.Date
	}
	if d.Types != nil {
		sch.Types = slices.Clone(d.Types)
	}
	if d.Equipment != nil {
		sch.Equipment = *d.Equipment
	}
	if d.EquipmentName != nil {
		sch.EquipmentName = *d.EquipmentName
	}
	if d.Assignees != nil {
		sch.Assignees = slices.Clone(d.Assignees)
	}
	if d.Description != nil {
		sch.Description = *d.Description
	}

	schedules[idx] = sch
	_ = s.repos.Schedules.Replace(ctx, schedules)
	s.recordManualCode(ctx, sch.ScheduleNumber)
	s.cache.Invalidate(ctx)
	return &sch, nil
}

// DeleteSchedule removes one schedule. Work orders are never touched.
func (s *WorkOrderService) DeleteSchedule(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedules := s.repos.Schedules.All()
	idx := indexOfSchedule(schedules, id)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	removed := schedules[idx]
	_ = s.repos.Schedules.Replace(ctx, slices.Delete(schedules, idx, idx+1))
	s.cache.Invalidate(ctx)

	s.logger.Info("schedule deleted", zap.Int("id", id), zap.String("schedule_number", removed.ScheduleNumber), zap.Bool("mirror", s.isMirror(removed)))
	return nil
}

// checkManualCode rejects malformed codes and codes already taken by another
// schedule (skipping selfID) or by a work order.
func (s *WorkOrderService) checkManualCode(code string, schedules []entities.Schedule, selfID int) error {
	if _, _, ok := maintenance.ParseCode(code); !ok {
		return apperrors.ErrInvalidCode
	}
	for _, sch := range schedules {
		if sch.ID != selfID && sch.ScheduleNumber == code {
			return apperrors.ErrDuplicateCode
		}
	}
	if indexOfWorkOrder(s.repos.WorkOrders.All(), code) >= 0 {
		return apperrors.ErrDuplicateCode
	}
	return nil
}

// recordManualCode keeps the high-water mark ahead of manual codes of any year.
func (s *WorkOrderService) recordManualCode(ctx context.Context, code string) {
	if year, seq, ok := maintenance.ParseCode(code); ok {
		s.recordIssued(ctx, year, seq)
	}
}

func (s *WorkOrderService) isMirror(sch entities.Schedule) bool {
	return indexOfWorkOrder(s.repos.WorkOrders.All(), sch.ScheduleNumber) >= 0
}

func indexOfSchedule(schedules []entities.Schedule, id int) int {
	return slices.IndexFunc(schedules, func(sch entities.Schedule) bool { return sch.ID == id })
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
