package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/events"
	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	"facility-console/pkg/clock"
	"facility-console/pkg/config"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/eventbus"
	"facility-console/pkg/filestorage"
)

type WorkOrderServiceInterface interface {
	GetWorkOrders(ctx context.Context, filter dto.WorkOrderFilter) []entities.WorkOrder
	FindWorkOrder(ctx context.Context, id string) (*entities.WorkOrder, error)
	NextCode(ctx context.Context) string
	CreateWorkOrder(ctx context.Context, d dto.CreateWorkOrderDTO) (*entities.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id string, d dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, id string, d dto.ChangeStatusDTO) (*entities.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id string) error
	AttachFile(ctx context.Context, id string, file UploadedFile) (*entities.WorkOrder, error)
}

// WorkOrderService owns work orders and schedules together so that a work order
// and its mirrored schedule are always changed under one lock.
type WorkOrderService struct {
	repos   *repositories.Repositories
	clock   clock.Clock
	bus     *eventbus.Bus
	cache   *SummaryCache
	storage filestorage.FileStorageInterface
	logger  *zap.Logger

	mu sync.Mutex
}

func NewWorkOrderService(
	repos *repositories.Repositories,
	clk clock.Clock,
	bus *eventbus.Bus,
	cache *SummaryCache,
	storage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *WorkOrderService {
	return &WorkOrderService{
		repos:   repos,
		clock:   clk,
		bus:     bus,
		cache:   cache,
		storage: storage,
		logger:  logger,
	}
}

func (s *WorkOrderService) GetWorkOrders(_ context.Context, filter dto.WorkOrderFilter) []entities.WorkOrder {
	orders := s.repos.WorkOrders.All()
	out := make([]entities.WorkOrder, 0, len(orders))
	for _, w := range orders {
		if matchesWorkOrderFilter(w, filter) {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return maintenance.CompareCodes(out[i].ID, out[j].ID) > 0
	})
	return out
}

func (s *WorkOrderService) FindWorkOrder(_ context.Context, id string) (*entities.WorkOrder, error) {
	orders := s.repos.WorkOrders.All()
	idx := indexOfWorkOrder(orders, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	return &orders[idx], nil
}

// NextCode previews the code the next created work order would get.
func (s *WorkOrderService) NextCode(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, _ := s.nextCode(s.repos.WorkOrders.All(), s.repos.Schedules.All())
	return code
}

func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, d dto.CreateWorkOrderDTO) (*entities.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.repos.WorkOrders.All()
	schedules := s.repos.Schedules.All()

	code, seq := s.nextCode(orders, schedules)
	requestDate := d.RequestDate
	if requestDate == "" {
		requestDate = s.clock.Today()
	}

	wo := entities.WorkOrder{
		ID:             code,
		Title:          d.Title,
		Equipment:      d.Equipment,
		EquipmentName:  d.EquipmentName,
		Description:    d.Description,
		WorkResult:     "",
		RequestDate:    requestDate,
		DueDate:        d.DueDate,
		Status:         entities.StatusWaiting,
		Assignees:      slices.Clone(d.Assignees),
		Types:          slices.Clone(d.Types),
		CompletionNote: "",
		Attachments:    []string{},
	}

	mirror := entities.Schedule{ID: nextScheduleID(schedules), ScheduleNumber: code}
	copyMirroredFields(&mirror, wo)

	_ = s.repos.WorkOrders.Replace(ctx, append(orders, wo))
	_ = s.repos.Schedules.Replace(ctx, append(schedules, mirror))
	s.recordIssued(ctx, maintenance.YearPrefix(s.clock.Now()), seq)
	s.cache.Invalidate(ctx)

	s.logger.Info("work order created", zap.String("id", wo.ID), zap.Int("schedule_id", mirror.ID))
	s.publish(events.WorkOrderEvent{Kind: events.WorkOrderCreated, WorkOrder: wo, SchedulesTouched: 1})
	return &wo, nil
}

func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, id string, d dto.UpdateWorkOrderDTO) (*entities.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.repos.WorkOrders.All()
	idx := indexOfWorkOrder(orders, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	old := orders[idx]
	updated := applyWorkOrderUpdate(old, d)

	if err := checkDoneGuard(old, updated); err != nil {
		return nil, err
	}

	orders[idx] = updated
	_ = s.repos.WorkOrders.Replace(ctx, orders)

	touched := 0
	if mirroredFieldsChanged(old, updated) {
		touched = s.syncMirror(ctx, updated)
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("work order updated", zap.String("id", id), zap.Int("schedules_touched", touched))
	s.publish(events.WorkOrderEvent{Kind: events.WorkOrderUpdated, WorkOrder: updated, SchedulesTouched: touched})
	if old.Status != updated.Status {
		s.publish(events.WorkOrderEvent{Kind: events.WorkOrderStatusChanged, WorkOrder: updated, PreviousStatus: old.Status})
	}
	return &updated, nil
}

// ChangeStatus moves a work order to another status. Entering done requires a
// work result, either the one sent with the request or the stored one.
func (s *WorkOrderService) ChangeStatus(ctx context.Context, id string, d dto.ChangeStatusDTO) (*entities.WorkOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.repos.WorkOrders.All()
	idx := indexOfWorkOrder(orders, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	old := orders[idx]

	updated := old
	updated.Status = entities.WorkOrderStatus(d.Status)
	if d.WorkResult != nil {
		updated.WorkResult = *d.WorkResult
	}
	if d.CompletionNote != nil {
		updated.CompletionNote = *d.CompletionNote
	}
	if err := checkDoneGuard(old, updated); err != nil {
		s.logger.Info("status change rejected", zap.String("id", id), zap.String("status", d.Status), zap.Error(err))
		return nil, err
	}

	orders[idx] = updated
	_ = s.repos.WorkOrders.Replace(ctx, orders)
	s.cache.Invalidate(ctx)

	if old.Status != updated.Status {
		s.publish(events.WorkOrderEvent{Kind: events.WorkOrderStatusChanged, WorkOrder: updated, PreviousStatus: old.Status})
	}
	return &updated, nil
}

// DeleteWorkOrder removes the work order and every schedule mirroring it.
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.repos.WorkOrders.All()
	idx := indexOfWorkOrder(orders, id)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	removed := orders[idx]
	_ = s.repos.WorkOrders.Replace(ctx, slices.Delete(orders, idx, idx+1))

	schedules := s.repos.Schedules.All()
	kept := slices.DeleteFunc(slices.Clone(schedules), func(sch entities.Schedule) bool {
		return sch.ScheduleNumber == id
	})
	dropped := len(schedules) - len(kept)
	if dropped > 0 {
		_ = s.repos.Schedules.Replace(ctx, kept)
	}
	s.cache.Invalidate(ctx)
	s.removeAttachments(ctx, removed)

	s.logger.Info("work order deleted", zap.String("id", id), zap.Int("schedules_removed", dropped))
	s.publish(events.WorkOrderEvent{Kind: events.WorkOrderDeleted, WorkOrder: removed, SchedulesTouched: dropped})
	return nil
}

// AttachFile stores the file and appends its path to the work order's
// attachments. Attachments are not mirrored, so the schedule is left alone.
func (s *WorkOrderService) AttachFile(ctx context.Context, id string, file UploadedFile) (*entities.WorkOrder, error) {
	if _, err := s.FindWorkOrder(ctx, id); err != nil {
		return nil, err
	}
	prefix := config.UploadContexts["work_order_attachment"].PathPrefix + "/" + id
	path, err := s.storage.Save(ctx, file.Body, file.Name, prefix, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store attachment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.repos.WorkOrders.All()
	idx := indexOfWorkOrder(orders, id)
	if idx < 0 {
		// deleted while the upload was running
		_ = s.storage.Delete(ctx, path)
		return nil, apperrors.ErrNotFound
	}
	wo := orders[idx]
	wo.Attachments = append(slices.Clone(wo.Attachments), path)
	orders[idx] = wo
	_ = s.repos.WorkOrders.Replace(ctx, orders)
	s.cache.Invalidate(ctx)

	s.logger.Info("work order attachment stored", zap.String("id", id), zap.String("path", path))
	return &wo, nil
}

// removeAttachments deletes the stored files of a removed work order. Failures
// are logged and leave the blob behind.
func (s *WorkOrderService) removeAttachments(ctx context.Context, wo entities.WorkOrder) {
	if s.storage == nil {
		return
	}
	for _, path := range wo.Attachments {
		if err := s.storage.Delete(ctx, path); err != nil && !errors.Is(err, filestorage.ErrNotFound) {
			s.logger.Warn("attachment delete failed", zap.String("id", wo.ID), zap.String("path", path), zap.Error(err))
		}
	}
}

// syncMirror copies the mirrored fields of wo onto every schedule carrying its
// code. A missing mirror is not an error.
func (s *WorkOrderService) syncMirror(ctx context.Context, wo entities.WorkOrder) int {
	schedules := s.repos.Schedules.All()
	touched := 0
	for i := range schedules {
		if schedules[i].ScheduleNumber == wo.ID {
			copyMirroredFields(&schedules[i], wo)
			touched++
		}
	}
	if touched > 0 {
		_ = s.repos.Schedules.Replace(ctx, schedules)
	}
	return touched
}

func (s *WorkOrderService) nextCode(orders []entities.WorkOrder, schedules []entities.Schedule) (string, int) {
	now := s.clock.Now()
	year := maintenance.YearPrefix(now)

	existing := make([]string, 0, len(orders)+len(schedules))
	for _, w := range orders {
		existing = append(existing, w.ID)
	}
	for _, sch := range schedules {
		existing = append(existing, sch.ScheduleNumber)
	}

	issued := 0
	for _, seq := range s.repos.Sequences.All() {
		if seq.Year == year {
			issued = seq.Last
		}
	}
	return maintenance.NextCode(now, existing, issued)
}

// recordIssued raises the high-water mark of year to at least seq.
func (s *WorkOrderService) recordIssued(ctx context.Context, year string, seq int) {
	seqs := s.repos.Sequences.All()
	for i := range seqs {
		if seqs[i].Year == year {
			if seqs[i].Last >= seq {
				return
			}
			seqs[i].Last = seq
			_ = s.repos.Sequences.Replace(ctx, seqs)
			return
		}
	}
	_ = s.repos.Sequences.Replace(ctx, append(seqs, entities.Sequence{Year: year, Last: seq}))
}

func (s *WorkOrderService) publish(e events.WorkOrderEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

func checkDoneGuard(old, updated entities.WorkOrder) error {
	if updated.Status != entities.StatusDone {
		return nil
	}
	enteringDone := old.Status != entities.StatusDone
	clearingResult := old.WorkResult != updated.WorkResult
	if (enteringDone || clearingResult) && !updated.HasWorkResult() {
		return apperrors.ErrWorkResultRequired
	}
	return nil
}

func applyWorkOrderUpdate(w entities.WorkOrder, d dto.UpdateWorkOrderDTO) entities.WorkOrder {
	if d.Title != nil {
		w.Title = *d.Title
	}
	if d.Equipment != nil {
		w.Equipment = *d.Equipment
	}
	if d.EquipmentName != nil {
		w.EquipmentName = *d.EquipmentName
	}
	if d.Description != nil {
		w.Description = *d.Description
	}
	if d.RequestDate != nil {
		w.RequestDate = *d.RequestDate
	}
	if d.DueDate != nil {
		w.DueDate = *d.DueDate
	}
	if d.Status != nil {
		w.Status = entities.WorkOrderStatus(*d.Status)
	}
	if d.WorkResult != nil {
		w.WorkResult = *d.WorkResult
	}
	if d.CompletionNote != nil {
		w.CompletionNote = *d.CompletionNote
	}
	if d.Assignees != nil {
		w.Assignees = slices.Clone(d.Assignees)
	}
	if d.Types != nil {
		w.Types = slices.Clone(d.Types)
	}
	if d.Attachments != nil {
		w.Attachments = slices.Clone(*d.Attachments)
	}
	return w
}

func mirroredFieldsChanged(a, b entities.WorkOrder) bool {
	return a.Title != b.Title ||
		a.DueDate != b.DueDate ||
		a.Equipment != b.Equipment ||
		a.EquipmentName != b.EquipmentName ||
		a.Description != b.Description ||
		!slices.Equal(a.Assignees, b.Assignees) ||
		!slices.Equal(a.Types, b.Types)
}

func copyMirroredFields(sch *entities.Schedule, wo entities.WorkOrder) {
	sch.Title = wo.Title
	sch.Date = wo.DueDate
	sch.Types = slices.Clone(wo.Types)
	sch.Equipment = wo.Equipment
	sch.EquipmentName = wo.EquipmentName
	sch.Assignees = slices.Clone(wo.Assignees)
	sch.Description = wo.Description
}

func indexOfWorkOrder(orders []entities.WorkOrder, id string) int {
	return slices.IndexFunc(orders, func(w entities.WorkOrder) bool { return w.ID == id })
}

func nextScheduleID(schedules []entities.Schedule) int {
	highest := 0
	for _, sch := range schedules {
		highest = max(highest, sch.ID)
	}
	return highest + 1
}

func matchesWorkOrderFilter(w entities.WorkOrder, f dto.WorkOrderFilter) bool {
	if f.Status != "" && string(w.Status) != f.Status {
		return false
	}
	if f.Equipment != "" && w.Equipment != f.Equipment && w.EquipmentName != f.Equipment {
		return false
	}
	if f.Assignee != "" && !slices.Contains(w.Assignees, f.Assignee) {
		return false
	}
	if f.Type != "" && !slices.Contains(w.Types, f.Type) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		hay := strings.ToLower(strings.Join([]string{w.ID, w.Title, w.Equipment, w.EquipmentName, w.Description, w.WorkResult}, " "))
		if !strings.Contains(hay, q) {
			return false
		}
	}
	return true
}
