package services

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	apperrors "facility-console/pkg/errors"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, status, search string) []entities.Equipment
	FindEquipment(ctx context.Context, id int) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id int, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id int) error
	Maintenance(ctx context.Context, id int) (*dto.EquipmentMaintenanceDTO, error)
	Overview(ctx context.Context) []dto.EquipmentMaintenanceDTO
}

type EquipmentService struct {
	repos    *repositories.Repositories
	resolver *maintenance.Resolver
	cache    *SummaryCache
	logger   *zap.Logger

	mu sync.Mutex
}

func NewEquipmentService(
	repos *repositories.Repositories,
	resolver *maintenance.Resolver,
	cache *SummaryCache,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		repos:    repos,
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
}

func (s *EquipmentService) GetEquipment(_ context.Context, status, search string) []entities.Equipment {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.Equipment, 0)
	for _, e := range s.repos.Equipment.All() {
		if status != "" && string(e.Status) != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Name+" "+e.Model+" "+e.Location+" "+e.Manufacturer), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *EquipmentService) FindEquipment(_ context.Context, id int) (*entities.Equipment, error) {
	all := s.repos.Equipment.All()
	idx := indexOfEquipment(all, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	return &all[idx], nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repos.Equipment.All()
	if nameTaken(all, d.Name, 0) {
		return nil, apperrors.ErrDuplicateEquipment
	}

	status := entities.EquipmentStatus(d.Status)
	if status == "" {
		status = entities.EquipmentNormal
	}
	specs := maps.Clone(d.Specifications)
	if specs == nil {
		specs = map[string]string{}
	}

	e := entities.Equipment{
		Name:           strings.TrimSpace(d.Name),
		Model:          strings.TrimSpace(d.Model),
		Manufacturer:   d.Manufacturer,
		Status:         status,
		Location:       d.Location,
		InstallDate:    d.InstallDate,
		Specifications: specs,
	}
	e.SetID(nextID[entities.Equipment, *entities.Equipment](all))

	_ = s.repos.Equipment.Replace(ctx, append(all, e))
	s.cache.Invalidate(ctx)
	s.logger.Info("equipment created", zap.Int("id", e.ID), zap.String("name", e.Name))
	return &e, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id int, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repos.Equipment.All()
	idx := indexOfEquipment(all, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	e := all[idx]

	if d.Name != nil {
		if nameTaken(all, *d.Name, id) {
			return nil, apperrors.ErrDuplicateEquipment
		}
		e.Name = strings.TrimSpace(*d.Name)
	}
	if d.Model != nil {
		e.Model = strings.TrimSpace(*d.Model)
	}
	if d.Manufacturer != nil {
		e.Manufacturer = *d.Manufacturer
	}
	if d.Status != nil {
		e.Status = entities.EquipmentStatus(*d.Status)
	}
	if d.Location != nil {
		e.Location = *d.Location
	}
	if d.InstallDate != nil {
		e.InstallDate = *d.InstallDate
	}
	if d.Specifications != nil {
		e.Specifications = maps.Clone(d.Specifications)
	}

	all[idx] = e
	_ = s.repos.Equipment.Replace(ctx, all)
	s.cache.Invalidate(ctx)
	return &e, nil
}

// DeleteEquipment removes the unit only. Work orders keep their equipment text.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repos.Equipment.All()
	idx := indexOfEquipment(all, id)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	_ = s.repos.Equipment.Replace(ctx, slices.Delete(all, idx, idx+1))
	s.cache.Invalidate(ctx)
	s.logger.Info("equipment deleted", zap.Int("id", id))
	return nil
}

// Maintenance returns the unit with its last/next maintenance dates and history.
func (s *EquipmentService) Maintenance(ctx context.Context, id int) (*dto.EquipmentMaintenanceDTO, error) {
	e, err := s.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := s.summary(ctx, *e)
	return &dto.EquipmentMaintenanceDTO{
		Equipment:       *e,
		LastMaintenance: summary.LastMaintenance,
		NextMaintenance: summary.NextMaintenance,
		History:         summary.History,
	}, nil
}

// Overview lists last/next maintenance for every unit, without history.
func (s *EquipmentService) Overview(ctx context.Context) []dto.EquipmentMaintenanceDTO {
	all := s.repos.Equipment.All()
	out := make([]dto.EquipmentMaintenanceDTO, 0, len(all))
	for _, e := range all {
		summary := s.summary(ctx, e)
		out = append(out, dto.EquipmentMaintenanceDTO{
			Equipment:       e,
			LastMaintenance: summary.LastMaintenance,
			NextMaintenance: summary.NextMaintenance,
		})
	}
	return out
}

func (s *EquipmentService) summary(ctx context.Context, e entities.Equipment) maintenance.Summary {
	today := s.resolver.Today()
	cached, key, ok := s.cache.Get(ctx, e.ID, today)
	if ok {
		return cached
	}
	summary := s.resolver.Resolve(maintenance.KeyOf(e), s.repos.WorkOrders.All(), s.repos.Schedules.All())
	s.cache.Put(ctx, key, summary)
	return summary
}

func indexOfEquipment(all []entities.Equipment, id int) int {
	return slices.IndexFunc(all, func(e entities.Equipment) bool { return e.ID == id })
}

func nameTaken(all []entities.Equipment, name string, selfID int) bool {
	name = strings.TrimSpace(name)
	for _, e := range all {
		if e.ID != selfID && strings.EqualFold(e.Name, name) {
			return true
		}
	}
	return false
}
