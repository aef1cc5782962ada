package services

import (
	"context"
	"slices"
	"sort"
	"sync"

	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/repositories"
	apperrors "facility-console/pkg/errors"
)

type RecordServiceInterface[T any] interface {
	List(ctx context.Context) []T
	Find(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, in dto.RecordInput[T]) (*T, error)
	Update(ctx context.Context, id int, in dto.RecordInput[T]) (*T, error)
	Delete(ctx context.Context, id int) error
}

// RecordService is plain CRUD over one flat collection keyed by integer id.
type RecordService[T any, P entities.Identifiable[T]] struct {
	collection *repositories.Collection[T]
	logger     *zap.Logger

	validate func(ctx context.Context, item T) error
	prepare  func(item P)
	less     func(a, b T) bool

	mu sync.Mutex
}

type RecordOption[T any, P entities.Identifiable[T]] func(*RecordService[T, P])

// WithValidation runs check before every create and update.
func WithValidation[T any, P entities.Identifiable[T]](check func(ctx context.Context, item T) error) RecordOption[T, P] {
	return func(s *RecordService[T, P]) { s.validate = check }
}

// WithDefaults fills in missing fields before validation.
func WithDefaults[T any, P entities.Identifiable[T]](fill func(item P)) RecordOption[T, P] {
	return func(s *RecordService[T, P]) { s.prepare = fill }
}

// WithOrder sorts List results.
func WithOrder[T any, P entities.Identifiable[T]](less func(a, b T) bool) RecordOption[T, P] {
	return func(s *RecordService[T, P]) { s.less = less }
}

func NewRecordService[T any, P entities.Identifiable[T]](
	collection *repositories.Collection[T],
	logger *zap.Logger,
	opts ...RecordOption[T, P],
) *RecordService[T, P] {
	s := &RecordService[T, P]{
		collection: collection,
		logger:     logger.With(zap.String("collection", collection.Key())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RecordService[T, P]) List(_ context.Context) []T {
	items := s.collection.All()
	if s.less != nil {
		sort.SliceStable(items, func(i, j int) bool { return s.less(items[i], items[j]) })
	}
	return items
}

func (s *RecordService[T, P]) Find(_ context.Context, id int) (*T, error) {
	items := s.collection.All()
	idx := indexOfRecord[T, P](items, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	return &items[idx], nil
}

func (s *RecordService[T, P]) Create(ctx context.Context, in dto.RecordInput[T]) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection.All()
	item := in.ToEntity()
	if err := s.check(ctx, &item); err != nil {
		return nil, err
	}
	P(&item).SetID(nextID[T, P](items))

	_ = s.collection.Replace(ctx, append(items, item))
	s.logger.Info("record created", zap.Int("id", P(&item).GetID()))
	return &item, nil
}

// Update replaces the whole record, keeping its id.
func (s *RecordService[T, P]) Update(ctx context.Context, id int, in dto.RecordInput[T]) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection.All()
	idx := indexOfRecord[T, P](items, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	item := in.ToEntity()
	P(&item).SetID(id)
	if err := s.check(ctx, &item); err != nil {
		return nil, err
	}

	items[idx] = item
	_ = s.collection.Replace(ctx, items)
	return &item, nil
}

func (s *RecordService[T, P]) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.collection.All()
	idx := indexOfRecord[T, P](items, id)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	_ = s.collection.Replace(ctx, slices.Delete(items, idx, idx+1))
	s.logger.Info("record deleted", zap.Int("id", id))
	return nil
}

func (s *RecordService[T, P]) check(ctx context.Context, item *T) error {
	if s.prepare != nil {
		s.prepare(P(item))
	}
	if s.validate != nil {
		return s.validate(ctx, *item)
	}
	return nil
}

func indexOfRecord[T any, P entities.Identifiable[T]](items []T, id int) int {
	for i := range items {
		if P(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// nextID is one past the largest id in items.
func nextID[T any, P entities.Identifiable[T]](items []T) int {
	highest := 0
	for i := range items {
		highest = max(highest, P(&items[i]).GetID())
	}
	return highest + 1
}
