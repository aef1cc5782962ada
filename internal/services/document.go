package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/repositories"
	"facility-console/pkg/config"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/filestorage"
)

// UploadedFile is a file that already passed size and type checks.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentServiceInterface interface {
	ListDocuments(ctx context.Context, category string) []entities.Document
	FindDocument(ctx context.Context, id string) (*entities.Document, error)
	UploadDocument(ctx context.Context, d dto.UploadDocumentDTO, file UploadedFile) (*entities.Document, error)
	OpenDocument(ctx context.Context, id string) (*entities.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, id string) error
}

type DocumentService struct {
	repos   *repositories.Repositories
	storage filestorage.FileStorageInterface
	now     func() time.Time
	logger  *zap.Logger

	mu sync.Mutex
}

func NewDocumentService(repos *repositories.Repositories, storage filestorage.FileStorageInterface, now func() time.Time, logger *zap.Logger) *DocumentService {
	return &DocumentService{repos: repos, storage: storage, now: now, logger: logger}
}

func (s *DocumentService) ListDocuments(_ context.Context, category string) []entities.Document {
	out := make([]entities.Document, 0)
	for _, d := range s.repos.Documents.All() {
		if category == "" || d.Category == category {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out
}

func (s *DocumentService) FindDocument(_ context.Context, id string) (*entities.Document, error) {
	docs := s.repos.Documents.All()
	idx := indexOfDocument(docs, id)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}
	return &docs[idx], nil
}

func (s *DocumentService) UploadDocument(ctx context.Context, d dto.UploadDocumentDTO, file UploadedFile) (*entities.Document, error) {
	prefix := config.UploadContexts["document"].PathPrefix
	path, err := s.storage.Save(ctx, file.Body, file.Name, prefix, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := entities.Document{
		ID:          uuid.NewString(),
		Title:       d.Title,
		Category:    d.Category,
		FileName:    file.Name,
		Path:        path,
		ContentType: file.ContentType,
		Size:        file.Size,
		UploadedBy:  d.UploadedBy,
		UploadedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	_ = s.repos.Documents.Replace(ctx, append(s.repos.Documents.All(), doc))
	s.mu.Unlock()

	s.logger.Info("document uploaded", zap.String("id", doc.ID), zap.String("path", path), zap.Int64("size", doc.Size))
	return &doc, nil
}

func (s *DocumentService) OpenDocument(ctx context.Context, id string) (*entities.Document, io.ReadCloser, error) {
	doc, err := s.FindDocument(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Open(ctx, doc.Path)
	if err != nil {
		if errors.Is(err, filestorage.ErrNotFound) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("open document %s: %w", id, err)
	}
	return doc, rc, nil
}

// DeleteDocument drops the metadata first; a blob that cannot be removed is only logged.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	s.mu.Lock()
	docs := s.repos.Documents.All()
	idx := indexOfDocument(docs, id)
	if idx < 0 {
		s.mu.Unlock()
		return apperrors.ErrNotFound
	}
	doc := docs[idx]
	_ = s.repos.Documents.Replace(ctx, slices.Delete(docs, idx, idx+1))
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, doc.Path); err != nil {
		s.logger.Warn("document blob not removed", zap.String("id", id), zap.String("path", doc.Path), zap.Error(err))
	}
	return nil
}

func indexOfDocument(docs []entities.Document, id string) int {
	return slices.IndexFunc(docs, func(d entities.Document) bool { return d.ID == id })
}
