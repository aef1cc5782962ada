package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Open when no object is stored under the path.
var ErrNotFound = errors.New("file not found")

// FileStorageInterface stores uploaded bytes under generated, prefix-scoped paths.
type FileStorageInterface interface {
	Save(ctx context.Context, file io.Reader, originalFileName, prefix, contentType string) (filePath string, err error)
	Open(ctx context.Context, filePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, filePath string) error
}

type LocalFileStorage struct {
	basePath string
	now      func() time.Time
}

func NewLocalFileStorage(basePath string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalFileStorage{basePath: basePath, now: time.Now}, nil
}

func (s *LocalFileStorage) Save(_ context.Context, file io.Reader, originalFileName, prefix, _ string) (string, error) {
	rel := objectPath(s.now(), originalFileName, prefix)
	full := filepath.Join(s.basePath, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(full)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(full)
		return "", err
	}
	return rel, nil
}

func (s *LocalFileStorage) Open(_ context.Context, filePath string) (io.ReadCloser, error) {
	full, err := s.resolve(filePath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// Delete treats a missing file as already deleted.
func (s *LocalFileStorage) Delete(_ context.Context, filePath string) error {
	full, err := s.resolve(filePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// resolve keeps stored paths inside basePath.
func (s *LocalFileStorage) resolve(filePath string) (string, error) {
	clean := path.Clean("/" + strings.TrimPrefix(filePath, "/uploads/"))
	if clean == "/" {
		return "", ErrNotFound
	}
	return filepath.Join(s.basePath, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// objectPath builds "<prefix>/YYYY/MM/DD/YYYY-MM-DD-<uuid><ext>".
func objectPath(now time.Time, originalFileName, prefix string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	name := fmt.Sprintf("%s-%s%s", now.Format("2006-01-02"), uuid.New().String(), ext)
	return path.Join(prefix, now.Format("2006/01/02"), name)
}
