package filestorage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalFileStorage(dir)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC) }

	p, err := s.Save(ctx, strings.NewReader("점검 보고서"), "Report.PDF", "documents", "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "documents/2025/06/02/2025-06-02-"), p)
	assert.True(t, strings.HasSuffix(p, ".pdf"), p)

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
	require.NoError(t, err)

	rc, err := s.Open(ctx, p)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "점검 보고서", string(data))

	require.NoError(t, s.Delete(ctx, p))
	_, err = s.Open(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Delete(ctx, p), "deleting twice is not an error")
}

func TestLocalFileStorage_StaysInsideBase(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	base := filepath.Join(root, "uploads")
	s, err := NewLocalFileStorage(base)
	require.NoError(t, err)

	outside := filepath.Join(root, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	_, err = s.Open(ctx, "../secret.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Delete(ctx, "../secret.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
