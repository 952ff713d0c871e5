package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_StoreAndDelete(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	content := "hello world"

	err = s.Store(ctx, "abc123.pdf", strings.NewReader(content), int64(len(content)), "application/pdf")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(s.root, "abc123.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	require.NoError(t, s.Delete(ctx, "abc123.pdf"))

	_, err = os.Stat(filepath.Join(s.root, "abc123.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteAbsentIsNotAnError(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "never-stored.pdf"))
}

func TestLocalStore_KeysNeverEscapeRoot(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocal(filepath.Join(dir, "objects"))
	require.NoError(t, err)

	content := "x"
	err = s.Store(context.Background(), "../../escape.pdf", strings.NewReader(content), 1, "application/pdf")
	require.NoError(t, err)

	// The object lands inside the root no matter what the key looks like
	_, err = os.Stat(filepath.Join(dir, "objects", "escape.pdf"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "escape.pdf"))
	assert.True(t, os.IsNotExist(err))
}
