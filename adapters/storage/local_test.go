package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLocalStoreSaveAndExists(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.False(t, store.Exists("session.mp3"))

	require.NoError(t, store.Save("session.mp3", []byte("mpeg-data")))
	assert.True(t, store.Exists("session.mp3"))
}

func TestLocalStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStore(root, "/uploads", zaptest.NewLogger(t))
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStoreRandomExisting(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads", zaptest.NewLogger(t))
	require.NoError(t, err)

	_, ok := store.RandomExisting()
	assert.False(t, ok)

	require.NoError(t, store.Save("a.mp3", []byte("x")))
	require.NoError(t, store.Save("notes.txt", []byte("not audio")))

	name, ok := store.RandomExisting()
	require.True(t, ok)
	assert.Equal(t, "a.mp3", name)
}

func TestLocalStoreURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads/", zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/session.mp3", store.URL("session.mp3"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	assert.False(t, store.Exists("a.mp3"))
	_, ok := store.RandomExisting()
	assert.False(t, ok)

	require.NoError(t, store.Save("a.mp3", []byte("x")))
	assert.True(t, store.Exists("a.mp3"))
	assert.Equal(t, 1, store.Len())

	name, ok := store.RandomExisting()
	require.True(t, ok)
	assert.Equal(t, "a.mp3", name)
	assert.Equal(t, "/uploads/a.mp3", store.URL("a.mp3"))
}
