package cachedir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	t.Parallel()

	cache := New(filepath.Join(t.TempDir(), "cache"))

	_, ok := cache.Get("http://example.com/a")
	assert.False(t, ok, "miss expected on a fresh cache")

	require.NoError(t, cache.Put("http://example.com/a", []byte(`{"ok":true}`)))

	got, ok := cache.Get("http://example.com/a")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"ok":true}`), got)

	// A different key maps to a different entry.
	_, ok = cache.Get("http://example.com/b")
	assert.False(t, ok)
}

func TestCache_NilSafe(t *testing.T) {
	t.Parallel()

	var cache *Cache
	_, ok := cache.Get("anything")
	assert.False(t, ok)
	assert.NoError(t, cache.Put("anything", []byte("x")))
}

func TestClean_EmptiesButKeepsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0o644))
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(filepath.Join(sub, "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "deeper", "blob"), []byte("x"), 0o644))

	require.NoError(t, Clean(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "directory should be emptied")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "directory itself must survive")
}

func TestClean_MissingPathIsNoOp(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Clean(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestClean_NonDirectoryIsNoOp(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.NoError(t, Clean(file))

	_, err := os.Stat(file)
	assert.NoError(t, err, "a non-directory target must be left alone")
}
