package cache

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func tempCache(t *testing.T) *FileCache[snapshot] {
	t.Helper()
	t.Setenv("DATA_ROOT", t.TempDir())
	return NewFileCache[snapshot]("snapshots")
}

func TestFileCacheRoundTrip(t *testing.T) {
	fc := tempCache(t)
	key := fc.GenerateKey("riverbend", "north", 2024)

	_, ok := fc.Get(key)
	assert.False(t, ok, "nothing cached yet")

	stored := snapshot{Name: "north", Values: []float64{0.2, 0.4, 0.8}}
	require.NoError(t, fc.Set(key, stored))

	loaded, ok := fc.Get(key)
	require.True(t, ok)
	assert.Equal(t, stored, loaded)
}

func TestFileCacheGenerateKey(t *testing.T) {
	fc := tempCache(t)

	assert.Equal(t, fc.GenerateKey("a", 1, 2.5), fc.GenerateKey("a", 1, 2.5))
	assert.NotEqual(t, fc.GenerateKey("a", 1), fc.GenerateKey("a", 2))
	assert.Len(t, fc.GenerateKey("a"), 40)
}

func TestFileCacheCorruptedEntryIsAMiss(t *testing.T) {
	fc := tempCache(t)
	key := fc.GenerateKey("corrupted")
	require.NoError(t, fc.Set(key, snapshot{Name: "ok"}))

	cacheFile := fc.entryPath(key)
	require.NoError(t, os.WriteFile(cacheFile, []byte("{not json"), 0644))

	_, ok := fc.Get(key)
	assert.False(t, ok)
}

func TestFileCacheChecksumMismatchIsAMiss(t *testing.T) {
	fc := tempCache(t)
	key := fc.GenerateKey("tampered")
	require.NoError(t, fc.Set(key, snapshot{Name: "original"}))

	cacheFile := fc.entryPath(key)
	data, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	tampered := strings.Replace(string(data), `"original"`, `"tampered"`, 1)
	require.NoError(t, os.WriteFile(cacheFile, []byte(tampered), 0644))

	_, ok := fc.Get(key)
	assert.False(t, ok, "edited payload no longer matches its checksum")
}

func TestFileCacheSetOverwrites(t *testing.T) {
	fc := tempCache(t)
	key := fc.GenerateKey("versioned")

	require.NoError(t, fc.Set(key, snapshot{Name: "first"}))
	require.NoError(t, fc.Set(key, snapshot{Name: "second"}))

	loaded, ok := fc.Get(key)
	require.True(t, ok)
	assert.Equal(t, "second", loaded.Name)
}
