package cache

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agrisight/agrisight-cli/internal/properties"
)

// Entry wraps a cached value with the bookkeeping its integrity check needs.
type Entry[T any] struct {
	Data      T         `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	Checksum  string    `json:"checksum"`
}

// FileCache persists JSON snapshots under the data root. Every entry carries
// an md5 checksum of its payload, a corrupted or tampered file reads back as
// a miss instead of bad data.
type FileCache[T any] struct {
	dir string
}

func NewFileCache[T any](subDir string) *FileCache[T] {
	return &FileCache[T]{dir: filepath.Join(properties.DataRoot(), "cache", subDir)}
}

// GenerateKey hashes the parameters into a stable file name.
func (fc *FileCache[T]) GenerateKey(params ...interface{}) string {
	h := sha1.New()
	for _, param := range params {
		fmt.Fprintf(h, "%v_", param)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (fc *FileCache[T]) Get(key string) (T, bool) {
	var zero T

	data, err := os.ReadFile(fc.entryPath(key))
	if err != nil {
		return zero, false
	}

	var entry Entry[T]
	if err := json.Unmarshal(data, &entry); err != nil {
		return zero, false
	}
	if entry.Checksum != checksum(entry.Data) {
		return zero, false
	}
	return entry.Data, true
}

func (fc *FileCache[T]) Set(key string, data T) error {
	if err := os.MkdirAll(fc.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %v", err)
	}

	entry := Entry[T]{
		Data:      data,
		CreatedAt: time.Now(),
		Checksum:  checksum(data),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %v", err)
	}

	// Write through a temp file so readers never see a half written entry.
	path := fc.entryPath(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0644); err != nil {
		return fmt.Errorf("failed to write temp cache file: %v", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp cache file: %v", err)
	}
	return nil
}

func (fc *FileCache[T]) entryPath(key string) string {
	return filepath.Join(fc.dir, key+".json")
}

func checksum[T any](data T) string {
	payload, _ := json.Marshal(data)
	sum := md5.Sum(payload)
	return hex.EncodeToString(sum[:])
}
