// Package store provides the device-local key-value record store backing
// all persisted student data.
package store

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrStorageFull is returned by Set when a write would exceed the
// configured storage quota. The attempted write is not applied.
var ErrStorageFull = errors.New("storage quota exceeded")

// Store is a synchronous key-value store. Keys are opaque strings; values
// are YAML-encoded Go values. There is no multi-key atomicity: callers
// that delete related keys must order deletes so a partial failure leaves
// only harmless orphans behind.
type Store interface {
	// Get decodes the value stored under key into out. It reports whether
	// the key was present.
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	// ListKeys returns all keys with the given prefix, sorted.
	ListKeys(prefix string) ([]string, error)
}

// FileStore stores each key as one YAML file inside a directory. Key names
// are escaped so that identity keys containing "@", ":" or "/" map to
// valid file names and back.
type FileStore struct {
	dir        string
	quotaBytes int64
}

// NewFileStore creates the data directory if needed. A quota of zero means
// unlimited storage.
func NewFileStore(dir string, quotaBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	return &FileStore{dir: dir, quotaBytes: quotaBytes}, nil
}

const fileExtension = ".yml"

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+fileExtension)
}

// Get decodes the value stored under key into out.
func (s *FileStore) Get(key string, out any) (bool, error) {
	file, err := os.Open(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("os.Open(%s) > %w", s.path(key), err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(out); err != nil {
		return false, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	return true, nil
}

// Set encodes value as YAML and writes it under key. The write fails with
// ErrStorageFull when it would push total usage beyond the quota.
func (s *FileStore) Set(key string, value any) error {
	encoded, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}

	if s.quotaBytes > 0 {
		used, err := s.usedBytes()
		if err != nil {
			return err
		}
		var replaced int64
		if info, err := os.Stat(s.path(key)); err == nil {
			replaced = info.Size()
		}
		if used-replaced+int64(len(encoded)) > s.quotaBytes {
			return fmt.Errorf("set %q (%d bytes): %w", key, len(encoded), ErrStorageFull)
		}
	}

	if err := os.WriteFile(s.path(key), encoded, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path(key), err)
	}
	return nil
}

// Delete removes the key. Absent keys are a no-op.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove(%s) > %w", s.path(key), err)
	}
	return nil
}

// ListKeys returns every stored key starting with prefix, sorted.
func (s *FileStore) ListKeys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", s.dir, err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(entry.Name(), fileExtension))
		if err != nil {
			// Not a file written by this store.
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) usedBytes() (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("os.ReadDir(%s) > %w", s.dir, err)
	}
	var total int64
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.IsDir() {
			total += info.Size()
		}
	}
	return total, nil
}
