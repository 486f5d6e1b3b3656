package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/brief-flow/internal/logger"
)

type fileStore struct {
	dir string
	log logger.Logger
	mu  sync.Mutex
}

// NewFile returns a Store persisting each key as one JSON file under dir.
func NewFile(dir string, log logger.Logger) Store {
	return &fileStore{dir: dir, log: log}
}

func (s *fileStore) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	if !json.Valid(data) {
		// Corrupt content is treated as absent.
		s.log.Warn(ctx, "Discarding malformed state for key %q", key)
		return nil, false
	}
	return json.RawMessage(data), true
}

func (s *fileStore) Set(ctx context.Context, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn(ctx, "Failed to serialize state for key %q: %v", key, err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		s.log.Warn(ctx, "Failed to create state dir %s: %v", s.dir, err)
		return
	}

	// Write via temp file + rename so readers never see a partial blob.
	tmp, err := os.CreateTemp(s.dir, "."+s.fileName(key)+".*")
	if err != nil {
		s.log.Warn(ctx, "Failed to write state for key %q: %v", key, err)
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.log.Warn(ctx, "Failed to write state for key %q: %v", key, err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.log.Warn(ctx, "Failed to write state for key %q: %v", key, err)
		return
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		s.log.Warn(ctx, "Failed to store key %q: %v", key, err)
	}
}

func (s *fileStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Warn(ctx, "Failed to remove key %q: %v", key, err)
	}
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, s.fileName(key))
}

func (s *fileStore) fileName(key string) string {
	// Keys are internal constants, but keep them path-safe anyway.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return safe + ".json"
}
