package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/luminaweb/backend/internal/domain"
)

// keyFileRegex restricts keys to filesystem-safe names.
var keyFileRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// FileStore persists each key as a JSON file under a base directory. It is
// the server-side analog of browser local storage: a handful of small keys
// that must survive a restart.
type FileStore struct {
	baseDir string
	mutex   sync.Mutex
}

// NewFileStore creates a file-backed state store rooted at baseDir,
// creating the directory if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Get retrieves a value from the store
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return data, nil
}

// Set stores a value under the given key. The write goes through a temp file
// and rename so a crash never leaves a half-written snapshot.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes a key from the store. Deleting an absent key is a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// keyPath maps a key to its file path, rejecting names that could escape
// the base directory.
func (s *FileStore) keyPath(key string) (string, error) {
	if !keyFileRegex.MatchString(key) {
		return "", fmt.Errorf("%w: invalid state key %q", domain.ErrInvalidRequest, key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}
