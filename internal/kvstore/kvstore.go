// Package kvstore is a flat file-per-key store. It backs the snapshot
// fallback and the persisted controller state, so it deliberately has no
// dependency on the embedded database: it must keep working when that engine
// cannot be opened.
package kvstore

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type Store struct {
	dir    string
	logger *log.Logger
}

// Open creates the backing directory if needed and returns a Store over it.
func Open(dir string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("kvstore: get key=%s error=%v", key, err)
		return nil, err
	}
	return data, nil
}

// Set writes value under key. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated value behind.
func (s *Store) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		s.logger.Printf("kvstore: set key=%s error=%v", key, err)
		return err
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(key string) string {
	// Keys are fixed application constants, but keep path separators out of
	// filenames anyway.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
