// Package state persists whole controller-state blobs. Each controller owns
// one Repository under its own key and rewrites the full value on every
// mutation; there is no incremental persistence.
package state

import (
	"encoding/json"
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type keyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

type Repository[T any] struct {
	kv     keyValueStore
	key    string
	logger *log.Logger
}

func New[T any](kv keyValueStore, key string, logger *log.Logger) *Repository[T] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Repository[T]{kv: kv, key: key, logger: logger}
}

// Load returns the stored state, or the zero value when nothing has been
// persisted yet.
func (r *Repository[T]) Load() (T, error) {
	var value T
	raw, err := r.kv.Get(r.key)
	if err != nil {
		if err == domain.ErrNotFound {
			return value, nil
		}
		return value, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		r.logger.Printf("state repo: decode key=%s error=%v", r.key, err)
		return value, err
	}
	return value, nil
}

func (r *Repository[T]) Save(value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.kv.Set(r.key, raw); err != nil {
		r.logger.Printf("state repo: save key=%s error=%v", r.key, err)
		return err
	}
	return nil
}
