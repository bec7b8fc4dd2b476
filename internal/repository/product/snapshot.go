package product

import (
	"encoding/json"
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

// SnapshotKey is the fixed key holding the serialized catalog copy.
const SnapshotKey = "products"

type keyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// SnapshotStore keeps a lossy backup copy of the full catalog in the simple
// key-value store. It is written after every successful primary load and read
// only when the primary store is unavailable.
type SnapshotStore struct {
	kv     keyValueStore
	logger *log.Logger
}

func NewSnapshotStore(kv keyValueStore, logger *log.Logger) *SnapshotStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SnapshotStore{kv: kv, logger: logger}
}

// Load returns the last saved catalog copy. An absent snapshot is an empty
// catalog, not an error.
func (s *SnapshotStore) Load() ([]domain.Product, error) {
	raw, err := s.kv.Get(SnapshotKey)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		s.logger.Printf("snapshot store: decode error=%v", err)
		return nil, err
	}
	return products, nil
}

func (s *SnapshotStore) Save(products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	if err := s.kv.Set(SnapshotKey, raw); err != nil {
		s.logger.Printf("snapshot store: save count=%d error=%v", len(products), err)
		return err
	}
	return nil
}
