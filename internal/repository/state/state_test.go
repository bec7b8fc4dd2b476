package state

import (
	"testing"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type memKV struct {
	values map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.values[key] = value
	return nil
}

func TestLoadAbsentReturnsZeroValue(t *testing.T) {
	repo := New[[]domain.CartLine](newMemKV(), "cart-storage", nil)
	lines, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected nil state, got %+v", lines)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := newMemKV()
	repo := New[[]domain.CartLine](kv, "cart-storage", nil)

	in := []domain.CartLine{{ProductID: "1", Name: "Classic Tee", Price: 620, Quantity: 2, Size: "M"}}
	if err := repo.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSingletonState(t *testing.T) {
	kv := newMemKV()
	repo := New[domain.UserProfile](kv, "user-profile", nil)

	if err := repo.Save(domain.UserProfile{FirstName: "Mona", City: "Cairo"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.FirstName != "Mona" || got.City != "Cairo" {
		t.Fatalf("unexpected profile %+v", got)
	}
}
