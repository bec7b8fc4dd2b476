package orders

import (
	"testing"
	"time"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type stubRepo struct {
	stored []domain.Order
}

func (s *stubRepo) Load() ([]domain.Order, error) { return s.stored, nil }

func (s *stubRepo) Save(orders []domain.Order) error {
	s.stored = append([]domain.Order(nil), orders...)
	return nil
}

func TestAddPrependsNewestFirst(t *testing.T) {
	repo := &stubRepo{}
	svc, err := New(repo, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := domain.Order{ID: "a", Date: time.Now().Add(-time.Hour), Total: 10}
	second := domain.Order{ID: "b", Date: time.Now(), Total: 20}
	if err := svc.Add(first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Add(second); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := svc.List()
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("history not newest first: %+v", got)
	}
	if len(repo.stored) != 2 {
		t.Fatalf("history not persisted")
	}
}

func TestClear(t *testing.T) {
	repo := &stubRepo{stored: []domain.Order{{ID: "a"}}}
	svc, err := New(repo, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(svc.List()) != 0 || len(repo.stored) != 0 {
		t.Fatalf("history not cleared")
	}
}

func TestListReturnsCopy(t *testing.T) {
	svc, err := New(&stubRepo{stored: []domain.Order{{ID: "a", Total: 10}}}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := svc.List()
	got[0].Total = 999
	if svc.List()[0].Total != 10 {
		t.Fatalf("List must not expose internal state")
	}
}
