package wishlist

import "testing"

type stubRepo struct {
	stored    []string
	saveCalls int
}

func (s *stubRepo) Load() ([]string, error) { return s.stored, nil }

func (s *stubRepo) Save(ids []string) error {
	s.stored = append([]string(nil), ids...)
	s.saveCalls++
	return nil
}

func TestToggleFlipsMembership(t *testing.T) {
	repo := &stubRepo{}
	svc, err := New(repo, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := svc.Toggle("1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !svc.IsWishlisted("1") {
		t.Fatalf("expected product wishlisted")
	}

	if err := svc.Toggle("1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if svc.IsWishlisted("1") {
		t.Fatalf("expected product removed")
	}
	if repo.saveCalls != 2 {
		t.Fatalf("expected 2 persisted writes, got %d", repo.saveCalls)
	}
}

func TestIDsSortedAndDeduplicated(t *testing.T) {
	svc, err := New(&stubRepo{stored: []string{"2", "1", "2"}}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := svc.IDs()
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("unexpected ids %v", got)
	}
}

func TestDanglingIDsTolerated(t *testing.T) {
	svc, err := New(&stubRepo{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := svc.Toggle("no-such-product"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !svc.IsWishlisted("no-such-product") {
		t.Fatalf("dangling id must still be storable")
	}
}
