package account

import (
	"errors"
	"testing"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type stubRepo struct {
	stored []domain.Account
}

func (s *stubRepo) Load() ([]domain.Account, error) { return s.stored, nil }

func (s *stubRepo) Save(accounts []domain.Account) error {
	s.stored = append([]domain.Account(nil), accounts...)
	return nil
}

func newService(t *testing.T) (*Service, *stubRepo) {
	t.Helper()
	repo := &stubRepo{}
	svc, err := New(repo, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newService(t)

	if err := svc.Register("Mona@Example.com", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(repo.stored) != 1 || repo.stored[0].Email != "mona@example.com" {
		t.Fatalf("account not persisted normalized: %+v", repo.stored)
	}
	if err := svc.Login("mona@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newService(t)

	if err := svc.Register("mona@example.com", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := svc.Register("MONA@example.com", "another1")
	if !errors.Is(err, domain.ErrDuplicateCredential) {
		t.Fatalf("expected duplicate credential, got %v", err)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("account store changed on rejected registration")
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Register("not-an-email", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Register("mona@example.com", "12345"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginMismatch(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.Register("mona@example.com", "secret1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Login("mona@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err := svc.Login("nobody@example.com", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
