package kvstore

import (
	"errors"
	"testing"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

func TestSetGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := store.Set("cart-storage", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get("cart-storage")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	store, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.Get("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	store, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set("k", []byte("old")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set("k", []byte("new")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	store, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Delete("nope"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get("k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
