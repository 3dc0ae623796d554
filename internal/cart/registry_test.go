package cart

import (
	"testing"

	"medicare-gateway/internal/domain"
)

func TestRegistryGetCreatesOnce(t *testing.T) {
	r := NewRegistry()
	a := r.Get("key-1")
	b := r.Get("key-1")
	if a != b {
		t.Fatalf("expected same store for same key")
	}
	if r.Len() != 1 {
		t.Fatalf("expected one store, got %d", r.Len())
	}
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()
	r.Get("key-1").AddItem(domain.CartItem{ID: "p1", Quantity: 1, Stock: 5})
	if got := r.Get("key-2").TotalQuantity(); got != 0 {
		t.Fatalf("expected empty cart for other session, got %d", got)
	}
}

func TestRegistryDrop(t *testing.T) {
	r := NewRegistry()
	r.Get("key-1").AddItem(domain.CartItem{ID: "p1", Quantity: 2, Stock: 5})
	r.Drop("key-1")
	if got := r.Get("key-1").TotalQuantity(); got != 0 {
		t.Fatalf("expected fresh store after drop, got quantity %d", got)
	}
	// dropping an unknown key is a no-op
	r.Drop("missing")
}

func TestNewGuestKeyUnique(t *testing.T) {
	a := NewGuestKey()
	b := NewGuestKey()
	if a == b {
		t.Fatalf("expected distinct guest keys")
	}
	if a == "" {
		t.Fatalf("expected non-empty key")
	}
}
