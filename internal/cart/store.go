package cart

import (
	"sync"

	"medicare-gateway/internal/domain"
)

// Store holds the items a single shopper intends to purchase. Entries keep
// insertion order for display; at most one entry exists per product ID.
//
// Quantity writes never fail: out-of-range input is clamped to [1, stock].
// The UI disables the +/- affordances at the bounds, so a clamped write is
// the expected steady state, not an error. Real stock availability is only
// validated by the order backend at submission time.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// AddItem inserts item into the cart. If an entry with the same product ID
// already exists its quantity is incremented by item.Quantity, clamped to the
// existing entry's stock ceiling; otherwise item is appended with its
// quantity clamped to [1, stock]. The resulting entry is returned so callers
// can observe whether the requested quantity was clamped.
func (s *Store) AddItem(item domain.CartItem) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity = clamp(s.items[i].Quantity+item.Quantity, 1, s.items[i].Stock)
			return s.items[i]
		}
	}

	item.Quantity = clamp(item.Quantity, 1, item.Stock)
	s.items = append(s.items, item)
	return item
}

// RemoveItem deletes the entry with the given product ID. Removing an absent
// ID is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// IncrementQuantity raises the entry's quantity by one, capped at its stock
// ceiling. Unknown IDs and entries already at the ceiling are no-ops.
func (s *Store) IncrementQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = clamp(s.items[i].Quantity+1, 1, s.items[i].Stock)
			return
		}
	}
}

// DecrementQuantity lowers the entry's quantity by one, floored at 1.
// Deleting the last unit is RemoveItem's job, not decrement's.
func (s *Store) DecrementQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = clamp(s.items[i].Quantity-1, 1, s.items[i].Stock)
			return
		}
	}
}

// Clear empties the cart. Called after successful order placement or an
// explicit user action.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns the cart entries in insertion order. The slice is a copy;
// mutating it does not affect the store.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// SubtotalCents is the sum of price x quantity over all entries.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, it := range s.items {
		total += it.LineTotalCents()
	}
	return total
}

// TotalQuantity is the sum of quantities over all entries, as shown on the
// header badge.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Len reports the number of distinct products in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
