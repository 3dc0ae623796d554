package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps a session key to that shopper's cart store. Stores are
// created lazily on first access and live for the duration of the process;
// carts are not durable across restarts.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get returns the store bound to key, creating it if absent.
func (r *Registry) Get(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.stores[key]
	if !ok {
		st = NewStore()
		r.stores[key] = st
	}
	return st
}

// Drop discards the store bound to key, if any. Used on logout so a guest
// landing on the same browser does not inherit the previous shopper's cart.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, key)
}

// Len reports how many carts are currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// NewGuestKey mints an opaque key for a shopper with no backend session. The
// key travels in a cookie and only ever indexes this registry.
func NewGuestKey() string {
	return "guest-" + uuid.NewString()
}
