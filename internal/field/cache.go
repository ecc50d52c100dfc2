package field

import (
	"sync"

	"github.com/vk/formbridge/internal/form"
	"github.com/vk/formbridge/internal/offline"
	"github.com/vk/formbridge/internal/storage"
)

// Cache hands out field handles for one form session, guaranteeing identity
// stability: Get with the same name always returns the same *Handle.
// Handles are never evicted; they live as long as the session.
type Cache struct {
	form    form.Form
	stores  Stores
	mu      sync.Mutex
	handles []*Handle
	lookups []*LookupHandle
}

// Stores bundles what a lookup handle's write path needs: the execution
// mode, both record stores and the availability check.
type Stores struct {
	Mode         offline.Mode
	Connected    storage.Store
	Disconnected storage.Store
	Checker      offline.Checker
}

// NewCache creates a cache over the given live form. stores may be the zero
// value when no lookup handle will ever write.
func NewCache(f form.Form, stores Stores) *Cache {
	return &Cache{form: f, stores: stores}
}

// Get returns the handle for name, creating and registering it on first
// request. The scan is ordered and the list append-only, so repeated calls
// are stable.
func (c *Cache) Get(name string) *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range c.handles {
		if h.name == name {
			return h
		}
	}
	h := newHandle(name, c.form)
	c.handles = append(c.handles, h)
	return h
}

// Lookup returns the lookup handle for name, creating it on first request
// with a fresh capability resolver. Identity is guaranteed the same way as
// Get; plain and lookup handles are registered independently.
func (c *Cache) Lookup(name string) *LookupHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range c.lookups {
		if h.name == name {
			return h
		}
	}
	h := &LookupHandle{
		Handle: newHandle(name, c.form),
		resolver: offline.NewResolver(
			c.stores.Mode,
			c.stores.Connected,
			c.stores.Disconnected,
			c.stores.Checker,
		),
	}
	c.lookups = append(c.lookups, h)
	return h
}
