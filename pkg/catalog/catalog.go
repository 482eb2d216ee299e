package catalog

import (
	"sort"
	"sync"

	"github.com/arthur-debert/modulify/pkg/errors"
)

// Catalog is a thread-safe store of items keyed by name. Kind names what
// the items are, as it appears in error messages ("codec", ...).
type Catalog[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty catalog of the given kind.
func New[T any](kind string) *Catalog[T] {
	return &Catalog[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Kind returns the item kind given to New.
func (c *Catalog[T]) Kind() string {
	return c.kind
}

// Register adds item under name. Names are unique.
func (c *Catalog[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", c.kind).
			WithDetail("kind", c.kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "%s %q is already registered", c.kind, name).
			WithDetails(map[string]interface{}{"kind": c.kind, "name": name})
	}

	c.items[name] = item
	return nil
}

// Get returns the item registered under name. A miss is ErrNotFound
// carrying the registered names in the "available" detail.
func (c *Catalog[T]) Get(name string) (T, error) {
	c.mu.RLock()
	item, exists := c.items[name]
	c.mu.RUnlock()

	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "unknown %s %q", c.kind, name).
			WithDetails(map[string]interface{}{"kind": c.kind, "name": name, "available": c.List()})
	}
	return item, nil
}

// List returns all registered names, sorted.
func (c *Catalog[T]) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
