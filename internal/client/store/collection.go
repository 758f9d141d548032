// Package store keeps the client-side caches of the backend's collections.
// Each store owns one list plus loading/error flags and synchronizes it with
// the server: reads replace the list wholesale, writes patch it in place by
// id only after the server has confirmed. Nothing here is speculative except
// chat (see ChatStore.Send).
package store

import (
	"context"
	"sync"
)

// Entity is anything with a stable server-assigned identity.
type Entity interface {
	EntityID() string
}

// Collection is the shared state unit behind every entity store: the cached
// list, a loading flag, the last fetch error, and a fetch generation counter.
//
// The generation counter closes the stale-overwrite hole of overlapping
// fetches: each Fetch call takes a new generation, and a response only lands
// if its generation is still the newest issued. Last call wins, not last
// response.
type Collection[T Entity] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     error
	gen     uint64
}

// Items returns a copy of the cached list in display order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Loading reports whether the newest fetch is still in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the newest fetch's error, or nil. A failed fetch keeps the
// previously cached items visible alongside this error.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Get returns the cached item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// beginFetch marks the collection loading, clears the error, and returns the
// new fetch generation.
func (c *Collection[T]) beginFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.loading = true
	c.err = nil
	return c.gen
}

// endFetch installs the outcome of the fetch with generation gen. Outcomes
// of superseded generations are dropped entirely; their loading flag belongs
// to the newer call. Reports whether the outcome was installed.
func (c *Collection[T]) endFetch(gen uint64, items []T, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.loading = false
	if err != nil {
		c.err = err
		return true
	}
	c.items = items
	return true
}

// fetchInto is the shared fetch path: mark loading, load, install. The
// loading flag is always cleared for the newest call, success or failure.
func fetchInto[T Entity](ctx context.Context, c *Collection[T], load func(context.Context) ([]T, error)) error {
	gen := c.beginFetch()
	items, err := load(ctx)
	c.endFetch(gen, items, err)
	return err
}

// prepend puts a freshly created item at the front: new items surface first.
func (c *Collection[T]) prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// push appends at the end, for chronological lists (chat).
func (c *Collection[T]) push(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// replaceByID swaps the item with the given id in place, preserving the
// order of everything else.
func (c *Collection[T]) replaceByID(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// patchByID mutates the item with the given id in place.
func (c *Collection[T]) patchByID(id string, patch func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			patch(&c.items[i])
			return true
		}
	}
	return false
}

// removeByID deletes the item with the given id, preserving order.
func (c *Collection[T]) removeByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// reset drops all cached items.
func (c *Collection[T]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
