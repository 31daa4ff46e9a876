// File: database/repository/store.go
package repository

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Record is anything a Collection can hold.
type Record interface {
	GetID() int
}

// recordPtr lets Collection call the pointer-receiver hooks of T.
type recordPtr[T any] interface {
	*T
	Record
	SetID(id int)
	Touch(now time.Time, created bool)
}

// Collection is an ordered, mutex-guarded set of records with a monotonic id counter.
// Ids are never reused, even after Delete.
type Collection[T any, P recordPtr[T]] struct {
	mu      sync.RWMutex
	items   []T
	counter int
	now     func() time.Time
}

// NewCollection builds an empty collection. Seed records keep their ids and
// advance the counter past the largest one.
func NewCollection[T any, P recordPtr[T]](seed ...T) *Collection[T, P] {
	c := &Collection[T, P]{now: time.Now}
	for _, item := range seed {
		c.items = append(c.items, item)
		if id := P(&item).GetID(); id > c.counter {
			c.counter = id
		}
	}
	return c
}

// SetClock overrides the timestamp source. Used by tests.
func (c *Collection[T, P]) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Create assigns the next id, stamps creation timestamps and appends the record.
func (c *Collection[T, P]) Create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	p := P(&item)
	p.SetID(c.counter)
	p.Touch(c.now(), true)
	c.items = append(c.items, item)
	return item
}

// Upsert applies mutate to the record with the given id, or inserts fallback()
// under that id when none exists. Both paths run under a single write lock.
func (c *Collection[T, P]) Upsert(id int, mutate func(*T), fallback func() T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		item := c.items[i]
		mutate(&item)
		P(&item).Touch(c.now(), false)
		c.items[i] = item
		return item, false
	}
	item := fallback()
	p := P(&item)
	p.SetID(id)
	p.Touch(c.now(), true)
	if id > c.counter {
		c.counter = id
	}
	c.items = append(c.items, item)
	return item, true
}

// List returns a snapshot copy in insertion order.
func (c *Collection[T, P]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// FindByID returns a copy of the record with the given id.
func (c *Collection[T, P]) FindByID(id int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, ErrNotFound
}

// Update applies mutate to the stored record under the write lock and refreshes
// its modification timestamp. mutate must not block.
func (c *Collection[T, P]) Update(id int, mutate func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	item := c.items[i]
	mutate(&item)
	P(&item).Touch(c.now(), false)
	c.items[i] = item
	return item, nil
}

// Delete removes and returns the record with the given id.
func (c *Collection[T, P]) Delete(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return removed, nil
}

// Len reports the number of stored records.
func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// indexOf must be called with the lock held.
func (c *Collection[T, P]) indexOf(id int) int {
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}
