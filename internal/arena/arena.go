package arena

import (
	"fmt"
	"sort"
)

// Handle identifies a value stored in an Arena.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String returns a compact "index:generation" form for logs.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.gen)
}

// Arena is a slot table of values addressed by Handle.
type Arena[V any] struct {
	slots []slot[V]
	free  []uint32
	live  int
	tick  int64 // Monotonic insertion counter
}

// slot holds a value with its generation and insertion tick.
type slot[V any] struct {
	value    V
	gen      uint32 // Odd while occupied
	inserted int64
}

// New creates an empty arena.
func New[V any]() *Arena[V] {
	return &Arena[V]{}
}

// Insert stores v and returns its handle.
func (a *Arena[V]) Insert(v V) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[V]{})
	}

	a.tick++
	s := &a.slots[idx]
	s.gen++
	s.value = v
	s.inserted = a.tick
	a.live++

	return Handle{index: idx, gen: s.gen}
}

// Get returns the value for h.
// Returns (zero, false) if h is stale or was never issued.
func (a *Arena[V]) Get(h Handle) (V, bool) {
	s := a.lookup(h)
	if s == nil {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Set replaces the value for a live handle.
// Returns false if h is stale.
func (a *Arena[V]) Set(h Handle, v V) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	s.value = v
	return true
}

// Remove deletes the value for h.
// Returns false if h is stale.
func (a *Arena[V]) Remove(h Handle) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	var zero V
	s.value = zero
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live values.
func (a *Arena[V]) Len() int {
	return a.live
}

// All returns the live handles in insertion order.
func (a *Arena[V]) All() []Handle {
	type entry struct {
		h    Handle
		tick int64
	}
	entries := make([]entry, 0, a.live)
	for i := range a.slots {
		s := &a.slots[i]
		if s.gen%2 == 1 {
			entries = append(entries, entry{Handle{index: uint32(i), gen: s.gen}, s.inserted})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].tick < entries[j].tick
	})

	handles := make([]Handle, len(entries))
	for i, e := range entries {
		handles[i] = e.h
	}
	return handles
}

// Clear removes every value. Outstanding handles become stale.
func (a *Arena[V]) Clear() {
	for _, h := range a.All() {
		a.Remove(h)
	}
}

func (a *Arena[V]) lookup(h Handle) *slot[V] {
	if h.gen == 0 || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s
}

// Uint64 packs h into a single integer. The zero Handle packs to 0.
func (h Handle) Uint64() uint64 {
	return uint64(h.index)<<32 | uint64(h.gen)
}

// FromUint64 unpacks a value produced by Handle.Uint64.
func FromUint64(v uint64) Handle {
	return Handle{index: uint32(v >> 32), gen: uint32(v)}
}
