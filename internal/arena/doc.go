// Package arena provides a generation-checked handle table.
//
// An Arena stores values in slots and hands out a Handle for each one. A
// handle is a slot index plus the generation the slot had when the value
// was inserted. Removing a value bumps the slot generation, so a stale
// handle held after removal never resolves to a value inserted later into
// the same slot.
//
//	a := arena.New[string]()
//	h := a.Insert("polygon")
//	v, ok := a.Get(h)
//	a.Remove(h)
//	_, ok = a.Get(h) // false
//
// # Ordering
//
// Each insertion is stamped with a monotonic tick. All walks values in
// insertion order, which callers use as draw order.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Callers own it from a single
// goroutine, the same way a canvas is driven from one UI thread.
package arena
