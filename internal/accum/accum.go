// Package accum coalesces per-frame property changes from concurrent
// animations into one pending write per target.
//
// Each animated property kind owns one Table. Animations contribute
// incremental steps during a frame; the scheduler then flushes the table once,
// so several animations moving the same item add up instead of overwriting
// each other.
package accum

import "github.com/gogpu/gg"

// Flush describes what a pending entry needs at the next flush.
type Flush uint8

const (
	// FlushNone means nothing is pending. The entry is kept but not written.
	FlushNone Flush = iota

	// FlushSnap requests a write truncated toward zero. Used while motion is
	// in progress and when motion starts or resets, so the value does not
	// jitter between neighbouring integers. The entry is kept afterwards.
	FlushSnap

	// FlushRound requests a final write rounded to the nearest integer. The
	// entry is dropped afterwards.
	FlushRound
)

// String returns the flag name.
func (f Flush) String() string {
	switch f {
	case FlushNone:
		return "None"
	case FlushSnap:
		return "Snap"
	case FlushRound:
		return "Round"
	default:
		return "Unknown"
	}
}

// Request is what a contributing animation asks of an existing entry.
type Request uint8

const (
	// RequestSnap marks the entry for a truncated write. Sent while the
	// animation is advancing or looping.
	RequestSnap Request = iota

	// RequestFinal marks the entry for a final rounded write unless another
	// contributor already armed a snap this frame. Sent when a non-looping
	// animation completes.
	RequestFinal

	// RequestReset forces a final rounded write so the entry is dropped and
	// reseeded at the start value on the next frame. Sent when a cycling
	// animation wraps around.
	RequestReset
)

// Entry is the pending change for one target.
type Entry struct {
	// Value is the accumulated absolute value. Scalar kinds use X only.
	Value gg.Point

	// Flush is the flag evaluated at the next flush.
	Flush Flush
}

// Table maps targets to pending entries, preserving first-seen order.
// A Table is not safe for concurrent use.
type Table[K comparable] struct {
	entries map[K]*Entry
	order   []K
}

// NewTable creates an empty table.
func NewTable[K comparable]() *Table[K] {
	return &Table[K]{entries: make(map[K]*Entry)}
}

// Contribute folds one animation's frame into the entry for key.
//
// When key has no entry yet, the entry is seeded at seed and flagged
// FlushSnap; step and req are ignored for that frame. Otherwise step is added
// to the accumulated value and req updates the flush flag.
func (t *Table[K]) Contribute(key K, seed, step gg.Point, req Request) {
	e, ok := t.entries[key]
	if !ok {
		t.entries[key] = &Entry{Value: seed, Flush: FlushSnap}
		t.order = append(t.order, key)
		return
	}

	e.Value = e.Value.Add(step)

	switch req {
	case RequestSnap:
		e.Flush = FlushSnap
	case RequestReset:
		e.Flush = FlushRound
	case RequestFinal:
		if e.Flush == FlushNone {
			e.Flush = FlushRound
		}
	}
}

// Flush hands every pending entry to apply in first-seen order, then clears
// snap flags and drops entries flushed with FlushRound. Entries with
// FlushNone are skipped and kept.
func (t *Table[K]) Flush(apply func(key K, value gg.Point, flag Flush)) {
	kept := t.order[:0]
	for _, key := range t.order {
		e := t.entries[key]
		switch e.Flush {
		case FlushNone:
			kept = append(kept, key)
		case FlushSnap:
			apply(key, e.Value, FlushSnap)
			e.Flush = FlushNone
			kept = append(kept, key)
		case FlushRound:
			apply(key, e.Value, FlushRound)
			delete(t.entries, key)
		}
	}
	clear(t.order[len(kept):])
	t.order = kept
}

// Delete drops the entry for key, discarding any pending change.
func (t *Table[K]) Delete(key K) {
	if _, ok := t.entries[key]; !ok {
		return
	}
	delete(t.entries, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Lookup returns a copy of the entry for key.
func (t *Table[K]) Lookup(key K) (Entry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of entries, pending or idle.
func (t *Table[K]) Len() int {
	return len(t.order)
}

// Reset drops all entries.
func (t *Table[K]) Reset() {
	clear(t.entries)
	clear(t.order)
	t.order = t.order[:0]
}
