// Package memhost provides an in-memory tween.Host.
//
// It keeps item state in plain structs, runs on a manual clock and journals
// every property write, which makes it suitable for tests and for headless
// use where another layer renders the results.
package memhost

import (
	"image/color"
	"math"
	"time"

	"github.com/gogpu/tween"
)

// Item is the state of one host item.
type Item struct {
	Kind tween.ItemKind
	X, Y int
	W, H int

	// Alpha is the item-level alpha written by SetGenericAlpha.
	Alpha float64

	// Color is the text colour of ItemText items. SetTextColorAlpha rewrites
	// its alpha channel only.
	Color color.NRGBA
}

// Op identifies a property write.
type Op uint8

const (
	OpPosition Op = iota
	OpWidth
	OpHeight
	OpTextAlpha
	OpAlpha
)

// Write is one journaled property write. Position writes carry X and Y,
// width and height writes carry X, alpha writes carry Alpha.
type Write struct {
	Op    Op
	ID    tween.ItemID
	X, Y  int
	Alpha float64
}

// Host is an in-memory tween.Host. The zero value is not usable; call New.
type Host struct {
	now    time.Duration
	items  map[tween.ItemID]*Item
	writes []Write
}

var _ tween.Host = (*Host)(nil)

// New creates a host with no items and the clock at zero.
func New() *Host {
	return &Host{items: make(map[tween.ItemID]*Item)}
}

// AddItem registers an item and returns it for further setup.
// Registering an existing id replaces it.
func (h *Host) AddItem(id tween.ItemID, kind tween.ItemKind) *Item {
	it := &Item{Kind: kind, Alpha: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
	h.items[id] = it
	return it
}

// Item returns a copy of the item state.
func (h *Host) Item(id tween.ItemID) (Item, bool) {
	it, ok := h.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// item returns the item, creating an ItemOther entry for unknown ids.
func (h *Host) item(id tween.ItemID) *Item {
	it, ok := h.items[id]
	if !ok {
		it = h.AddItem(id, tween.ItemOther)
	}
	return it
}

// Advance moves the clock forward by d.
func (h *Host) Advance(d time.Duration) {
	h.now += d
}

// SetNow sets the clock.
func (h *Host) SetNow(t time.Duration) {
	h.now = t
}

// Run ticks tl frames times, advancing the clock by dt after each tick.
func (h *Host) Run(tl *tween.Timeline, frames int, dt time.Duration) {
	for i := 0; i < frames; i++ {
		tl.Tick()
		h.Advance(dt)
	}
}

// Writes returns the journal of property writes since the last ResetWrites.
func (h *Host) Writes() []Write {
	return append([]Write(nil), h.writes...)
}

// WritesTo returns the journaled writes for one item.
func (h *Host) WritesTo(id tween.ItemID) []Write {
	var out []Write
	for _, w := range h.writes {
		if w.ID == id {
			out = append(out, w)
		}
	}
	return out
}

// ResetWrites clears the journal.
func (h *Host) ResetWrites() {
	h.writes = h.writes[:0]
}

// Now implements tween.Host.
func (h *Host) Now() time.Duration {
	return h.now
}

// ItemKind implements tween.Host. Unknown items are ItemOther.
func (h *Host) ItemKind(id tween.ItemID) tween.ItemKind {
	if it, ok := h.items[id]; ok {
		return it.Kind
	}
	return tween.ItemOther
}

// SetPosition implements tween.Host.
func (h *Host) SetPosition(id tween.ItemID, x, y int) {
	it := h.item(id)
	it.X, it.Y = x, y
	h.writes = append(h.writes, Write{Op: OpPosition, ID: id, X: x, Y: y})
}

// SetWidth implements tween.Host.
func (h *Host) SetWidth(id tween.ItemID, w int) {
	h.item(id).W = w
	h.writes = append(h.writes, Write{Op: OpWidth, ID: id, X: w})
}

// SetHeight implements tween.Host.
func (h *Host) SetHeight(id tween.ItemID, v int) {
	h.item(id).H = v
	h.writes = append(h.writes, Write{Op: OpHeight, ID: id, X: v})
}

// SetTextColorAlpha implements tween.Host.
func (h *Host) SetTextColorAlpha(id tween.ItemID, alpha float64) {
	h.item(id).Color.A = uint8(math.Max(0, math.Min(255, alpha*255)))
	h.writes = append(h.writes, Write{Op: OpTextAlpha, ID: id, Alpha: alpha})
}

// SetGenericAlpha implements tween.Host.
func (h *Host) SetGenericAlpha(id tween.ItemID, alpha float64) {
	h.item(id).Alpha = alpha
	h.writes = append(h.writes, Write{Op: OpAlpha, ID: id, Alpha: alpha})
}
